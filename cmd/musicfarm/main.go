// Command musicfarm links every tagged file of a music tree into an
// albums/ and artists/ farm.
//
// Usage:
//
//	musicfarm [-v] [-h] [-n] [-known] [-config file] [file]
//
// With a file argument only that file is linked; otherwise the whole music
// directory is scanned.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/simonhull/musicfarm"
	"github.com/simonhull/musicfarm/internal/config"
	"github.com/simonhull/musicfarm/internal/farm"
	"github.com/simonhull/musicfarm/internal/logging"
	"github.com/simonhull/musicfarm/internal/registry"
	"github.com/simonhull/musicfarm/internal/walk"
)

const usageText = `Usage: %s [OPTION...] [FILE]
music curation

Options:
  -v:       Verbose mode
  -h:       Use hardlinks instead of symlinks
  -n:       Dry run, log links without creating them
  -known:   Only scan extensions of known tag containers
  -config:  Load settings from a .toml or .yaml file
  -version: Print version and exit
  -help:    Show this help
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	name := "musicfarm"
	if len(args) > 0 {
		name = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprintf(stderr, usageText, name) }

	verbose := fs.Bool("v", false, "verbose mode")
	hardlink := fs.Bool("h", false, "use hardlinks instead of symlinks")
	dryRun := fs.Bool("n", false, "dry run")
	known := fs.Bool("known", false, "only scan known extensions")
	configPath := fs.String("config", "", "config file")
	version := fs.Bool("version", false, "print version")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *version {
		fmt.Fprintln(stderr, musicfarm.GetVersionInfo())
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 1
	}
	cfg.Verbose = cfg.Verbose || *verbose
	cfg.Hardlink = cfg.Hardlink || *hardlink
	cfg.DryRun = cfg.DryRun || *dryRun

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 1
	}

	log := logging.New(logging.Config{Verbose: cfg.Verbose, Out: stderr})

	linker := farm.NewLinker(farm.Config{
		Root:     cfg.FarmDir,
		Hardlink: cfg.Hardlink,
		DryRun:   cfg.DryRun,
	}, log)

	chain := registry.Chain(musicfarm.DefaultProbers())
	if *known && len(cfg.Extensions) == 0 {
		cfg.Extensions = chain.Extensions()
	}

	w := walk.New(walk.Config{
		Root:       cfg.MusicDir,
		Extensions: cfg.Extensions,
		Workers:    cfg.Workers,
	}, chain, linker, log)

	if fs.NArg() > 0 {
		path := fs.Arg(0)
		if err := w.File(ctx, path); err != nil {
			log.Error().Err(err).Str("path", path).Msg("failed")
			return 1
		}
		return 0
	}

	stats, err := w.Run(ctx)
	log.Info().
		Int64("scanned", stats.Scanned).
		Int64("tagged", stats.Tagged).
		Int64("linked", stats.Linked).
		Int64("failed", stats.Failed).
		Msg("done")
	if err != nil {
		log.Error().Err(err).Msg("walk failed")
		return 1
	}
	return 0
}
