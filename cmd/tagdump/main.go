package main

import (
	"fmt"
	"io"
	"os"

	"github.com/simonhull/musicfarm"
	"github.com/simonhull/musicfarm/internal/id3v2"
)

// Useful debugging tool to see which frames the decoder actually accepts.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: tagdump <file.mp3>...")
		os.Exit(1)
	}

	failed := false
	for _, path := range os.Args[1:] {
		if err := dump(os.Stdout, path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func dump(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(w, "%s\n", path)

	d := id3v2.Decoder{
		Path: path,
		OnFrame: func(_ *id3v2.Header, fr *id3v2.Frame) {
			fmt.Fprintf(w, "  %-4s (size: %d)", fr.ID, fr.Size)
			if fr.Size > 0 && fr.Data[0] <= 0x03 && fr.ID[0] == 'T' {
				fmt.Fprintf(w, " encoding %d", fr.Data[0])
			}
			fmt.Fprintln(w)
		},
	}

	// The header is printed before the frames it introduces.
	h, err := id3v2.ParseHeader(f)
	if err != nil {
		return err
	}
	if h == nil {
		return dumpOther(w, path)
	}
	fmt.Fprintf(w, "  ID3v2.%d.%d (body: %d bytes, unsync: %t, extended: %t, footer: %t)\n",
		h.Major, h.Minor, h.BodyLength, h.Unsynchronized, h.ExtendedHeader, h.Footer)

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	tags, err := d.Decode(f)
	if err != nil {
		return err
	}
	for _, warn := range d.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warn)
	}
	printTags(w, tags)
	return nil
}

func dumpOther(w io.Writer, path string) error {
	tags, container, err := musicfarm.ReadFile(path)
	if err != nil {
		return err
	}
	if tags == nil {
		fmt.Fprintln(w, "  no tags")
		return nil
	}
	fmt.Fprintf(w, "  %s\n", container)
	printTags(w, tags)
	return nil
}

func printTags(w io.Writer, t *musicfarm.Tags) {
	if t == nil {
		return
	}
	fmt.Fprintf(w, "  artist=%q album=%q title=%q track=%d disk=%d/%d\n",
		t.Artist, t.Album, t.Title, t.Track, t.Disk, t.TotalDisks)
	for id, values := range t.All() {
		fmt.Fprintf(w, "    %s: %q\n", id, values)
	}
}
