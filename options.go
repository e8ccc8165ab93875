package musicfarm

// Option configures how files are read.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	tags, _, err := musicfarm.ReadFile("song.mp3",
//	    musicfarm.WithProbers(id3Only),
//	)
type Option func(*readOptions)

// readOptions holds configuration for reading files.
type readOptions struct {
	probers []Prober // Tried in order; nil means DefaultProbers
}

// defaultOptions returns the default configuration.
func defaultOptions() *readOptions {
	return &readOptions{}
}

// WithProbers replaces the default prober chain.
//
// Probers are tried in the order given. Passing none restores the
// default chain.
func WithProbers(probers ...Prober) Option {
	return func(o *readOptions) {
		o.probers = probers
	}
}
