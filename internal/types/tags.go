package types

import (
	"iter"
	"slices"
)

// Tags is the metadata record produced by a tag prober.
//
// Every field starts unset: text fields are unset when empty and numeric
// fields are unset when zero. A prober that finds no tag container at all
// returns a nil *Tags; a container without usable frames yields a non-nil
// Tags for which IsEmpty reports true. Callers rely on that difference to
// decide whether to fall back to the next prober.
//
// Text frames that do not map onto a field remain reachable through All
// and Get, keyed by their canonical frame identifier (e.g. "TCON").
type Tags struct {
	raw        map[string][]string
	Artist     string
	Album      string
	Title      string
	Track      int
	Disk       int
	TotalDisks int
}

// IsEmpty reports whether every standard field is unset.
//
// Raw frames are not considered; a tag holding only a genre is still
// empty as far as link placement is concerned.
func (t *Tags) IsEmpty() bool {
	return t.Artist == "" &&
		t.Album == "" &&
		t.Title == "" &&
		t.Track == 0 &&
		t.Disk == 0 &&
		t.TotalDisks == 0
}

// All returns an iterator over all raw tags.
//
// The iterator yields key-value pairs where values are string slices
// (a frame identifier may appear more than once in a tag).
//
// Example:
//
//	for id, values := range tags.All() {
//		fmt.Printf("%s: %v\n", id, values)
//	}
//
// The returned iterator is read-only. Do not modify the returned slices.
func (t *Tags) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		if t.raw == nil {
			return
		}
		for key, values := range t.raw {
			if !yield(key, values) {
				return
			}
		}
	}
}

// Get retrieves all values recorded for a frame identifier.
//
// Returns nil if the identifier was not seen.
func (t *Tags) Get(key string) []string {
	if t.raw == nil {
		return nil
	}
	values := t.raw[key]
	if values == nil {
		return nil
	}
	return slices.Clone(values)
}

// GetFirst retrieves the first value recorded for a frame identifier.
//
// Returns empty string if the identifier was not seen.
func (t *Tags) GetFirst(key string) string {
	values := t.Get(key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Add appends a raw value for a frame identifier.
func (t *Tags) Add(key, value string) {
	if t.raw == nil {
		t.raw = make(map[string][]string)
	}
	t.raw[key] = append(t.raw[key], value)
}
