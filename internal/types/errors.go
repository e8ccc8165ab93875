package types

import "fmt"

// PathPrefix returns "path: " for use at the start of an error message,
// or "" when the stream has no name.
func PathPrefix(path string) string {
	if path == "" {
		return ""
	}
	return path + ": "
}

// TruncatedError is returned when a stream ends before a declared length
// has been read.
type TruncatedError struct {
	Path   string
	What   string
	Offset int64
	Want   int64
	Got    int64
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("%struncated %s at offset %d: got %d of %d bytes",
		PathPrefix(e.Path), e.What, e.Offset, e.Got, e.Want)
}

// CorruptFrameError is returned when a frame header cannot be trusted,
// either because its identifier is not ASCII alphanumeric or because its
// declared size does not fit in what is left of the tag.
type CorruptFrameError struct {
	Path   string
	ID     string
	Reason string
	Offset int64
}

func (e *CorruptFrameError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%scorrupt frame at offset %d: %s", PathPrefix(e.Path), e.Offset, e.Reason)
	}
	return fmt.Sprintf("%scorrupt frame %q at offset %d: %s", PathPrefix(e.Path), e.ID, e.Offset, e.Reason)
}

// UnsupportedTagError is reported when a tag container is present but
// uses a feature the decoder does not handle (extended headers, unknown
// major versions). The container still counts as found.
type UnsupportedTagError struct {
	Path   string
	Reason string
}

func (e *UnsupportedTagError) Error() string {
	return fmt.Sprintf("%sunsupported tag: %s", PathPrefix(e.Path), e.Reason)
}

// Warning represents a non-fatal issue encountered during parsing.
//
// Warnings indicate problems that don't prevent metadata extraction but
// may indicate corrupted or unusual data. Examples include:
//   - A frame whose identifier is not alphanumeric
//   - A frame that claims more bytes than the tag holds
//   - A file that ends in the middle of a frame
//
// The ID3v2 decoder collects warnings on its Decoder value.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "header", "frame", "text"

	// Warning message
	Message string

	// Stream offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
