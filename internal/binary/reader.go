// Package binary provides bounded sequential reading over seekable streams
package binary

import (
	"errors"
	"fmt"
	"io"

	"github.com/simonhull/musicfarm/internal/types"
)

// Stream wraps io.ReadSeeker with offset tracking and helpful error messages.
//
// A Stream remembers the offset it was created at so a prober that
// decides the bytes are not its format can hand them back untouched.
type Stream struct {
	r      io.ReadSeeker
	path   string
	start  int64
	offset int64
	size   int64
}

// NewStream creates a Stream positioned at r's current offset.
func NewStream(r io.ReadSeeker, path string) (*Stream, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%slocate stream start: %w", types.PathPrefix(path), err)
	}
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("%slocate stream end: %w", types.PathPrefix(path), err)
	}
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%sseek to stream start: %w", types.PathPrefix(path), err)
	}
	return &Stream{
		r:      r,
		path:   path,
		start:  start,
		offset: start,
		size:   size,
	}, nil
}

// Path returns the file path associated with this stream.
func (s *Stream) Path() string {
	return s.path
}

// Offset returns the current offset.
func (s *Stream) Offset() int64 {
	return s.offset
}

// Remaining returns the number of bytes between the current offset and
// the end of the stream.
func (s *Stream) Remaining() int64 {
	if s.offset >= s.size {
		return 0
	}
	return s.size - s.offset
}

// ReadN reads n bytes into a new buffer.
//
// Declared lengths in a file are untrusted: when n exceeds what is left
// in the stream, *types.TruncatedError is returned before anything is
// allocated and the offset does not move.
func (s *Stream) ReadN(n int64, what string) ([]byte, error) {
	if left := s.Remaining(); n > left {
		return nil, &types.TruncatedError{
			Path:   s.path,
			What:   what,
			Offset: s.offset,
			Want:   n,
			Got:    left,
		}
	}
	b := make([]byte, n)
	if err := s.ReadFull(b, what); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadFull reads exactly len(b) bytes with context for error messages.
//
// A stream that ends early yields *types.TruncatedError; the offset still
// advances past whatever was read.
func (s *Stream) ReadFull(b []byte, what string) error {
	n, err := io.ReadFull(s.r, b)
	off := s.offset
	s.offset += int64(n)

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &types.TruncatedError{
			Path:   s.path,
			What:   what,
			Offset: off,
			Want:   int64(len(b)),
			Got:    int64(n),
		}
	}
	if err != nil {
		return fmt.Errorf("%sfailed to read %s at offset %d: %w", types.PathPrefix(s.path), what, off, err)
	}

	return nil
}

// Rewind seeks back to the offset the stream was created at.
func (s *Stream) Rewind() error {
	if _, err := s.r.Seek(s.start, io.SeekStart); err != nil {
		return fmt.Errorf("%srewind to offset %d: %w", types.PathPrefix(s.path), s.start, err)
	}
	s.offset = s.start
	return nil
}

// IsTruncated reports whether err stems from a stream ending early.
func IsTruncated(err error) bool {
	var te *types.TruncatedError
	return errors.As(err, &te)
}
