// SPDX-License-Identifier: EPL-2.0

package container

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// ByteSource provides uniform read access over a file, an open stream, or
// an in-memory buffer. It tracks the current byte offset and, when the
// underlying source is bounded, its total length.
//
// A ByteSource is forward-only from the scanner's point of view: the
// scanner never seeks backwards. For sources that cannot seek at all,
// Skip falls back to reading and discarding.
type ByteSource struct {
	r      io.Reader
	seeker io.Seeker
	closer io.Closer
	pos    int64
	size   int64 // -1 when unknown
}

// Open creates a ByteSource reading from the file at path.
// Close releases the file handle.
func Open(path string) (*ByteSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}

	size := int64(-1)
	if fi, err := f.Stat(); err == nil {
		size = fi.Size()
	}

	return &ByteSource{r: f, seeker: f, closer: f, size: size}, nil
}

// FromBytes creates a ByteSource over an in-memory buffer.
func FromBytes(data []byte) *ByteSource {
	r := bytes.NewReader(data)
	return &ByteSource{r: r, seeker: r, size: int64(len(data))}
}

// FromReader creates a ByteSource over an already-open stream. When r
// also implements io.Seeker the total length is determined up front and
// Skip uses real seeks; otherwise the length is unknown and skipped
// bytes are read and discarded. The caller keeps ownership of r; Close
// will not close it.
func FromReader(r io.Reader) *ByteSource {
	b := &ByteSource{r: r, size: -1}

	if s, ok := r.(io.Seeker); ok {
		b.seeker = s
		// Measure once, then restore the position.
		if cur, err := s.Seek(0, io.SeekCurrent); err == nil {
			if end, err := s.Seek(0, io.SeekEnd); err == nil {
				b.size = end - cur
				_, _ = s.Seek(cur, io.SeekStart)
			}
		}
	}

	return b
}

// ReadExact reads exactly n bytes. A read that yields zero bytes returns
// io.EOF so callers can detect a clean end of data at a chunk boundary; a
// partial read returns ErrTruncated.
func (b *ByteSource) ReadExact(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}

	buf := make([]byte, n)
	rn, err := io.ReadFull(b.r, buf)
	b.pos += int64(rn)

	switch err {
	case nil:
		return buf, nil
	case io.EOF:
		return nil, io.EOF
	case io.ErrUnexpectedEOF:
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, got %d",
			ErrTruncated, n, b.pos-int64(rn), rn)
	default:
		return nil, fmt.Errorf("read source: %w", err)
	}
}

// Skip advances the cursor by n bytes without materializing them. Seekable
// sources seek; non-seekable sources read into the discard sink. Skipping
// past the end of a bounded source returns ErrTruncated.
func (b *ByteSource) Skip(n int64) error {
	if n <= 0 {
		return nil
	}

	if b.size >= 0 && b.pos+n > b.size {
		return fmt.Errorf("%w: skip of %d bytes at offset %d passes end of data",
			ErrTruncated, n, b.pos)
	}

	if b.seeker != nil {
		if _, err := b.seeker.Seek(n, io.SeekCurrent); err != nil {
			return fmt.Errorf("seek source: %w", err)
		}
		b.pos += n
		return nil
	}

	wn, err := io.CopyN(io.Discard, b.r, n)
	b.pos += wn
	if err != nil {
		if err == io.EOF {
			return fmt.Errorf("%w: skip of %d bytes at offset %d passes end of data",
				ErrTruncated, n, b.pos-wn)
		}
		return fmt.Errorf("skip source: %w", err)
	}

	return nil
}

// Position returns the current byte offset from the start of the source.
func (b *ByteSource) Position() int64 {
	return b.pos
}

// Length returns the total size of the source in bytes. ok is false for
// unbounded streaming sources.
func (b *ByteSource) Length() (size int64, ok bool) {
	if b.size < 0 {
		return 0, false
	}
	return b.size, true
}

// Close releases the underlying file when the ByteSource opened it.
// Sources built from a caller-owned reader or buffer are left open.
func (b *ByteSource) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer.Close()
}
