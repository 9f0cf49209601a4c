// SPDX-License-Identifier: EPL-2.0

package container

import (
	"encoding/binary"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Master chunk identifiers by byte order, plus the lowercase Wave64 tag.
var (
	masterBig    = []string{"FORM", "RIFX", "FIRR"}
	masterLittle = []string{"RIFF", "RF64", "BW64"}
)

const (
	w64MasterTag = "riff"

	// Placeholder 32-bit size; the true size lives in the ds64 chunk.
	falseSize32 = 0xFFFFFFFF

	listID = "LIST"
)

type variant int

const (
	variantIFF variant = iota
	variantRF64
	variantW64
)

// Master is the outermost wrapper chunk: identifier, declared size and
// form type. For Wave64 containers Identifier and Type are the FourCC
// equivalents of the on-disk GUIDs, GUID carries the canonical master
// GUID, and Size is the raw 64-bit value, which includes the 40-byte
// master header itself.
type Master struct {
	Identifier string
	Size       uint64
	Type       string
	GUID       string
}

// Chunk is one record of the scan sequence.
//
// Offset is the byte offset of the payload start within the source. Size
// is the payload length, excluding the chunk header and any pad byte
// (Wave64 sizes are normalized accordingly). Payload is nil unless
// payload materialization was requested and the chunk was not skipped.
//
// Chunks named in the ignore set are still yielded, with Skipped set and
// no payload, so consumers keep identifier/size/offset visibility.
type Chunk struct {
	Identifier string
	Size       uint64
	Offset     int64
	Payload    []byte
	Skipped    bool

	// ListType holds the list type of a LIST chunk (e.g. "INFO") when the
	// payload was materialized.
	ListType string

	// GUID is the canonical chunk GUID for Wave64 containers.
	GUID string

	// Value and DecodeErr are populated by a Dispatcher.
	Value     any
	DecodeErr error
}

// Config selects what a scan materializes.
type Config struct {
	// Ignore lists chunk identifiers whose payloads are skipped without
	// being read.
	Ignore []string

	// Payload controls whether chunk payloads are read into memory. When
	// false the scanner advances past payloads the same way it advances
	// past ignored chunks.
	Payload bool
}

// Scanner walks an IFF-family container as a single-pass, forward-only
// sequence of chunks. A Scanner is not restartable and must not be shared
// between goroutines without external synchronization.
type Scanner struct {
	src     *ByteSource
	cfg     Config
	order   binary.ByteOrder
	variant variant
	master  Master
	ds64    *DS64
	ignore  map[string]struct{}

	end     int64 // declared container end offset, -1 when unknown
	done    bool
	err     error
	customs int // unnamed Wave64 chunk counter
}

// NewScanner reads and validates the master header and positions the
// cursor at the first chunk. It returns ErrUnknownMaster when the leading
// bytes match no supported signature.
func NewScanner(src *ByteSource, cfg Config) (*Scanner, error) {
	s := &Scanner{
		src:    src,
		cfg:    cfg,
		order:  binary.LittleEndian,
		ignore: make(map[string]struct{}, len(cfg.Ignore)),
		end:    -1,
	}
	for _, id := range cfg.Ignore {
		s.ignore[id] = struct{}{}
	}

	tag, err := s.readMasterTag()
	if err != nil {
		return nil, err
	}

	if tag == w64MasterTag {
		s.variant = variantW64
		if err := s.initW64(); err != nil {
			return nil, err
		}
		return s, nil
	}

	switch {
	case slices.Contains(masterBig, tag):
		s.order = binary.BigEndian
	case slices.Contains(masterLittle, tag):
		// little-endian default
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMaster, tag)
	}

	sizeB, err := s.src.ReadExact(4)
	if err != nil {
		return nil, headerErr(err)
	}
	msize := uint64(s.order.Uint32(sizeB))

	typeB, err := s.src.ReadExact(4)
	if err != nil {
		return nil, headerErr(err)
	}

	s.master = Master{Identifier: tag, Size: msize, Type: string(typeB)}

	if msize == falseSize32 {
		s.variant = variantRF64
		if err := s.readDS64(); err != nil {
			return nil, err
		}
	}

	// Declared size counts everything after the 8-byte identifier+size
	// header, including the form type already consumed.
	if s.master.Size != falseSize32 {
		s.end = 8 + int64(s.master.Size)
	}

	return s, nil
}

func (s *Scanner) readMasterTag() (string, error) {
	identB, err := s.src.ReadExact(4)
	if err != nil {
		return "", headerErr(err)
	}
	return string(identB), nil
}

// Master returns the parsed master header. It is immutable for the
// lifetime of the scan.
func (s *Scanner) Master() Master {
	return s.master
}

// DS64 returns the parsed ds64 size table for RF64/BW64 containers, or
// nil for every other variant. The ds64 chunk is consumed as bookkeeping
// and never yielded by Next.
func (s *Scanner) DS64() *DS64 {
	return s.ds64
}

// Next advances the scan by one chunk. It returns io.EOF at the declared
// container end or on a clean end of data at a chunk boundary, and
// ErrTruncated when the data runs out mid-header or mid-payload.
func (s *Scanner) Next() (*Chunk, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.done || (s.end >= 0 && s.src.Position() >= s.end) {
		s.done = true
		return nil, io.EOF
	}

	if s.variant == variantW64 {
		return s.nextW64()
	}
	return s.nextIFF()
}

func (s *Scanner) nextIFF() (*Chunk, error) {
	identB, err := s.src.ReadExact(4)
	if err == io.EOF {
		// Zero bytes at a chunk boundary: clean end of stream.
		s.done = true
		return nil, io.EOF
	}
	if err != nil {
		return nil, s.fail(err)
	}
	id := string(identB)

	sizeB, err := s.src.ReadExact(4)
	if err != nil {
		return nil, s.fail(headerErr(err))
	}
	size := uint64(s.order.Uint32(sizeB))

	if s.variant == variantRF64 && size == falseSize32 {
		size = s.ds64.lookupSize(id)
	}

	offset := s.src.Position()
	if s.end >= 0 && offset+int64(size) > s.end {
		return nil, s.fail(fmt.Errorf("%w: chunk %q at offset %d extends past declared container end",
			ErrTruncated, id, offset))
	}

	ch := &Chunk{Identifier: id, Size: size, Offset: offset}

	if _, skip := s.ignore[id]; skip {
		ch.Skipped = true
		if err := s.src.Skip(int64(size)); err != nil {
			return nil, s.fail(err)
		}
	} else if s.cfg.Payload {
		payload, err := s.src.ReadExact(int(size))
		if err != nil {
			return nil, s.fail(headerErr(err))
		}
		ch.Payload = payload
		if id == listID && size >= 4 {
			ch.ListType = strings.TrimSpace(string(payload[:4]))
		}
	} else {
		if err := s.src.Skip(int64(size)); err != nil {
			return nil, s.fail(err)
		}
	}

	// Chunks with odd sizes are followed by one pad byte.
	s.consumePad(int64(size % 2))

	return ch, nil
}

// consumePad advances past alignment padding. A pad byte missing at the
// very end of the data is tolerated: some writers omit the final pad, and
// the next header read terminates the scan cleanly either way.
func (s *Scanner) consumePad(n int64) {
	if n == 0 {
		return
	}
	if err := s.src.Skip(n); err != nil {
		s.done = true
	}
}

func (s *Scanner) fail(err error) error {
	s.err = err
	return err
}

// ReadAll drains the remaining sequence. A clean end returns the chunks
// collected so far with a nil error.
func (s *Scanner) ReadAll() ([]*Chunk, error) {
	var chunks []*Chunk
	for {
		ch, err := s.Next()
		if err == io.EOF {
			return chunks, nil
		}
		if err != nil {
			return chunks, err
		}
		chunks = append(chunks, ch)
	}
}

// headerErr maps a clean-EOF read to ErrTruncated for positions where a
// clean end is not valid (mid-header, or a declared payload).
func headerErr(err error) error {
	if err == io.EOF {
		return fmt.Errorf("%w: unexpected end of data", ErrTruncated)
	}
	return err
}
