// SPDX-License-Identifier: EPL-2.0

package container

import (
	"encoding/binary"
	"fmt"
)

// DS64 is the 64-bit size table an RF64/BW64 container stores in the ds64
// chunk that immediately follows the master header. It replaces the
// 32-bit placeholder sizes of the master, data and fact chunks.
type DS64 struct {
	Size        uint32 // ds64 chunk size on disk
	RIFFSize    uint64 // true container size
	DataSize    uint64 // true data chunk size
	SampleCount uint64 // true fact chunk sample count
	TableLength uint32 // additional per-chunk size table entries
}

// ds64Fields is the fixed part of the ds64 payload: riff, data and sample
// sizes as low/high 32-bit pairs plus the table length.
const ds64Fields = 28

// readDS64 consumes the mandatory ds64 chunk and patches the master size.
// Per-chunk table entries beyond the fixed fields are skipped; no file
// exercising them has turned up yet.
func (s *Scanner) readDS64() error {
	identB, err := s.src.ReadExact(4)
	if err != nil {
		return headerErr(err)
	}
	if string(identB) != "ds64" {
		return fmt.Errorf("%w, found: %q", ErrExpectedDS64, string(identB))
	}

	sizeB, err := s.src.ReadExact(4)
	if err != nil {
		return headerErr(err)
	}
	size := binary.LittleEndian.Uint32(sizeB)
	if size < ds64Fields {
		return fmt.Errorf("%w: ds64 chunk declares %d bytes, need at least %d",
			ErrTruncated, size, ds64Fields)
	}

	fields, err := s.src.ReadExact(ds64Fields)
	if err != nil {
		return headerErr(err)
	}

	u32 := func(i int) uint64 { return uint64(binary.LittleEndian.Uint32(fields[i : i+4])) }
	s.ds64 = &DS64{
		Size:        size,
		RIFFSize:    u32(0) | u32(4)<<32,
		DataSize:    u32(8) | u32(12)<<32,
		SampleCount: u32(16) | u32(20)<<32,
		TableLength: binary.LittleEndian.Uint32(fields[24:28]),
	}

	// Skip the table and any trailing bytes of the ds64 payload, plus the
	// pad byte for odd sizes.
	rest := int64(size) - ds64Fields + int64(size%2)
	if rest > 0 {
		if err := s.src.Skip(rest); err != nil {
			return err
		}
	}

	s.master.Size = s.ds64.RIFFSize
	return nil
}

// lookupSize resolves a 0xFFFFFFFF placeholder chunk size against the
// ds64 table.
func (d *DS64) lookupSize(identifier string) uint64 {
	switch identifier {
	case "data":
		return d.DataSize
	case "fact":
		return d.SampleCount
	default:
		return falseSize32
	}
}
