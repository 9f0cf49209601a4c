// SPDX-License-Identifier: EPL-2.0

package container

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/ik5/raff/utils"
)

// Sony Wave64 replaces 4-byte tags with 16-byte GUIDs and 32-bit sizes
// with 64-bit ones. Chunk GUIDs embed the classic FourCC in their first
// four bytes; sizes include the 24-byte chunk header and bodies align to
// 8-byte boundaries.
var (
	w64RIFFGUID = uuid.MustParse("66666972-912E-11CF-A5D6-28DB04C10000")
	w64WAVEGUID = uuid.MustParse("65766177-ACF3-11D3-8CD1-00C04F8EDB8A")

	w64FourCC = map[uuid.UUID]string{
		uuid.MustParse("7473696C-912F-11CF-A5D6-28DB04C10000"): "LIST",
		uuid.MustParse("20746D66-ACF3-11D3-8CD1-00C04F8EDB8A"): "fmt ",
		uuid.MustParse("74636166-ACF3-11D3-8CD1-00C04F8EDB8A"): "fact",
		uuid.MustParse("61746164-ACF3-11D3-8CD1-00C04F8EDB8A"): "data",
		uuid.MustParse("6C76656C-ACF3-11D3-8CD1-00C04F8EDB8A"): "levl",
		uuid.MustParse("6B6E756A-ACF3-11D3-8CD1-00C04F8EDB8A"): "JUNK",
		uuid.MustParse("74786562-ACF3-11D3-8CD1-00C04F8EDB8A"): "bext",
		uuid.MustParse("ABF76256-392D-11D2-86C7-00C04F8EDB8A"): "cue ",
		uuid.MustParse("925F94BC-525A-11D2-86DC-00C04F8EDB8A"): "list",
	}
)

const (
	w64HeaderSize = 24 // 16-byte GUID + 8-byte size
	w64Align      = 8
)

// guidFromBytesLE decodes a GUID stored in Microsoft mixed-endian order,
// as Wave64 stores them on disk.
func guidFromBytesLE(b []byte) (uuid.UUID, error) {
	var be [16]byte
	copy(be[:], b)
	be[0], be[1], be[2], be[3] = b[3], b[2], b[1], b[0]
	be[4], be[5] = b[5], b[4]
	be[6], be[7] = b[7], b[6]
	return uuid.FromBytes(be[:])
}

// initW64 parses the 40-byte Wave64 master header. The leading four
// bytes of the riff GUID were already consumed by master tag detection.
func (s *Scanner) initW64() error {
	rest, err := s.src.ReadExact(12)
	if err != nil {
		return headerErr(err)
	}

	guidB := append([]byte(w64MasterTag), rest...)
	g, err := guidFromBytesLE(guidB)
	if err != nil || g != w64RIFFGUID {
		return fmt.Errorf("%w: wave64 riff GUID %s", ErrUnknownMaster, g)
	}

	sizeB, err := s.src.ReadExact(8)
	if err != nil {
		return headerErr(err)
	}
	// Unlike RIFF/RF64, this size includes the master header itself.
	fsize := binary.LittleEndian.Uint64(sizeB)

	waveB, err := s.src.ReadExact(16)
	if err != nil {
		return headerErr(err)
	}
	wg, err := guidFromBytesLE(waveB)
	if err != nil || wg != w64WAVEGUID {
		return fmt.Errorf("%w: wave64 form type GUID %s", ErrUnknownMaster, wg)
	}

	s.master = Master{
		Identifier: "RIFF",
		Size:       fsize,
		Type:       "WAVE",
		GUID:       w64RIFFGUID.String(),
	}
	s.end = int64(fsize)

	return nil
}

func (s *Scanner) nextW64() (*Chunk, error) {
	guidB, err := s.src.ReadExact(16)
	if err == io.EOF {
		s.done = true
		return nil, io.EOF
	}
	if err != nil {
		return nil, s.fail(err)
	}

	sizeB, err := s.src.ReadExact(8)
	if err != nil {
		return nil, s.fail(headerErr(err))
	}
	raw := binary.LittleEndian.Uint64(sizeB)
	if raw < w64HeaderSize {
		return nil, s.fail(fmt.Errorf("%w: wave64 chunk size %d smaller than its header",
			ErrTruncated, raw))
	}
	size := raw - w64HeaderSize

	g, gerr := guidFromBytesLE(guidB)
	id, known := w64FourCC[g]
	nameless := false
	if !known {
		// The FourCC rides in the first four GUID bytes.
		if fourcc := string(guidB[:4]); utils.ValidFourCC(fourcc) {
			id = fourcc
		} else {
			id = fmt.Sprintf("custom%d", s.customs)
			s.customs++
			nameless = true
		}
	}

	offset := s.src.Position()
	if s.end >= 0 && offset+int64(size) > s.end {
		return nil, s.fail(fmt.Errorf("%w: chunk %q at offset %d extends past declared container end",
			ErrTruncated, id, offset))
	}

	ch := &Chunk{Identifier: id, Size: size, Offset: offset}
	if gerr == nil {
		ch.GUID = g.String()
	}

	pad := int64(utils.Pad(raw, w64Align))

	if _, ignored := s.ignore[id]; ignored || nameless || !s.cfg.Payload {
		ch.Skipped = ignored || nameless
		if err := s.src.Skip(int64(size)); err != nil {
			return nil, s.fail(err)
		}
	} else {
		payload, err := s.src.ReadExact(int(size))
		if err != nil {
			return nil, s.fail(headerErr(err))
		}
		ch.Payload = payload
	}

	s.consumePad(pad)

	return ch, nil
}
