// SPDX-License-Identifier: EPL-2.0

package bext

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
)

// ErrShortChunk is returned when a bext payload is smaller than the fixed
// part of the EBU Tech 3285 layout.
var ErrShortChunk = errors.New("bext chunk shorter than its fixed layout")

// fixedSize is the byte length of the fixed bext fields through the
// version 2 loudness block and reserved area.
const fixedSize = 602

// Metadata is the decoded bext chunk.
type Metadata struct {
	Description     string // up to 256 bytes
	Originator      string // up to 32 bytes
	OriginatorRef   string // up to 32 bytes
	OriginationDate string // "yyyy-mm-dd"
	OriginationTime string // "hh:mm:ss"

	// TimeReference is the first sample count since midnight.
	TimeReference uint64

	Version uint16
	UMID    [64]byte

	// Loudness values in 1/100 units, version 2 and later.
	LoudnessValue    int16
	LoudnessRange    int16
	MaxTruePeakLevel int16
	MaxMomentaryLoud int16
	MaxShortTermLoud int16

	CodingHistory string
}

// Decoder decodes bext payloads. It implements container.Decoder.
type Decoder struct{}

func (Decoder) DecodeChunk(payload []byte) (any, error) {
	if len(payload) < fixedSize {
		return nil, ErrShortChunk
	}

	m := &Metadata{
		Description:     fixedString(payload[0:256]),
		Originator:      fixedString(payload[256:288]),
		OriginatorRef:   fixedString(payload[288:320]),
		OriginationDate: fixedString(payload[320:330]),
		OriginationTime: fixedString(payload[330:338]),
		TimeReference:   uint64(binary.LittleEndian.Uint32(payload[338:342])) | uint64(binary.LittleEndian.Uint32(payload[342:346]))<<32,
		Version:         binary.LittleEndian.Uint16(payload[346:348]),
	}
	copy(m.UMID[:], payload[348:412])

	m.LoudnessValue = int16(binary.LittleEndian.Uint16(payload[412:414]))
	m.LoudnessRange = int16(binary.LittleEndian.Uint16(payload[414:416]))
	m.MaxTruePeakLevel = int16(binary.LittleEndian.Uint16(payload[416:418]))
	m.MaxMomentaryLoud = int16(binary.LittleEndian.Uint16(payload[418:420]))
	m.MaxShortTermLoud = int16(binary.LittleEndian.Uint16(payload[420:422]))

	m.CodingHistory = fixedString(payload[fixedSize:])

	return m, nil
}

// fixedString trims the NUL padding of a fixed-width text field.
func fixedString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}
