// SPDX-License-Identifier: EPL-2.0

package wavefmt

import (
	"encoding/binary"

	goaudio "github.com/go-audio/audio"
)

// Common codec tags of the AudioFormat field.
const (
	FormatPCM        = 0x0001
	FormatIEEEFloat  = 0x0003
	FormatALaw       = 0x0006
	FormatMuLaw      = 0x0007
	FormatExtensible = 0xFFFE
)

// Format is the decoded "fmt " chunk.
type Format struct {
	AudioFormat uint16 // codec tag, e.g. FormatPCM
	NumChannels uint16
	SampleRate  uint32
	ByteRate    uint32
	BlockAlign  uint16
	BitDepth    uint16

	// ExtensionSize is the declared size of the WAVEFORMATEX extension,
	// zero for the plain 16-byte layout.
	ExtensionSize uint16

	// SubFormat holds the first two GUID bytes of a WAVEFORMATEXTENSIBLE
	// sub-format, which carry the effective codec tag.
	SubFormat uint16
}

// PCM returns the format as a go-audio format value.
func (f *Format) PCM() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: int(f.NumChannels),
		SampleRate:  int(f.SampleRate),
	}
}

// Codec returns the effective codec tag, looking through the extensible
// wrapper when present.
func (f *Format) Codec() uint16 {
	if f.AudioFormat == FormatExtensible && f.SubFormat != 0 {
		return f.SubFormat
	}
	return f.AudioFormat
}

// Decoder decodes "fmt " payloads. It implements container.Decoder.
type Decoder struct{}

func (Decoder) DecodeChunk(payload []byte) (any, error) {
	if len(payload) < 16 {
		return nil, ErrShortChunk
	}

	f := &Format{
		AudioFormat: binary.LittleEndian.Uint16(payload[0:2]),
		NumChannels: binary.LittleEndian.Uint16(payload[2:4]),
		SampleRate:  binary.LittleEndian.Uint32(payload[4:8]),
		ByteRate:    binary.LittleEndian.Uint32(payload[8:12]),
		BlockAlign:  binary.LittleEndian.Uint16(payload[12:14]),
		BitDepth:    binary.LittleEndian.Uint16(payload[14:16]),
	}

	if f.NumChannels == 0 || f.SampleRate == 0 {
		return nil, ErrBadFormat
	}

	if len(payload) >= 18 {
		f.ExtensionSize = binary.LittleEndian.Uint16(payload[16:18])
	}

	// WAVEFORMATEXTENSIBLE: valid bits (2), channel mask (4), then the
	// sub-format GUID whose leading two bytes are the codec tag.
	if f.AudioFormat == FormatExtensible && len(payload) >= 26 {
		f.SubFormat = binary.LittleEndian.Uint16(payload[24:26])
	}

	return f, nil
}
