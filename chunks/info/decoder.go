// SPDX-License-Identifier: EPL-2.0

package info

import (
	"encoding/binary"
	"errors"
	"strings"
)

var (
	ErrShortList   = errors.New("LIST payload shorter than its list type")
	ErrNotInfoList = errors.New("LIST payload is not an INFO list")
)

// Tags maps INFO tag identifiers (e.g. "IART") to their text values.
type Tags map[string]string

// Decoder decodes LIST/INFO payloads. It implements container.Decoder.
type Decoder struct{}

func (Decoder) DecodeChunk(payload []byte) (any, error) {
	if len(payload) < 4 {
		return nil, ErrShortList
	}
	if string(payload[:4]) != "INFO" {
		return nil, ErrNotInfoList
	}

	tags := make(Tags)
	rest := payload[4:]

	for len(rest) >= 8 {
		id := string(rest[:4])
		size := binary.LittleEndian.Uint32(rest[4:8])
		rest = rest[8:]

		if uint64(size) > uint64(len(rest)) {
			// Sub-chunk runs past the list; keep what decoded so far.
			break
		}

		tags[id] = decodeLatin1(rest[:size])

		// Sub-chunks are padded to even sizes like any other chunk.
		advance := size + size%2
		if uint64(advance) > uint64(len(rest)) {
			break
		}
		rest = rest[advance:]
	}

	return tags, nil
}

// decodeLatin1 converts a NUL-padded Latin-1 byte string. Latin-1 maps
// byte-for-byte onto the first 256 code points.
func decodeLatin1(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		if c == 0 {
			break
		}
		sb.WriteRune(rune(c))
	}
	return strings.TrimSpace(sb.String())
}
