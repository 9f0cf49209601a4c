// SPDX-License-Identifier: EPL-2.0

// Package ifftest builds well-formed (and deliberately malformed)
// IFF-family container fixtures for tests. It does not import the
// container package to stay usable from its tests without a cycle.
package ifftest

import (
	"bytes"
	"encoding/binary"
)

// ChunkSpec describes one chunk of a fixture.
type ChunkSpec struct {
	ID      string
	Payload []byte
}

// AppendChunk writes a chunk header, payload and pad byte for odd sizes.
// The declared size can differ from the payload length to model
// placeholder (0xFFFFFFFF) or corrupt size fields.
func AppendChunk(buf *bytes.Buffer, order binary.ByteOrder, id string, size uint32, payload []byte) {
	buf.WriteString(id)
	_ = binary.Write(buf, order, size)
	buf.Write(payload)
	if len(payload)%2 != 0 {
		buf.WriteByte(0)
	}
}

// Container assembles a complete container with a correct master size.
func Container(order binary.ByteOrder, master, formType string, chunks ...ChunkSpec) []byte {
	var body bytes.Buffer
	for _, c := range chunks {
		AppendChunk(&body, order, c.ID, uint32(len(c.Payload)), c.Payload)
	}

	var buf bytes.Buffer
	buf.WriteString(master)
	_ = binary.Write(&buf, order, uint32(4+body.Len()))
	buf.WriteString(formType)
	buf.Write(body.Bytes())

	return buf.Bytes()
}

// RIFF assembles a little-endian RIFF container.
func RIFF(formType string, chunks ...ChunkSpec) []byte {
	return Container(binary.LittleEndian, "RIFF", formType, chunks...)
}

// FORM assembles a big-endian EA-IFF85 FORM container.
func FORM(formType string, chunks ...ChunkSpec) []byte {
	return Container(binary.BigEndian, "FORM", formType, chunks...)
}

// GUID suffixes in Microsoft mixed-endian on-disk order. The first four
// bytes of a Wave64 GUID are the FourCC itself.
var (
	w64MasterSuffix = []byte{0x2E, 0x91, 0xCF, 0x11, 0xA5, 0xD6, 0x28, 0xDB, 0x04, 0xC1, 0x00, 0x00}
	w64ChunkSuffix  = []byte{0xF3, 0xAC, 0xD3, 0x11, 0x8C, 0xD1, 0x00, 0xC0, 0x4F, 0x8E, 0xDB, 0x8A}
)

// W64GUID returns the on-disk 16-byte GUID for a Wave64 chunk FourCC.
func W64GUID(fourcc string) []byte {
	return append([]byte(fourcc), w64ChunkSuffix...)
}

// W64 assembles a Sony Wave64 container. Chunk sizes include the 24-byte
// header and bodies are padded to 8-byte boundaries, per the format.
func W64(chunks ...ChunkSpec) []byte {
	var body bytes.Buffer
	for _, c := range chunks {
		raw := uint64(24 + len(c.Payload))
		body.Write(W64GUID(c.ID))
		_ = binary.Write(&body, binary.LittleEndian, raw)
		body.Write(c.Payload)
		if pad := (8 - raw%8) % 8; pad > 0 {
			body.Write(make([]byte, pad))
		}
	}

	var buf bytes.Buffer
	buf.WriteString("riff")
	buf.Write(w64MasterSuffix)
	_ = binary.Write(&buf, binary.LittleEndian, uint64(40+body.Len()))
	buf.WriteString("wave")
	buf.Write(w64ChunkSuffix)
	buf.Write(body.Bytes())

	return buf.Bytes()
}

// RF64 assembles an RF64 container whose data chunk uses the placeholder
// size resolved through the ds64 table.
func RF64(formType string, data []byte, chunks ...ChunkSpec) []byte {
	var body bytes.Buffer

	ds64 := make([]byte, 28)
	binary.LittleEndian.PutUint64(ds64[8:16], uint64(len(data)))
	AppendChunk(&body, binary.LittleEndian, "ds64", 28, ds64)

	AppendChunk(&body, binary.LittleEndian, "data", 0xFFFFFFFF, data)
	for _, c := range chunks {
		AppendChunk(&body, binary.LittleEndian, c.ID, uint32(len(c.Payload)), c.Payload)
	}

	riffSize := uint64(4 + body.Len())
	binary.LittleEndian.PutUint64(ds64[0:8], riffSize)
	// Rewrite the body now that the riff size is known.
	body.Reset()
	AppendChunk(&body, binary.LittleEndian, "ds64", 28, ds64)
	AppendChunk(&body, binary.LittleEndian, "data", 0xFFFFFFFF, data)
	for _, c := range chunks {
		AppendChunk(&body, binary.LittleEndian, c.ID, uint32(len(c.Payload)), c.Payload)
	}

	var buf bytes.Buffer
	buf.WriteString("RF64")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(0xFFFFFFFF))
	buf.WriteString(formType)
	buf.Write(body.Bytes())

	return buf.Bytes()
}
