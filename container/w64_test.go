package container

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/ik5/raff/internal/ifftest"
)

func TestScanner_W64(t *testing.T) {
	t.Parallel()

	fmtPayload := make([]byte, 16)
	dataPayload := bytes.Repeat([]byte{0xCD}, 21) // not 8-aligned, forces padding

	data := ifftest.W64(
		ifftest.ChunkSpec{ID: "fmt ", Payload: fmtPayload},
		ifftest.ChunkSpec{ID: "data", Payload: dataPayload},
	)

	src := FromBytes(data)
	s, err := NewScanner(src, Config{Payload: true})
	if err != nil {
		t.Fatalf("NewScanner() error = %v", err)
	}

	master := s.Master()
	if master.Identifier != "RIFF" || master.Type != "WAVE" {
		t.Errorf("Master() = %+v, want RIFF/WAVE", master)
	}
	if master.Size != uint64(len(data)) {
		t.Errorf("Master().Size = %d, want full file size %d", master.Size, len(data))
	}
	if master.GUID == "" {
		t.Error("Master().GUID empty for a Wave64 container")
	}

	chunks, err := s.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}

	// Sizes are normalized to payload lengths, excluding the 24-byte
	// header the on-disk field includes.
	if chunks[0].Identifier != "fmt " || chunks[0].Size != uint64(len(fmtPayload)) {
		t.Errorf("chunk[0] = {%q, %d}, want {\"fmt \", %d}",
			chunks[0].Identifier, chunks[0].Size, len(fmtPayload))
	}
	if chunks[1].Identifier != "data" || chunks[1].Size != uint64(len(dataPayload)) {
		t.Errorf("chunk[1] = {%q, %d}, want {\"data\", %d}",
			chunks[1].Identifier, chunks[1].Size, len(dataPayload))
	}
	if !bytes.Equal(chunks[1].Payload, dataPayload) {
		t.Error("data payload not materialized correctly")
	}
	if chunks[0].GUID == "" || chunks[1].GUID == "" {
		t.Error("chunk GUIDs not reported for a Wave64 container")
	}

	// First chunk payload starts right after the 40-byte master header
	// and its own 24-byte header.
	if chunks[0].Offset != 64 {
		t.Errorf("chunk[0].Offset = %d, want 64", chunks[0].Offset)
	}
}

func TestScanner_W64_UnknownPrintableGUID(t *testing.T) {
	t.Parallel()

	// A GUID outside the known table still names its chunk through the
	// FourCC embedded in its leading bytes.
	data := ifftest.W64(ifftest.ChunkSpec{ID: "levl", Payload: make([]byte, 8)},
		ifftest.ChunkSpec{ID: "xtra", Payload: []byte("payload!")})

	s, err := NewScanner(FromBytes(data), Config{Payload: true})
	if err != nil {
		t.Fatalf("NewScanner() error = %v", err)
	}

	chunks, err := s.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if chunks[1].Identifier != "xtra" || chunks[1].Skipped {
		t.Errorf("chunk[1] = {%q, skipped=%v}, want named xtra and not skipped",
			chunks[1].Identifier, chunks[1].Skipped)
	}
	if string(chunks[1].Payload) != "payload!" {
		t.Errorf("chunk[1].Payload = %q, want \"payload!\"", chunks[1].Payload)
	}
}

func TestScanner_W64_NamelessGUIDSkipped(t *testing.T) {
	t.Parallel()

	var body bytes.Buffer
	// GUID whose leading bytes are not printable ASCII.
	body.Write([]byte{0x01, 0x02, 0x03, 0x04})
	body.Write(ifftest.W64GUID("")[0:12])
	_ = binary.Write(&body, binary.LittleEndian, uint64(24+8))
	body.Write(make([]byte, 8))

	full := ifftest.W64()
	full = append(full, body.Bytes()...)
	// Patch the master size to cover the appended chunk.
	binary.LittleEndian.PutUint64(full[16:24], uint64(len(full)))

	s, err := NewScanner(FromBytes(full), Config{Payload: true})
	if err != nil {
		t.Fatalf("NewScanner() error = %v", err)
	}

	chunks, err := s.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
	if !chunks[0].Skipped || chunks[0].Payload != nil {
		t.Errorf("nameless chunk = %+v, want skipped without payload", chunks[0])
	}
	if chunks[0].Identifier != "custom0" {
		t.Errorf("nameless chunk identifier = %q, want custom0", chunks[0].Identifier)
	}
}

func TestScanner_W64_ChunkSizeSmallerThanHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	buf.Write(ifftest.W64())
	buf.Write(ifftest.W64GUID("data"))
	_ = binary.Write(&buf, binary.LittleEndian, uint64(8)) // below the 24-byte header

	full := buf.Bytes()
	binary.LittleEndian.PutUint64(full[16:24], uint64(len(full)))

	s, err := NewScanner(FromBytes(full), Config{})
	if err != nil {
		t.Fatalf("NewScanner() error = %v", err)
	}

	_, err = s.Next()
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("Next() error = %v, want ErrTruncated", err)
	}
}
