// SPDX-License-Identifier: EPL-2.0

package raff_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/raff"
	"github.com/ik5/raff/chunks/wavefmt"
	"github.com/ik5/raff/container"
	"github.com/ik5/raff/internal/ifftest"
)

// writeWAV produces a real RIFF/WAVE file through the go-audio encoder.
func writeWAV(t *testing.T, dir, name string, sampleRate, channels int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, 256*channels),
		SourceBitDepth: 16,
	}
	for i := range buf.Data {
		buf.Data[i] = (i % 200) - 100
	}

	if err := enc.Write(buf); err != nil {
		t.Fatalf("wav encode: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("wav close: %v", err)
	}

	return path
}

// writeAIFF produces a real big-endian FORM/AIFF file.
func writeAIFF(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	enc := aiff.NewEncoder(f, 22050, 16, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: 22050},
		Data:           make([]int, 128),
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		t.Fatalf("aiff encode: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("aiff close: %v", err)
	}

	return path
}

func chunkIDs(chunks []*container.Chunk) []string {
	ids := make([]string, 0, len(chunks))
	for _, c := range chunks {
		ids = append(ids, c.Identifier)
	}
	return ids
}

func TestScanFile_EncodedWAV(t *testing.T) {
	t.Parallel()

	path := writeWAV(t, t.TempDir(), "tone.wav", 44100, 2)

	master, chunks, err := raff.ScanFile(path, container.Config{})
	if err != nil {
		t.Fatalf("ScanFile() error = %v", err)
	}

	if master.Identifier != "RIFF" || master.Type != "WAVE" {
		t.Errorf("master = %+v, want RIFF/WAVE", master)
	}

	seen := map[string]bool{}
	var last int64 = -1
	for _, c := range chunks {
		seen[c.Identifier] = true
		if c.Offset <= last {
			t.Errorf("chunk %q offset %d not increasing", c.Identifier, c.Offset)
		}
		last = c.Offset
	}
	if !seen["fmt "] || !seen["data"] {
		t.Errorf("chunks %v missing fmt /data", chunkIDs(chunks))
	}
}

func TestDispatcher_DecodesEncodedWAVFormat(t *testing.T) {
	t.Parallel()

	path := writeWAV(t, t.TempDir(), "tone.wav", 8000, 1)

	src, err := container.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	scanner, err := container.NewScanner(src, container.Config{
		Payload: true,
		Ignore:  []string{"data"},
	})
	if err != nil {
		t.Fatalf("NewScanner() error = %v", err)
	}

	chunks, err := container.NewDispatcher(scanner, raff.DefaultRegistry()).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	var format *wavefmt.Format
	for _, c := range chunks {
		if c.Identifier == "fmt " {
			f, ok := c.Value.(*wavefmt.Format)
			if !ok {
				t.Fatalf("fmt chunk Value = %T (%v), want *wavefmt.Format", c.Value, c.DecodeErr)
			}
			format = f
		}
	}

	if format == nil {
		t.Fatal("no decoded fmt chunk in scan")
	}
	if format.SampleRate != 8000 || format.NumChannels != 1 || format.BitDepth != 16 {
		t.Errorf("decoded format %+v, want mono 8000/16", format)
	}
	if format.Codec() != wavefmt.FormatPCM {
		t.Errorf("Codec() = %#x, want PCM", format.Codec())
	}
}

func TestScanFile_EncodedAIFF(t *testing.T) {
	t.Parallel()

	path := writeAIFF(t, t.TempDir(), "tone.aif")

	master, chunks, err := raff.ScanFile(path, container.Config{})
	if err != nil {
		t.Fatalf("ScanFile() error = %v", err)
	}

	if master.Identifier != "FORM" || master.Type != "AIFF" {
		t.Errorf("master = %+v, want FORM/AIFF", master)
	}

	seen := map[string]bool{}
	for _, c := range chunks {
		seen[c.Identifier] = true
	}
	if !seen["COMM"] || !seen["SSND"] {
		t.Errorf("chunks %v missing COMM/SSND", chunkIDs(chunks))
	}
}

func TestScanFile_Missing(t *testing.T) {
	t.Parallel()

	if _, _, err := raff.ScanFile(filepath.Join(t.TempDir(), "nope.wav"), container.Config{}); err == nil {
		t.Error("ScanFile() on a missing file succeeded")
	}
}

func TestScanReader_MatchesScanBytes(t *testing.T) {
	t.Parallel()

	data := ifftest.RIFF("WAVE",
		ifftest.ChunkSpec{ID: "fmt ", Payload: make([]byte, 16)},
		ifftest.ChunkSpec{ID: "data", Payload: make([]byte, 33)},
	)

	_, fromBytes, err := raff.ScanBytes(data, container.Config{})
	if err != nil {
		t.Fatalf("ScanBytes() error = %v", err)
	}

	_, fromReader, err := raff.ScanReader(bytes.NewReader(data), container.Config{})
	if err != nil {
		t.Fatalf("ScanReader() error = %v", err)
	}

	if len(fromBytes) != len(fromReader) {
		t.Fatalf("chunk counts differ: %d vs %d", len(fromBytes), len(fromReader))
	}
	for i := range fromBytes {
		b, r := fromBytes[i], fromReader[i]
		if b.Identifier != r.Identifier || b.Size != r.Size || b.Offset != r.Offset {
			t.Errorf("chunk[%d] differs across sources: %+v vs %+v", i, b, r)
		}
	}
}

func TestScanReader_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, _, err := raff.ScanReader(bytes.NewReader([]byte("ID3\x04junkjunk")), container.Config{})
	if !errors.Is(err, container.ErrUnknownMaster) {
		t.Errorf("ScanReader() error = %v, want ErrUnknownMaster", err)
	}
}

func TestScanReader_Stdin_Like(t *testing.T) {
	t.Parallel()

	// A pipe-like source: no seeking, unknown length.
	data := ifftest.RIFF("WAVE", ifftest.ChunkSpec{ID: "data", Payload: make([]byte, 512)})
	pr, pw := io.Pipe()

	go func() {
		_, _ = pw.Write(data)
		_ = pw.Close()
	}()

	master, chunks, err := raff.ScanReader(pr, container.Config{Ignore: []string{"data"}})
	if err != nil {
		t.Fatalf("ScanReader() error = %v", err)
	}
	if master.Identifier != "RIFF" {
		t.Errorf("master = %+v, want RIFF", master)
	}
	if len(chunks) != 1 || !chunks[0].Skipped {
		t.Fatalf("chunks = %+v, want single skipped data chunk", chunks)
	}
}
