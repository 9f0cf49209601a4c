// SPDX-License-Identifier: EPL-2.0

// Package raff reads IFF-family binary containers for Go applications.
//
// This package offers convenient entry points over the chunk discovery
// engine in the container subpackage. It walks RIFF, RIFX/FORM, RF64,
// BW64 and Sony Wave64 files and reports each chunk's identifier, size
// and offset, optionally with its raw payload or a decoded value.
//
// # Supported Containers
//
// The scanner recognizes the following master signatures:
//   - RIFF (little-endian, e.g. WAV, AVI, WebP)
//   - FORM, RIFX, FIRR (big-endian, e.g. AIFF, Amiga IFF)
//   - RF64, BW64 (64-bit sizes via the ds64 chunk)
//   - Sony Wave64 (GUID identifiers, 64-bit sizes)
//
// # Quick Start
//
// The simplest way to list a file's chunks:
//
//	master, chunks, err := raff.ScanFile("audio.wav", container.Config{})
//	if err != nil {
//	    // Handle error
//	}
//
//	fmt.Println(master.Identifier, master.Type)
//	for _, c := range chunks {
//	    fmt.Println(c.Identifier, c.Size, c.Offset)
//	}
//
// # Skipping Chunks
//
// Chunk bodies you do not care about are skipped without being read,
// which keeps scans of multi-gigabyte files cheap:
//
//	cfg := container.Config{Ignore: []string{"data"}}
//	master, chunks, err := raff.ScanFile("large.wav", cfg)
//
// Skipped chunks stay visible in the result with their identifier, size
// and offset; only the payload is absent.
//
// # Streaming Scans
//
// For incremental traversal, use the container package directly:
//
//	src, _ := container.Open("audio.wav")
//	defer src.Close()
//
//	scanner, _ := container.NewScanner(src, container.Config{Payload: true})
//	for {
//	    chunk, err := scanner.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    // ...
//	}
//
// # Decoding Payloads
//
// A registry of per-identifier decoders turns raw payloads into
// structured values. DefaultRegistry covers the common WAVE chunks
// ("fmt ", LIST/INFO, bext); register your own decoders for anything
// else:
//
//	reg := raff.DefaultRegistry()
//	reg.Register("FVER", container.DecoderFunc(decodeVersion))
//
//	dispatcher := container.NewDispatcher(scanner, reg)
//
// A decoder failure never aborts a scan; it is reported on the chunk it
// belongs to.
//
// # Batch Scanning
//
// ScanMany walks several files concurrently with bounded parallelism:
//
//	results, err := raff.ScanMany(ctx, container.Config{}, paths...)
//
// See the container subpackage for the scanner contract and the chunks
// subpackages for the decoder catalog.
package raff
