// SPDX-License-Identifier: EPL-2.0

// Package container implements low-level chunk discovery for IFF-family
// binary containers.
//
// This package contains the core building blocks:
//   - ByteSource for uniform read access over files, streams and buffers
//   - Scanner for single-pass chunk traversal
//   - Registry and Dispatcher for per-identifier payload decoding
//
// # Supported Variants
//
// The scanner recognizes the following master signatures:
//   - "FORM", "RIFX", "FIRR" - big-endian IFF/RIFX containers
//   - "RIFF" - little-endian RIFF containers
//   - "RF64", "BW64" - RIFF with 64-bit sizes in a ds64 chunk
//   - "riff" GUID - Sony Wave64 with GUID tags and 64-bit sizes
//
// # Scanning
//
// A scan is a pull-based sequence: each call to Next reads one chunk
// header and advances the cursor.
//
//	src, err := container.Open("audio.wav")
//	if err != nil {
//	    // Handle error
//	}
//	defer src.Close()
//
//	scanner, err := container.NewScanner(src, container.Config{Payload: true})
//	if err != nil {
//	    // ErrUnknownMaster: not an IFF-family file
//	}
//
//	for {
//	    chunk, err := scanner.Next()
//	    if err == io.EOF {
//	        break // clean end of container
//	    }
//	    if err != nil {
//	        // ErrTruncated: malformed container
//	    }
//	    fmt.Println(chunk.Identifier, chunk.Size, chunk.Offset)
//	}
//
// The sequence is not restartable. A second traversal needs a fresh
// ByteSource and a fresh Scanner.
//
// # Ignore Sets
//
// Identifiers listed in Config.Ignore are skipped without reading their
// payloads, using a seek on seekable sources. This is the one performance
// optimization in the package: a multi-gigabyte "data" chunk costs a
// single seek. Skipped chunks are still yielded, with Skipped set, so
// their identifier, size and offset stay visible.
//
// # Payload Decoding
//
// A Dispatcher pairs a Scanner with a Registry of per-identifier
// decoders:
//
//	reg := container.NewRegistry()
//	reg.Register("fmt ", wavefmt.Decoder{})
//
//	dispatcher := container.NewDispatcher(scanner, reg)
//	chunk, err := dispatcher.Next()
//	// chunk.Value holds the decoded form, or chunk.DecodeErr the failure
//
// Decode failures are per-chunk and never abort the scan.
//
// # Error Handling
//
// The package defines the error taxonomy of a scan:
//   - ErrUnknownMaster: the source is not an IFF-family container
//   - ErrTruncated: the data ran out mid-header or mid-payload
//   - io.EOF from Next: clean end of the container (not an error)
//
// The package never logs; presentation belongs to the caller.
package container
