// SPDX-License-Identifier: EPL-2.0

// Package wavefmt decodes the "fmt " chunk of WAVE-family containers.
//
// The "fmt " chunk describes how the samples in the data chunk are laid
// out: codec tag, channel count, sample rate, byte rate, block alignment
// and bit depth. The decoder understands the 16-byte PCM layout and the
// extended layouts (WAVEFORMATEX, WAVEFORMATEXTENSIBLE) that prepend it.
//
// # Decoding
//
// Register the decoder with a container.Registry:
//
//	reg := container.NewRegistry()
//	reg.Register("fmt ", wavefmt.Decoder{})
//
// or decode a payload directly:
//
//	value, err := wavefmt.Decoder{}.DecodeChunk(chunk.Payload)
//	format := value.(*wavefmt.Format)
//
// # Output
//
// The decoded Format exposes the raw header fields plus a PCM view as
// *audio.Format from github.com/go-audio/audio, which slots into the
// go-audio ecosystem directly.
package wavefmt
