// SPDX-License-Identifier: EPL-2.0

// Package info decodes LIST chunks carrying the INFO metadata list.
//
// An INFO list is a flat sequence of small text sub-chunks: IART (artist),
// INAM (title), ICRD (creation date), ISFT (software) and similar tags.
// Values are NUL-padded Latin-1 strings.
//
// The decoder expects the full LIST payload, including the leading
// "INFO" list type, which is what a container.Scanner materializes for a
// LIST chunk:
//
//	reg.Register("LIST", info.Decoder{})
//
// Decoding yields an info.Tags map of FourCC to text value. LIST payloads
// with a different list type (e.g. "adtl") return ErrNotInfoList so a
// dispatcher records them as an unhandled payload rather than bad data.
package info
