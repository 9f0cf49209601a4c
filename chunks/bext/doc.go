// SPDX-License-Identifier: EPL-2.0

// Package bext decodes the Broadcast Wave Format extension chunk.
//
// The "bext" chunk (EBU Tech 3285) carries production metadata in a fixed
// binary layout: description, originator, origination date and time, a
// 64-bit sample-accurate time reference, a version number, a SMPTE UMID
// and the loudness values added in version 2. Anything after the fixed
// part is free-text coding history.
//
// Register the decoder with a container.Registry:
//
//	reg.Register("bext", bext.Decoder{})
//
// Decoding yields a *bext.Metadata.
package bext
