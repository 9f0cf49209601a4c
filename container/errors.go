// SPDX-License-Identifier: EPL-2.0

package container

import "errors"

var (
	// ErrUnknownMaster is returned when the leading bytes of a source match
	// no known master chunk signature (FORM, RIFF, RIFX, FIRR, RF64, BW64,
	// or the Wave64 riff GUID).
	ErrUnknownMaster = errors.New("unknown master chunk identifier")

	// ErrTruncated is returned when fewer bytes are available than a chunk
	// header or a declared payload requires, at a position that is not a
	// valid clean end of the container.
	ErrTruncated = errors.New("truncated container")

	// ErrExpectedDS64 is returned when an RF64/BW64 master declares the
	// placeholder size but is not immediately followed by a ds64 chunk.
	ErrExpectedDS64 = errors.New("expected ds64 chunk after RF64 master")
)
