// SPDX-License-Identifier: EPL-2.0

package utils

// ValidFourCC reports whether id is a well-formed chunk identifier:
// exactly four printable ASCII bytes.
func ValidFourCC(id string) bool {
	if len(id) != 4 {
		return false
	}

	for i := 0; i < 4; i++ {
		if id[i] < 0x20 || id[i] > 0x7E {
			return false
		}
	}

	return true
}

// Pad returns the number of padding bytes needed to bring size up to the
// next multiple of align.
func Pad(size, align uint64) uint64 {
	return (align - size%align) % align
}
