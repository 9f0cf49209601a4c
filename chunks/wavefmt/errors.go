// SPDX-License-Identifier: EPL-2.0

package wavefmt

import "errors"

var (
	ErrShortChunk = errors.New("fmt chunk shorter than 16 bytes")
	ErrBadFormat  = errors.New("fmt chunk declares zero channels or sample rate")
)
