// SPDX-License-Identifier: EPL-2.0

package render

import "errors"

var (
	ErrInvalidSize = errors.New("invalid image size")
	ErrInvalidZoom = errors.New("zoom must be positive")
)
