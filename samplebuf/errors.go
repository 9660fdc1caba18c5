// SPDX-License-Identifier: EPL-2.0

package samplebuf

import "errors"

var (
	ErrInvalidSampleRate     = errors.New("sample rate must be positive")
	ErrChannelLengthMismatch = errors.New("channels have different lengths")
	ErrRangeOutOfBounds      = errors.New("frame range out of bounds")
	ErrNothingToJoin         = errors.New("no buffers to join")
	ErrFormatMismatch        = errors.New("buffers differ in sample rate or channel count")
	ErrReleased              = errors.New("sample buffer already released")
)
