// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown audio format")
	ErrNoChannels    = errors.New("source reports no channels")
)
