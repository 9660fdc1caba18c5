// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var ErrInvalidCutoffs = errors.New("invalid detail level cutoffs")
