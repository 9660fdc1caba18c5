// SPDX-License-Identifier: EPL-2.0

package main

import "errors"

var errBadDrag = errors.New("invalid drag")
