// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis. Samples are already float32, so the
// source hands the caller's buffer straight to the decoder, trimmed to
// whole frames.
package vorbis
