// SPDX-License-Identifier: EPL-2.0

package samplebuf

import "sync/atomic"

// Shared is a reference-counted handle to a Buffer. Every holder calls
// Retain when it starts referencing the buffer and Release when done; the
// buffer is dropped, and OnFree runs, when the last reference goes away.
type Shared struct {
	buf    atomic.Pointer[Buffer]
	refs   atomic.Int64
	onFree func()
}

// NewShared returns a handle holding one reference. onFree may be nil.
func NewShared(buf *Buffer, onFree func()) *Shared {
	s := &Shared{onFree: onFree}
	s.buf.Store(buf)
	s.refs.Store(1)

	return s
}

// Retain adds a reference and returns s for chaining.
func (s *Shared) Retain() *Shared {
	if s.refs.Add(1) <= 1 {
		panic(ErrReleased)
	}
	return s
}

// Release drops a reference and reports whether it was the last one.
func (s *Shared) Release() bool {
	n := s.refs.Add(-1)
	if n < 0 {
		panic(ErrReleased)
	}
	if n > 0 {
		return false
	}

	s.buf.Store(nil)
	if s.onFree != nil {
		s.onFree()
	}

	return true
}

// Refs returns the current reference count.
func (s *Shared) Refs() int64 {
	return s.refs.Load()
}

// Buffer returns the shared buffer, or nil after the last Release.
func (s *Shared) Buffer() *Buffer {
	return s.buf.Load()
}
