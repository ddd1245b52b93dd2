// Package secure provides the CSPRNG source and secure-memory primitives
// that the splitting and reconstruction engines use to keep secret
// material off the swap device and to wipe it deterministically once it is
// no longer needed.
package secure

import (
	"crypto/rand"
	"io"
	"runtime"
	"sync"
)

// Reader is the cryptographically secure random source backing coefficient
// generation. It wraps crypto/rand.Reader so tests can substitute a
// deterministic source.
//
//nolint:gochecknoglobals // package-level RNG kept for testability, mirrors the teacher's entropy.go
var Reader io.Reader = rand.Reader

// RandomBytes draws n cryptographically secure random bytes. A short read
// is always an error; partial randomness is never returned.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Bytes wraps a sensitive byte slice, best-effort mlock'd, with explicit
// zeroization on Destroy and a finalizer as a last-resort backstop.
type Bytes struct {
	data   []byte
	locked bool
	mu     sync.Mutex
}

// NewBytes allocates a secure buffer of the given size and attempts to
// lock it in physical memory.
func NewBytes(size int) *Bytes {
	data := make([]byte, size)

	sb := &Bytes{data: data}
	sb.locked = mlock(data)

	runtime.SetFinalizer(sb, func(s *Bytes) {
		s.Destroy()
	})

	return sb
}

// FromSlice copies data into a new secure buffer.
func FromSlice(data []byte) *Bytes {
	sb := NewBytes(len(data))
	copy(sb.data, data)
	return sb
}

// Bytes returns the underlying slice, or nil once Destroy has run.
func (s *Bytes) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// IsLocked reports whether the buffer is currently mlock'd.
func (s *Bytes) IsLocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Destroy zeroes and unlocks the buffer. Safe to call more than once.
func (s *Bytes) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return
	}

	for i := range s.data {
		s.data[i] = 0
	}

	if s.locked {
		munlock(s.data)
		s.locked = false
	}

	s.data = nil
	runtime.SetFinalizer(s, nil)
}

// Len returns the buffer length, or 0 once destroyed.
func (s *Bytes) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return 0
	}
	return len(s.data)
}

// Lock attempts to mlock a buffer not allocated through NewBytes, such as a
// stdin line read directly into a byte slice. It returns whether the lock
// succeeded so the caller can honor require-lock semantics.
func Lock(data []byte) bool {
	return mlock(data)
}

// Unlock releases a region locked with Lock.
func Unlock(data []byte) {
	munlock(data)
}

// Wipe overwrites data with zeros in place.
func Wipe(data []byte) {
	for i := range data {
		data[i] = 0
	}
}

// DropPrivileges relinquishes any elevated effective UID, mirroring the
// original ssss.c's seteuid(getuid()) call at process start. It must be
// called once, before any secret material is read, on the unix build; it
// is a no-op on windows.
func DropPrivileges() error {
	return dropPrivileges()
}
