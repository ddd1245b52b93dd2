//go:build !windows

package secure

import (
	"golang.org/x/sys/unix"
)

// mlock attempts to lock the memory region containing data so it cannot be
// swapped to disk. Returns true if successful.
func mlock(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return unix.Mlock(data) == nil
}

// munlock unlocks a previously locked memory region.
func munlock(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Munlock(data)
}

// dropPrivileges sets the effective UID to the real UID, mirroring the
// original ssss.c main()'s seteuid(getuid()) call: if the binary is
// installed setuid for mlock purposes, this relinquishes the elevated
// privilege as soon as it is no longer needed.
func dropPrivileges() error {
	return unix.Seteuid(unix.Getuid())
}
