//go:build windows

package gradebook

import (
	"golang.org/x/sys/windows"
)

// lockRange covers the whole file: offset 0, length 2^64-1.
const lockRange = ^uint32(0)

func (l *fileLock) lock(mode LockMode) error {
	var flags uint32
	if mode == LockExclusive {
		flags |= windows.LOCKFILE_EXCLUSIVE_LOCK
	}
	ol := new(windows.Overlapped)
	return windows.LockFileEx(windows.Handle(l.f.Fd()), flags, 0, lockRange, lockRange, ol)
}

func (l *fileLock) unlock() error {
	ol := new(windows.Overlapped)
	return windows.UnlockFileEx(windows.Handle(l.f.Fd()), 0, lockRange, lockRange, ol)
}
