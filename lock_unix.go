//go:build unix

package gradebook

import (
	"golang.org/x/sys/unix"
)

func (l *fileLock) lock(mode LockMode) error {
	op := unix.LOCK_SH
	if mode == LockExclusive {
		op = unix.LOCK_EX
	}
	for {
		// Blocking flock; retry if a signal interrupts the wait.
		err := unix.Flock(int(l.f.Fd()), op)
		if err != unix.EINTR {
			return err
		}
	}
}

func (l *fileLock) unlock() error {
	return unix.Flock(int(l.f.Fd()), unix.LOCK_UN)
}
