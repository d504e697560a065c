// Advisory locking around the roster file.
//
// Save replaces the roster file by renaming a temp file over it, so a lock
// held on the roster file itself would follow the old inode. The lock is
// taken on a sidecar "<name>.lock" file instead, which lives as long as the
// FileStore. Load takes it shared and Save takes it exclusive, so a second
// process never reads a file mid-replace.
package gradebook

import (
	"os"
	"sync"
)

// LockMode selects shared (read) or exclusive (write) locking.
type LockMode int

const (
	LockShared LockMode = iota
	LockExclusive
)

// fileLock serialises lock syscalls against release of the handle, so a
// concurrent Close cannot invalidate the fd mid-call.
type fileLock struct {
	mu sync.Mutex
	f  *os.File
}

// Lock blocks until the lock is held. A released lock is a no-op.
func (l *fileLock) Lock(mode LockMode) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return nil
	}
	return l.lock(mode)
}

// Unlock releases the lock. A released lock is a no-op.
func (l *fileLock) Unlock() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return nil
	}
	return l.unlock()
}

// release closes the sidecar handle. Later Lock and Unlock calls do
// nothing.
func (l *fileLock) release() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}
