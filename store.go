// Persistence of a Roster to a flat text file.
//
// Store is the seam between the roster and wherever it is kept; a caller
// that needs no persistence simply has no Store. FileStore keeps the text
// encoding in a single file inside a directory opened with os.Root, so the
// name cannot escape that directory.
//
// Save never rewrites the target in place. It writes the full encoding to
// "<name>.tmp", optionally syncs it, and renames it over the target. If the
// process dies mid-write the original is intact and the orphaned .tmp is
// removed on the next Open.
package gradebook

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Store loads and saves a whole roster.
type Store interface {
	Load() (*Roster, error)
	Save(r *Roster) error
}

// FileStore is a Store backed by one text file.
type FileStore struct {
	root   *os.Root  // Sandboxed filesystem access
	name   string    // Roster filename
	lock   *fileLock // Advisory lock on the sidecar file
	config Config
}

var _ Store = (*FileStore)(nil)

// Open prepares a FileStore for dir/name. The roster file itself need not
// exist. Names ending in ".zst" are stored compressed regardless of
// config.Compress.
func Open(dir, name string, config Config) (*FileStore, error) {
	config = config.defaults()
	if strings.HasSuffix(name, ".zst") {
		config.Compress = true
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	lf, err := root.OpenFile(name+".lock", os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		root.Close()
		return nil, fmt.Errorf("open: lock file: %w", err)
	}

	s := &FileStore{
		root:   root,
		name:   name,
		lock:   &fileLock{f: lf},
		config: config,
	}

	// Leftover from a save that never reached the rename.
	if _, err := root.Stat(name + ".tmp"); err == nil {
		if err := s.lock.Lock(LockExclusive); err == nil {
			root.Remove(name + ".tmp")
			s.lock.Unlock()
		}
	}

	return s, nil
}

// Name returns the roster filename within the store directory.
func (s *FileStore) Name() string {
	return s.name
}

// Load reads the roster. A missing file yields an empty roster.
func (s *FileStore) Load() (*Roster, error) {
	if err := s.lock.Lock(LockShared); err != nil {
		return nil, fmt.Errorf("load: lock: %w", err)
	}
	defer s.lock.Unlock()

	data, err := s.root.ReadFile(s.name)
	if errors.Is(err, fs.ErrNotExist) {
		return &Roster{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	if compressed(data) {
		if data, err = decompress(data); err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
	}

	r, err := Decode(bytes.NewReader(data), s.config)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return r, nil
}

// Save replaces the file with the full encoding of r.
func (s *FileStore) Save(r *Roster) error {
	var buf bytes.Buffer
	if err := Encode(&buf, r); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	data := buf.Bytes()
	if s.config.Compress {
		data = compress(data)
	}

	if err := s.lock.Lock(LockExclusive); err != nil {
		return fmt.Errorf("save: lock: %w", err)
	}
	defer s.lock.Unlock()

	tmp := s.name + ".tmp"
	if err := s.write(tmp, data); err != nil {
		s.root.Remove(tmp)
		return fmt.Errorf("save: %w", err)
	}
	if err := s.root.Rename(tmp, s.name); err != nil {
		s.root.Remove(tmp)
		return fmt.Errorf("save: rename: %w", err)
	}
	return nil
}

// write creates name and fills it with data.
func (s *FileStore) write(name string, data []byte) error {
	f, err := s.root.Create(name)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if s.config.SyncWrites {
		if err := f.Sync(); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

// Close releases the lock file and the directory handle.
func (s *FileStore) Close() error {
	var errs []error
	if err := s.lock.release(); err != nil {
		errs = append(errs, err)
	}
	if err := s.root.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
