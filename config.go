// Store configuration.
package gradebook

// Hash algorithm constants for Fingerprint. Zero selects AlgXXHash3.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
)

// Config holds persistence options. Zero fields take defaults.
type Config struct {
	ReadBuffer  int  // Initial line buffer for loading (default 64KB)
	MaxLineSize int  // Longest accepted line (default 1MB)
	SyncWrites  bool // Call fsync before the rename on Save
	Compress    bool // Store the text zstd-compressed
}

// defaults fills unset fields.
func (c Config) defaults() Config {
	if c.ReadBuffer == 0 {
		c.ReadBuffer = 64 * 1024
	}
	if c.MaxLineSize == 0 {
		c.MaxLineSize = 1024 * 1024
	}
	return c
}
