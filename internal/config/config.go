// Package config loads the optional gradebook.json settings file.
//
// The file is not required: a missing file yields Default(). Present
// fields override defaults; absent fields keep them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/jpl-au/gradebook"
)

// DefaultPath is the settings file looked up in the working directory.
const DefaultPath = "gradebook.json"

// Config holds all application configuration.
type Config struct {
	// Roster file. Empty disables persistence entirely.
	File string `json:"file"`

	// Store the roster zstd-compressed.
	Compress bool `json:"compress"`

	// fsync the roster before replacing the old file.
	SyncWrites bool `json:"sync_writes"`

	// Fingerprint algorithm: xxh3, fnv1a or blake2b.
	HashAlgorithm string `json:"hash_algorithm"`

	Log LogConfig `json:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // text or json
	File   string `json:"file"`   // empty = stderr
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		File:          "grades.txt",
		HashAlgorithm: "xxh3",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads path over Default(). A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	if _, ok := algorithms[strings.ToLower(c.HashAlgorithm)]; !ok {
		errs = append(errs, fmt.Sprintf("hash_algorithm %q must be xxh3, fnv1a or blake2b", c.HashAlgorithm))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level %q must be debug, info, warn or error", c.Log.Level))
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format %q must be text or json", c.Log.Format))
	}

	if c.File != "" {
		if _, name := filepath.Split(c.File); name == "" {
			errs = append(errs, fmt.Sprintf("file %q names a directory", c.File))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

var algorithms = map[string]int{
	"xxh3":    gradebook.AlgXXHash3,
	"fnv1a":   gradebook.AlgFNV1a,
	"blake2b": gradebook.AlgBlake2b,
}

// Persistence reports whether a roster file is configured.
func (c *Config) Persistence() bool {
	return c.File != ""
}

// Store converts the settings into a gradebook.Config along with the
// directory and file name to open.
func (c *Config) Store() (dir, name string, sc gradebook.Config) {
	dir, name = filepath.Split(c.File)
	if dir == "" {
		dir = "."
	}
	return dir, name, gradebook.Config{
		SyncWrites: c.SyncWrites,
		Compress:   c.Compress,
	}
}

// Algorithm returns the gradebook hash constant for HashAlgorithm.
func (c *Config) Algorithm() int {
	return algorithms[strings.ToLower(c.HashAlgorithm)]
}
