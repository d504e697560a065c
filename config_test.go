// Configuration defaults.
//
// Zero values in Config are replaced by defaults so that Config{} is a
// usable configuration. Explicit values must survive untouched.
package gradebook

import "testing"

func TestConfigDefaults(t *testing.T) {
	c := Config{}.defaults()

	if c.ReadBuffer != 64*1024 {
		t.Errorf("ReadBuffer = %d, want %d", c.ReadBuffer, 64*1024)
	}
	if c.MaxLineSize != 1024*1024 {
		t.Errorf("MaxLineSize = %d, want %d", c.MaxLineSize, 1024*1024)
	}
	if c.SyncWrites || c.Compress {
		t.Error("SyncWrites/Compress should default to false")
	}
}

func TestConfigOverrides(t *testing.T) {
	in := Config{ReadBuffer: 10, MaxLineSize: 20, SyncWrites: true, Compress: true}
	if got := in.defaults(); got != in {
		t.Errorf("defaults() = %+v, want %+v", got, in)
	}
}

// TestOpenZstdSuffix verifies a .zst name turns compression on even when
// the config leaves it off.
func TestOpenZstdSuffix(t *testing.T) {
	s, _ := openTestStore(t, "grades.zst", Config{})
	if !s.config.Compress {
		t.Error("Compress not enabled for .zst file")
	}

	s, _ = openTestStore(t, "grades.txt", Config{})
	if s.config.Compress {
		t.Error("Compress enabled for plain file")
	}
}
