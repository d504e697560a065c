// Roster fingerprints.
//
// A fingerprint is a 16 hex character hash of the roster's text encoding.
// Two rosters that would save to the same bytes share a fingerprint, which
// lets a caller tell whether anything changed since the last load or save.
package gradebook

import (
	"bytes"
	"fmt"
	"hash/fnv"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// hash generates a 16 hex character ID from data using the specified
// algorithm. Unknown algorithms return "".
func hash(data []byte, alg int) string {
	switch alg {
	case AlgXXHash3:
		return fmt.Sprintf("%016x", xxh3.Hash(data))
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write(data)
		return fmt.Sprintf("%016x", h.Sum64())
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write(data)
		return fmt.Sprintf("%016x", h.Sum(nil))
	default:
		return ""
	}
}

// Fingerprint hashes the roster's text encoding. alg is one of the Alg
// constants; 0 selects xxHash3.
func (r *Roster) Fingerprint(alg int) string {
	if alg == 0 {
		alg = AlgXXHash3
	}
	var buf bytes.Buffer
	Encode(&buf, r) // bytes.Buffer writes never fail
	return hash(buf.Bytes(), alg)
}
