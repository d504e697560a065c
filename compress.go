// Optional zstd compression of the stored text.
//
// The roster file is small and written whole, so compression works on the
// complete encoded buffer with EncodeAll/DecodeAll rather than streaming.
// The content inside the frame is the same line format as a plain file.
package gradebook

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Shared encoder/decoder, both safe for concurrent use. Construction is
// expensive so they are built once.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	zstdDecoder, _ = zstd.NewReader(nil)
)

// zstdMagic opens every zstd frame.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

func compress(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	return zstdEncoder.EncodeAll(data, nil)
}

func decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	out, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", ErrCorruptRecord, err)
	}
	return out, nil
}

// compressed reports whether data starts with a zstd frame.
func compressed(data []byte) bool {
	return bytes.HasPrefix(data, zstdMagic)
}
