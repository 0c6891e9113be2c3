package wavemeta

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/go-audio/riff"
)

// BuildInfoChunk encodes the metadata mapping as a complete LIST/INFO
// chunk, 8-byte chunk header included. Sub-chunks follow the mapping's
// insertion order; an odd-length value gets one zero pad byte and the pad
// counts toward the sub-chunk's declared size. Keys must be exactly 4
// printable ASCII characters or the build fails with ErrInfoKey.
func BuildInfoChunk(meta *InfoMetadata) ([]byte, error) {
	body := bytes.NewBuffer(nil)
	body.Write(CIDInfo[:])

	for _, key := range meta.Keys() {
		if err := validateInfoKey(key); err != nil {
			return nil, err
		}

		value, _ := meta.Get(key)

		padded := []byte(value)
		if len(padded)%2 == 1 {
			padded = append(padded, 0x00)
		}

		body.WriteString(key)
		binary.Write(body, binary.LittleEndian, uint32(len(padded)))
		body.Write(padded)
	}

	chunk := bytes.NewBuffer(make([]byte, 0, 8+body.Len()))
	chunk.Write(CIDList[:])
	binary.Write(chunk, binary.LittleEndian, uint32(body.Len()))
	chunk.Write(body.Bytes())

	return chunk.Bytes(), nil
}

// InjectInfoChunk appends a freshly built LIST/INFO chunk to a complete
// WAVE file image and rewrites the container's declared total size. The
// source bytes are copied, not modified. Injection is a pure append: a
// pre-existing INFO chunk is kept as-is, so a file injected twice carries
// two INFO lists.
func InjectInfoChunk(src []byte, meta *InfoMetadata) ([]byte, error) {
	if len(src) < 12 ||
		!bytes.Equal(src[0:4], riff.RiffID[:]) ||
		!bytes.Equal(src[8:12], riff.WavFormatID[:]) {
		return nil, fmt.Errorf("injection target: %w", ErrNotWave)
	}

	chunk, err := BuildInfoChunk(meta)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(src)+len(chunk))
	out = append(out, src...)
	out = append(out, chunk...)

	riffSize := binary.LittleEndian.Uint32(src[4:8])
	binary.LittleEndian.PutUint32(out[4:8], riffSize+uint32(len(chunk)))

	return out, nil
}

func validateInfoKey(key string) error {
	if len(key) != 4 {
		return fmt.Errorf("%w: %q", ErrInfoKey, key)
	}

	for i := 0; i < len(key); i++ {
		if key[i] < 0x20 || key[i] > 0x7E {
			return fmt.Errorf("%w: %q", ErrInfoKey, key)
		}
	}

	return nil
}
