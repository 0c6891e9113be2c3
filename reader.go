package wavemeta

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

var (
	// CIDList is the chunk ID for a LIST chunk.
	CIDList = [4]byte{'L', 'I', 'S', 'T'}
	// CIDCue is the chunk ID for the cue chunk.
	CIDCue = [4]byte{'c', 'u', 'e', 0x20}
	// CIDBext is the chunk ID for the broadcast extension chunk.
	CIDBext = [4]byte{'b', 'e', 'x', 't'}
	// CIDIXML is the chunk ID for the iXML production metadata chunk.
	CIDIXML = [4]byte{'i', 'X', 'M', 'L'}
	// CIDInfo is the LIST sub-type tag for INFO metadata.
	CIDInfo = [4]byte{'I', 'N', 'F', 'O'}
	// CIDAdtl is the LIST sub-type tag for an associated data list.
	CIDAdtl = [4]byte{'a', 'd', 't', 'l'}
	// CIDLabl is the adtl sub-chunk ID carrying a cue point label.
	CIDLabl = [4]byte{'l', 'a', 'b', 'l'}
)

// ReadChunks validates the RIFF/WAVE container header and returns the
// file's top-level chunks in order. A truncated trailing chunk ends the
// walk without error: its payload holds whatever bytes were present and
// its Size keeps the declared value. The pad byte after an odd-sized
// payload is consumed and not part of any payload.
func ReadChunks(r io.Reader) ([]Chunk, error) {
	parser := riff.New(r)

	id, size, err := parser.IDnSize()
	if err != nil {
		return nil, fmt.Errorf("failed to read the container header: %w", ErrNotWave)
	}

	parser.ID = id
	if parser.ID != riff.RiffID {
		return nil, fmt.Errorf("%s - %w", parser.ID, ErrNotWave)
	}

	parser.Size = size

	err = binary.Read(r, binary.BigEndian, &parser.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to read the container format: %w", ErrNotWave)
	}

	if parser.Format != riff.WavFormatID {
		return nil, fmt.Errorf("%s - %w", parser.Format, ErrNotWave)
	}

	var chunks []Chunk

	for {
		id, size, err := parser.IDnSize()
		if err != nil {
			break
		}

		data := make([]byte, size)

		n, err := io.ReadFull(r, data)
		chunks = append(chunks, Chunk{ID: id, Size: size, Data: data[:n]})

		if err != nil {
			break
		}

		if size%2 == 1 {
			if _, err := io.CopyN(io.Discard, r, 1); err != nil {
				break
			}
		}
	}

	return chunks, nil
}
