package wavemeta

// Chunk is one top-level chunk as it appears in a RIFF/WAVE file.
type Chunk struct {
	ID [4]byte
	// Size is the declared chunk size. Data may be shorter when the
	// stream ended before the full payload.
	Size uint32
	Data []byte
}

// IDString returns the chunk identifier as text.
func (c Chunk) IDString() string {
	return string(c.ID[:])
}

// UnknownChunk preserves a chunk this package does not interpret, verbatim,
// for round-trip and debugging purposes.
type UnknownChunk struct {
	ID   [4]byte
	Size uint32
	Data []byte
}

// IDString returns the chunk identifier as text.
func (c UnknownChunk) IDString() string {
	return string(c.ID[:])
}

func (c UnknownChunk) Clone() UnknownChunk {
	out := c
	out.Data = append([]byte(nil), c.Data...)

	return out
}

func cloneUnknownChunks(chunks []UnknownChunk) []UnknownChunk {
	if len(chunks) == 0 {
		return nil
	}

	out := make([]UnknownChunk, len(chunks))
	for i := range chunks {
		out[i] = chunks[i].Clone()
	}

	return out
}
