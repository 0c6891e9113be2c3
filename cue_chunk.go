package wavemeta

import (
	"encoding/binary"
	"fmt"
)

const cuePointSize = 24

// CuePoint is one marker record from a cue chunk.
type CuePoint struct {
	ID           uint32
	Position     uint32
	DataChunkID  uint32
	ChunkStart   uint32
	BlockStart   uint32
	SampleOffset uint32
}

// ValidCuePoint is a cue point with a meaningful sample offset, augmented
// with its position in seconds.
type ValidCuePoint struct {
	ID           uint32
	SampleOffset uint32
	Time         float64
}

// DecodeCueChunk decodes a cue chunk payload into marker records. The
// decode never fails: a payload too short for its declared record count
// yields as many complete records as fit plus a diagnostic describing the
// mismatch.
func DecodeCueChunk(data []byte) ([]CuePoint, []Diagnostic) {
	const chunkName = "cue "

	if len(data) < 4 {
		return nil, []Diagnostic{{
			Chunk:   chunkName,
			Message: fmt.Sprintf("chunk too short for a cue point count: %d bytes", len(data)),
		}}
	}

	count := binary.LittleEndian.Uint32(data[0:4])

	var diags []Diagnostic

	avail := (len(data) - 4) / cuePointSize
	n := int(count)
	if n > avail {
		diags = append(diags, Diagnostic{
			Chunk: chunkName,
			Message: fmt.Sprintf("chunk declares %d cue points but holds bytes for %d: got %d bytes, expected %d",
				count, avail, len(data), 4+int64(count)*cuePointSize),
		})
		n = avail
	}

	points := make([]CuePoint, 0, n)
	offset := 4

	for i := 0; i < n; i++ {
		points = append(points, CuePoint{
			ID:           binary.LittleEndian.Uint32(data[offset : offset+4]),
			Position:     binary.LittleEndian.Uint32(data[offset+4 : offset+8]),
			DataChunkID:  binary.LittleEndian.Uint32(data[offset+8 : offset+12]),
			ChunkStart:   binary.LittleEndian.Uint32(data[offset+12 : offset+16]),
			BlockStart:   binary.LittleEndian.Uint32(data[offset+16 : offset+20]),
			SampleOffset: binary.LittleEndian.Uint32(data[offset+20 : offset+24]),
		})
		offset += cuePointSize
	}

	return points, diags
}

// ValidCuePoints filters out cue points whose sample offset is zero and
// derives each remaining point's time as SampleOffset / sampleRate seconds.
// A zero sample rate leaves the times at zero.
func ValidCuePoints(points []CuePoint, sampleRate uint32) []ValidCuePoint {
	out := make([]ValidCuePoint, 0, len(points))

	for _, p := range points {
		if p.SampleOffset == 0 {
			continue
		}

		vp := ValidCuePoint{ID: p.ID, SampleOffset: p.SampleOffset}
		if sampleRate > 0 {
			vp.Time = float64(p.SampleOffset) / float64(sampleRate)
		}

		out = append(out, vp)
	}

	return out
}
