package wavemeta

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// testChunk is a decoded view of one RIFF chunk, used by tests to verify
// the exact byte layout of generated files.
type testChunk struct {
	id   string
	size uint32
	data []byte
}

var (
	errFileTooSmall       = errors.New("file too small")
	errInvalidRiffWaveHdr = errors.New("invalid RIFF/WAVE header")
)

// parseWavChunks walks a WAV file independently of the library under test so
// layout checks do not depend on the code they are checking.
func parseWavChunks(data []byte) ([]testChunk, error) {
	if len(data) < 12 {
		return nil, errFileTooSmall
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, errInvalidRiffWaveHdr
	}

	var chunks []testChunk

	offset := 12
	for offset+8 <= len(data) {
		id := string(data[offset : offset+4])
		size := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		offset += 8

		end := offset + int(size)
		if end > len(data) {
			end = len(data)
		}

		chunks = append(chunks, testChunk{id: id, size: size, data: data[offset:end]})

		offset = end
		if size%2 == 1 {
			offset++
		}
	}

	return chunks, nil
}

func findChunk(chunks []testChunk, id string) (*testChunk, int) {
	for i := range chunks {
		if chunks[i].id == id {
			return &chunks[i], i
		}
	}

	return nil, -1
}

func writeTestChunk(t *testing.T, b *bytes.Buffer, id string, payload []byte) {
	t.Helper()

	if len(id) != 4 {
		t.Fatalf("chunk id %q must be 4 bytes", id)
	}

	b.WriteString(id)

	if err := binary.Write(b, binary.LittleEndian, uint32(len(payload))); err != nil {
		t.Fatalf("failed to write chunk size: %v", err)
	}

	b.Write(payload)

	if len(payload)%2 == 1 {
		b.WriteByte(0)
	}
}

// buildWav assembles a complete WAV file from the given chunks and patches
// the RIFF size field so the header is consistent.
func buildWav(t *testing.T, chunks ...testChunk) []byte {
	t.Helper()

	var b bytes.Buffer
	b.WriteString("RIFF")

	if err := binary.Write(&b, binary.LittleEndian, uint32(0)); err != nil {
		t.Fatalf("failed to write RIFF size placeholder: %v", err)
	}

	b.WriteString("WAVE")

	for _, ch := range chunks {
		writeTestChunk(t, &b, ch.id, ch.data)
	}

	out := b.Bytes()
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-8))

	return out
}

func makeFmtPayload(t *testing.T, audioFormat, channels uint16, sampleRate uint32, bits uint16) []byte {
	t.Helper()

	byteRate := sampleRate * uint32(channels) * uint32(bits) / 8
	blockAlign := channels * bits / 8

	payload := make([]byte, 16)
	binary.LittleEndian.PutUint16(payload[0:2], audioFormat)
	binary.LittleEndian.PutUint16(payload[2:4], channels)
	binary.LittleEndian.PutUint32(payload[4:8], sampleRate)
	binary.LittleEndian.PutUint32(payload[8:12], byteRate)
	binary.LittleEndian.PutUint16(payload[12:14], blockAlign)
	binary.LittleEndian.PutUint16(payload[14:16], bits)

	return payload
}

// makeCuePayload writes the declared count verbatim, which may disagree with
// the number of records that follow. Truncation tests rely on that.
func makeCuePayload(t *testing.T, declaredCount uint32, points ...CuePoint) []byte {
	t.Helper()

	var b bytes.Buffer
	binary.Write(&b, binary.LittleEndian, declaredCount)

	for _, p := range points {
		for _, field := range []uint32{p.ID, p.Position, p.DataChunkID, p.ChunkStart, p.BlockStart, p.SampleOffset} {
			binary.Write(&b, binary.LittleEndian, field)
		}
	}

	return b.Bytes()
}

func makeBextPayload(t *testing.T, meta BroadcastMetadata, history string) []byte {
	t.Helper()

	payload := make([]byte, bextFixedLen)
	copy(payload[0:256], meta.Description)
	copy(payload[256:288], meta.Originator)
	copy(payload[288:320], meta.OriginatorReference)
	copy(payload[320:330], meta.OriginationDate)
	copy(payload[330:338], meta.OriginationTime)
	binary.LittleEndian.PutUint32(payload[338:342], uint32(meta.TimeReference))
	binary.LittleEndian.PutUint32(payload[342:346], uint32(meta.TimeReference>>32))
	binary.LittleEndian.PutUint16(payload[346:348], meta.Version)
	copy(payload[348:412], meta.UMID[:])

	if history != "" {
		payload = append(payload, []byte(history)...)
	}

	return payload
}

func makeListPayload(t *testing.T, subType string, subs ...testChunk) []byte {
	t.Helper()

	if len(subType) != 4 {
		t.Fatalf("list sub-type %q must be 4 bytes", subType)
	}

	var b bytes.Buffer
	b.WriteString(subType)

	for _, sub := range subs {
		writeTestChunk(t, &b, sub.id, sub.data)
	}

	return b.Bytes()
}

func makeLablPayload(t *testing.T, cueID uint32, label string) []byte {
	t.Helper()

	payload := make([]byte, 4+len(label)+1)
	binary.LittleEndian.PutUint32(payload[0:4], cueID)
	copy(payload[4:], label)

	return payload
}
