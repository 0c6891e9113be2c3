package wavemeta

import "encoding/binary"

// ListSubType returns the 4-byte sub-type tag at the start of a LIST chunk
// payload. ok is false when the payload is too short to carry one.
func ListSubType(data []byte) (sub [4]byte, ok bool) {
	if len(data) < 4 {
		return sub, false
	}

	copy(sub[:], data[0:4])

	return sub, true
}

// walkListSubChunks visits the sub-chunks that follow a LIST payload's
// sub-type tag. Each sub-chunk is a 4-byte id, a u32 little-endian size and
// that many content bytes, padded to an even boundary. The walk stops when
// fewer than 8 bytes remain for a header; a final sub-chunk whose declared
// size overruns the payload is visited with the bytes that are present.
func walkListSubChunks(data []byte, visit func(id [4]byte, body []byte)) {
	offset := 4

	for offset+8 <= len(data) {
		var id [4]byte
		copy(id[:], data[offset:offset+4])

		size := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		offset += 8

		end := offset + int(size)
		if end > len(data) || end < offset {
			end = len(data)
		}

		visit(id, data[offset:end])

		offset = end
		if size%2 == 1 {
			offset++
		}
	}
}

// DecodeInfoList decodes the INFO branch of a LIST chunk into key/value
// metadata. Values are decoded permissively and trimmed of trailing NUL
// padding; when a key repeats, the last value wins.
func DecodeInfoList(data []byte) *InfoMetadata {
	meta := NewInfoMetadata()

	walkListSubChunks(data, func(id [4]byte, body []byte) {
		meta.Set(string(id[:]), decodeText(body))
	})

	return meta
}

// DecodeLabelList decodes the adtl branch of a LIST chunk. Only labl
// sub-chunks are interpreted: a u32 little-endian cue point id followed by
// the label text. When a cue id repeats, the last label wins.
func DecodeLabelList(data []byte) map[uint32]string {
	labels := make(map[uint32]string)

	walkListSubChunks(data, func(id [4]byte, body []byte) {
		if id != CIDLabl || len(body) < 4 {
			return
		}

		cueID := binary.LittleEndian.Uint32(body[0:4])
		labels[cueID] = decodeText(body[4:])
	})

	return labels
}
