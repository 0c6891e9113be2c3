package wavemeta

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

const (
	bextDescriptionLen         = 256
	bextOriginatorLen          = 32
	bextOriginatorReferenceLen = 32
	bextOriginationDateLen     = 10
	bextOriginationTimeLen     = 8
	bextUMIDLen                = 64
	bextReservedLen            = 190
	// bextFixedLen is the size of the mandatory fixed-layout header; the
	// coding history starts right after it.
	bextFixedLen = 602
)

// BroadcastMetadata holds the fields of a Broadcast Wave Format (bext)
// chunk.
type BroadcastMetadata struct {
	Description         string
	Originator          string
	OriginatorReference string
	OriginationDate     string
	OriginationTime     string
	// TimeReference is the sample-accurate timestamp of the first sample,
	// assembled from the chunk's two 32-bit words.
	TimeReference uint64
	Version       uint16
	// UMID keeps the raw 64 identifier bytes; use UMIDHex for display.
	UMID          [64]byte
	CodingHistory string
}

// UMIDHex returns the unique material identifier as a hex string.
func (b *BroadcastMetadata) UMIDHex() string {
	return hex.EncodeToString(b.UMID[:])
}

// DecodeBroadcastChunk decodes a bext chunk payload. The chunk's 602-byte
// fixed layout is mandatory: shorter payloads fail with ErrBextTooShort
// because a partial fixed header cannot be trusted. Text fields are decoded
// permissively and trimmed of trailing NUL padding.
func DecodeBroadcastChunk(data []byte) (*BroadcastMetadata, error) {
	if len(data) < bextFixedLen {
		return nil, fmt.Errorf("%w: got %d bytes", ErrBextTooShort, len(data))
	}

	bext := &BroadcastMetadata{}
	offset := 0

	take := func(n int) []byte {
		out := data[offset : offset+n]
		offset += n

		return out
	}

	readFixedString := func(n int) string {
		return decodeText(take(n))
	}

	bext.Description = readFixedString(bextDescriptionLen)
	bext.Originator = readFixedString(bextOriginatorLen)
	bext.OriginatorReference = readFixedString(bextOriginatorReferenceLen)
	bext.OriginationDate = readFixedString(bextOriginationDateLen)
	bext.OriginationTime = readFixedString(bextOriginationTimeLen)

	timeRefLow := binary.LittleEndian.Uint32(take(4))
	timeRefHigh := binary.LittleEndian.Uint32(take(4))
	bext.TimeReference = uint64(timeRefHigh)<<32 | uint64(timeRefLow)
	bext.Version = binary.LittleEndian.Uint16(take(2))

	copy(bext.UMID[:], take(bextUMIDLen))
	take(bextReservedLen)

	if offset < len(data) {
		history := data[offset:]
		bext.CodingHistory = decodeText(history[:clen(history)])
	}

	return bext, nil
}
