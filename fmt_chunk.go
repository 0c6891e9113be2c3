package wavemeta

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

const (
	wavFormatPCM        = 1
	wavFormatIEEEFloat  = 3
	wavFormatALaw       = 6
	wavFormatMuLaw      = 7
	wavFormatExtensible = 0xFFFE
)

const (
	ksSubFormatGUIDTail0  = 0x00
	ksSubFormatGUIDTail1  = 0x00
	ksSubFormatGUIDTail2  = 0x10
	ksSubFormatGUIDTail3  = 0x00
	ksSubFormatGUIDTail4  = 0x80
	ksSubFormatGUIDTail5  = 0x00
	ksSubFormatGUIDTail6  = 0x00
	ksSubFormatGUIDTail7  = 0xAA
	ksSubFormatGUIDTail8  = 0x00
	ksSubFormatGUIDTail9  = 0x38
	ksSubFormatGUIDTail10 = 0x9B
	ksSubFormatGUIDTail11 = 0x71
)

var formatNames = map[uint16]string{
	wavFormatPCM:        "PCM",
	wavFormatIEEEFloat:  "IEEE float",
	wavFormatALaw:       "A-law",
	wavFormatMuLaw:      "Mu-law",
	wavFormatExtensible: "Extensible",
}

// FormatName resolves a fmt chunk format tag to its display name.
// Unrecognized tags render as "Unknown (<tag>)".
func FormatName(tag uint16) string {
	if name, ok := formatNames[tag]; ok {
		return name
	}

	return fmt.Sprintf("Unknown (%d)", tag)
}

// FormatInfo stores the parsed fmt chunk, including extensible metadata.
// It is constructed once per file and not mutated afterwards.
type FormatInfo struct {
	AudioFormat   uint16
	FormatName    string
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16

	// ExtraSize and ExtraData hold the fmt extension. ExtraData is nil for
	// a bare 16-byte payload and non-nil (possibly empty) once the payload
	// carries an extension size field.
	ExtraSize uint16
	ExtraData []byte

	// Extensible is set when AudioFormat is 0xFFFE and the extension holds
	// the full WAVE_FORMAT_EXTENSIBLE fields.
	Extensible *FormatExtensible
}

// FormatExtensible stores WAVE_FORMAT_EXTENSIBLE extra fields.
type FormatExtensible struct {
	ValidBits   uint16
	ChannelMask uint32
	SubFormat   [16]byte
}

// SubFormatHex returns the raw sub-format identifier as a hex string.
func (e *FormatExtensible) SubFormatHex() string {
	return hex.EncodeToString(e.SubFormat[:])
}

// SubFormatGUID returns the sub-format identifier in canonical GUID form.
func (e *FormatExtensible) SubFormatGUID() uuid.UUID {
	return uuid.UUID(e.SubFormat)
}

func (f *FormatInfo) Clone() *FormatInfo {
	if f == nil {
		return nil
	}

	out := *f

	if f.ExtraData != nil {
		out.ExtraData = make([]byte, len(f.ExtraData))
		copy(out.ExtraData, f.ExtraData)
	}

	if f.Extensible != nil {
		ext := *f.Extensible
		out.Extensible = &ext
	}

	return &out
}

// EffectiveFormatTag returns the format tag with the extensible indirection
// resolved: when the sub-format identifier follows the standard KS media
// GUID layout, the tag embedded in its first two bytes is returned.
func (f *FormatInfo) EffectiveFormatTag() uint16 {
	if f == nil {
		return 0
	}

	if f.AudioFormat == wavFormatExtensible && f.Extensible != nil {
		tag := binary.LittleEndian.Uint16(f.Extensible.SubFormat[:2])
		if f.Extensible.SubFormat == makeSubFormatGUID(tag) {
			return tag
		}
	}

	return f.AudioFormat
}

// DecodeFormatChunk decodes a fmt chunk payload. Payloads shorter than the
// 16-byte mandatory layout fail with ErrFmtTooShort; everything beyond it
// is optional and decoded as far as the bytes allow.
func DecodeFormatChunk(data []byte) (*FormatInfo, error) {
	if len(data) < 16 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrFmtTooShort, len(data))
	}

	info := &FormatInfo{
		AudioFormat:   binary.LittleEndian.Uint16(data[0:2]),
		NumChannels:   binary.LittleEndian.Uint16(data[2:4]),
		SampleRate:    binary.LittleEndian.Uint32(data[4:8]),
		ByteRate:      binary.LittleEndian.Uint32(data[8:12]),
		BlockAlign:    binary.LittleEndian.Uint16(data[12:14]),
		BitsPerSample: binary.LittleEndian.Uint16(data[14:16]),
	}
	info.FormatName = FormatName(info.AudioFormat)

	if len(data) < 18 {
		return info, nil
	}

	info.ExtraSize = binary.LittleEndian.Uint16(data[16:18])

	extra := data[18:]
	if int(info.ExtraSize) < len(extra) {
		extra = extra[:info.ExtraSize]
	}

	// Non-nil even when empty, so callers can tell a zero-length extension
	// apart from a bare 16-byte payload.
	info.ExtraData = make([]byte, len(extra))
	copy(info.ExtraData, extra)

	if info.AudioFormat != wavFormatExtensible || info.ExtraSize < 22 || len(info.ExtraData) < 22 {
		return info, nil
	}

	ext := &FormatExtensible{
		ValidBits:   binary.LittleEndian.Uint16(info.ExtraData[0:2]),
		ChannelMask: binary.LittleEndian.Uint32(info.ExtraData[2:6]),
	}
	copy(ext.SubFormat[:], info.ExtraData[6:22])

	info.Extensible = ext

	return info, nil
}

func makeSubFormatGUID(formatTag uint16) [16]byte {
	var guid [16]byte
	binary.LittleEndian.PutUint32(guid[:4], uint32(formatTag))
	guid[4] = ksSubFormatGUIDTail0
	guid[5] = ksSubFormatGUIDTail1
	guid[6] = ksSubFormatGUIDTail2
	guid[7] = ksSubFormatGUIDTail3
	guid[8] = ksSubFormatGUIDTail4
	guid[9] = ksSubFormatGUIDTail5
	guid[10] = ksSubFormatGUIDTail6
	guid[11] = ksSubFormatGUIDTail7
	guid[12] = ksSubFormatGUIDTail8
	guid[13] = ksSubFormatGUIDTail9
	guid[14] = ksSubFormatGUIDTail10
	guid[15] = ksSubFormatGUIDTail11

	return guid
}
