package wavemeta

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

func clen(num []byte) int {
	for i := range num {
		if num[i] == 0 {
			return i
		}
	}

	return len(num)
}

// decodeText decodes raw metadata text from a chunk. Trailing NUL padding
// is trimmed; valid UTF-8 is kept as-is and anything else is decoded as
// Windows-1252, the encoding legacy recorder firmware writes. The decode is
// lossy by contract and never fails.
func decodeText(b []byte) string {
	b = bytes.TrimRight(b, "\x00")
	if utf8.Valid(b) {
		return string(b)
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}

	return string(decoded)
}

// HexDump renders up to maxBytes of data as space-separated uppercase hex
// pairs, the form used for fmt extension bytes and unknown chunk previews.
func HexDump(data []byte, maxBytes int) string {
	if maxBytes > 0 && len(data) > maxBytes {
		data = data[:maxBytes]
	}

	var sb strings.Builder
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}

		const digits = "0123456789ABCDEF"
		sb.WriteByte(digits[b>>4])
		sb.WriteByte(digits[b&0x0F])
	}

	return sb.String()
}
