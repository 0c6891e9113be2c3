package wavemeta

import (
	"bytes"
	"unicode/utf8"
)

// DecodeIXMLChunk decodes an iXML chunk payload as UTF-8 text, trimmed of
// trailing NUL padding. The chunk is advisory: a payload that is not valid
// UTF-8 yields the empty string rather than an error.
func DecodeIXMLChunk(data []byte) string {
	data = bytes.TrimRight(data, "\x00")
	if !utf8.Valid(data) {
		return ""
	}

	return string(data)
}
