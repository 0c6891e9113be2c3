package wavemeta

import "testing"

func TestClen(t *testing.T) {
	tests := []struct {
		in   []byte
		want int
	}{
		{[]byte{'a', 'b', 'c', 0, 'x'}, 3},
		{[]byte{0}, 0},
		{[]byte{'a', 'b'}, 2},
		{nil, 0},
	}

	for _, tt := range tests {
		if got := clen(tt.in); got != tt.want {
			t.Errorf("clen(%v): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain ascii", []byte("naturel"), "naturel"},
		{"utf8 kept", []byte("Forêt"), "Forêt"},
		{"trailing nuls trimmed", []byte{'a', 'b', 0, 0}, "ab"},
		{"inner nul kept", []byte{'a', 0, 'b'}, "a\x00b"},
		{"latin1 fallback", []byte{'c', 'a', 'f', 0xE9}, "café"},
		{"windows1252 quotes", []byte{0x93, 'h', 'i', 0x94}, "“hi”"},
		{"empty", nil, ""},
		{"only nuls", []byte{0, 0}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeText(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestHexDump(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		maxBytes int
		want     string
	}{
		{"basic", []byte{0xDE, 0xAD, 0xBE, 0xEF}, 0, "DE AD BE EF"},
		{"truncated", []byte{0xDE, 0xAD, 0xBE, 0xEF}, 2, "DE AD"},
		{"limit above length", []byte{0x01}, 16, "01"},
		{"empty", nil, 8, ""},
		{"single", []byte{0x0A}, 0, "0A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HexDump(tt.data, tt.maxBytes); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
