package wavemeta

import (
	"bytes"
	"encoding/binary"
	"reflect"
	"testing"
)

func TestListSubType(t *testing.T) {
	sub, ok := ListSubType([]byte("INFO"))
	if !ok || sub != CIDInfo {
		t.Fatalf("expected INFO sub-type, got %q ok=%v", sub, ok)
	}

	if _, ok := ListSubType([]byte("IN")); ok {
		t.Fatal("a 2 byte payload must not yield a sub-type")
	}
}

func TestDecodeInfoList(t *testing.T) {
	payload := makeListPayload(t, "INFO",
		testChunk{id: "INAM", data: []byte("Morning chorus")},
		testChunk{id: "IART", data: []byte("R. Fielding")}, // odd length, padded
		testChunk{id: "ICMT", data: []byte("Windy\x00")},   // NUL inside the declared size
	)

	meta := DecodeInfoList(payload)

	wantKeys := []string{"INAM", "IART", "ICMT"}
	if got := meta.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Fatalf("expected keys %v, got %v", wantKeys, got)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"INAM", "Morning chorus"},
		{"IART", "R. Fielding"},
		{"ICMT", "Windy"},
	}

	for _, tt := range tests {
		got, ok := meta.Get(tt.key)
		if !ok {
			t.Errorf("key %q missing", tt.key)
			continue
		}

		if got != tt.want {
			t.Errorf("key %q: expected %q, got %q", tt.key, tt.want, got)
		}
	}
}

func TestDecodeInfoListDuplicateKeyLastWins(t *testing.T) {
	payload := makeListPayload(t, "INFO",
		testChunk{id: "INAM", data: []byte("First")},
		testChunk{id: "IART", data: []byte("Someone")},
		testChunk{id: "INAM", data: []byte("Second")},
	)

	meta := DecodeInfoList(payload)

	if got, _ := meta.Get("INAM"); got != "Second" {
		t.Errorf("expected the later value to win, got %q", got)
	}

	// The winning value stays at the key's first position.
	wantKeys := []string{"INAM", "IART"}
	if got := meta.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("expected keys %v, got %v", wantKeys, got)
	}
}

func TestDecodeInfoListLegacyEncoding(t *testing.T) {
	payload := makeListPayload(t, "INFO",
		testChunk{id: "IARL", data: []byte("caf\xe9")},
	)

	meta := DecodeInfoList(payload)

	if got, _ := meta.Get("IARL"); got != "café" {
		t.Errorf("expected a Windows-1252 fallback decode, got %q", got)
	}
}

func TestDecodeInfoListTruncatedSubChunk(t *testing.T) {
	var b bytes.Buffer
	b.WriteString("INFO")
	b.WriteString("ICMT")
	binary.Write(&b, binary.LittleEndian, uint32(10))
	b.WriteString("abcd") // 6 bytes short of the declared size

	meta := DecodeInfoList(b.Bytes())

	if got, _ := meta.Get("ICMT"); got != "abcd" {
		t.Errorf("expected the available bytes, got %q", got)
	}
}

func TestDecodeInfoListEmpty(t *testing.T) {
	meta := DecodeInfoList([]byte("INFO"))
	if meta.Len() != 0 {
		t.Fatalf("expected no entries, got %d", meta.Len())
	}
}

func TestDecodeLabelList(t *testing.T) {
	payload := makeListPayload(t, "adtl",
		testChunk{id: "labl", data: makeLablPayload(t, 1, "Bird call")},
		testChunk{id: "note", data: makeLablPayload(t, 1, "ignored")},
		testChunk{id: "labl", data: makeLablPayload(t, 2, "Thunder")},
		testChunk{id: "labl", data: []byte{9, 0}}, // too short for a cue id
	)

	labels := DecodeLabelList(payload)

	want := map[uint32]string{1: "Bird call", 2: "Thunder"}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("expected labels %v, got %v", want, labels)
	}
}

func TestDecodeLabelListDuplicateCueID(t *testing.T) {
	payload := makeListPayload(t, "adtl",
		testChunk{id: "labl", data: makeLablPayload(t, 5, "old")},
		testChunk{id: "labl", data: makeLablPayload(t, 5, "new")},
	)

	labels := DecodeLabelList(payload)

	if labels[5] != "new" {
		t.Fatalf("expected the later label to win, got %q", labels[5])
	}
}
