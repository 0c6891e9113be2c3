package wavemeta

// InfoMetadata is an insertion-ordered mapping of 4-character INFO
// identifiers to text values. It is both the decode result for LIST/INFO
// chunks and the input to the INFO encoder, where its order determines the
// sub-chunk order. Setting an existing key overwrites the value and keeps
// the key's original position.
type InfoMetadata struct {
	keys   []string
	values map[string]string
}

// NewInfoMetadata returns an empty mapping.
func NewInfoMetadata() *InfoMetadata {
	return &InfoMetadata{values: make(map[string]string)}
}

// Set stores a value under the given identifier.
func (m *InfoMetadata) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}

	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Get returns the value stored under the given identifier.
func (m *InfoMetadata) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}

	value, ok := m.values[key]

	return value, ok
}

// Keys returns the identifiers in insertion order.
func (m *InfoMetadata) Keys() []string {
	if m == nil {
		return nil
	}

	return append([]string(nil), m.keys...)
}

// Len returns the number of stored identifiers.
func (m *InfoMetadata) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Clone returns an independent copy of the mapping.
func (m *InfoMetadata) Clone() *InfoMetadata {
	if m == nil {
		return nil
	}

	out := NewInfoMetadata()
	for _, key := range m.keys {
		out.Set(key, m.values[key])
	}

	return out
}
