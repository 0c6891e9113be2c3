package wavemeta

import "errors"

var (
	// ErrNotWave is returned when a stream or file image does not start
	// with a RIFF/WAVE container header. It covers both the Chunk Reader's
	// header validation and the injection target check.
	ErrNotWave = errors.New("not a RIFF/WAVE file")
	// ErrFmtTooShort is returned when a fmt chunk payload is smaller than
	// its mandatory 16-byte layout.
	ErrFmtTooShort = errors.New("fmt chunk shorter than 16 bytes")
	// ErrBextTooShort is returned when a bext chunk payload is smaller
	// than the 602-byte fixed header required by the BWF specification.
	ErrBextTooShort = errors.New("bext chunk shorter than 602 bytes")
	// ErrInfoKey is returned by the INFO encoder when a metadata key is
	// not exactly 4 printable ASCII characters.
	ErrInfoKey = errors.New("INFO key must be exactly 4 printable ASCII characters")
)
