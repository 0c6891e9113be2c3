// Package tagsave writes INFO-tagged copies of WAVE files to disk. Every
// strategy reads the source once, appends a freshly built LIST/INFO chunk
// via wavemeta.InjectInfoChunk and differs only in where the result lands:
// a sibling edit copy, the original path, the original path with a backup,
// or a caller-chosen name.
package tagsave

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fieldrec/wavemeta"
)

// maxNameAttempts bounds the search for a free numbered file name.
const maxNameAttempts = 1000

var (
	// ErrNoFreeName is returned when every candidate output name up to the
	// attempt limit already exists.
	ErrNoFreeName = errors.New("no free output file name")
	// ErrBadName is returned by CustomName for names that are empty, carry
	// a path separator or would overwrite the source file.
	ErrBadName = errors.New("invalid custom file name")
)

// Result reports where a save strategy wrote its output.
type Result struct {
	// OutputPath is the tagged file.
	OutputPath string
	// BackupPath is the preserved original, set only by WithBackup.
	BackupPath string
}

// EditCopy writes the tagged file next to the source as <name>_edit<ext>,
// switching to <name>_edit_1<ext> and so on when the name is taken. The
// source file is not modified.
func EditCopy(path string, meta *wavemeta.InfoMetadata) (*Result, error) {
	data, err := loadAndInject(path, meta)
	if err != nil {
		return nil, err
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)

	out, err := uniquePath(stem+"_edit"+ext, func(n int) string {
		return fmt.Sprintf("%s_edit_%d%s", stem, n, ext)
	})
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(out, data, sourceMode(path)); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", out, err)
	}

	return &Result{OutputPath: out}, nil
}

// InPlace replaces the source file with its tagged version. The tagged
// bytes are staged in a temp file in the same directory and moved over the
// original, so a failed write never leaves a half-written source behind.
func InPlace(path string, meta *wavemeta.InfoMetadata) (*Result, error) {
	data, err := loadAndInject(path, meta)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("failed to stage a temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return nil, fmt.Errorf("failed to write %s: %w", tmpName, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return nil, fmt.Errorf("failed to close %s: %w", tmpName, err)
	}

	// Keep the original's permissions; CreateTemp defaults to 0600.
	os.Chmod(tmpName, sourceMode(path))

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)

		return nil, fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return &Result{OutputPath: path}, nil
}

// WithBackup moves the source file to <path>.bak (numbered when taken) and
// writes the tagged version at the original path. When the final write
// fails, the backup is moved back so the source survives either way.
func WithBackup(path string, meta *wavemeta.InfoMetadata) (*Result, error) {
	data, err := loadAndInject(path, meta)
	if err != nil {
		return nil, err
	}

	backup, err := uniquePath(path+".bak", func(n int) string {
		return fmt.Sprintf("%s.bak%d", path, n)
	})
	if err != nil {
		return nil, err
	}

	mode := sourceMode(path)

	if err := os.Rename(path, backup); err != nil {
		return nil, fmt.Errorf("failed to back up %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, mode); err != nil {
		os.Rename(backup, path)

		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return &Result{OutputPath: path, BackupPath: backup}, nil
}

// CustomName writes the tagged file into the source's directory under the
// given name. The name must be a bare file name; a missing .wav extension
// is added and a taken name is numbered like EditCopy's.
func CustomName(path, name string, meta *wavemeta.InfoMetadata) (*Result, error) {
	if name == "" || name != filepath.Base(name) {
		return nil, fmt.Errorf("%w: %q", ErrBadName, name)
	}

	if !strings.EqualFold(filepath.Ext(name), ".wav") {
		name += ".wav"
	}

	data, err := loadAndInject(path, meta)
	if err != nil {
		return nil, err
	}

	target := filepath.Join(filepath.Dir(path), name)
	if target == path {
		return nil, fmt.Errorf("%w: %q would overwrite the source", ErrBadName, name)
	}

	ext := filepath.Ext(target)
	stem := strings.TrimSuffix(target, ext)

	out, err := uniquePath(target, func(n int) string {
		return fmt.Sprintf("%s_%d%s", stem, n, ext)
	})
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(out, data, sourceMode(path)); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", out, err)
	}

	return &Result{OutputPath: out}, nil
}

func loadAndInject(path string, meta *wavemeta.InfoMetadata) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	out, err := wavemeta.InjectInfoChunk(src, meta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return out, nil
}

// uniquePath returns first when no file exists there, otherwise the first
// free numbered alternative.
func uniquePath(first string, alt func(n int) string) (string, error) {
	if !fileExists(first) {
		return first, nil
	}

	for n := 1; n < maxNameAttempts; n++ {
		if candidate := alt(n); !fileExists(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: tried %d variants of %s", ErrNoFreeName, maxNameAttempts, first)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

func sourceMode(path string) os.FileMode {
	if fi, err := os.Stat(path); err == nil {
		return fi.Mode().Perm()
	}

	return 0o644
}
