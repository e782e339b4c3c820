// Package fileio reads input files into memory for the importers.
package fileio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mhemmit/gemmi/compress"
	"github.com/mhemmit/gemmi/errs"
	"github.com/mhemmit/gemmi/format"
)

// FileSize returns the size of an open file. Non-regular files report -1.
func FileSize(f *os.File, path string) (int64, error) {
	st, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("%w: %s: cannot stat: %w", errs.ErrIO, path, err)
	}
	if !st.Mode().IsRegular() {
		return -1, nil
	}

	return st.Size(), nil
}

// ReadFile reads the whole file at path.
//
// Regular files are read into a buffer of exactly their size; a file that
// yields fewer bytes than its size is an errs.ErrIO "fread failed" error.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", errs.ErrIO, path, err)
	}
	defer f.Close()

	size, err := FileSize(f, path)
	if err != nil {
		return nil, err
	}
	if size < 0 {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: read failed: %w", errs.ErrIO, path, err)
		}
		return data, nil
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, fmt.Errorf("%w: %s: fread failed", errs.ErrIO, path)
	}

	return buf, nil
}

// Input is a named source of document text.
//
// Memory returns the content when it is held in memory (read and
// decompressed files, cached bytes); an implementation may return nil, nil
// when the caller should read Path from disk instead.
type Input interface {
	Path() string
	Memory() ([]byte, error)
}

// MaybeCompressed is a file path that may carry a compression suffix.
type MaybeCompressed struct {
	path        string
	compression format.CompressionType
}

var _ Input = (*MaybeCompressed)(nil)

// NewMaybeCompressed creates an input for path, guessing the compression from
// the file suffix (.gz, .zst, .s2, .lz4, .xz).
func NewMaybeCompressed(path string) *MaybeCompressed {
	return &MaybeCompressed{path: path, compression: format.CompressionFromPath(path)}
}

// Path returns the path as given.
func (m *MaybeCompressed) Path() string {
	return m.path
}

// BasePath returns the path without the compression suffix.
func (m *MaybeCompressed) BasePath() string {
	if !m.IsCompressed() {
		return m.path
	}
	return m.path[:len(m.path)-len(filepath.Ext(m.path))]
}

// Compression returns the compression guessed from the suffix.
func (m *MaybeCompressed) Compression() format.CompressionType {
	return m.compression
}

// IsCompressed reports whether the path has a compression suffix.
func (m *MaybeCompressed) IsCompressed() bool {
	return m.compression != format.CompressionNone
}

// Memory reads the file and decompresses it. The codec is chosen by the path
// suffix; paths without a compression suffix are checked for the magic bytes
// of a compressed stream and returned as read when none matches.
func (m *MaybeCompressed) Memory() ([]byte, error) {
	raw, err := ReadFile(m.path)
	if err != nil {
		return nil, err
	}

	var data []byte
	if m.IsCompressed() {
		codec, cerr := compress.CreateCodec(m.compression, "input")
		if cerr != nil {
			return nil, cerr
		}
		data, err = codec.Decompress(raw)
	} else {
		data, err = compress.Decompress(raw)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errs.ErrIO, m.path, err)
	}
	if data == nil {
		data = []byte{}
	}

	return data, nil
}

// Memory is document text already resident in memory.
type Memory struct {
	Name string
	Data []byte
}

var _ Input = Memory{}

// Path returns the name used to label the content.
func (m Memory) Path() string {
	return m.Name
}

// Memory returns the resident data; a nil Data yields an empty, non-nil slice.
func (m Memory) Memory() ([]byte, error) {
	if m.Data == nil {
		return []byte{}, nil
	}

	return m.Data, nil
}
