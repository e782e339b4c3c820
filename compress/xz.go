package compress

import (
	"bytes"
	"fmt"

	"github.com/ulikunitz/xz"
)

// XzCompressor handles xz streams.
type XzCompressor struct{}

var _ Codec = (*XzCompressor)(nil)

// NewXzCompressor creates a new xz compressor.
func NewXzCompressor() XzCompressor {
	return XzCompressor{}
}

// Compress compresses the input data into an xz stream.
func (c XzCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("xz compression failed: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("xz compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("xz compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses an xz stream.
func (c XzCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("xz decompression failed: %w", err)
	}

	out, err := readAllLimited(r, len(data))
	if err != nil {
		return nil, fmt.Errorf("xz decompression failed: %w", err)
	}

	return out, nil
}
