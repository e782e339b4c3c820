package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
)

// S2Compressor handles the S2 stream format written by the `s2c` tool.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data into an S2 stream.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := s2.NewWriter(&buf, s2.WriterConcurrency(1))
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("s2 compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("s2 compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses an S2 (or Snappy framed) stream.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := readAllLimited(s2.NewReader(bytes.NewReader(data)), len(data))
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}

// maxDecompressedSize caps the output of a single decompression (4GiB),
// matching the largest mmJSON entries by a wide margin.
const maxDecompressedSize = 4 << 30

// readAllLimited drains r, pre-sizing the output from the compressed size.
func readAllLimited(r io.Reader, compressedSize int) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, compressedSize*4))
	n, err := io.Copy(buf, io.LimitReader(r, maxDecompressedSize+1))
	if err != nil {
		return nil, err
	}
	if n > maxDecompressedSize {
		return nil, fmt.Errorf("decompressed size exceeds %d bytes", int64(maxDecompressedSize))
	}

	return buf.Bytes(), nil
}
