package compress

import (
	"bytes"
	"fmt"

	"github.com/mhemmit/gemmi/errs"
	"github.com/mhemmit/gemmi/format"
)

// Compressor compresses a complete file payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a complete file payload.
//
// Decompressor implementations are safe for concurrent use, so independent
// callers may read compressed mmJSON files in parallel with a shared codec.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The input must be a complete compressed stream (a gzip member, a zstd
	// frame, an s2 or lz4 stream, an xz stream). Corrupted or truncated input
	// returns an error.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Gzip, Zstd, S2, LZ4 or Xz)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: ErrUnsupportedCompression for an invalid compression type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionGzip:
		return NewGzipCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionXz:
		return NewXzCompressor(), nil
	default:
		return nil, fmt.Errorf("%w: invalid %s compression: %s", errs.ErrUnsupportedCompression, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionGzip: NewGzipCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
	format.CompressionXz:   NewXzCompressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

// Stream magic numbers, see the respective format specifications.
var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicXz   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
	magicS2   = []byte{0xff, 0x06, 0x00, 0x00, 'S', '2', 's', 'T', 'w', 'O'}
)

// Detect identifies the compression of data from its leading magic bytes.
// Data without a recognised signature is reported as CompressionNone.
func Detect(data []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(data, magicGzip):
		return format.CompressionGzip
	case bytes.HasPrefix(data, magicZstd):
		return format.CompressionZstd
	case bytes.HasPrefix(data, magicXz):
		return format.CompressionXz
	case bytes.HasPrefix(data, magicLZ4):
		return format.CompressionLZ4
	case bytes.HasPrefix(data, magicS2):
		return format.CompressionS2
	default:
		return format.CompressionNone
	}
}

// Decompress detects the compression of data and decompresses it.
// Uncompressed data is returned as-is.
func Decompress(data []byte) ([]byte, error) {
	codec, err := GetCodec(Detect(data))
	if err != nil {
		return nil, err
	}

	return codec.Decompress(data)
}
