package format

import (
	"path/filepath"
	"strings"
)

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents a plain, uncompressed file.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents gzip (.gz) compression.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents Zstandard (.zst) compression.
	CompressionS2   CompressionType = 0x4 // CompressionS2 represents S2 stream (.s2) compression.
	CompressionLZ4  CompressionType = 0x5 // CompressionLZ4 represents LZ4 frame (.lz4) compression.
	CompressionXz   CompressionType = 0x6 // CompressionXz represents xz (.xz) compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionXz:
		return "Xz"
	default:
		return "Unknown"
	}
}

// Extension returns the conventional file suffix for c, including the dot,
// or an empty string for CompressionNone.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionGzip:
		return ".gz"
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	case CompressionXz:
		return ".xz"
	default:
		return ""
	}
}

// CompressionFromPath guesses the compression of a file from its suffix.
// The comparison is case-insensitive; unknown suffixes map to CompressionNone.
func CompressionFromPath(path string) CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	case ".s2":
		return CompressionS2
	case ".lz4":
		return CompressionLZ4
	case ".xz":
		return CompressionXz
	default:
		return CompressionNone
	}
}
