package compress

// ZstdCompressor provides Zstandard compression of whole files.
//
// Each Compress call produces one zstd frame, the same layout the `zstd`
// command line tool writes, so `.zst` mmJSON files round-trip through it.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
