// Package compress provides whole-file codecs for compressed mmJSON inputs.
//
// Structure archives distribute mmJSON compressed, most often gzipped
// (`1abc.json.gz` from PDBj). The codecs here turn such a file, already read
// into memory, back into the JSON text the importer parses:
//
//   - None: plain files, returned as-is
//   - Gzip: `.gz`, klauspost/compress/gzip
//   - Zstd: `.zst`, klauspost/compress/zstd (or valyala/gozstd with the `gozstd` build tag)
//   - S2: `.s2`, klauspost/compress/s2 stream format
//   - LZ4: `.lz4`, pierrec/lz4 frame format
//   - Xz: `.xz`, ulikunitz/xz
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionFromPath(path), "input")
//	if err != nil {
//	    return err
//	}
//	text, err := codec.Decompress(raw)
//
// When the file name carries no compression suffix, Detect inspects the
// leading magic bytes instead, and Decompress combines detection with
// decompression. fileio reads unsuffixed inputs through Decompress, so a
// gzipped file named 1abc.json is still read correctly.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use. The zstd codec
// draws encoders and decoders from sync.Pool.
//
// # Limits
//
// Decompression output is capped at 4GiB to protect against decompression
// bombs; larger outputs return an error.
package compress
