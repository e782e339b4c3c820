package fileio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mhemmit/gemmi/compress"
	"github.com/mhemmit/gemmi/errs"
	"github.com/mhemmit/gemmi/format"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{"data_1ABC": {"entry": {"id": ["1ABC"]}}}`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func TestReadFile(t *testing.T) {
	path := writeFile(t, "1abc.json", []byte(sampleJSON))

	data, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, sampleJSON, string(data))
}

func TestReadFile_Empty(t *testing.T) {
	path := writeFile(t, "empty.json", nil)

	data, err := ReadFile(path)
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))

	require.ErrorIs(t, err, errs.ErrIO)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, err.Error(), "failed to open")
}

func TestReadFile_Directory(t *testing.T) {
	_, err := ReadFile(t.TempDir())
	require.ErrorIs(t, err, errs.ErrIO)
}

func TestFileSize(t *testing.T) {
	path := writeFile(t, "x.json", []byte("12345"))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	size, err := FileSize(f, path)
	require.NoError(t, err)
	require.Equal(t, int64(5), size)
}

func TestMaybeCompressed_Plain(t *testing.T) {
	path := writeFile(t, "1abc.json", []byte(sampleJSON))
	in := NewMaybeCompressed(path)

	require.False(t, in.IsCompressed())
	require.Equal(t, format.CompressionNone, in.Compression())
	require.Equal(t, path, in.Path())
	require.Equal(t, path, in.BasePath())

	mem, err := in.Memory()
	require.NoError(t, err)
	require.Equal(t, sampleJSON, string(mem))
}

func TestMaybeCompressed_DetectsUnsuffixed(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionGzip,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
		format.CompressionXz,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := compress.CreateCodec(ct, "test")
			require.NoError(t, err)
			packed, err := codec.Compress([]byte(sampleJSON))
			require.NoError(t, err)

			path := writeFile(t, "1abc.json", packed)
			in := NewMaybeCompressed(path)
			require.False(t, in.IsCompressed())

			mem, err := in.Memory()
			require.NoError(t, err)
			require.Equal(t, sampleJSON, string(mem))
		})
	}
}

func TestMaybeCompressed_MissingFile(t *testing.T) {
	_, err := NewMaybeCompressed(filepath.Join(t.TempDir(), "none.json")).Memory()
	require.ErrorIs(t, err, errs.ErrIO)
}

func TestMaybeCompressed_EmptyFile(t *testing.T) {
	mem, err := NewMaybeCompressed(writeFile(t, "empty.json", nil)).Memory()
	require.NoError(t, err)
	require.NotNil(t, mem)
	require.Empty(t, mem)
}

func TestMaybeCompressed_Decompresses(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionGzip,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
		format.CompressionXz,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := compress.CreateCodec(ct, "test")
			require.NoError(t, err)
			packed, err := codec.Compress([]byte(sampleJSON))
			require.NoError(t, err)

			path := writeFile(t, "1abc.json"+ct.Extension(), packed)
			in := NewMaybeCompressed(path)
			require.True(t, in.IsCompressed())
			require.Equal(t, ct, in.Compression())
			require.Equal(t, path[:len(path)-len(ct.Extension())], in.BasePath())

			mem, err := in.Memory()
			require.NoError(t, err)
			require.Equal(t, sampleJSON, string(mem))
		})
	}
}

func TestMaybeCompressed_Corrupted(t *testing.T) {
	path := writeFile(t, "bad.json.gz", []byte("not gzip at all"))

	_, err := NewMaybeCompressed(path).Memory()
	require.ErrorIs(t, err, errs.ErrIO)
}

func TestMaybeCompressed_UppercaseSuffix(t *testing.T) {
	in := NewMaybeCompressed("/data/1ABC.JSON.GZ")

	require.Equal(t, format.CompressionGzip, in.Compression())
	require.Equal(t, "/data/1ABC.JSON", in.BasePath())
}

func TestMemory(t *testing.T) {
	in := Memory{Name: "cached", Data: []byte(sampleJSON)}

	require.Equal(t, "cached", in.Path())
	mem, err := in.Memory()
	require.NoError(t, err)
	require.Equal(t, sampleJSON, string(mem))

	mem, err = Memory{Name: "empty"}.Memory()
	require.NoError(t, err)
	require.NotNil(t, mem)
	require.Empty(t, mem)
}
