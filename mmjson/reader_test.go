package mmjson

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mhemmit/gemmi/cif"
	"github.com/mhemmit/gemmi/compress"
	"github.com/mhemmit/gemmi/errs"
	"github.com/mhemmit/gemmi/fileio"
	"github.com/mhemmit/gemmi/format"
	"github.com/mhemmit/gemmi/jsontree"
	"github.com/stretchr/testify/require"
)

const sample = `{"data_1ABC": {
  "entry": {"id": ["1ABC"]},
  "struct": {"title": ["Lysozyme, hen egg"], "pdbx_descriptor": [null]},
  "atom_site": {
    "group_PDB": ["ATOM", "ATOM", "HETATM"],
    "id": [1, 2, 3],
    "label_atom_id": ["N", "C1'", "O"],
    "Cartn_x": [1.5, -2.25, 3e1],
    "pdbx_PDB_ins_code": [null, false, "A"]
  }
}}`

func readString(t *testing.T, s string, opts ...Option) *cif.Document {
	t.Helper()
	doc, err := ReadBytes([]byte(s), "test.json", opts...)
	require.NoError(t, err)

	return doc
}

func TestReadInsitu_Sample(t *testing.T) {
	doc := readString(t, sample)

	require.Equal(t, "test.json", doc.Source)
	require.Len(t, doc.Blocks, 1)
	block := doc.Blocks[0]
	require.Equal(t, "1ABC", block.Name)
	require.Len(t, block.Items, 4)

	require.Equal(t, cif.PairItem("_entry.id", "1ABC"), block.Items[0])
	require.Equal(t, cif.PairItem("_struct.title", "'Lysozyme, hen egg'"), block.Items[1])
	require.Equal(t, cif.PairItem("_struct.pdbx_descriptor", "?"), block.Items[2])

	item := block.Items[3]
	require.Equal(t, cif.ItemLoop, item.Kind)
	loop := item.Loop
	require.Equal(t, []string{
		"_atom_site.group_PDB",
		"_atom_site.id",
		"_atom_site.label_atom_id",
		"_atom_site.Cartn_x",
		"_atom_site.pdbx_PDB_ins_code",
	}, loop.Tags)
	require.Equal(t, 3, loop.Length())
	require.Equal(t, []string{
		"ATOM", "1", "N", "1.5", "?",
		"ATOM", "2", `"C1'"`, "-2.25", ".",
		"HETATM", "3", "O", "3e1", "A",
	}, loop.Values)
}

func TestFillDocument_LoopLayout(t *testing.T) {
	doc := readString(t, `{"data_X": {"cat": {"a": ["a0", "a1", "a2", "a3"], "b": ["b0", "b1", "b2", "b3"], "c": ["c0", "c1", "c2", "c3"]}}}`)

	loop := doc.Blocks[0].Items[0].Loop
	require.Equal(t, 3, loop.Width())
	require.Equal(t, 4, loop.Length())
	require.Len(t, loop.Values, 12)
	cols := []string{"a", "b", "c"}
	for col, name := range cols {
		for row := 0; row < 4; row++ {
			want := name + string(rune('0'+row))
			require.Equal(t, want, loop.Values[col+row*3])
			require.Equal(t, want, loop.Val(row, col))
		}
	}
}

func TestFillDocument_SingleRowPairs(t *testing.T) {
	doc := readString(t, `{"data_X": {"cell": {"length_a": [79.1], "length_b": [79.1], "Z_PDB": [8]}}}`)

	require.Equal(t, []cif.Item{
		cif.PairItem("_cell.length_a", "79.1"),
		cif.PairItem("_cell.length_b", "79.1"),
		cif.PairItem("_cell.Z_PDB", "8"),
	}, doc.Blocks[0].Items)
}

func TestFillDocument_ZeroRows(t *testing.T) {
	doc := readString(t, `{"data_X": {"cat": {"a": [], "b": []}}}`)

	item := doc.Blocks[0].Items[0]
	require.Equal(t, cif.ItemLoop, item.Kind)
	require.Equal(t, []string{"_cat.a", "_cat.b"}, item.Loop.Tags)
	require.Equal(t, 0, item.Loop.Length())
	require.Empty(t, item.Loop.Values)

	_, err := ReadBytes([]byte(`{"data_X": {"cat": {"a": [], "b": [1]}}}`), "")
	require.ErrorIs(t, err, errs.ErrFormat)
}

func TestFillDocument_EmptyBlock(t *testing.T) {
	doc := readString(t, `{"data_empty": {}}`)

	require.Equal(t, "empty", doc.Blocks[0].Name)
	require.Empty(t, doc.Blocks[0].Items)
}

func TestFillDocument_ColumnLengthMismatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"longer second", `{"data_X": {"c": {"a": [1, 2], "b": [1, 2, 3]}}}`, "Expected array of length 2 not 3"},
		{"shorter second", `{"data_X": {"c": {"a": [1, 2, 3], "b": [1]}}}`, "Expected array of length 3 not 1"},
		{"single then pair", `{"data_X": {"c": {"a": ["x"], "b": ["y", "z"]}}}`, "Expected array of length 1 not 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadBytes([]byte(tt.input), "")
			require.ErrorIs(t, err, errs.ErrFormat)
			require.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestFillDocument_ValueTypes(t *testing.T) {
	rejected := []struct {
		name  string
		value string
		typ   string
	}{
		{"true", "true", "<true>"},
		{"array", "[1]", "<array>"},
		{"object", `{"k": 1}`, "<object>"},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			for _, shape := range []string{
				`{"data_X": {"c": {"a": [%s]}}}`,
				`{"data_X": {"c": {"a": ["ok", %s]}}}`,
			} {
				input := fmt.Sprintf(shape, tt.value)
				_, err := ReadBytes([]byte(input), "")
				require.ErrorIs(t, err, errs.ErrFormat)
				require.Contains(t, err.Error(), "Unexpected "+tt.typ+" in JSON.")
			}
		})
	}

	t.Run("integer in strict mode", func(t *testing.T) {
		_, err := ReadBytes([]byte(`{"data_X": {"c": {"a": [1]}}}`), "", WithStrictNumbers())
		require.ErrorIs(t, err, errs.ErrFormat)
		require.Contains(t, err.Error(), "Unexpected <integer> in JSON.")

		doc, err := ReadBytes([]byte(`{"data_X": {"c": {"a": [1.0]}}}`), "", WithStrictNumbers())
		require.NoError(t, err)
		require.Equal(t, "1.0", doc.Blocks[0].Items[0].Pair.Value)
	})

	t.Run("accepted", func(t *testing.T) {
		doc := readString(t, `{"data_X": {"c": {"a": [0.5, null, false, "s p"]}}}`)
		require.Equal(t, []string{"0.5", "?", ".", "'s p'"}, doc.Blocks[0].Items[0].Loop.Values)
	})
}

func TestFillDocument_TopLevelShape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"zero keys", `{}`, "not mmJSON"},
		{"two keys", `{"data_a": {}, "data_b": {}}`, "not mmJSON"},
		{"array root", `[{"data_a": {}}]`, "not mmJSON"},
		{"string root", `"data_a"`, "not mmJSON"},
		{"wrong prefix", `{"block_a": {}}`, "top level key should start with data_"},
		{"block not object", `{"data_a": []}`, "format error"},
		{"category not object", `{"data_a": {"c": [1]}}`, "category c"},
		{"empty category", `{"data_a": {"c": {}}}`, "category c"},
		{"first column not array", `{"data_a": {"c": {"x": 1, "y": [1]}}}`, "category c"},
		{"later column not array", `{"data_a": {"c": {"x": [1], "y": "v"}}}`, "Expected array, got <string>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ReadBytes([]byte(tt.input), "")
			require.Nil(t, doc)
			require.ErrorIs(t, err, errs.ErrFormat)
			require.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestFillDocument_KeepsDocumentOnError(t *testing.T) {
	doc := &cif.Document{}
	buf := jsontree.NewBuffer([]byte(`{"data_X": {"ok": {"a": [1]}, "bad": {"a": [true]}}}`))
	root, err := jsontree.Parse(buf)
	require.NoError(t, err)

	require.ErrorIs(t, FillDocument(doc, root), errs.ErrFormat)
	require.Empty(t, doc.Blocks)
}

func TestReadInsitu_SyntaxError(t *testing.T) {
	_, err := ReadBytes([]byte("{\"data_X\":\n{\"c\":\n{\"a\": [1,]}}}"), "broken.json")

	require.ErrorIs(t, err, errs.ErrFormat)
	require.Contains(t, err.Error(), "broken.json:3 error: ")
}

func TestReadInsitu_InvalidUTF8(t *testing.T) {
	doc, err := ReadBytes([]byte("{\"data_x\":{\"c\":\n{\"v\":[\"a\xffb\"]}}}"), "latin1.json")

	require.Nil(t, doc)
	require.ErrorIs(t, err, errs.ErrFormat)
	require.Contains(t, err.Error(), "latin1.json:2 error: invalid UTF-8")
}

func TestReadInsitu_DefaultName(t *testing.T) {
	doc, err := ReadInsitu(jsontree.NewBuffer([]byte(`{"data_X": {}}`)), "")
	require.NoError(t, err)
	require.Equal(t, DefaultName, doc.Source)

	_, err = ReadInsitu(jsontree.NewBuffer([]byte(`{`)), "")
	require.ErrorIs(t, err, errs.ErrFormat)
	require.Contains(t, err.Error(), "mmJSON:1 error: ")
}

func TestReadInsitu_ConsumesBuffer(t *testing.T) {
	buf := jsontree.NewBuffer([]byte(sample))

	_, err := ReadInsitu(buf, "x")
	require.NoError(t, err)

	_, err = ReadInsitu(buf, "x")
	require.ErrorIs(t, err, errs.ErrBufferConsumed)
}

func TestReadInsitu_Idempotent(t *testing.T) {
	original := []byte(sample)

	first := append([]byte(nil), original...)
	second := append([]byte(nil), original...)

	a, err := ReadInsitu(jsontree.NewBuffer(first), "x")
	require.NoError(t, err)
	b, err := ReadInsitu(jsontree.NewBuffer(second), "x")
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestRead_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1abc.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	doc, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, path, doc.Source)
	require.Equal(t, readString(t, sample).Fingerprint(), doc.Fingerprint())
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "none.json"))

	require.ErrorIs(t, err, errs.ErrIO)
	require.NotErrorIs(t, err, errs.ErrFormat)
}

// diskInput holds no data and always defers to its path.
type diskInput string

func (d diskInput) Path() string            { return string(d) }
func (d diskInput) Memory() ([]byte, error) { return nil, nil }

func TestReadAny(t *testing.T) {
	dir := t.TempDir()
	want := readString(t, sample).Fingerprint()

	t.Run("plain path", func(t *testing.T) {
		path := filepath.Join(dir, "1abc.json")
		require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

		doc, err := ReadAny(fileio.NewMaybeCompressed(path))
		require.NoError(t, err)
		require.Equal(t, want, doc.Fingerprint())
	})

	t.Run("gzipped", func(t *testing.T) {
		codec, err := compress.CreateCodec(format.CompressionGzip, "test")
		require.NoError(t, err)
		packed, err := codec.Compress([]byte(sample))
		require.NoError(t, err)

		path := filepath.Join(dir, "1abc.json.gz")
		require.NoError(t, os.WriteFile(path, packed, 0o600))

		doc, err := ReadAny(fileio.NewMaybeCompressed(path))
		require.NoError(t, err)
		require.Equal(t, path, doc.Source)
		require.Equal(t, want, doc.Fingerprint())
	})

	t.Run("gzipped without suffix", func(t *testing.T) {
		codec, err := compress.CreateCodec(format.CompressionGzip, "test")
		require.NoError(t, err)
		packed, err := codec.Compress([]byte(sample))
		require.NoError(t, err)

		path := filepath.Join(dir, "unsuffixed.json")
		require.NoError(t, os.WriteFile(path, packed, 0o600))

		doc, err := ReadAny(fileio.NewMaybeCompressed(path))
		require.NoError(t, err)
		require.Equal(t, want, doc.Fingerprint())
	})

	t.Run("path only", func(t *testing.T) {
		path := filepath.Join(dir, "path-only.json")
		require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

		doc, err := ReadAny(diskInput(path))
		require.NoError(t, err)
		require.Equal(t, path, doc.Source)
		require.Equal(t, want, doc.Fingerprint())
	})

	t.Run("resident memory", func(t *testing.T) {
		doc, err := ReadAny(fileio.Memory{Name: "cache:1abc", Data: []byte(sample)})
		require.NoError(t, err)
		require.Equal(t, "cache:1abc", doc.Source)
		require.Equal(t, want, doc.Fingerprint())
	})

	t.Run("memory error", func(t *testing.T) {
		_, err := ReadAny(fileio.NewMaybeCompressed(filepath.Join(dir, "missing.json.gz")))
		require.ErrorIs(t, err, errs.ErrIO)
	})
}

func TestReadInsitu_InvalidOption(t *testing.T) {
	_, err := ReadBytes([]byte(`{"data_X": {}}`), "", WithMaxDepth(0))
	require.Error(t, err)
}

func BenchmarkReadBytes(b *testing.B) {
	for b.Loop() {
		_, _ = ReadBytes([]byte(sample), "bench")
	}
}
