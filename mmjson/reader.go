package mmjson

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mhemmit/gemmi/cif"
	"github.com/mhemmit/gemmi/errs"
	"github.com/mhemmit/gemmi/fileio"
	"github.com/mhemmit/gemmi/internal/options"
	"github.com/mhemmit/gemmi/jsontree"
)

// DefaultName labels documents read from a buffer without a name.
const DefaultName = "mmJSON"

const blockPrefix = "data_"

type config struct {
	parseOpts []jsontree.Option
}

// Option configures the readers.
type Option = options.Option[*config]

// WithStrictNumbers rejects integer literals instead of keeping them as
// number text. Archive mmJSON stores counts and ids as integers, so this is
// only useful for validating files meant to carry every number as text.
func WithStrictNumbers() Option {
	return options.NoError(func(c *config) {
		c.parseOpts = append(c.parseOpts, jsontree.WithStrictNumbers())
	})
}

// WithMaxDepth limits JSON nesting; see jsontree.WithMaxDepth.
func WithMaxDepth(depth int) Option {
	return options.NoError(func(c *config) {
		c.parseOpts = append(c.parseOpts, jsontree.WithMaxDepth(depth))
	})
}

// ReadInsitu parses the mmJSON document held by buf. The buffer is consumed.
//
// Parameters:
//   - buf: the JSON text, handed over to the parser
//   - name: label stored as Document.Source and used in error messages
//     (DefaultName when empty)
//
// Returns:
//   - *cif.Document: a document with one block
//   - error: errs.ErrFormat for malformed JSON ("<name>:<line> error: ...")
//     or a non-mmJSON shape, errs.ErrBufferConsumed for a reused buffer
func ReadInsitu(buf *jsontree.Buffer, name string, opts ...Option) (*cif.Document, error) {
	if name == "" {
		name = DefaultName
	}

	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	root, err := jsontree.Parse(buf, cfg.parseOpts...)
	if err != nil {
		var se *jsontree.SyntaxError
		if errors.As(err, &se) {
			return nil, fmt.Errorf("%w: %s:%d error: %s", errs.ErrFormat, name, se.Line, se.Msg)
		}
		return nil, err
	}

	doc := &cif.Document{}
	if err := FillDocument(doc, root); err != nil {
		return nil, err
	}
	doc.Source = name

	return doc, nil
}

// ReadBytes parses mmJSON text from data, which is consumed by the parser.
func ReadBytes(data []byte, name string, opts ...Option) (*cif.Document, error) {
	return ReadInsitu(jsontree.NewBuffer(data), name, opts...)
}

// Read reads and parses the mmJSON file at path.
//
// Returns errs.ErrIO when the file cannot be opened or is read short, and the
// errors of ReadInsitu otherwise.
func Read(path string, opts ...Option) (*cif.Document, error) {
	data, err := fileio.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ReadInsitu(jsontree.NewBuffer(data), path, opts...)
}

// ReadAny reads an input, preferring content it already holds in memory (for
// example a decompressed .json.gz file) and reading its path otherwise.
func ReadAny(input fileio.Input, opts ...Option) (*cif.Document, error) {
	mem, err := input.Memory()
	if err != nil {
		return nil, err
	}
	if mem != nil {
		return ReadInsitu(jsontree.NewBuffer(mem), input.Path(), opts...)
	}

	return Read(input.Path(), opts...)
}

// FillDocument appends to doc the block encoded by an mmJSON tree:
//
//	{"data_NAME": {"category": {"column": [v1, v2, ...], ...}, ...}}
//
// A category whose columns hold one value becomes pairs tagged
// _category.column; longer columns become one loop per category. Columns of
// zero length become a loop without rows. All columns of a category must be
// of equal length.
//
// On error doc is left unchanged.
func FillDocument(doc *cif.Document, root *jsontree.Value) error {
	if root.Type() != jsontree.TypeObject || root.Len() != 1 {
		return fmt.Errorf("%w: not mmJSON", errs.ErrFormat)
	}
	blockName := root.Key(0)
	if !strings.HasPrefix(blockName, blockPrefix) {
		return fmt.Errorf("%w: top level key should start with data_", errs.ErrFormat)
	}

	top := root.ObjectValue(0)
	if top.Type() != jsontree.TypeObject {
		return errs.ErrFormat
	}

	var items []cif.Item
	for i := 0; i < top.Len(); i++ {
		catItems, err := categoryItems(top.Key(i), top.ObjectValue(i))
		if err != nil {
			return err
		}
		items = append(items, catItems...)
	}
	doc.AddBlock(blockName[len(blockPrefix):]).Items = items

	return nil
}

// categoryItems converts one category object into pairs or a loop.
func categoryItems(category string, cat *jsontree.Value) ([]cif.Item, error) {
	prefix := "_" + category + "."
	if cat.Type() != jsontree.TypeObject || cat.Len() == 0 ||
		cat.ObjectValue(0).Type() != jsontree.TypeArray {
		return nil, fmt.Errorf("%w: category %s", errs.ErrFormat, category)
	}

	cifCols := cat.Len()
	cifRows := cat.ObjectValue(0).Len()

	var loop *cif.Loop
	var items []cif.Item
	if cifRows == 1 {
		items = make([]cif.Item, 0, cifCols)
	} else {
		loop = cif.NewLoop(cifCols, cifRows)
	}

	for j := 0; j < cifCols; j++ {
		tag := prefix + cat.Key(j)
		arr := cat.ObjectValue(j)
		if arr.Type() != jsontree.TypeArray {
			return nil, fmt.Errorf("%w: Expected array, got %s", errs.ErrFormat, arr.Type())
		}
		if arr.Len() != cifRows {
			return nil, fmt.Errorf("%w: Expected array of length %d not %d", errs.ErrFormat, cifRows, arr.Len())
		}

		if cifRows == 1 {
			v, err := AsCifValue(arr.Elem(0))
			if err != nil {
				return nil, err
			}
			items = append(items, cif.PairItem(tag, v))

			continue
		}

		loop.Tags = append(loop.Tags, tag)
		for k := 0; k < cifRows; k++ {
			v, err := AsCifValue(arr.Elem(k))
			if err != nil {
				return nil, err
			}
			loop.Values[j+k*cifCols] = v
		}
	}

	if loop != nil {
		return []cif.Item{cif.LoopItem(loop)}, nil
	}

	return items, nil
}

// AsCifValue converts a JSON scalar into a CIF token: numbers keep their
// literal text, null becomes ?, false becomes . and strings are quoted.
// Integers (as typed by a strict parse), true, arrays and objects have no CIF
// counterpart and yield errs.ErrFormat.
func AsCifValue(v *jsontree.Value) (string, error) {
	switch v.Type() {
	case jsontree.TypeDouble:
		return v.String(), nil
	case jsontree.TypeNull:
		return "?", nil
	case jsontree.TypeFalse:
		return ".", nil
	case jsontree.TypeString:
		return cif.Quote(v.String()), nil
	default:
		return "", fmt.Errorf("%w: Unexpected %s in JSON.", errs.ErrFormat, v.Type())
	}
}
