package jsontree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mhemmit/gemmi/internal/options"
)

// DefaultMaxDepth bounds the nesting of arrays and objects.
const DefaultMaxDepth = 1024

type config struct {
	strictNumbers bool
	maxDepth      int
}

// Option configures Parse.
type Option = options.Option[*config]

// WithStrictNumbers reports integer literals as TypeInteger. By default every
// number is reported as TypeDouble with its literal text preserved, so that
// consumers treating numbers as text need no special case for integers.
func WithStrictNumbers() Option {
	return options.NoError(func(c *config) {
		c.strictNumbers = true
	})
}

// WithMaxDepth limits the nesting depth of arrays and objects.
func WithMaxDepth(depth int) Option {
	return options.New(func(c *config) error {
		if depth < 1 {
			return fmt.Errorf("invalid max depth: %d", depth)
		}
		c.maxDepth = depth

		return nil
	})
}

// SyntaxError describes malformed JSON.
type SyntaxError struct {
	Offset int64  // byte offset at which the error was detected
	Line   int    // 1-based line of Offset
	Msg    string // description of the problem
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Parse parses the JSON document held by buf, consuming the buffer.
//
// Returns:
//   - *Value: the root value
//   - error: errs.ErrBufferConsumed for a buffer parsed before, *SyntaxError
//     for malformed input, or an option error
func Parse(buf *Buffer, opts ...Option) (*Value, error) {
	cfg := &config{maxDepth: DefaultMaxDepth}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	data, err := buf.take()
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	p := &parser{dec: dec, data: data, cfg: cfg}

	// the decoder would replace bad bytes in strings with U+FFFD
	if off := invalidUTF8(data); off >= 0 {
		return nil, p.syntaxError(int64(off), "invalid UTF-8 in JSON input")
	}

	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	root, err := p.value(tok)
	if err != nil {
		return nil, err
	}

	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, p.wrap(err)
		}
		return nil, p.errorf("unexpected %v after top-level value", tok)
	}

	return &root, nil
}

// invalidUTF8 returns the offset of the first byte that is not part of a
// valid UTF-8 sequence, or -1.
func invalidUTF8(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}

	return -1
}

type parser struct {
	dec   *json.Decoder
	data  []byte
	cfg   *config
	depth int
}

func (p *parser) next() (json.Token, error) {
	tok, err := p.dec.Token()
	if err != nil {
		return nil, p.wrap(err)
	}

	return tok, nil
}

func (p *parser) value(tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return p.container(TypeObject)
		case '[':
			return p.container(TypeArray)
		default:
			return Value{}, p.errorf("unexpected %q", rune(t))
		}
	case string:
		return Value{typ: TypeString, text: t}, nil
	case json.Number:
		return p.number(t), nil
	case bool:
		if t {
			return Value{typ: TypeTrue}, nil
		}
		return Value{typ: TypeFalse}, nil
	case nil:
		return Value{typ: TypeNull}, nil
	default:
		return Value{}, p.errorf("unexpected token %v", tok)
	}
}

func (p *parser) number(n json.Number) Value {
	s := n.String()
	if p.cfg.strictNumbers && !strings.ContainsAny(s, ".eE") {
		return Value{typ: TypeInteger, text: s}
	}

	return Value{typ: TypeDouble, text: s}
}

// container reads the members of an object or array whose opening delimiter
// was already consumed, including the closing delimiter.
func (p *parser) container(typ Type) (Value, error) {
	p.depth++
	if p.depth > p.cfg.maxDepth {
		return Value{}, p.errorf("exceeded max depth of %d", p.cfg.maxDepth)
	}

	v := Value{typ: typ}
	for p.dec.More() {
		if typ == TypeObject {
			tok, err := p.next()
			if err != nil {
				return Value{}, err
			}
			key, ok := tok.(string)
			if !ok {
				return Value{}, p.errorf("expected object key, got %v", tok)
			}
			v.keys = append(v.keys, key)
		}

		tok, err := p.next()
		if err != nil {
			return Value{}, err
		}
		elem, err := p.value(tok)
		if err != nil {
			return Value{}, err
		}
		v.elems = append(v.elems, elem)
	}

	// closing delimiter, or the error that stopped More
	if _, err := p.next(); err != nil {
		return Value{}, err
	}
	p.depth--

	return v, nil
}

// wrap converts decoder errors into a SyntaxError with a line number.
func (p *parser) wrap(err error) error {
	// json.SyntaxError offsets from a Decoder do not count the bytes skipped
	// between tokens, InputOffset points at the start of the offending token
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return p.syntaxError(int64(len(p.data)), "unexpected end of JSON input")
	}

	return p.syntaxError(p.dec.InputOffset(), err.Error())
}

func (p *parser) errorf(format string, args ...any) error {
	return p.syntaxError(p.dec.InputOffset(), fmt.Sprintf(format, args...))
}

func (p *parser) syntaxError(offset int64, msg string) *SyntaxError {
	offset = max(0, min(offset, int64(len(p.data))))

	return &SyntaxError{
		Offset: offset,
		Line:   1 + bytes.Count(p.data[:offset], []byte{'\n'}),
		Msg:    msg,
	}
}
