package cif

import (
	"fmt"
	"io"
	"strings"

	"github.com/mhemmit/gemmi/errs"
	"github.com/mhemmit/gemmi/internal/pool"
)

// WriteTo writes the document as CIF text.
//
// Pairs are written one per line, loops as a loop_ header, one tag per line
// and one row per line, followed by an empty line. Blocks are separated by an
// empty line.
//
// A text field value holding a line that starts with ';' cannot be
// represented in CIF; such a document yields errs.ErrFormat and nothing is
// written to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	bb := pool.GetWriterBuffer()
	defer pool.PutWriterBuffer(bb)

	for i := range d.Blocks {
		if i > 0 {
			_ = bb.WriteByte('\n')
		}
		if err := writeBlock(bb, &d.Blocks[i]); err != nil {
			return 0, err
		}
	}

	return bb.WriteTo(w)
}

// Write writes doc to w as CIF text.
func Write(w io.Writer, doc *Document) error {
	_, err := doc.WriteTo(w)
	return err
}

func writeBlock(bb *pool.ByteBuffer, b *Block) error {
	_, _ = bb.WriteString("data_")
	_, _ = bb.WriteString(b.Name)
	_ = bb.WriteByte('\n')

	for i := range b.Items {
		it := &b.Items[i]
		switch it.Kind {
		case ItemPair:
			if unterminated(it.Pair.Value) {
				return fmt.Errorf("%w: %s: text field contains a line starting with ';'", errs.ErrFormat, it.Pair.Tag)
			}
			writePair(bb, it.Pair)
		case ItemLoop:
			for j, v := range it.Loop.Values {
				if unterminated(v) {
					tag := it.Loop.Tags[j%it.Loop.Width()]
					return fmt.Errorf("%w: %s: text field contains a line starting with ';'", errs.ErrFormat, tag)
				}
			}
			writeLoop(bb, it.Loop)
		}
	}

	return nil
}

// unterminated reports whether a text field token would be closed early by
// a ';' at the start of one of its inner lines.
func unterminated(token string) bool {
	if !isTextField(token) || len(token) < 3 {
		return false
	}

	return strings.Contains(token[:len(token)-2], "\n;")
}

func writePair(bb *pool.ByteBuffer, p Pair) {
	_, _ = bb.WriteString(p.Tag)
	if isTextField(p.Value) {
		_ = bb.WriteByte('\n')
	} else {
		_ = bb.WriteByte(' ')
	}
	_, _ = bb.WriteString(p.Value)
	_ = bb.WriteByte('\n')
}

func writeLoop(bb *pool.ByteBuffer, l *Loop) {
	_, _ = bb.WriteString("loop_\n")
	for _, tag := range l.Tags {
		_, _ = bb.WriteString(tag)
		_ = bb.WriteByte('\n')
	}

	width := l.Width()
	for row := range l.Length() {
		lineStarted := false
		for _, v := range l.Values[row*width : (row+1)*width] {
			if isTextField(v) {
				if lineStarted {
					_ = bb.WriteByte('\n')
				}
				_, _ = bb.WriteString(v)
				_ = bb.WriteByte('\n')
				lineStarted = false

				continue
			}
			if lineStarted {
				_ = bb.WriteByte(' ')
			}
			_, _ = bb.WriteString(v)
			lineStarted = true
		}
		if lineStarted {
			_ = bb.WriteByte('\n')
		}
	}
	_ = bb.WriteByte('\n')
}
