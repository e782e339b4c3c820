package jsontree

import "github.com/mhemmit/gemmi/errs"

// Buffer owns the bytes of one JSON document for the duration of a parse.
//
// Parsing consumes the buffer: afterwards it holds no data and a second parse
// fails with errs.ErrBufferConsumed. Callers hand the slice over when creating
// the buffer; its contents are undefined once parsing started and must not be
// reused as JSON text.
type Buffer struct {
	data     []byte
	consumed bool
}

// NewBuffer takes ownership of data.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Len returns the number of bytes still owned by the buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Consumed reports whether the buffer was already handed to a parser.
func (b *Buffer) Consumed() bool {
	return b.consumed
}

// take hands the bytes over to the parser, leaving b empty.
func (b *Buffer) take() ([]byte, error) {
	if b == nil || b.consumed {
		return nil, errs.ErrBufferConsumed
	}
	data := b.data
	b.data = nil
	b.consumed = true

	return data, nil
}
