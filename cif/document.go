package cif

// ItemKind discriminates the payload of an Item.
type ItemKind uint8

const (
	ItemPair ItemKind = iota + 1 // ItemPair is a single tag-value pair.
	ItemLoop                     // ItemLoop is a table of values.
)

func (k ItemKind) String() string {
	switch k {
	case ItemPair:
		return "Pair"
	case ItemLoop:
		return "Loop"
	default:
		return "Unknown"
	}
}

// Pair is a tag with a single value.
type Pair struct {
	Tag   string
	Value string
}

// Loop is a table. The value of column j in row k is stored at
// Values[j + k*len(Tags)].
type Loop struct {
	Tags   []string
	Values []string
}

// NewLoop creates a loop with capacity for width tags and room for exactly
// width*length values, all empty.
func NewLoop(width, length int) *Loop {
	return &Loop{
		Tags:   make([]string, 0, width),
		Values: make([]string, width*length),
	}
}

// Width returns the number of columns.
func (l *Loop) Width() int {
	return len(l.Tags)
}

// Length returns the number of rows.
func (l *Loop) Length() int {
	if len(l.Tags) == 0 {
		return 0
	}

	return len(l.Values) / len(l.Tags)
}

// Val returns the value at row, col.
func (l *Loop) Val(row, col int) string {
	return l.Values[col+row*len(l.Tags)]
}

// FindTag returns the column index of tag, or -1.
func (l *Loop) FindTag(tag string) int {
	for i, t := range l.Tags {
		if t == tag {
			return i
		}
	}

	return -1
}

// Column returns the values of column col, one per row.
func (l *Loop) Column(col int) []string {
	n := l.Length()
	out := make([]string, n)
	for row := range n {
		out[row] = l.Val(row, col)
	}

	return out
}

// Item is an entry of a block: either a Pair or a Loop, as told by Kind.
// Only the field matching Kind is meaningful.
type Item struct {
	Kind ItemKind
	Pair Pair
	Loop *Loop
}

// PairItem creates a pair item.
func PairItem(tag, value string) Item {
	return Item{Kind: ItemPair, Pair: Pair{Tag: tag, Value: value}}
}

// LoopItem creates a loop item.
func LoopItem(loop *Loop) Item {
	return Item{Kind: ItemLoop, Loop: loop}
}

// Block is a named data block holding items in order.
type Block struct {
	Name  string
	Items []Item
}

// FindValue returns the value of the pair tagged tag.
func (b *Block) FindValue(tag string) (string, bool) {
	for i := range b.Items {
		if it := &b.Items[i]; it.Kind == ItemPair && it.Pair.Tag == tag {
			return it.Pair.Value, true
		}
	}

	return "", false
}

// FindLoop returns the loop containing tag and the column index of the tag.
func (b *Block) FindLoop(tag string) (*Loop, int) {
	for i := range b.Items {
		if it := &b.Items[i]; it.Kind == ItemLoop {
			if col := it.Loop.FindTag(tag); col >= 0 {
				return it.Loop, col
			}
		}
	}

	return nil, -1
}

// FindValues returns the values of tag whether it is stored as a pair (one
// value) or in a loop (one value per row).
func (b *Block) FindValues(tag string) []string {
	if v, ok := b.FindValue(tag); ok {
		return []string{v}
	}
	if loop, col := b.FindLoop(tag); loop != nil {
		return loop.Column(col)
	}

	return nil
}

// Document is a sequence of blocks read from one source.
type Document struct {
	Source string
	Blocks []Block
}

// AddBlock appends a new, empty block and returns it.
func (d *Document) AddBlock(name string) *Block {
	d.Blocks = append(d.Blocks, Block{Name: name})
	return &d.Blocks[len(d.Blocks)-1]
}

// FindBlock returns the block called name, or nil.
func (d *Document) FindBlock(name string) *Block {
	for i := range d.Blocks {
		if d.Blocks[i].Name == name {
			return &d.Blocks[i]
		}
	}

	return nil
}

// SoleBlock returns the only block of the document, or nil when the document
// holds zero or several blocks.
func (d *Document) SoleBlock() *Block {
	if len(d.Blocks) != 1 {
		return nil
	}

	return &d.Blocks[0]
}
