package assembly

import (
	"strconv"

	"github.com/mhemmit/gemmi/errs"
	"github.com/mhemmit/gemmi/internal/collision"
	"github.com/mhemmit/gemmi/model"
)

// Naming selects how copied chains are named.
type Naming uint8

const (
	// NamingShort keeps the original name if free, otherwise takes the first
	// free 1- or 2-character name.
	NamingShort Naming = iota + 1
	// NamingAddNumber appends a number to the original name: A1, A2, ...
	NamingAddNumber
	// NamingDup keeps the original name, so copies share names.
	NamingDup
)

func (n Naming) String() string {
	switch n {
	case NamingShort:
		return "Short"
	case NamingAddNumber:
		return "AddNumber"
	case NamingDup:
		return "Dup"
	default:
		return "Unknown"
	}
}

// nameSymbols is the ordered alphabet of short chain names.
const nameSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// ChainNameGenerator hands out names for copied chains. Under NamingShort and
// NamingAddNumber no name is returned twice, nor any name it was seeded with.
//
// A generator is not safe for concurrent use.
type ChainNameGenerator struct {
	naming Naming
	used   *collision.Tracker
}

// NewChainNameGenerator creates a generator with no names in use.
func NewChainNameGenerator(naming Naming) *ChainNameGenerator {
	return &ChainNameGenerator{
		naming: naming,
		used:   collision.NewTracker(0),
	}
}

// NewChainNameGeneratorForModel creates a generator that treats the chain
// names of m as taken. Under NamingDup nothing is recorded.
func NewChainNameGeneratorForModel(m *model.Model, naming Naming) *ChainNameGenerator {
	g := &ChainNameGenerator{naming: naming}
	if naming == NamingDup {
		g.used = collision.NewTracker(0)
		return g
	}

	g.used = collision.NewTracker(len(m.Chains))
	for i := range m.Chains {
		g.used.Track(m.Chains[i].Name)
	}

	return g
}

// Naming returns the naming mode of g.
func (g *ChainNameGenerator) Naming() Naming {
	return g.naming
}

// Has reports whether name is taken.
func (g *ChainNameGenerator) Has(name string) bool {
	return g.used.Has(name)
}

// Used returns the taken names in the order they were recorded.
func (g *ChainNameGenerator) Used() []string {
	return g.used.Names()
}

// MakeNewName returns a name for a copy of chain old.
//
// Parameters:
//   - old: the name of the source chain
//   - n: the first numeric suffix tried under NamingAddNumber
//
// Returns:
//   - string: the new name, recorded as taken except under NamingDup
//   - error: errs.ErrChainNamesExhausted when NamingShort has no free name left
func (g *ChainNameGenerator) MakeNewName(old string, n int) (string, error) {
	switch g.naming {
	case NamingShort:
		return g.makeShortName(old)
	case NamingAddNumber:
		return g.makeNumberedName(old, n), nil
	default:
		return old, nil
	}
}

func (g *ChainNameGenerator) makeShortName(preferred string) (string, error) {
	if g.used.Track(preferred) {
		return preferred, nil
	}

	for i := 0; i < len(nameSymbols); i++ {
		if name := nameSymbols[i : i+1]; g.used.Track(name) {
			return name, nil
		}
	}

	var buf [2]byte
	for i := 0; i < len(nameSymbols); i++ {
		buf[0] = nameSymbols[i]
		for j := 0; j < len(nameSymbols); j++ {
			buf[1] = nameSymbols[j]
			if name := string(buf[:]); g.used.Track(name) {
				return name, nil
			}
		}
	}

	return "", errs.ErrChainNamesExhausted
}

func (g *ChainNameGenerator) makeNumberedName(base string, n int) string {
	name := base + strconv.Itoa(n)
	for !g.used.Track(name) {
		n++
		name = base + strconv.Itoa(n)
	}

	return name
}
