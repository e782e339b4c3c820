package model

import "github.com/mhemmit/gemmi/geom"

// Atom is a single atom site.
type Atom struct {
	Name     string
	AltLoc   byte // 0 when the atom has no alternative location
	Element  string
	Charge   int8
	Serial   int
	Pos      geom.Position
	Occ      float32
	BIso     float32
	Flag     byte
	Fraction float32
}

// SeqID is a sequence number with an optional insertion code.
type SeqID struct {
	Num   int
	ICode byte // ' ' or 0 when absent
}

// Residue is a residue or a ligand, with its atoms.
type Residue struct {
	Name     string
	SeqID    SeqID
	Subchain string // label_asym_id; empty when unknown
	Entity   string
	Atoms    []Atom
}

// Clone returns a deep copy of r.
func (r *Residue) Clone() Residue {
	c := *r
	c.Atoms = append([]Atom(nil), r.Atoms...)

	return c
}

// Chain is a named, ordered list of residues.
type Chain struct {
	Name     string
	Residues []Residue
}

// Clone returns a deep copy of c.
func (c *Chain) Clone() Chain {
	out := Chain{Name: c.Name}
	if c.Residues != nil {
		out.Residues = make([]Residue, len(c.Residues))
		for i := range c.Residues {
			out.Residues[i] = c.Residues[i].Clone()
		}
	}

	return out
}

// Subchain returns the contiguous run of residues labelled with the given
// subchain, starting at its first occurrence. It returns nil when absent.
// The returned slice shares storage with c.
func (c *Chain) Subchain(name string) []Residue {
	for i := range c.Residues {
		if c.Residues[i].Subchain != name {
			continue
		}
		j := i + 1
		for j < len(c.Residues) && c.Residues[j].Subchain == name {
			j++
		}

		return c.Residues[i:j:j]
	}

	return nil
}

// CountAtoms returns the number of atoms in c.
func (c *Chain) CountAtoms() int {
	n := 0
	for i := range c.Residues {
		n += len(c.Residues[i].Atoms)
	}

	return n
}

// Model is one model of a structure (one of the NMR models, or the only
// model of a crystal structure).
type Model struct {
	Name   string
	Chains []Chain
}

// Clone returns a deep copy of m.
func (m *Model) Clone() Model {
	out := Model{Name: m.Name}
	if m.Chains != nil {
		out.Chains = make([]Chain, len(m.Chains))
		for i := range m.Chains {
			out.Chains[i] = m.Chains[i].Clone()
		}
	}

	return out
}

// FindChain returns the first chain with the given name, or nil.
func (m *Model) FindChain(name string) *Chain {
	for i := range m.Chains {
		if m.Chains[i].Name == name {
			return &m.Chains[i]
		}
	}

	return nil
}

// ChainNames returns the names of all chains in order, duplicates included.
func (m *Model) ChainNames() []string {
	names := make([]string, len(m.Chains))
	for i := range m.Chains {
		names[i] = m.Chains[i].Name
	}

	return names
}

// SubchainToChain maps every subchain label present in m to the name of
// the first chain that contains it.
func (m *Model) SubchainToChain() map[string]string {
	mapping := make(map[string]string)
	for i := range m.Chains {
		for j := range m.Chains[i].Residues {
			sub := m.Chains[i].Residues[j].Subchain
			if sub == "" {
				continue
			}
			if _, ok := mapping[sub]; !ok {
				mapping[sub] = m.Chains[i].Name
			}
		}
	}

	return mapping
}

// GetSubchain returns the residues of the named subchain from the first
// chain containing it, or nil. The returned slice shares storage with m.
func (m *Model) GetSubchain(name string) []Residue {
	for i := range m.Chains {
		if span := m.Chains[i].Subchain(name); span != nil {
			return span
		}
	}

	return nil
}

// CountAtoms returns the number of atoms in m.
func (m *Model) CountAtoms() int {
	n := 0
	for i := range m.Chains {
		n += m.Chains[i].CountAtoms()
	}

	return n
}
