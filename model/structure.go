package model

import "github.com/mhemmit/gemmi/geom"

// Operator is one named symmetry operation of an assembly.
type Operator struct {
	Name      string
	Type      string // e.g. "point symmetry operation"; informational
	Transform geom.Transform
}

// Generator applies its operators to either a list of chains (as PDB files
// describe assemblies) or a list of subchains (as mmCIF files do).
type Generator struct {
	Chains    []string
	Subchains []string
	Operators []Operator
}

// Assembly is a named biological assembly.
type Assembly struct {
	Name       string
	Generators []Generator
}

// AtomAddress identifies an atom by chain, residue and atom name.
type AtomAddress struct {
	ChainName string
	SeqID     SeqID
	ResName   string
	AtomName  string
	AltLoc    byte
}

// Connection is a bond listed in the file (struct_conn or LINK/SSBOND),
// referring to atoms by address.
type Connection struct {
	Name             string
	LinkID           string
	Type             string
	Partner1         AtomAddress
	Partner2         AtomAddress
	ReportedDistance float64
}

// Structure is a set of models together with the assemblies and connections
// listed for them.
type Structure struct {
	Name        string
	Models      []Model
	Assemblies  []Assembly
	Connections []Connection
}

// FindAssembly returns the assembly with the given name, or nil.
func (s *Structure) FindAssembly(name string) *Assembly {
	for i := range s.Assemblies {
		if s.Assemblies[i].Name == name {
			return &s.Assemblies[i]
		}
	}

	return nil
}

// AssemblyNames returns the names of all assemblies in order.
func (s *Structure) AssemblyNames() []string {
	names := make([]string, len(s.Assemblies))
	for i := range s.Assemblies {
		names[i] = s.Assemblies[i].Name
	}

	return names
}
