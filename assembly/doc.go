// Package assembly builds biological assemblies: it applies the symmetry
// operators listed for an assembly to copies of chains or subchains and
// names the copies so that they do not clash.
//
// # Naming
//
// Copies are named by a ChainNameGenerator:
//
//   - NamingAddNumber (the default) appends a number: A → A1, A2, ...
//   - NamingShort keeps names within two characters, which suits the PDB
//     format: the original name if free, then A-Z, a-z, 0-9, then pairs of
//     those symbols.
//   - NamingDup keeps original names, so copies share them.
//
// # Usage
//
//	st := ... // a structure with models and assemblies
//	err := assembly.ChangeToAssembly(st, "1",
//	    assembly.WithNaming(assembly.NamingShort),
//	    assembly.WithLogger(slog.Default()))
//
// MakeAssembly builds the assembly for a single model without modifying it.
package assembly
