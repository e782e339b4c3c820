// Package model holds the hierarchy of a macromolecular structure:
// a Structure has Models, a Model has Chains, a Chain has Residues and a
// Residue has Atoms. Residues also carry a subchain label (label_asym_id in
// mmCIF), a grouping that can split one chain into polymer, ligands and
// waters.
//
// Values are plain structs with exported fields. Clone methods make deep
// copies, so modified copies never share atoms with the source.
package model
