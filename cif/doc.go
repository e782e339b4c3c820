// Package cif holds the tabular document model that imported data lands in.
//
// A Document is a list of named Blocks; a Block is an ordered list of Items;
// an Item is either a Pair (one tag, one value) or a Loop (a table whose
// columns are tags). Tags have the form _category.column. Values are stored
// as CIF tokens: bare words, quoted strings, ;-delimited text fields, or the
// null markers ? (unknown) and . (not applicable).
//
// Quote and AsString convert between plain strings and tokens; WriteTo
// renders a document as CIF text.
package cif
