// Package mmjson imports mmJSON, the JSON rendering of mmCIF data served by
// PDBj, into a cif.Document.
//
// An mmJSON file holds one data block:
//
//	{"data_1ABC": {
//	    "entry": {"id": ["1ABC"]},
//	    "atom_type": {"symbol": ["C", "N", "O"]}
//	}}
//
// Categories with one row become tag-value pairs (_entry.id 1ABC), others
// become loops. Values map to CIF tokens: numbers keep their text, strings
// are quoted where needed, null is ? and false is . (CIF's "inapplicable").
//
// Three entry points share one conversion:
//
//	doc, err := mmjson.ReadInsitu(jsontree.NewBuffer(data), "1abc.json") // consumes data
//	doc, err := mmjson.Read("1abc.json")
//	doc, err := mmjson.ReadAny(fileio.NewMaybeCompressed("1abc.json.gz"))
//
// CIF-JSON (the COMCIFS convention) is not supported.
package mmjson
