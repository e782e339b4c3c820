// Package gemmi reads macromolecular structure data published as mmJSON and
// builds biological assemblies from structure models.
//
// mmJSON is the JSON rendering of mmCIF used by PDBj: one data block, given
// as an object of categories, each an object of equally long columns. The
// importer turns it into a CIF document, the same block/pair/loop shape an
// mmCIF parser produces, so that downstream code does not care which of the
// two formats it came from.
//
// # Core Features
//
//   - mmJSON import into a cif.Document, with syntax errors reported by line
//   - Transparent decompression of .gz, .zst, .s2, .lz4 and .xz inputs
//   - CIF text output and xxHash64 document fingerprints
//   - Assembly expansion with Short, AddNumber or Dup chain naming
//   - Optional structured logging through log/slog
//
// # Basic Usage
//
// Reading a file and writing it back as CIF:
//
//	import "github.com/mhemmit/gemmi"
//
//	doc, err := gemmi.ReadMmJSON("1abc.json.gz")
//	if err != nil {
//	    return err
//	}
//	if err := cif.Write(os.Stdout, doc); err != nil {
//	    return err
//	}
//
// Replacing the models of a structure with its first assembly:
//
//	err := gemmi.ChangeToAssembly(st, "1",
//	    assembly.WithNaming(assembly.NamingShort),
//	    assembly.WithLogger(logger))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the mmjson and
// assembly packages. For options such as strict number handling or reading
// from an already consumed-once buffer, use those packages directly.
package gemmi

import (
	"io"

	"github.com/mhemmit/gemmi/assembly"
	"github.com/mhemmit/gemmi/cif"
	"github.com/mhemmit/gemmi/fileio"
	"github.com/mhemmit/gemmi/mmjson"
	"github.com/mhemmit/gemmi/model"
)

// ReadMmJSON reads an mmJSON file, decompressing it first when the path
// ends with a compression suffix such as .gz or .zst.
//
// Parameters:
//   - path: the file to read
//   - opts: importer options, see mmjson.WithStrictNumbers
//
// Returns:
//   - *cif.Document: the document, with Source set to path
//   - error: errs.ErrIO for unreadable files, errs.ErrFormat for bad content
func ReadMmJSON(path string, opts ...mmjson.Option) (*cif.Document, error) {
	return mmjson.ReadAny(fileio.NewMaybeCompressed(path), opts...)
}

// ReadMmJSONBytes parses mmJSON text. The slice is handed over to the parser
// and must not be used afterwards.
func ReadMmJSONBytes(data []byte, name string, opts ...mmjson.Option) (*cif.Document, error) {
	return mmjson.ReadBytes(data, name, opts...)
}

// WriteCIF writes doc as CIF text.
func WriteCIF(w io.Writer, doc *cif.Document) error {
	return cif.Write(w, doc)
}

// MakeAssembly builds the assembly asm from m without modifying m.
func MakeAssembly(asm *model.Assembly, m *model.Model, opts ...assembly.Option) (*model.Model, error) {
	return assembly.MakeAssembly(asm, m, opts...)
}

// ChangeToAssembly replaces the models of st with the named assembly and
// drops its connections.
func ChangeToAssembly(st *model.Structure, name string, opts ...assembly.Option) error {
	return assembly.ChangeToAssembly(st, name, opts...)
}
