// Package errs defines the sentinel errors returned by gemmi packages.
//
// Errors are returned wrapped with context, so callers should compare them
// with errors.Is:
//
//	doc, err := mmjson.Read("1abc.json")
//	if errors.Is(err, errs.ErrFormat) {
//	    // malformed or non-mmJSON input
//	}
package errs

import "errors"

// Input format errors.
var (
	// ErrFormat reports malformed JSON, an unexpected mmJSON shape, a column of
	// wrong length or a JSON value type that has no CIF representation.
	ErrFormat = errors.New("format error")
	// ErrBufferConsumed is returned when a parse buffer is handed over twice.
	ErrBufferConsumed = errors.New("parse buffer already consumed")
)

// I/O errors.
var (
	// ErrIO reports a failure to open, size or fully read an input file.
	ErrIO = errors.New("i/o error")
	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression")
)

// Assembly errors.
var (
	// ErrChainNamesExhausted means all 1- and 2-character chain names are taken.
	ErrChainNamesExhausted = errors.New("run out of 1- and 2-letter chain names")
	// ErrAssemblyNotFound is returned for an assembly name the structure does not list.
	ErrAssemblyNotFound = errors.New("wrong assembly name")
	// ErrNoAssemblies is returned when the structure lists no assemblies at all.
	ErrNoAssemblies = errors.New("no bioassemblies are listed for this structure")
)
