package cif

import "strings"

// IsNull reports whether a value is one of the CIF null markers, ? or .
func IsNull(value string) bool {
	return value == "?" || value == "."
}

// reservedPrefixes cannot start a bare value, compared case-insensitively.
var reservedPrefixes = []string{"data_", "save_"}

// reservedWords cannot be used as bare values, compared case-insensitively.
var reservedWords = []string{"loop_", "global_", "stop_"}

// isBare reports whether s can be written without quotes.
func isBare(s string) bool {
	if s == "" || IsNull(s) {
		return false
	}
	switch s[0] {
	case '_', '#', '$', ';', '[', ']':
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= ' ' || c == 0x7f || c == '\'' || c == '"' {
			return false
		}
	}
	lower := strings.ToLower(s)
	for _, p := range reservedPrefixes {
		if strings.HasPrefix(lower, p) {
			return false
		}
	}
	for _, w := range reservedWords {
		if lower == w {
			return false
		}
	}

	return true
}

// Quote turns a string into a CIF token that reads back as the same string.
//
// Plain words are returned unchanged. Others are wrapped in single quotes,
// double quotes when the string contains a single quote, or a ;-delimited
// text field when it contains both kinds of quotes or a newline. A string
// with a line starting with ';' has no CIF form: its text field is closed
// early, and WriteTo rejects it.
func Quote(s string) string {
	if isBare(s) {
		return s
	}
	if strings.IndexByte(s, '\n') < 0 {
		if strings.IndexByte(s, '\'') < 0 {
			return "'" + s + "'"
		}
		if strings.IndexByte(s, '"') < 0 {
			return `"` + s + `"`
		}
	}

	return ";" + s + "\n;"
}

// AsString returns the string a CIF token stands for: quotes and text field
// delimiters are removed and the null markers become an empty string.
func AsString(token string) string {
	if token == "" || IsNull(token) {
		return ""
	}
	switch token[0] {
	case '\'', '"':
		if len(token) >= 2 && token[len(token)-1] == token[0] {
			return token[1 : len(token)-1]
		}
	case ';':
		if len(token) >= 3 && strings.HasSuffix(token, "\n;") {
			return token[1 : len(token)-2]
		}
	}

	return token
}

// isTextField reports whether a token is a ;-delimited text field, which has
// to start at the beginning of a line.
func isTextField(token string) bool {
	return strings.HasPrefix(token, ";")
}
