package highlight

import (
	"path/filepath"
	"slices"
	"strings"
)

// Grammar describes how to classify one family of files.
// A Grammar is selected once when a file is opened and never mutated.
type Grammar struct {
	// FileType is the label shown in the status bar.
	FileType string

	// Extensions lists the file extensions, with leading dot, that select this grammar.
	Extensions []string

	// SingleLineComment starts a comment that runs to the end of the row.
	SingleLineComment string

	// MultiLineStart and MultiLineEnd delimit comments that may span rows.
	MultiLineStart string
	MultiLineEnd   string

	HighlightNumbers bool
	HighlightStrings bool

	// Keywords1 are control keywords, Keywords2 are type keywords.
	Keywords1 []string
	Keywords2 []string
}

// HasMultiLineComments reports whether both multi-line delimiters are set.
func (g *Grammar) HasMultiLineComments() bool {
	return g.MultiLineStart != "" && g.MultiLineEnd != ""
}

// keyword returns the class of word, or Normal if it is not a keyword.
func (g *Grammar) keyword(word string) Class {
	if slices.Contains(g.Keywords1, word) {
		return Keyword1
	}
	if slices.Contains(g.Keywords2, word) {
		return Keyword2
	}
	return Normal
}

// C is the grammar for C and C++ sources.
var C = &Grammar{
	FileType:          "c",
	Extensions:        []string{".c", ".h", ".cpp"},
	SingleLineComment: "//",
	MultiLineStart:    "/*",
	MultiLineEnd:      "*/",
	HighlightNumbers:  true,
	HighlightStrings:  true,
	Keywords1: []string{
		"switch", "if", "while", "for", "break", "continue", "return", "else",
		"struct", "union", "typedef", "static", "enum", "class", "case",
	},
	Keywords2: []string{
		"int", "long", "double", "float", "char", "unsigned", "signed", "void",
	},
}

// Grammars is the table consulted by Select.
var Grammars = []*Grammar{C}

// Select returns the grammar for filename based on its extension, or nil
// when no grammar applies.
func Select(filename string) *Grammar {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return nil
	}
	for _, g := range Grammars {
		if slices.Contains(g.Extensions, ext) {
			return g
		}
	}
	return nil
}
