package highlight

import "strings"

// Document is the row storage a Highlighter classifies.
type Document interface {
	// Len returns the number of rows.
	Len() int
	// RenderAt returns the rendered text of row i.
	RenderAt(i int) []rune
	// SetHighlight stores the classes for row i.
	SetHighlight(i int, hl []Class)
}

// separators terminate keywords; NUL and space are also separators.
const separators = ",.()+-/*=~%<>[];"

// IsSeparator reports whether r ends a word for keyword matching.
func IsSeparator(r rune) bool {
	return r == ' ' || r == 0 || strings.ContainsRune(separators, r)
}

// Highlighter classifies documents using a single grammar.
// A nil grammar classifies everything as Normal.
type Highlighter struct {
	grammar *Grammar

	singleLine []rune
	mlStart    []rune
	mlEnd      []rune
}

// New creates a Highlighter for grammar g, which may be nil.
func New(g *Grammar) *Highlighter {
	h := &Highlighter{grammar: g}
	if g != nil {
		h.singleLine = []rune(g.SingleLineComment)
		if g.HasMultiLineComments() {
			h.mlStart = []rune(g.MultiLineStart)
			h.mlEnd = []rune(g.MultiLineEnd)
		}
	}
	return h
}

// Grammar returns the grammar in use, or nil.
func (h *Highlighter) Grammar() *Grammar {
	return h.grammar
}

// Apply re-highlights every row of doc, top to bottom. The open
// multi-line comment state is carried from each row into the next.
func (h *Highlighter) Apply(doc Document) {
	inComment := false
	for i := 0; i < doc.Len(); i++ {
		var hl []Class
		hl, inComment = h.Line(doc.RenderAt(i), inComment)
		doc.SetHighlight(i, hl)
	}
}

// Line classifies one rendered row. inComment reports whether the row
// starts inside a multi-line comment; the returned flag reports whether
// the next row does. The result always has len(render) entries.
func (h *Highlighter) Line(render []rune, inComment bool) ([]Class, bool) {
	hl := make([]Class, len(render))
	g := h.grammar
	if g == nil {
		return hl, false
	}

	var quote rune // open string delimiter, 0 outside strings
	i := 0
	for i < len(render) {
		c := render[i]
		prev := Normal
		if i > 0 {
			prev = hl[i-1]
		}

		if len(h.singleLine) > 0 && quote == 0 && !inComment && hasPrefixAt(render, i, h.singleLine) {
			fill(hl[i:], Comment)
			break
		}

		if h.mlStart != nil && quote == 0 {
			if inComment {
				hl[i] = MultiLineComment
				if hasPrefixAt(render, i, h.mlEnd) {
					n := len(h.mlEnd)
					fill(hl[i:i+n], MultiLineComment)
					i += n
					inComment = false
					continue
				}
				i++
				continue
			}
			if hasPrefixAt(render, i, h.mlStart) {
				n := len(h.mlStart)
				fill(hl[i:i+n], MultiLineComment)
				i += n
				inComment = true
				continue
			}
		}

		// Numbers are checked before strings, so digits inside an open
		// string are still Number.
		if g.HighlightNumbers {
			if isDigit(c) || (c == '.' && prev == Number) {
				hl[i] = Number
				i++
				continue
			}
		}

		if g.HighlightStrings {
			if quote != 0 {
				hl[i] = String
				if c == '\\' && i+1 < len(render) {
					hl[i+1] = String
					i += 2
					continue
				}
				if c == quote {
					quote = 0
				}
				i++
				continue
			}
			if c == '"' || c == '\'' {
				quote = c
				hl[i] = String
				i++
				continue
			}
		}

		if i == 0 || IsSeparator(render[i-1]) {
			end := i
			for end < len(render) && !IsSeparator(render[end]) {
				end++
			}
			if end > i {
				if class := g.keyword(string(render[i:end])); class != Normal {
					fill(hl[i:end], class)
					i = end
					continue
				}
			}
		}
		i++
	}

	return hl, inComment
}

func hasPrefixAt(s []rune, at int, prefix []rune) bool {
	if len(prefix) == 0 || at+len(prefix) > len(s) {
		return false
	}
	for j, r := range prefix {
		if s[at+j] != r {
			return false
		}
	}
	return true
}

func fill(hl []Class, c Class) {
	for j := range hl {
		hl[j] = c
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
