// Package highlight classifies rendered text for syntax coloring.
//
// Every rendered character of every row carries exactly one Class. The
// classes drive foreground color selection only.
package highlight

import "strings"

// Class is the highlight category of a single rendered character.
type Class uint8

// Highlight classes.
const (
	Normal Class = iota
	Number
	Match
	String
	Comment
	MultiLineComment
	Keyword1
	Keyword2

	classCount
)

var classNames = [classCount]string{
	Normal:           "normal",
	Number:           "number",
	Match:            "match",
	String:           "string",
	Comment:          "comment",
	MultiLineComment: "mlcomment",
	Keyword1:         "keyword1",
	Keyword2:         "keyword2",
}

// String returns the configuration name of the class.
func (c Class) String() string {
	if c < classCount {
		return classNames[c]
	}
	return "unknown"
}

// ParseClass returns the class with the given name.
func ParseClass(name string) (Class, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range classNames {
		if n == name {
			return Class(i), true
		}
	}
	return Normal, false
}

// Classes returns all highlight classes in declaration order.
func Classes() []Class {
	out := make([]Class, classCount)
	for i := range out {
		out[i] = Class(i)
	}
	return out
}
