// Package core holds the cell and style values shared by the renderer,
// the highlighter theme and the terminal backends.
package core

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Attribute is a set of text attribute bits.
type Attribute uint16

const (
	AttrNone Attribute = 0
	AttrBold Attribute = 1 << (iota - 1)
	AttrDim
	AttrReverse
)

// Has reports whether every bit of attr is set.
func (a Attribute) Has(attr Attribute) bool {
	return attr != 0 && a&attr == attr
}

// Color is a terminal color. The zero value is RGB black. When Indexed is
// set R holds a palette index and G and B are unused; when Default is set
// every other field is unused.
type Color struct {
	R, G, B uint8
	Indexed bool
	Default bool
}

// ColorDefault leaves the color to the terminal.
var ColorDefault = Color{Default: true}

var errBadHex = errors.New("invalid hex color")

func ColorFromRGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

func ColorFromIndex(index uint8) Color { return Color{R: index, Indexed: true} }

// ColorFromHex parses "#rrggbb" or the short "#rgb" form. The leading '#'
// is optional.
func ColorFromHex(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) == 3 {
		var long [6]byte
		for i := 0; i < 3; i++ {
			long[2*i], long[2*i+1] = digits[i], digits[i]
		}
		digits = string(long[:])
	}
	rgb, err := hex.DecodeString(digits)
	if err != nil || len(rgb) != 3 {
		return Color{}, fmt.Errorf("%w: %q", errBadHex, s)
	}
	return ColorFromRGB(rgb[0], rgb[1], rgb[2]), nil
}

// ParseColor reads a theme color: empty or "default", a palette index in
// 0..255, or a hex color starting with '#'.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "", strings.EqualFold(s, "default"):
		return ColorDefault, nil
	case s[0] == '#':
		return ColorFromHex(s)
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	return ColorFromIndex(uint8(n)), nil
}

func (c Color) IsDefault() bool { return c.Default }

// Equals compares colors by the fields their kind uses.
func (c Color) Equals(o Color) bool {
	switch {
	case c.Default || o.Default:
		return c.Default == o.Default
	case c.Indexed || o.Indexed:
		return c.Indexed == o.Indexed && c.R == o.R
	}
	return c == o
}

// String renders "default", "idx(N)" or "#RRGGBB".
func (c Color) String() string {
	switch {
	case c.Default:
		return "default"
	case c.Indexed:
		return "idx(" + strconv.Itoa(int(c.R)) + ")"
	}
	return "#" + strings.ToUpper(hex.EncodeToString([]byte{c.R, c.G, c.B}))
}

// Style is the look of one cell.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle uses the terminal colors with no attributes.
func DefaultStyle() Style { return NewStyle(ColorDefault) }

// NewStyle sets the foreground and leaves the background to the terminal.
func NewStyle(fg Color) Style {
	return Style{Foreground: fg, Background: ColorDefault}
}

// Reverse returns s with reverse video turned on.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

func (s Style) Equals(o Style) bool {
	return s.Attributes == o.Attributes &&
		s.Foreground.Equals(o.Foreground) &&
		s.Background.Equals(o.Background)
}

// Cell is one screen position. Width is the number of columns the rune
// occupies.
type Cell struct {
	Rune  rune
	Width int
	Style Style
}

// EmptyCell is a default-styled space.
func EmptyCell() Cell { return NewStyledCell(' ', DefaultStyle()) }

func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

func (c Cell) Equals(o Cell) bool {
	return c.Rune == o.Rune && c.Width == o.Width && c.Style.Equals(o.Style)
}

// RuneWidth is the display width of r. Control characters occupy no
// columns.
func RuneWidth(r rune) int {
	if unicode.IsControl(r) {
		return 0
	}
	return runewidth.RuneWidth(r)
}
