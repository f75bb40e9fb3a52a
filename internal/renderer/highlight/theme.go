package highlight

import (
	"fmt"

	"github.com/dshills/kite/internal/renderer/core"
)

// Theme defines colors for each highlight class.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Styles maps highlight classes to their styles.
	Styles map[Class]core.Style
}

// StyleFor returns the style for a given class.
func (t *Theme) StyleFor(c Class) core.Style {
	if style, ok := t.Styles[c]; ok {
		return style
	}
	return core.DefaultStyle()
}

// DefaultTheme returns the palette-indexed theme used when no
// configuration overrides colors.
func DefaultTheme() *Theme {
	return &Theme{
		Name: "default",
		Styles: map[Class]core.Style{
			Normal:           core.NewStyle(core.ColorFromIndex(7)),
			Number:           core.NewStyle(core.ColorFromIndex(1)),
			Match:            core.NewStyle(core.ColorFromIndex(4)),
			String:           core.NewStyle(core.ColorFromIndex(5)),
			Comment:          core.NewStyle(core.ColorFromIndex(6)),
			MultiLineComment: core.NewStyle(core.ColorFromIndex(6)),
			Keyword1:         core.NewStyle(core.ColorFromIndex(2)),
			Keyword2:         core.NewStyle(core.ColorFromIndex(3)),
		},
	}
}

// Override returns a copy of t with foreground colors replaced from
// colors, which maps class names to color strings accepted by
// core.ParseColor.
func (t *Theme) Override(colors map[string]string) (*Theme, error) {
	out := &Theme{Name: t.Name, Styles: make(map[Class]core.Style, len(t.Styles))}
	for c, s := range t.Styles {
		out.Styles[c] = s
	}
	for name, value := range colors {
		class, ok := ParseClass(name)
		if !ok {
			return nil, fmt.Errorf("unknown highlight class %q", name)
		}
		color, err := core.ParseColor(value)
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", name, err)
		}
		out.Styles[class] = core.NewStyle(color)
		out.Name = "custom"
	}
	return out, nil
}
