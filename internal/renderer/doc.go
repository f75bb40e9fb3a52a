// Package renderer provides the display layer for the Kite editor.
//
// The renderer is responsible for:
//   - Painting the visible slice of rendered rows
//   - Mapping highlight classes to theme styles
//   - Drawing the status and message bars
//   - Placing the terminal cursor
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│           Renderer (Facade)             │
//	├─────────────────────────────────────────┤
//	│  Highlight │ Theme │ Viewport           │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ NullBackend (tests) │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	r := renderer.New(b, highlight.DefaultTheme())
//	r.Render(session.Frame())
package renderer
