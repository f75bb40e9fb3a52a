package buffer

// DefaultTabStop is the tab stop used when none is configured.
const DefaultTabStop = 4

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithTabStop sets the column multiple tabs expand to.
func WithTabStop(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabStop = width
		}
	}
}
