package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithTabWidth sets the buffer's tab width.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}

// WithText sets the buffer's initial content. The cursor starts at the
// beginning.
func WithText(s string) Option {
	return func(b *Buffer) {
		b.text = normalizeLineEndings(s)
	}
}
