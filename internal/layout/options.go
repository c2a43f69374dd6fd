package layout

// Options configures the layout engine: maximum line width and
// indentation unit, defaulting to 80 and 2.
type Options struct {
	Width      int
	IndentUnit int
}

// Option mutates Options, following the lexer's functional-options pattern.
type Option func(*Options)

// WithWidth sets the maximum line width.
func WithWidth(w int) Option {
	return func(o *Options) { o.Width = w }
}

// WithIndentUnit sets the number of columns added per indentation level.
func WithIndentUnit(u int) Option {
	return func(o *Options) { o.IndentUnit = u }
}

func defaultOptions() Options {
	return Options{Width: 80, IndentUnit: 2}
}

// NewConfig builds an Options value from defaults plus the given overrides.
func NewConfig(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
