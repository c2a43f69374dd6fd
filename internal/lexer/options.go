package lexer

// Options governs which trivia tokens the lexer emits. Defaults (the zero
// value) silently consume whitespace and comments.
type Options struct {
	IncludeComments  bool
	IncludeWhitespace bool
}

// Option configures Options, following the usual functional-options
// pattern rather than a struct literal, so new trivia flags can be added
// without breaking existing call sites.
type Option func(*Options)

// WithComments makes the lexer emit Comment/LineComment tokens instead of
// silently skipping them.
func WithComments() Option {
	return func(o *Options) { o.IncludeComments = true }
}

// WithWhitespace makes the lexer emit Whitespace tokens instead of silently
// skipping them.
func WithWhitespace() Option {
	return func(o *Options) { o.IncludeWhitespace = true }
}
