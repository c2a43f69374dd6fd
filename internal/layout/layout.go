// Package layout renders a notation.Notation to a line-width-respecting
// string: a stack of Chunk frames walked iteratively (never natively
// recursive, matching the rest of this module's style), with a look-ahead
// `fits` predicate deciding each Choice.
package layout

import (
	"strings"

	"github.com/aledsdavies/esfmt/internal/notation"
)

// chunk is one pending unit of rendering work: a notation node plus the
// indent level and flat-context flag it should be rendered under.
type chunk struct {
	n      notation.Notation
	indent int
	flat   bool
}

type renderer struct {
	cfg         Options
	stack       []chunk
	col         int
	needsIndent bool
	buf         strings.Builder
}

// Render walks n's notation DAG and returns the formatted text. The layout
// engine is total: it never fails.
func Render(n notation.Notation, opts ...Option) string {
	cfg := NewConfig(opts...)
	r := &renderer{cfg: cfg}
	r.stack = []chunk{{n: n, indent: 0, flat: false}}
	for len(r.stack) > 0 {
		c := r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]
		r.step(c)
	}
	return r.buf.String()
}

func (r *renderer) push(n notation.Notation, indent int, flat bool) {
	r.stack = append(r.stack, chunk{n: n, indent: indent, flat: flat})
}

// step handles one popped chunk by variant.
func (r *renderer) step(c chunk) {
	switch x := c.n.(type) {
	case *notation.Text:
		if r.needsIndent {
			r.buf.WriteString(strings.Repeat(" ", c.indent))
			r.col = c.indent
			r.needsIndent = false
		}
		r.buf.WriteString(x.S)
		r.col += x.Width

	case *notation.Newline:
		r.buf.WriteByte('\n')
		r.needsIndent = true
		r.col = 0

	case *notation.Flat:
		r.push(x.X, c.indent, true)

	case *notation.Indent:
		r.push(x.X, c.indent+r.cfg.IndentUnit, c.flat)

	case *notation.Concat:
		// Push b then a, so a is popped (and printed) first.
		r.push(x.B, c.indent, c.flat)
		r.push(x.A, c.indent, c.flat)

	case *notation.Choice:
		if c.flat || r.fits(x.A, c.indent, c.flat) {
			r.push(x.A, c.indent, c.flat)
		} else {
			r.push(x.B, c.indent, c.flat)
		}

	case *notation.Braced:
		r.push(x.X, c.indent, c.flat)
	}
}

// fits simulates rendering a, followed by everything already queued on the
// real stack, against the remaining width on the current line. It returns
// true as soon as a newline is reached (the rest of the line is moot) or
// the simulated stack drains without overflowing; false if the column
// budget is exceeded first. Choice inside the simulation always picks b
// when not flat, which under-approximates in the direction that keeps
// output legal, since the builder guarantees b's first line is no longer
// than a's.
func (r *renderer) fits(a notation.Notation, indent int, flat bool) bool {
	width := r.cfg.Width
	col := r.col

	sim := make([]chunk, len(r.stack), len(r.stack)+1)
	copy(sim, r.stack)
	sim = append(sim, chunk{n: a, indent: indent, flat: flat})

	for len(sim) > 0 {
		if col > width {
			return false
		}
		c := sim[len(sim)-1]
		sim = sim[:len(sim)-1]

		switch x := c.n.(type) {
		case *notation.Text:
			col += x.Width
		case *notation.Newline:
			return true
		case *notation.Flat:
			sim = append(sim, chunk{n: x.X, indent: c.indent, flat: true})
		case *notation.Indent:
			sim = append(sim, chunk{n: x.X, indent: c.indent + r.cfg.IndentUnit, flat: c.flat})
		case *notation.Concat:
			sim = append(sim, chunk{n: x.B, indent: c.indent, flat: c.flat})
			sim = append(sim, chunk{n: x.A, indent: c.indent, flat: c.flat})
		case *notation.Choice:
			if c.flat {
				sim = append(sim, chunk{n: x.A, indent: c.indent, flat: c.flat})
			} else {
				sim = append(sim, chunk{n: x.B, indent: c.indent, flat: c.flat})
			}
		case *notation.Braced:
			sim = append(sim, chunk{n: x.X, indent: c.indent, flat: c.flat})
		}
	}
	return col <= width
}
