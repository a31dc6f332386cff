package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HTML writes markup and remembers the first write error, so components can
// emit a sequence of fragments and check once at the end.
type HTML struct {
	ctx context.Context
	w   io.Writer
	err error
}

func NewHTML(ctx context.Context, w io.Writer) *HTML {
	return &HTML{ctx: ctx, w: w}
}

// Raw writes trusted markup as is.
func (h *HTML) Raw(s ...string) {
	for _, part := range s {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, part)
	}
}

// Text writes escaped user content.
func (h *HTML) Text(s string) {
	h.Raw(templ.EscapeString(s))
}

// Attr writes name="value" with the value escaped, preceded by a space.
func (h *HTML) Attr(name, value string) {
	h.Raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// Component renders a child component in place.
func (h *HTML) Component(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// Context is the render context, for components that read request state.
func (h *HTML) Context() context.Context {
	return h.ctx
}

func (h *HTML) Err() error {
	return h.err
}

// Func adapts a writer callback into a templ.Component.
func Func(fn func(h *HTML)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTML(ctx, w)
		fn(h)
		return h.Err()
	})
}
