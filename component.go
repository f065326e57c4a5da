package parlo

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Localized builds a component whose translator is resolved through
// [FromContext] at render time. The component factory receives whichever
// translator the render context carries, so the same component adapts to
// any enclosing provider.
func Localized(fn func(*Translator) templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return fn(FromContext(ctx)).Render(ctx, w)
	})
}

// Text renders the translated msgid as escaped text, resolving the
// translator from the render context.
func Text(msgid string, vars ...any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(FromContext(ctx).T(msgid, vars...)))
		return err
	})
}

// Wrap publishes the provider to child's render context, making it the
// nearest provider for every localized component beneath it.
func (p *Provider) Wrap(child templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return child.Render(p.Context(ctx), w)
	})
}

// Component binds fn to this provider regardless of what the render context
// carries: the explicit provider wins over the ambient one. Descendants
// resolve to the same provider.
func (p *Provider) Component(fn func(*Translator) templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return fn(p.Translator()).Render(p.Context(ctx), w)
	})
}
