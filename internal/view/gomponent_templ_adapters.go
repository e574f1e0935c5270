package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// --- GOMPONENTS -> TEMPL ADAPTER ---

// GomponentToTemplAdapter wraps a gomponents.Node to satisfy the templ.Component interface.
// This allows Gomponents sections to be rendered inside the templ layout.
type GomponentToTemplAdapter struct {
	Node gomponents.Node
}

// Render implements the templ.Component interface by delegating to the node.
func (a *GomponentToTemplAdapter) Render(ctx context.Context, w io.Writer) error {
	return a.Node.Render(w)
}

// AdaptGomponentToTempl converts a Gomponents Node into a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

// --- TEMPL -> GOMPONENTS ADAPTER ---

// TemplToGomponentAdapter wraps a templ.Component to satisfy the gomponents.Node interface.
// Gomponents' Render has no context parameter, so the adapter captures the
// caller's context at construction.
type TemplToGomponentAdapter struct {
	ctx       context.Context
	Component templ.Component
}

// Render implements the gomponents.Node interface.
func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	return a.Component.Render(a.ctx, w)
}

// AdaptTemplToGomponent converts a templ Component into a Gomponents Node
// that renders with ctx.
func AdaptTemplToGomponent(ctx context.Context, component templ.Component) gomponents.Node {
	if ctx == nil {
		ctx = context.Background()
	}
	return &TemplToGomponentAdapter{ctx: ctx, Component: component}
}
