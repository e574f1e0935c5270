// Package search implements the startup-domain search bar: its local state,
// the callback it drives, and the HTTP endpoint that backs it.
package search

import (
	"context"
	"strings"

	"github.com/nfrund/risq/internal/content"
)

// KeyEnter is the key name that submits the widget while the input has focus.
const KeyEnter = "Enter"

// Callback receives a trimmed, non-empty domain on every submission.
type Callback func(ctx context.Context, domain string)

// Widget is the state of one search bar: a single text value plus the
// callback it reports to. It never clears its value after a submission.
type Widget struct {
	value       string
	placeholder string
	onSearch    Callback
}

// NewWidget creates a widget. An empty placeholder selects the default copy.
func NewWidget(onSearch Callback, placeholder string) *Widget {
	if placeholder == "" {
		placeholder = content.DefaultPlaceholder
	}
	return &Widget{onSearch: onSearch, placeholder: placeholder}
}

// SetValue records the current input text.
func (w *Widget) SetValue(v string) { w.value = v }

// Value returns the current input text, untrimmed.
func (w *Widget) Value() string { return w.value }

// Placeholder returns the hint shown in the empty input.
func (w *Widget) Placeholder() string { return w.placeholder }

// Submit invokes the callback with the trimmed value. Whitespace-only input is
// a no-op. It reports whether the callback ran.
func (w *Widget) Submit(ctx context.Context) bool {
	term := strings.TrimSpace(w.value)
	if term == "" {
		return false
	}
	if w.onSearch != nil {
		w.onSearch(ctx, term)
	}
	return true
}

// KeyPress handles a key signal from the focused input. Only Enter submits.
func (w *Widget) KeyPress(ctx context.Context, key string) bool {
	if key != KeyEnter {
		return false
	}
	return w.Submit(ctx)
}
