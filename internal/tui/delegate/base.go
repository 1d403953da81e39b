// Package delegate provides a list.ItemDelegate that only needs a render
// function.
package delegate

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders a single list row.
type RenderFunc func(w io.Writer, m list.Model, index int, item list.Item)

// Base is a one-line delegate with no update logic.
type Base struct {
	height   int
	renderFn RenderFunc
}

// New creates a delegate with height 1 and no spacing.
func New(renderFn RenderFunc) Base {
	return Base{height: 1, renderFn: renderFn}
}

// Height implements list.ItemDelegate
func (d Base) Height() int { return d.height }

// Spacing implements list.ItemDelegate
func (d Base) Spacing() int { return 0 }

// Update implements list.ItemDelegate
func (d Base) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

// Render implements list.ItemDelegate
func (d Base) Render(w io.Writer, m list.Model, index int, item list.Item) {
	if d.renderFn != nil {
		d.renderFn(w, m, index, item)
	}
}
