package delegate_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/bubbles/list"

	"github.com/blackwell-systems/guidectl/internal/tui/delegate"
)

type row string

func (r row) FilterValue() string { return string(r) }

func TestBase(t *testing.T) {
	d := delegate.New(func(w io.Writer, _ list.Model, index int, item list.Item) {
		_, _ = io.WriteString(w, string(item.(row)))
	})

	if d.Height() != 1 || d.Spacing() != 0 {
		t.Errorf("Height/Spacing = %d/%d, want 1/0", d.Height(), d.Spacing())
	}
	if cmd := d.Update(nil, nil); cmd != nil {
		t.Error("Update should return nil")
	}

	var buf bytes.Buffer
	d.Render(&buf, list.Model{}, 0, row("hello"))
	if buf.String() != "hello" {
		t.Errorf("Render wrote %q", buf.String())
	}

	var empty bytes.Buffer
	delegate.New(nil).Render(&empty, list.Model{}, 0, row("x"))
	if empty.Len() != 0 {
		t.Error("nil render func should write nothing")
	}
}
