package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/journal/internal/model"
	"github.com/Makepad-fr/journal/internal/ui"
)

// entryItem adapts model.Entry to list.Item.
type entryItem struct {
	model.Entry
}

func (i entryItem) FilterValue() string { return i.Title + " " + i.Body }

// entryDelegate renders an entry on two lines: star + title, then a body
// preview with the entry number.
type entryDelegate struct{}

func (d entryDelegate) Height() int                               { return 2 }
func (d entryDelegate) Spacing() int                              { return 1 }
func (d entryDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d entryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(entryItem)
	if !ok {
		return
	}
	width := m.Width() - 4
	if width < 24 {
		width = 24
	}

	star := mutedStyle.Render(starOff)
	title := ui.Truncate(it.Title, width)
	if it.Important {
		star = importantStyle.Render(starOn)
		title = importantStyle.Render(title)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}

	num := fmt.Sprintf("Entry #%d", it.ID)
	pw := width - len(num) - 2
	if pw < 10 {
		pw = 10
	}
	preview := ui.Truncate(it.Body, pw)
	fmt.Fprintf(w, "%s%s %s\n    %s  %s", prefix, star, title,
		mutedStyle.Render(preview), helpStyle.Render(num))
}
