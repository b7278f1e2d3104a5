package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/journal/internal/model"
)

type field int

const (
	fieldTitle field = iota
	fieldBody
)

// form is the create/edit form: a one-line title and a multi-line body.
type form struct {
	title   textinput.Model
	body    textarea.Model
	focus   field
	errs    model.FieldErrors
	editing bool
}

func newForm() form {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Give your entry a title..."
	ti.CharLimit = 200

	ta := textarea.New()
	ta.Placeholder = "Write your thoughts..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 10000
	ta.SetHeight(6)

	return form{title: ti, body: ta}
}

// open resets the form with initial values and focuses the title.
func (f *form) open(title, body string, editing bool) tea.Cmd {
	f.editing = editing
	f.errs = nil
	f.title.SetValue(title)
	f.title.CursorEnd()
	f.body.SetValue(body)
	f.focus = fieldTitle
	f.body.Blur()
	return f.title.Focus()
}

func (f *form) close() {
	f.title.Blur()
	f.body.Blur()
	f.title.SetValue("")
	f.body.Reset()
	f.errs = nil
	f.editing = false
}

func (f *form) nextField() tea.Cmd {
	if f.focus == fieldTitle {
		f.focus = fieldBody
		f.title.Blur()
		return f.body.Focus()
	}
	f.focus = fieldTitle
	f.body.Blur()
	return f.title.Focus()
}

// submit validates the fields. On failure the messages are kept for the
// view and ok is false.
func (f *form) submit() (title, body string, ok bool) {
	title, body = f.title.Value(), f.body.Value()
	if err := model.Validate(title, body); err != nil {
		var fe model.FieldErrors
		if errors.As(err, &fe) {
			f.errs = fe
		}
		return "", "", false
	}
	f.errs = nil
	return title, body, true
}

// update feeds msg to the focused field. Editing a field clears its error.
func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		before := f.title.Value()
		f.title, cmd = f.title.Update(msg)
		if f.title.Value() != before {
			delete(f.errs, model.FieldTitle)
		}
	case fieldBody:
		before := f.body.Value()
		f.body, cmd = f.body.Update(msg)
		if f.body.Value() != before {
			delete(f.errs, model.FieldBody)
		}
	}
	return f, cmd
}

func (f *form) setWidth(w int) {
	if w < 20 {
		w = 20
	}
	f.title.Width = w - 4
	f.body.SetWidth(w)
}

func (f form) label(name, fieldKey string) string {
	l := labelStyle.Render(name + " *")
	if msg := f.errs[fieldKey]; msg != "" {
		l += "  " + errorStyle.Render(msg)
	}
	return l
}

func (f form) view() string {
	heading, action := "New Journal Entry", "create"
	if f.editing {
		heading, action = "Edit Entry", "update"
	}
	lines := []string{
		titleStyle.Render(heading),
		"",
		f.label("Title", model.FieldTitle),
		f.title.View(),
		"",
		f.label("Content", model.FieldBody),
		f.body.View(),
		"",
		helpStyle.Render("tab next field • ctrl+s " + action + " • esc cancel"),
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}
