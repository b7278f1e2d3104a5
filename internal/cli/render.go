package cli

import (
	"fmt"

	"github.com/Makepad-fr/journal/internal/model"
	"github.com/Makepad-fr/journal/internal/ui"
)

func header(important, total int) string {
	t := ui.Current()
	return fmt.Sprintf("%s  %s %d  %s %d",
		ui.C(t.Title, "My Journal"),
		ui.C(t.Important, t.StarOn), important,
		ui.C(t.Accent, "Total"), total,
	)
}

func flatLines(entries []model.Entry) []string {
	t := ui.Current()
	if len(entries) == 0 {
		return []string{ui.C(t.Muted, "no entries")}
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		star, color := t.StarOff, t.Muted
		if e.Important {
			star, color = t.StarOn, t.Important
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.C(color, star), ui.C(t.Muted, fmt.Sprintf("#%-3d", e.ID)), ui.Truncate(e.Title, 60)))
	}
	return out
}

func groupLines(entries []model.Entry) []string {
	var important, other []model.Entry
	for _, e := range entries {
		if e.Important {
			important = append(important, e)
		} else {
			other = append(other, e)
		}
	}
	t := ui.Current()
	section := func(name string, es []model.Entry) []string {
		lines := []string{ui.C(t.Accent, name)}
		if len(es) == 0 {
			return append(lines, ui.C(t.Muted, "(none)"))
		}
		return append(lines, flatLines(es)...)
	}
	lines := section("Important", important)
	lines = append(lines, "")
	return append(lines, section("Other", other)...)
}
