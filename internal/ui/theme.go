package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All console helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Important string
	StarOn, StarOff                                 string
	CornerTL, CornerTR, CornerBL, CornerBR          string
	H, V                                            string
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		disableColor = false
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Important: "\033[93m",
			StarOn: "★", StarOff: "☆",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
		}
	case "mono":
		disableColor = true
		current = Theme{
			StarOn: "[*]", StarOff: "[ ]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
		}
	default: // classic
		disableColor = false
		current = Theme{
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Important: fgYellow,
			StarOn: "★", StarOff: "·",
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }
