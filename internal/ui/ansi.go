package ui

import (
	"fmt"
	"io"
	"os"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

var disableColor bool

// isTTY reports whether w is a terminal. Anything that is not an *os.File
// (buffers, pipes wrapped by the caller) is not.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// C colors s for standard output.
func C(color, s string) string { return colorFor(os.Stdout, color, s) }

func colorFor(w io.Writer, color, s string) string {
	if disableColor || color == "" || !isTTY(w) {
		return s
	}
	return color + s + reset
}

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, colorFor(w, current.Success, symCheck+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, colorFor(w, current.Error, symCross+" "+msg))
}
