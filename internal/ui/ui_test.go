package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPanelAlignsBorders(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	Panel(&buf, []string{"short", "a longer line ★"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines got %d: %q", len(lines), buf.String())
	}
	want := visibleWidth(lines[0])
	for i, ln := range lines {
		if got := visibleWidth(ln); got != want {
			t.Errorf("line %d: expected width %d got %d (%q)", i, want, got, ln)
		}
	}
	if !strings.HasPrefix(lines[0], "+") || !strings.HasPrefix(lines[1], "| short") {
		t.Errorf("unexpected frame %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in       string
		max      int
		expected string
	}{
		{"hello", 10, "hello"},
		{"line one\n\nline two", 40, "line one line two"},
		{"abcdefghijkl", 8, "abcde..."},
	}
	for _, test := range tests {
		if got := Truncate(test.in, test.max); got != test.expected {
			t.Errorf("Truncate(%q, %d): expected %q got %q", test.in, test.max, test.expected, got)
		}
	}
}

func TestBar(t *testing.T) {
	if got := Bar(5, 10, 10); got != "█████░░░░░  50%" {
		t.Errorf("unexpected bar %q", got)
	}
	if got := Bar(0, 0, 2); got != "░░░░░   0%" {
		t.Errorf("unexpected empty bar %q", got)
	}
}

func TestStatusLines(t *testing.T) {
	var buf bytes.Buffer
	OK(&buf, "created")
	Fail(&buf, "boom")
	if buf.String() != "✔ created\n✖ boom\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestStatusLinesFollowTheirWriter(t *testing.T) {
	SetTheme("classic")

	f, err := os.Create(filepath.Join(t.TempDir(), "stderr.log"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	if isTTY(f) {
		t.Fatal("regular file reported as a terminal")
	}
	Fail(f, "entry not found: 7")
	OK(f, "added")

	b, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(b), "\033[") {
		t.Errorf("expected no escape codes in redirected output, got %q", b)
	}
	if string(b) != "✖ entry not found: 7\n✔ added\n" {
		t.Errorf("unexpected output %q", b)
	}
}
