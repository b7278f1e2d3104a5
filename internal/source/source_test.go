package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/journal/internal/remote"
	"github.com/Makepad-fr/journal/internal/store"
)

type fakeLister struct {
	posts []remote.Post
	err   error
}

func (f fakeLister) List(ctx context.Context) ([]remote.Post, error) { return f.posts, f.err }

func posts(n int) []remote.Post {
	out := make([]remote.Post, n)
	for i := range out {
		out[i] = remote.Post{ID: int64(i + 1), UserID: 1, Title: fmt.Sprintf("post %d", i+1), Body: "body"}
	}
	return out
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		err  bool
	}{
		{"demo", ModeDemo, false},
		{"", ModeDemo, false},
		{"API", ModeAPI, false},
		{" api ", ModeAPI, false},
		{"disk", "", true},
	}
	for _, test := range tests {
		got, err := ParseMode(test.in)
		if (err != nil) != test.err {
			t.Errorf("ParseMode(%q): unexpected error %v", test.in, err)
		}
		if got != test.want {
			t.Errorf("ParseMode(%q): expected %q got %q", test.in, test.want, got)
		}
	}
}

func TestLoadDemo(t *testing.T) {
	l := NewLoader(nil, nil)

	b, err := l.Load(context.Background(), ModeDemo)
	if err != nil {
		t.Fatal(err)
	}
	if b.Mode != ModeDemo || b.Fallback {
		t.Errorf("unexpected batch mode %s fallback %v", b.Mode, b.Fallback)
	}

	s := store.New()
	s.Load(b.Entries)
	if s.Len() != 10 {
		t.Fatalf("expected 10 entries got %d", s.Len())
	}
	for i, e := range s.All() {
		if e.ID != int64(i+1) {
			t.Errorf("position %d: expected id %d got %d", i, i+1, e.ID)
		}
	}
}

func TestLoadAPITakesFirstTen(t *testing.T) {
	l := NewLoader(fakeLister{posts: posts(100)}, nil, WithRand(func() float64 { return 0.9 }))

	b, err := l.Load(context.Background(), ModeAPI)
	if err != nil {
		t.Fatal(err)
	}
	if b.Mode != ModeAPI || b.Fallback {
		t.Errorf("unexpected batch mode %s fallback %v", b.Mode, b.Fallback)
	}
	if len(b.Entries) != FetchLimit {
		t.Fatalf("expected %d entries got %d", FetchLimit, len(b.Entries))
	}
	for i, e := range b.Entries {
		if e.ID != int64(i+1) {
			t.Errorf("position %d: expected id %d got %d", i, i+1, e.ID)
		}
		if !e.Important {
			t.Errorf("entry %d: expected important with rand 0.9", e.ID)
		}
	}
}

func TestLoadAPIImportantThreshold(t *testing.T) {
	vals := []float64{0.1, 0.7, 0.71}
	i := 0
	next := func() float64 { v := vals[i%len(vals)]; i++; return v }
	l := NewLoader(fakeLister{posts: posts(3)}, nil, WithRand(next))

	b, err := l.Load(context.Background(), ModeAPI)
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{false, false, true}
	for i, e := range b.Entries {
		if e.Important != want[i] {
			t.Errorf("entry %d: expected important=%v", e.ID, want[i])
		}
	}
}

func TestLoadAPIShortList(t *testing.T) {
	l := NewLoader(fakeLister{posts: posts(3)}, nil)

	b, err := l.Load(context.Background(), ModeAPI)
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Entries) != 3 {
		t.Errorf("expected 3 entries got %d", len(b.Entries))
	}
}

func TestLoadAPIFallsBackToDemo(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	l := NewLoader(fakeLister{err: errors.New("connection refused")}, logger)

	b, err := l.Load(context.Background(), ModeAPI)
	if err != nil {
		t.Fatalf("fallback must not surface an error, got %v", err)
	}
	if b.Mode != ModeDemo || !b.Fallback {
		t.Errorf("expected demo fallback got mode %s fallback %v", b.Mode, b.Fallback)
	}
	if len(b.Entries) != 10 || b.Entries[0].Title != "New Beginnings" {
		t.Errorf("expected the seed set, got %d entries", len(b.Entries))
	}
	if !strings.Contains(buf.String(), "connection refused") {
		t.Errorf("expected failure to be logged, got %q", buf.String())
	}
}

func TestLoadAPIMalformedFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "a list"`))
	}))
	defer srv.Close()

	l := NewLoader(remote.New(srv.URL+"/posts"), nil)
	b, err := l.Load(context.Background(), ModeAPI)
	if err != nil {
		t.Fatal(err)
	}
	if !b.Fallback || len(b.Entries) != 10 {
		t.Errorf("expected seed fallback, got %+v", b)
	}
}

func TestLoadNoRemoteFallsBack(t *testing.T) {
	b, err := NewLoader(nil, nil).Load(context.Background(), ModeAPI)
	if err != nil {
		t.Fatal(err)
	}
	if !b.Fallback {
		t.Errorf("expected fallback without a remote")
	}
}

func TestNotice(t *testing.T) {
	if ModeDemo.Notice() != "Using realistic demo entries" {
		t.Errorf("unexpected demo notice %q", ModeDemo.Notice())
	}
	if ModeAPI.Notice() != "Using data from API" {
		t.Errorf("unexpected api notice %q", ModeAPI.Notice())
	}
}
