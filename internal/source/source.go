package source

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/journal/internal/logging"
	"github.com/Makepad-fr/journal/internal/model"
	"github.com/Makepad-fr/journal/internal/remote"
	"github.com/Makepad-fr/journal/internal/seed"
)

// Mode selects where a full reload of the store comes from.
type Mode string

const (
	ModeDemo Mode = "demo"
	ModeAPI  Mode = "api"
)

// FetchLimit is how many remote items become entries.
const FetchLimit = 10

// importantThreshold: a fetched entry is flagged when rand() exceeds it.
const importantThreshold = 0.7

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeDemo, "":
		return ModeDemo, nil
	case ModeAPI:
		return ModeAPI, nil
	}
	return "", fmt.Errorf("unknown source %q (want demo or api)", s)
}

// Notice is the one-line description shown next to the list.
func (m Mode) Notice() string {
	if m == ModeAPI {
		return "Using data from API"
	}
	return "Using realistic demo entries"
}

type Lister interface {
	List(ctx context.Context) ([]remote.Post, error)
}

// Batch is a complete replacement for the store.
type Batch struct {
	Entries []model.Entry
	Mode    Mode
	// Fallback is set when an API fetch failed and the seed set was used.
	Fallback bool
}

type Loader struct {
	remote   Lister
	seedFile string
	rand     func() float64
	log      *log.Logger
}

type Option func(*Loader)

// WithRand replaces the source used to flag fetched entries as important.
// It must be safe for concurrent use.
func WithRand(f func() float64) Option {
	return func(l *Loader) { l.rand = f }
}

// WithSeedFile reads demo entries from a file instead of the built-in set.
func WithSeedFile(path string) Option {
	return func(l *Loader) { l.seedFile = path }
}

func NewLoader(r Lister, logger *log.Logger, opts ...Option) *Loader {
	l := &Loader{remote: r, rand: rand.Float64, log: logger}
	for _, o := range opts {
		o(l)
	}
	if l.log == nil {
		l.log = logging.Discard()
	}
	return l
}

// Load produces the entries for mode. A failed API fetch falls back to the
// demo set and is only logged; the returned error means the demo set itself
// could not be read.
func (l *Loader) Load(ctx context.Context, mode Mode) (Batch, error) {
	if mode == ModeAPI {
		entries, err := l.fetch(ctx)
		if err == nil {
			return Batch{Entries: entries, Mode: ModeAPI}, nil
		}
		l.log.Error("fetch entries", "err", err)
		b, serr := l.demo()
		b.Fallback = true
		return b, serr
	}
	return l.demo()
}

func (l *Loader) demo() (Batch, error) {
	entries, err := seed.Load(l.seedFile)
	if err != nil {
		return Batch{Mode: ModeDemo}, fmt.Errorf("load demo entries: %w", err)
	}
	return Batch{Entries: entries, Mode: ModeDemo}, nil
}

func (l *Loader) fetch(ctx context.Context) ([]model.Entry, error) {
	if l.remote == nil {
		return nil, fmt.Errorf("no remote configured")
	}
	posts, err := l.remote.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(posts) > FetchLimit {
		posts = posts[:FetchLimit]
	}
	entries := make([]model.Entry, 0, len(posts))
	for _, p := range posts {
		uid := p.UserID
		if uid == 0 {
			uid = model.DefaultUserID
		}
		entries = append(entries, model.Entry{
			ID:        p.ID,
			Title:     p.Title,
			Body:      p.Body,
			Important: l.rand() > importantThreshold,
			UserID:    uid,
		})
	}
	return entries, nil
}
