package store

import (
	"time"

	"github.com/Makepad-fr/journal/internal/model"
)

// Store is the in-memory, ordered collection of journal entries.
// Newest entries sit at the front.
//
// A Store is owned by a single goroutine (the TUI update loop or a one-shot
// CLI command) and is not safe for concurrent use.
type Store struct {
	entries []model.Entry
	now     func() time.Time
	lastID  int64
}

type Option func(*Store)

// WithClock replaces the time source used for local ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load replaces the whole collection. A repeated id in the batch replaces
// the earlier record in place.
func (s *Store) Load(entries []model.Entry) {
	out := make([]model.Entry, 0, len(entries))
	pos := make(map[int64]int, len(entries))
	for _, e := range entries {
		if i, ok := pos[e.ID]; ok {
			out[i] = e
			continue
		}
		pos[e.ID] = len(out)
		out = append(out, e)
	}
	s.entries = out
}

// Create puts a new entry at the front and returns it.
func (s *Store) Create(title, body string) model.Entry {
	e := model.Entry{
		ID:     s.nextID(),
		Title:  title,
		Body:   body,
		UserID: model.DefaultUserID,
	}
	s.entries = append([]model.Entry{e}, s.entries...)
	return e
}

// Update rewrites title and body of the entry with id.
func (s *Store) Update(id int64, title, body string) (model.Entry, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Entry{}, false
	}
	s.entries[i].Title = title
	s.entries[i].Body = body
	return s.entries[i], true
}

func (s *Store) Delete(id int64) (model.Entry, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Entry{}, false
	}
	e := s.entries[i]
	s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
	return e, true
}

func (s *Store) ToggleImportant(id int64) (model.Entry, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Entry{}, false
	}
	s.entries[i].Important = !s.entries[i].Important
	return s.entries[i], true
}

// Filter returns a copy of the collection, or of its important entries only.
func (s *Store) Filter(importantOnly bool) []model.Entry {
	out := make([]model.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if importantOnly && !e.Important {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (s *Store) All() []model.Entry { return s.Filter(false) }

func (s *Store) Get(id int64) (model.Entry, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Entry{}, false
	}
	return s.entries[i], true
}

func (s *Store) Len() int { return len(s.entries) }

// ImportantCount reports how many entries are flagged.
func (s *Store) ImportantCount() int {
	n := 0
	for _, e := range s.entries {
		if e.Important {
			n++
		}
	}
	return n
}

func (s *Store) index(id int64) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID derives an id from the clock in milliseconds. It never repeats a
// previously generated id and skips ids already present in the store.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	for s.index(id) >= 0 {
		id++
	}
	s.lastID = id
	return id
}
