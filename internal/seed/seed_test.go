package seed

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEntriesOrder(t *testing.T) {
	entries, err := Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 10 {
		t.Fatalf("expected 10 entries got %d", len(entries))
	}

	important := map[int64]bool{1: true, 4: true, 5: true, 9: true}
	for i, e := range entries {
		if e.ID != int64(i+1) {
			t.Errorf("position %d: expected id %d got %d", i, i+1, e.ID)
		}
		if e.Title == "" || e.Body == "" {
			t.Errorf("entry %d has empty title or body", e.ID)
		}
		if e.Important != important[e.ID] {
			t.Errorf("entry %d: expected important=%v", e.ID, important[e.ID])
		}
		if e.UserID != 1 {
			t.Errorf("entry %d: expected user id 1 got %d", e.ID, e.UserID)
		}
	}
	if entries[0].Title != "New Beginnings" || entries[9].Title != "Three Good Things" {
		t.Errorf("unexpected first/last titles %q / %q", entries[0].Title, entries[9].Title)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	a, err := Entries()
	if err != nil {
		t.Fatal(err)
	}
	a[0].Title = "mutated"

	b, err := Entries()
	if err != nil {
		t.Fatal(err)
	}
	if b[0].Title != "New Beginnings" {
		t.Errorf("seed data shared between calls")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	data := `[{"id": 7, "title": "custom", "body": "from file"}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].ID != 7 || entries[0].UserID != 1 {
		t.Errorf("unexpected entries %+v", entries)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed file")
	}
}
