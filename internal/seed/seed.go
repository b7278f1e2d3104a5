package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Makepad-fr/journal/internal/model"
)

// Demo entries shipped with the binary. Read-only: nothing is ever written back.
//
//go:embed entries.json
var demoJSON []byte

// Entries returns a fresh copy of the built-in demo set, in display order.
func Entries() ([]model.Entry, error) {
	return decode(demoJSON)
}

// Load reads a seed file from path, or the built-in set when path is empty.
func Load(path string) ([]model.Entry, error) {
	if path == "" {
		return Entries()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return decode(b)
}

func decode(b []byte) ([]model.Entry, error) {
	var entries []model.Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	for i := range entries {
		if entries[i].UserID == 0 {
			entries[i].UserID = model.DefaultUserID
		}
	}
	return entries, nil
}
