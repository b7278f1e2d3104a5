package model

import (
	"sort"
	"strings"
)

// Form field names used as FieldErrors keys.
const (
	FieldTitle = "title"
	FieldBody  = "body"
)

const (
	MsgTitleRequired = "Title is required"
	MsgBodyRequired  = "Body is required"
)

// FieldErrors maps a form field to the message shown next to it.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fe[k])
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the required form fields. Whitespace-only counts as empty.
// It returns FieldErrors or nil.
func Validate(title, body string) error {
	fe := FieldErrors{}
	if strings.TrimSpace(title) == "" {
		fe[FieldTitle] = MsgTitleRequired
	}
	if strings.TrimSpace(body) == "" {
		fe[FieldBody] = MsgBodyRequired
	}
	if len(fe) == 0 {
		return nil
	}
	return fe
}
