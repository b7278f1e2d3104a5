package model

import (
	"errors"
	"testing"
)

func TestMergeKeepsLocalFields(t *testing.T) {
	local := Entry{ID: 1700000000000, Title: "mine", Body: "local body", Important: true, UserID: DefaultUserID}
	remote := Entry{ID: 101, Title: "theirs", Body: "remote body", Important: false, UserID: 7}

	got := Merge(local, remote)

	if got.ID != local.ID {
		t.Errorf("expected id %d got %d", local.ID, got.ID)
	}
	if got.Title != "mine" || got.Body != "local body" {
		t.Errorf("expected local title/body, got %q/%q", got.Title, got.Body)
	}
	if !got.Important {
		t.Errorf("expected important flag to be preserved")
	}
	if got.UserID != 7 {
		t.Errorf("expected remote user id 7 got %d", got.UserID)
	}
}

func TestMergeZeroRemoteUserID(t *testing.T) {
	local := Entry{ID: 3, Title: "a", Body: "b", UserID: DefaultUserID}
	got := Merge(local, Entry{})
	if got != local {
		t.Errorf("expected %+v got %+v", local, got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		title string
		body  string
		want  FieldErrors
	}{
		{"ok", "Title", "Body", nil},
		{"empty title", "", "Body", FieldErrors{FieldTitle: MsgTitleRequired}},
		{"blank title", "   ", "Body", FieldErrors{FieldTitle: MsgTitleRequired}},
		{"empty body", "Title", "\n\t", FieldErrors{FieldBody: MsgBodyRequired}},
		{"both", "", "", FieldErrors{FieldTitle: MsgTitleRequired, FieldBody: MsgBodyRequired}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := Validate(test.title, test.body)
			if test.want == nil {
				if err != nil {
					t.Fatalf("expected no error got %v", err)
				}
				return
			}
			var fe FieldErrors
			if !errors.As(err, &fe) {
				t.Fatalf("expected FieldErrors got %T", err)
			}
			if len(fe) != len(test.want) {
				t.Fatalf("expected %v got %v", test.want, fe)
			}
			for k, v := range test.want {
				if fe[k] != v {
					t.Errorf("field %s: expected %q got %q", k, v, fe[k])
				}
			}
		})
	}
}

func TestFieldErrorsMessage(t *testing.T) {
	err := FieldErrors{FieldTitle: MsgTitleRequired, FieldBody: MsgBodyRequired}
	if got := err.Error(); got != "Body is required; Title is required" {
		t.Errorf("unexpected message %q", got)
	}
}
