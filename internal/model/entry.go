package model

// DefaultUserID is the placeholder owner stamped on every entry.
// There is no real multi-user model.
const DefaultUserID = 1

// Entry is a single journal record.
type Entry struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Important bool   `json:"important"`
	UserID    int    `json:"userId"`
}

// Merge folds a remote echo of an entry into the local copy.
//
// Field ownership:
//
//	ID        local   the placeholder API assigns ids we do not trust
//	Title     local   the user's latest edit wins
//	Body      local
//	Important local   the remote schema has no such field
//	UserID    remote  when set, local otherwise
func Merge(local, remote Entry) Entry {
	out := local
	if remote.UserID != 0 {
		out.UserID = remote.UserID
	}
	return out
}
