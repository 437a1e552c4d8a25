// Package models defines the persistent entities of the note-taking
// service and their typed IDs.
//
// JSON field names follow the service's public wire format (email,
// pass, location, age for users; title, sub, body, userID for notes).
// CBOR marshaling of the typed IDs produces SurrealDB RecordIDs, so
// the same structs are stored directly without an intermediate
// representation.
package models

import "time"

// User is an account record. Pass holds the bcrypt hash of the
// password, never the plaintext. No handler serializes a User into a
// response body, so the hash never leaves the process.
type User struct {
	ID        UserID    `json:"id"`
	Email     string    `json:"email"`
	Pass      string    `json:"pass"`
	Location  string    `json:"location,omitempty"`
	Age       int       `json:"age,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Note is a single note. UserID is the owning user, stamped from the
// authenticated subject at creation time.
type Note struct {
	ID        NoteID    `json:"id"`
	Title     string    `json:"title"`
	Sub       string    `json:"sub,omitempty"`
	Body      string    `json:"body,omitempty"`
	UserID    UserID    `json:"userID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NotePatch is a partial note update. Nil fields are left untouched
// by the store's merge.
type NotePatch struct {
	Title *string `json:"title,omitempty"`
	Sub   *string `json:"sub,omitempty"`
	Body  *string `json:"body,omitempty"`
}

// Fields returns the patch as a field map suitable for a merge
// operation, containing only the fields that were provided.
func (p NotePatch) Fields() map[string]any {
	fields := make(map[string]any)
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Sub != nil {
		fields["sub"] = *p.Sub
	}
	if p.Body != nil {
		fields["body"] = *p.Body
	}
	return fields
}
