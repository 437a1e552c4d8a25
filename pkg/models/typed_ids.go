package models

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	surrealdb_models "github.com/surrealdb/surrealdb.go/pkg/models"
)

// recordIDTag is the CBOR tag SurrealDB uses to identify RecordID
// values in its binary protocol. A RecordID is encoded as a
// [table, id] pair within the tag.
const recordIDTag = 8

// UserID is a typed ID for users
type UserID struct {
	uuid uuid.UUID
}

func NewUserID() UserID {
	return UserID{uuid: uuid.New()}
}

func NewUserIDFromUUID(id uuid.UUID) UserID {
	return UserID{uuid: id}
}

func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, fmt.Errorf("invalid user ID: %w", err)
	}
	return UserID{uuid: id}, nil
}

func (u UserID) UUID() uuid.UUID { return u.uuid }
func (u UserID) String() string  { return u.uuid.String() }
func (u UserID) IsZero() bool    { return u.uuid == uuid.Nil }

func (u UserID) RecordID() surrealdb_models.RecordID {
	return surrealdb_models.RecordID{
		Table: "users",
		ID:    u.uuid.String(),
	}
}

func (u UserID) MarshalJSON() ([]byte, error) {
	return marshalJSONID(u.uuid)
}

func (u *UserID) UnmarshalJSON(data []byte) error {
	return unmarshalJSONID(data, &u.uuid)
}

func (u UserID) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(cbor.Tag{
		Number:  recordIDTag,
		Content: []any{"users", u.uuid.String()},
	})
}

func (u *UserID) UnmarshalCBOR(data []byte) error {
	return unmarshalCBORID(data, "users", &u.uuid)
}

// NoteID is a typed ID for notes
type NoteID struct {
	uuid uuid.UUID
}

func NewNoteID() NoteID {
	return NoteID{uuid: uuid.New()}
}

func NewNoteIDFromUUID(id uuid.UUID) NoteID {
	return NoteID{uuid: id}
}

func ParseNoteID(s string) (NoteID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return NoteID{}, fmt.Errorf("invalid note ID: %w", err)
	}
	return NoteID{uuid: id}, nil
}

func (n NoteID) UUID() uuid.UUID { return n.uuid }
func (n NoteID) String() string  { return n.uuid.String() }
func (n NoteID) IsZero() bool    { return n.uuid == uuid.Nil }

func (n NoteID) RecordID() surrealdb_models.RecordID {
	return surrealdb_models.RecordID{
		Table: "notes",
		ID:    n.uuid.String(),
	}
}

func (n NoteID) MarshalJSON() ([]byte, error) {
	return marshalJSONID(n.uuid)
}

func (n *NoteID) UnmarshalJSON(data []byte) error {
	return unmarshalJSONID(data, &n.uuid)
}

func (n NoteID) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(cbor.Tag{
		Number:  recordIDTag,
		Content: []any{"notes", n.uuid.String()},
	})
}

func (n *NoteID) UnmarshalCBOR(data []byte) error {
	return unmarshalCBORID(data, "notes", &n.uuid)
}

func marshalJSONID(id uuid.UUID) ([]byte, error) {
	// Quoted uuid string, without pulling in encoding/json for a
	// value we fully control.
	return []byte(`"` + id.String() + `"`), nil
}

func unmarshalJSONID(data []byte, target *uuid.UUID) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("expected quoted ID string, got %q", data)
	}
	id, err := uuid.Parse(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*target = id
	return nil
}

// unmarshalCBORID decodes a SurrealDB RecordID from CBOR and verifies
// it belongs to the expected table.
func unmarshalCBORID(data []byte, expectedTable string, target *uuid.UUID) error {
	if len(data) == 0 {
		return fmt.Errorf("empty CBOR data")
	}

	// Major type 6 is a CBOR tag.
	if data[0]>>5 != 6 {
		return fmt.Errorf("expected CBOR tag for RecordID, got major type %d", data[0]>>5)
	}

	var tag cbor.Tag
	if err := cbor.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("failed to unmarshal CBOR tag: %w", err)
	}
	if tag.Number != recordIDTag {
		return fmt.Errorf("expected RecordID tag (%d), got %d", recordIDTag, tag.Number)
	}

	arr, ok := tag.Content.([]any)
	if !ok || len(arr) != 2 {
		return fmt.Errorf("invalid RecordID format: expected [table, id] array")
	}

	table, ok := arr[0].(string)
	if !ok {
		return fmt.Errorf("invalid RecordID format: table name must be string")
	}
	if table != expectedTable {
		return fmt.Errorf("expected table %s, got %s", expectedTable, table)
	}

	idStr, ok := arr[1].(string)
	if !ok {
		return fmt.Errorf("invalid RecordID format: ID must be string")
	}
	parsed, err := uuid.Parse(idStr)
	if err != nil {
		return fmt.Errorf("invalid RecordID uuid: %w", err)
	}

	*target = parsed
	return nil
}
