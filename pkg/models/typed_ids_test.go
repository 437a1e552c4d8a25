package models

import (
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserID(t *testing.T) {
	id := NewUserID()

	parsed, err := ParseUserID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseUserID("not-a-uuid")
	assert.Error(t, err)

	_, err = ParseUserID("")
	assert.Error(t, err)
}

func TestNoteIDJSONRoundTrip(t *testing.T) {
	id := NewNoteID()

	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.JSONEq(t, `"`+id.String()+`"`, string(data))

	var decoded NoteID
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, id, decoded)
}

func TestUserIDCBORRoundTrip(t *testing.T) {
	id := NewUserID()

	data, err := cbor.Marshal(id)
	require.NoError(t, err)

	var decoded UserID
	require.NoError(t, cbor.Unmarshal(data, &decoded))
	assert.Equal(t, id, decoded)
}

func TestCBORRejectsWrongTable(t *testing.T) {
	userID := NewUserID()

	data, err := cbor.Marshal(userID)
	require.NoError(t, err)

	// A users RecordID must not decode into a NoteID.
	var noteID NoteID
	err = cbor.Unmarshal(data, &noteID)
	assert.Error(t, err)
}

func TestRecordIDTables(t *testing.T) {
	u := NewUserID()
	n := NewNoteID()

	assert.Equal(t, "users", u.RecordID().Table)
	assert.Equal(t, u.String(), u.RecordID().ID)
	assert.Equal(t, "notes", n.RecordID().Table)
	assert.Equal(t, n.String(), n.RecordID().ID)
}

func TestIsZero(t *testing.T) {
	assert.True(t, UserID{}.IsZero())
	assert.True(t, NoteID{}.IsZero())
	assert.False(t, NewUserID().IsZero())
	assert.False(t, NewNoteID().IsZero())
}

func TestNotePatchFields(t *testing.T) {
	title := "T"
	body := "B"

	patch := NotePatch{Title: &title, Body: &body}
	fields := patch.Fields()

	assert.Equal(t, map[string]any{"title": "T", "body": "B"}, fields)
	assert.Empty(t, NotePatch{}.Fields())
}
