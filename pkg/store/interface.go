// Package store defines the persistence boundary of the service.
//
// Get operations return (nil, nil) for records that do not exist;
// only infrastructure failures surface as errors. This keeps the
// not-found decision in the handlers, where it maps to an HTTP
// status, while the store stays a thin pass-through.
package store

import (
	"context"

	"github.com/keepnote/keepnote/pkg/models"
)

// Store is the document-store interface consumed by the HTTP layer.
type Store interface {
	// User operations
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id models.UserID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// Note operations
	CreateNote(ctx context.Context, note *models.Note) error
	GetNote(ctx context.Context, id models.NoteID) (*models.Note, error)
	ListNotes(ctx context.Context) ([]*models.Note, error)
	PatchNote(ctx context.Context, id models.NoteID, patch models.NotePatch) error
	DeleteNote(ctx context.Context, id models.NoteID) error

	// Close releases the underlying connection.
	Close() error
}
