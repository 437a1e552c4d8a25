// Package surrealdb implements the store interface on SurrealDB using
// the official Go SDK with the surrealcbor codec.
//
// The codec choice matters: SurrealDB speaks CBOR internally, and the
// surrealcbor marshaler gives correct handling of time.Time values and
// of the typed IDs, which marshal to RecordIDs (CBOR tag 8). Structs
// are stored directly, and every query with user input is
// parameterized.
//
// SurrealDB is schemaless: tables appear when the first record is
// inserted, so there is no migration step.
package surrealdb

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/connection"
	"github.com/surrealdb/surrealdb.go/pkg/connection/gorillaws"
	"github.com/surrealdb/surrealdb.go/surrealcbor"

	"github.com/keepnote/keepnote/pkg/models"
	"github.com/keepnote/keepnote/pkg/store"
)

// Config carries the connection parameters for a SurrealDB store.
type Config struct {
	URL       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

// SurrealStore implements store.Store over a single long-lived
// WebSocket connection, shared by all requests.
type SurrealStore struct {
	db *surrealdb.DB
}

// New connects to SurrealDB, authenticates if credentials are
// provided, and selects the configured namespace and database.
func New(ctx context.Context, cfg Config) (store.Store, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SurrealDB URL: %w", err)
	}

	conf := connection.NewConfig(u)

	// Use surrealcbor so time.Time and RecordID round-trip in the
	// format SurrealDB expects.
	codec := surrealcbor.New()
	conf.Marshaler = codec
	conf.Unmarshaler = codec

	conn := gorillaws.New(conf)

	db, err := surrealdb.FromConnection(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SurrealDB: %w", err)
	}

	if cfg.Username != "" && cfg.Password != "" {
		if _, err := db.SignIn(ctx, map[string]any{
			"user": cfg.Username,
			"pass": cfg.Password,
		}); err != nil {
			return nil, fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err := db.Use(ctx, cfg.Namespace, cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to use namespace/database: %w", err)
	}

	return &SurrealStore{db: db}, nil
}

// Close closes the database connection.
func (s *SurrealStore) Close() error {
	return s.db.Close(context.Background())
}

// handleNotFound translates the SDK's "no result" errors into nil so
// callers can treat missing records as (nil, nil).
func handleNotFound(err error) error {
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "Expected a single or multiple results but got 0") ||
			strings.Contains(errStr, "cannot unmarshal array into Go value") {
			return nil
		}
	}
	return err
}

// User operations

func (s *SurrealStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = models.NewUserID()
	}
	stampTimes(&user.CreatedAt, &user.UpdatedAt)

	_, err := surrealdb.Create[models.User](ctx, s.db, "users", user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *SurrealStore) GetUser(ctx context.Context, id models.UserID) (*models.User, error) {
	user, err := surrealdb.Select[models.User](ctx, s.db, id.RecordID())
	if err != nil {
		if handleNotFound(err) == nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *SurrealStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := "SELECT * FROM users WHERE email = $email"
	params := map[string]any{
		"email": email,
	}
	result, err := surrealdb.Query[[]models.User](ctx, s.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if result != nil && len(*result) > 0 && len((*result)[0].Result) > 0 {
		return &(*result)[0].Result[0], nil
	}
	return nil, nil
}

// Note operations

func (s *SurrealStore) CreateNote(ctx context.Context, note *models.Note) error {
	if note.ID.IsZero() {
		note.ID = models.NewNoteID()
	}
	stampTimes(&note.CreatedAt, &note.UpdatedAt)

	_, err := surrealdb.Create[models.Note](ctx, s.db, "notes", note)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

func (s *SurrealStore) GetNote(ctx context.Context, id models.NoteID) (*models.Note, error) {
	note, err := surrealdb.Select[models.Note](ctx, s.db, id.RecordID())
	if err != nil {
		if handleNotFound(err) == nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return note, nil
}

func (s *SurrealStore) ListNotes(ctx context.Context) ([]*models.Note, error) {
	query := "SELECT * FROM notes"
	result, err := surrealdb.Query[[]*models.Note](ctx, s.db, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	var notes []*models.Note
	if result != nil && len(*result) > 0 {
		notes = (*result)[0].Result
	}
	return notes, nil
}

func (s *SurrealStore) PatchNote(ctx context.Context, id models.NoteID, patch models.NotePatch) error {
	fields := patch.Fields()
	fields["updated_at"] = nowFunc()

	_, err := surrealdb.Merge[models.Note](ctx, s.db, id.RecordID(), fields)
	if err != nil {
		return fmt.Errorf("failed to patch note: %w", err)
	}
	return nil
}

func (s *SurrealStore) DeleteNote(ctx context.Context, id models.NoteID) error {
	_, err := surrealdb.Delete[models.Note](ctx, s.db, id.RecordID())
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}
