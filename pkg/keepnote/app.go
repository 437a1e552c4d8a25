// Package keepnote is the HTTP note-taking service: user registration
// and login issuing signed tokens, and token-gated CRUD on notes
// backed by SurrealDB.
package keepnote

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/keepnote/keepnote/pkg/auth"
	"github.com/keepnote/keepnote/pkg/logger"
	"github.com/keepnote/keepnote/pkg/store"
	surrealstore "github.com/keepnote/keepnote/pkg/store/surrealdb"
)

// App holds the application state: the shared store connection, the
// credential primitives, and the process logger.
type App struct {
	store     store.Store
	tokens    *auth.Tokens
	passwords *auth.Passwords
	config    *Config
	log       zerolog.Logger
}

// New creates the application: builds the logger, connects to
// SurrealDB, and wires the auth primitives from config.
func New(ctx context.Context, config *Config) (*App, error) {
	build := logger.New()
	if config.LogPath != "" {
		build = build.FromPath(config.LogPath)
	}
	logData, err := build.Make()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	appStore, err := surrealstore.New(ctx, surrealstore.Config{
		URL:       config.SurrealDB.URL,
		Namespace: config.SurrealDB.Namespace,
		Database:  config.SurrealDB.Database,
		Username:  config.SurrealDB.Username,
		Password:  config.SurrealDB.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SurrealDB: %w", err)
	}
	logData.Logger.Info().Str("url", config.SurrealDB.URL).Msg("connected to SurrealDB")

	return newApp(config, appStore, logData.Logger), nil
}

// newApp wires an App from already-constructed collaborators. Tests
// use it to substitute a fake store.
func newApp(config *Config, appStore store.Store, log zerolog.Logger) *App {
	return &App{
		store:     appStore,
		tokens:    auth.NewTokens(config.JWT.Secret),
		passwords: auth.NewPasswords(config.BcryptCost),
		config:    config,
		log:       log,
	}
}

// Close closes the application and its resources.
func (a *App) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

// Store returns the underlying store (useful for testing).
func (a *App) Store() store.Store {
	return a.store
}
