package keepnote

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// routes builds the HTTP handler: a public /users group, a /notes
// group behind the auth gate, and the cross-cutting CORS and request
// logging layers.
//
// The gate is attached to the /notes subrouter only, so user routes
// can never be accidentally gated and note routes can never escape
// it, regardless of registration order.
func (a *App) routes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", a.handleHealth).Methods("GET")

	users := router.PathPrefix("/users").Subrouter()
	users.HandleFunc("/register", a.handleRegister).Methods("POST")
	users.HandleFunc("/login", a.handleLogin).Methods("POST")

	notes := router.PathPrefix("/notes").Subrouter()
	notes.Use(a.authenticate)
	notes.HandleFunc("", a.handleListNotes).Methods("GET")
	notes.HandleFunc("/add", a.handleAddNote).Methods("POST")
	notes.HandleFunc("/update/{noteID}", a.handleUpdateNote).Methods("PATCH")
	notes.HandleFunc("/delete/{noteID}", a.handleDeleteNote).Methods("DELETE")
	notes.HandleFunc("/{noteID}", a.handleGetNote).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	return a.logRequests(cors(router))
}

// Run starts the HTTP server and blocks until the context is
// cancelled or the server fails. On cancellation, in-flight requests
// get up to 5 seconds to drain.
func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%s", a.config.ServerPort)
	a.log.Info().Str("addr", addr).Msg("starting keepnote server")

	server := &http.Server{
		Addr:    addr,
		Handler: a.routes(),
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
