package keepnote

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/keepnote/keepnote/pkg/models"
)

// handleListNotes returns every note in the store, unfiltered by
// owner.
func (a *App) handleListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := a.store.ListNotes(r.Context())
	if err != nil {
		a.storeError(w, err)
		return
	}
	if notes == nil {
		notes = []*models.Note{}
	}
	respondJSON(w, http.StatusOK, notes)
}

func (a *App) handleGetNote(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseNoteID(mux.Vars(r)["noteID"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	note, err := a.store.GetNote(r.Context(), id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	if note == nil {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}

	respondJSON(w, http.StatusOK, note)
}

// handleAddNote inserts a note. The owner is stamped from the
// authenticated subject; a client-supplied userID is ignored.
func (a *App) handleAddNote(w http.ResponseWriter, r *http.Request) {
	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if subject, ok := SubjectFromContext(r.Context()); ok {
		note.UserID = subject
	}

	if err := a.store.CreateNote(r.Context(), &note); err != nil {
		a.storeError(w, err)
		return
	}

	respondMsg(w, http.StatusOK, "A New Note has been added")
}

// handleUpdateNote merges partial fields into an existing note. Only
// the owning subject may update it.
func (a *App) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseNoteID(mux.Vars(r)["noteID"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	var patch models.NotePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx := r.Context()
	note, err := a.store.GetNote(ctx, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	if note == nil {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}
	if !a.ownedBySubject(ctx, note) {
		respondError(w, http.StatusForbidden, "You are not the owner of this note")
		return
	}

	if err := a.store.PatchNote(ctx, id, patch); err != nil {
		a.storeError(w, err)
		return
	}

	respondMsg(w, http.StatusOK, "A New Note has been updated")
}

// handleDeleteNote removes a note, subject to the same ownership rule
// as update.
func (a *App) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseNoteID(mux.Vars(r)["noteID"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	ctx := r.Context()
	note, err := a.store.GetNote(ctx, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	if note == nil {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}
	if !a.ownedBySubject(ctx, note) {
		respondError(w, http.StatusForbidden, "You are not the owner of this note")
		return
	}

	if err := a.store.DeleteNote(ctx, id); err != nil {
		a.storeError(w, err)
		return
	}

	respondMsg(w, http.StatusOK, "A New Note has been deleted")
}

// ownedBySubject reports whether the note belongs to the
// authenticated subject. Notes created before ownership stamping
// existed carry a zero owner and stay mutable by anyone.
func (a *App) ownedBySubject(ctx context.Context, note *models.Note) bool {
	if note.UserID.IsZero() {
		return true
	}
	subject, ok := SubjectFromContext(ctx)
	return ok && subject == note.UserID
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// storeError maps an unexpected store failure to a 500 and logs it;
// expected failures (bad input, bad credentials) never reach here.
func (a *App) storeError(w http.ResponseWriter, err error) {
	a.log.Error().Err(err).Msg("store operation failed")
	respondError(w, http.StatusInternalServerError, err.Error())
}

// respondJSON sends a JSON response with the given status and payload.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_, _ = w.Write(response)
	}
}

// respondMsg sends the service's standard {"msg": ...} body.
func respondMsg(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"msg": msg})
}

// respondError is respondMsg for failures; every error leaves the
// service as a single human-readable message field.
func respondError(w http.ResponseWriter, status int, message string) {
	respondMsg(w, status, message)
}
