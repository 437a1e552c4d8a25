package keepnote

import (
	"encoding/json"
	"net/http"

	"github.com/keepnote/keepnote/pkg/models"
)

type registerRequest struct {
	Email    string `json:"email"`
	Pass     string `json:"pass"`
	Location string `json:"location"`
	Age      int    `json:"age"`
}

type loginRequest struct {
	Email string `json:"email"`
	Pass  string `json:"pass"`
}

// handleRegister creates a user account. The password is stored only
// as a bcrypt hash, and neither it nor the hash appears in the
// response.
func (a *App) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Email == "" || req.Pass == "" {
		respondError(w, http.StatusBadRequest, "email and pass are required")
		return
	}

	ctx := r.Context()

	// Email is the business key for login; a duplicate would make
	// credential lookups ambiguous.
	existing, err := a.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		a.storeError(w, err)
		return
	}
	if existing != nil {
		respondError(w, http.StatusBadRequest, "Email already registered")
		return
	}

	hash, err := a.passwords.Hash(req.Pass)
	if err != nil {
		a.storeError(w, err)
		return
	}

	user := &models.User{
		Email:    req.Email,
		Pass:     hash,
		Location: req.Location,
		Age:      req.Age,
	}
	if err := a.store.CreateUser(ctx, user); err != nil {
		a.storeError(w, err)
		return
	}

	respondMsg(w, http.StatusOK, "Registration has been done")
}

// handleLogin verifies credentials and issues a token embedding the
// user's ID. Unknown email and wrong password are deliberately
// indistinguishable.
func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := a.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		a.storeError(w, err)
		return
	}
	if user == nil || !a.passwords.Verify(req.Pass, user.Pass) {
		respondError(w, http.StatusBadRequest, "Wrong Credantials")
		return
	}

	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		a.storeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"msg":   "Login Successful",
		"token": token,
	})
}
