package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"mindhuddle_server/models"
	"mindhuddle_server/services"
)

// AuthController handles login, signup, logout, and profile updates for
// the active identity.
type AuthController struct {
	Auth *services.AuthService
}

// NewAuthController creates a new instance of AuthController
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// Login authenticates by email match.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, "Missing or invalid email", http.StatusBadRequest)
		return
	}

	profile, err := c.Auth.Login(r.Context(), payload.Email)
	if err != nil {
		log.Printf("❌ Login failed: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Logged in successfully",
		"profile": profile,
	})
}

// Signup creates and authenticates a new profile.
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	profile, err := c.Auth.Signup(r.Context(), payload.Name, payload.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Profile created successfully",
		"profile": profile,
	})
}

// Logout tears down the active session.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.Auth.Logout(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me returns the active profile.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	profile, err := c.Auth.CurrentUser()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// UpdateProfile applies a partial update to the active profile.
func (c *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	profile, err := c.Auth.UpdateProfile(r.Context(), updates)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Profile updated successfully",
		"profile": profile,
	})
}

// requireActor resolves the active identity, writing a 401 when there is
// none. Shared by every controller that mutates on behalf of a user.
func requireActor(w http.ResponseWriter, auth *services.AuthService) (string, bool) {
	actorID := auth.CurrentUserID()
	if actorID == "" {
		writeError(w, models.ErrNotAuthenticated)
		return "", false
	}
	return actorID, true
}
