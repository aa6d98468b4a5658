package controllers

import (
	"encoding/json"
	"net/http"

	"mindhuddle_server/services"
)

// AIController exposes the AI collaborator. Responses always succeed from
// the client's perspective; collaborator failures surface as the static
// fallback values.
type AIController struct {
	AI       *services.AIService
	Profiles *services.UserProfileService
	Auth     *services.AuthService
}

// NewAIController creates a new instance of AIController
func NewAIController(ai *services.AIService, profiles *services.UserProfileService, auth *services.AuthService) *AIController {
	return &AIController{AI: ai, Profiles: profiles, Auth: auth}
}

type targetPayload struct {
	UserID string `json:"userId" validate:"required"`
}

// Icebreakers generates conversation starters toward the target profile.
func (c *AIController) Icebreakers(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	var payload targetPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, "Missing userId", http.StatusBadRequest)
		return
	}

	viewer, err := c.Profiles.GetUserProfile(r.Context(), actorID)
	if err != nil {
		writeError(w, err)
		return
	}
	target, err := c.Profiles.GetUserProfile(r.Context(), payload.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c.AI.GenerateIcebreakers(r.Context(), viewer, target))
}

// Compatibility scores the fit between the viewer and the target profile.
func (c *AIController) Compatibility(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	var payload targetPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, "Missing userId", http.StatusBadRequest)
		return
	}

	viewer, err := c.Profiles.GetUserProfile(r.Context(), actorID)
	if err != nil {
		writeError(w, err)
		return
	}
	target, err := c.Profiles.GetUserProfile(r.Context(), payload.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c.AI.AnalyzeCompatibility(r.Context(), viewer, target))
}

// OptimizeBio rewrites the given bio text. The result is not saved; the
// client commits it through the profile update endpoint.
func (c *AIController) OptimizeBio(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireActor(w, c.Auth); !ok {
		return
	}
	var payload struct {
		Bio    string   `json:"bio"`
		Skills []string `json:"skills"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	optimized := c.AI.OptimizeBio(r.Context(), payload.Bio, payload.Skills)
	writeJSON(w, http.StatusOK, map[string]string{"bio": optimized})
}
