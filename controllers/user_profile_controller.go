package controllers

import (
	"net/http"

	"mindhuddle_server/services"

	"github.com/gorilla/mux"
)

// UserProfileController handles profile reads and discovery.
type UserProfileController struct {
	Profiles  *services.UserProfileService
	Discovery *services.DiscoveryService
	Auth      *services.AuthService
}

// NewUserProfileController creates a new instance of UserProfileController
func NewUserProfileController(profiles *services.UserProfileService, discovery *services.DiscoveryService, auth *services.AuthService) *UserProfileController {
	return &UserProfileController{Profiles: profiles, Discovery: discovery, Auth: auth}
}

// ListProfiles returns every profile.
func (c *UserProfileController) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := c.Profiles.ListUserProfiles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

// GetProfileByID handles fetching a user profile by ID
func (c *UserProfileController) GetProfileByID(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	profile, err := c.Profiles.GetUserProfile(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Discover returns filtered, ranked profiles for the discovery page. The
// query parameters mirror the page's controls: q, mode, status, skill.
func (c *UserProfileController) Discover(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}

	q := r.URL.Query()
	filters := services.DiscoveryFilters{
		Query:  q.Get("q"),
		Mode:   q.Get("mode"),
		Status: q.Get("status"),
		Skill:  q.Get("skill"),
	}
	ranked, err := c.Discovery.DiscoverProfiles(r.Context(), viewerID, filters)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ranked)
}

// AllSkills returns the skill vocabulary for the filter dropdown.
func (c *UserProfileController) AllSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := c.Discovery.AllSkills(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, skills)
}
