package controllers

import (
	"encoding/json"
	"net/http"

	"mindhuddle_server/services"

	"github.com/gorilla/mux"
)

// GroupController handles group lifecycle and membership.
type GroupController struct {
	Groups *services.GroupService
	Posts  *services.PostService
	Auth   *services.AuthService
}

// NewGroupController creates a new instance of GroupController
func NewGroupController(groups *services.GroupService, posts *services.PostService, auth *services.AuthService) *GroupController {
	return &GroupController{Groups: groups, Posts: posts, Auth: auth}
}

// CreateGroup creates a group with the actor as first member and admin.
func (c *GroupController) CreateGroup(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	var payload struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		Category    string `json:"category"`
		ImageURL    string `json:"imageUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, "Missing group name", http.StatusBadRequest)
		return
	}

	group, err := c.Groups.CreateGroup(r.Context(), actorID, payload.Name, payload.Description, payload.Category, payload.ImageURL)
	if err != nil {
		writeError(w, err)
		return
	}
	c.Auth.SyncSnapshot()
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Group created successfully",
		"group":   group,
	})
}

// ListGroups returns every group.
func (c *GroupController) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := c.Groups.ListGroups(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// GetGroup returns a group with its member profiles.
func (c *GroupController) GetGroup(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["groupId"]
	detail, err := c.Groups.GetGroup(r.Context(), groupID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// JoinGroup adds the actor to the group.
func (c *GroupController) JoinGroup(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	groupID := mux.Vars(r)["groupId"]
	if err := c.Groups.JoinGroup(r.Context(), actorID, groupID); err != nil {
		writeError(w, err)
		return
	}
	c.Auth.SyncSnapshot()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Joined group"})
}

// LeaveGroup removes the actor from the group.
func (c *GroupController) LeaveGroup(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	groupID := mux.Vars(r)["groupId"]
	if err := c.Groups.LeaveGroup(r.Context(), actorID, groupID); err != nil {
		writeError(w, err)
		return
	}
	c.Auth.SyncSnapshot()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Left group"})
}

// RemoveMember evicts a member; admin only.
func (c *GroupController) RemoveMember(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	if err := c.Groups.RemoveMember(r.Context(), actorID, vars["groupId"], vars["memberId"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Member removed"})
}

// UpdateGroup applies a partial update; admin only.
func (c *GroupController) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	groupID := mux.Vars(r)["groupId"]
	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	group, err := c.Groups.UpdateGroup(r.Context(), actorID, groupID, updates)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Group updated successfully",
		"group":   group,
	})
}

// GroupFeed returns the posts scoped to a group; members only.
func (c *GroupController) GroupFeed(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	groupID := mux.Vars(r)["groupId"]
	posts, err := c.Posts.GroupFeed(r.Context(), viewerID, groupID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}
