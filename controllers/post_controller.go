package controllers

import (
	"encoding/json"
	"net/http"

	"mindhuddle_server/services"

	"github.com/gorilla/mux"
)

// PostController handles posts, likes, comments, and the feed.
type PostController struct {
	Posts *services.PostService
	Auth  *services.AuthService
}

// NewPostController creates a new instance of PostController
func NewPostController(posts *services.PostService, auth *services.AuthService) *PostController {
	return &PostController{Posts: posts, Auth: auth}
}

// CreatePost publishes a new post.
func (c *PostController) CreatePost(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	var payload struct {
		Content  string `json:"content" validate:"required"`
		ImageURL string `json:"imageUrl"`
		GroupID  string `json:"groupId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, "Missing post content", http.StatusBadRequest)
		return
	}

	post, err := c.Posts.CreatePost(r.Context(), actorID, payload.Content, payload.ImageURL, payload.GroupID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Post created successfully",
		"post":    post,
	})
}

// Feed returns the viewer's composed feed.
func (c *PostController) Feed(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	posts, err := c.Posts.Feed(r.Context(), viewerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// ToggleLike flips the actor's like on a post.
func (c *PostController) ToggleLike(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	postID := mux.Vars(r)["postId"]
	if err := c.Posts.ToggleLike(r.Context(), actorID, postID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Like toggled"})
}

// AddComment appends a comment to a post.
func (c *PostController) AddComment(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, c.Auth)
	if !ok {
		return
	}
	postID := mux.Vars(r)["postId"]
	var payload struct {
		Content string `json:"content" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, "Missing comment content", http.StatusBadRequest)
		return
	}

	comment, err := c.Posts.AddComment(r.Context(), actorID, postID, payload.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Comment added successfully",
		"comment": comment,
	})
}
