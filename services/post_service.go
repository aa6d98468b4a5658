package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"mindhuddle_server/models"
	"mindhuddle_server/store"
	"mindhuddle_server/utils"

	"github.com/google/uuid"
)

// PostService owns the post collection: creation, like toggling,
// comments, and feed composition.
type PostService struct {
	Store *store.AppStore
}

// CreatePost publishes a post by the actor. When groupID is set the actor
// must be a member of that group.
func (s *PostService) CreatePost(ctx context.Context, actorID, content, imageURL, groupID string) (*models.Post, error) {
	if actorID == "" {
		return nil, models.ErrNotAuthenticated
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("post content is empty: %w", models.ErrInvalidState)
	}

	post := &models.Post{
		ID:        uuid.New().String(),
		AuthorID:  actorID,
		Content:   content,
		ImageURL:  imageURL,
		GroupID:   groupID,
		CreatedAt: time.Now(),
		Likes:     []string{},
		Comments:  []models.Comment{},
	}

	err := s.Store.Update(func(c *store.Collections) error {
		if _, err := c.User(actorID); err != nil {
			return err
		}
		if groupID != "" {
			group, err := c.Group(groupID)
			if err != nil {
				return err
			}
			if !group.IsMember(actorID) {
				return fmt.Errorf("%s is not a member of group %s: %w", actorID, groupID, models.ErrInvalidState)
			}
		}
		c.AddPost(post)
		return nil
	})
	if err != nil {
		log.Printf("❌ Failed to create post by %s: %v", actorID, err)
		return nil, err
	}
	log.Printf("📝 Post created: %s by %s", post.ID, actorID)
	return post.Clone(), nil
}

// ToggleLike flips the actor's membership in the post's like set.
// Toggling twice restores the original state.
func (s *PostService) ToggleLike(ctx context.Context, actorID, postID string) error {
	if actorID == "" {
		return models.ErrNotAuthenticated
	}
	return s.Store.Update(func(c *store.Collections) error {
		if _, err := c.User(actorID); err != nil {
			return err
		}
		post, err := c.Post(postID)
		if err != nil {
			return err
		}
		post.Likes = utils.Toggle(post.Likes, actorID)
		return nil
	})
}

// AddComment appends a comment to the post. Blank content is rejected;
// ordering is strictly insertion order, oldest first.
func (s *PostService) AddComment(ctx context.Context, actorID, postID, content string) (*models.Comment, error) {
	if actorID == "" {
		return nil, models.ErrNotAuthenticated
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("comment content is empty: %w", models.ErrInvalidState)
	}

	comment := models.Comment{
		ID:        uuid.New().String(),
		AuthorID:  actorID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	err := s.Store.Update(func(c *store.Collections) error {
		if _, err := c.User(actorID); err != nil {
			return err
		}
		post, err := c.Post(postID)
		if err != nil {
			return err
		}
		post.Comments = append(post.Comments, comment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("💬 Comment added to post %s by %s", postID, actorID)
	return &comment, nil
}

// Feed composes the viewer's feed: posts with no owning group, plus posts
// whose group the viewer belongs to, newest first.
func (s *PostService) Feed(ctx context.Context, viewerID string) ([]models.Post, error) {
	if viewerID == "" {
		return nil, models.ErrNotAuthenticated
	}

	var out []models.Post
	err := s.Store.View(func(c *store.Collections) error {
		viewer, err := c.User(viewerID)
		if err != nil {
			return err
		}
		for _, post := range c.Posts() {
			if post.GroupID != "" && !utils.Contains(viewer.Groups, post.GroupID) {
				continue
			}
			out = append(out, *post.Clone())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GroupFeed returns the posts scoped to one group, newest first. The
// viewer must be a member.
func (s *PostService) GroupFeed(ctx context.Context, viewerID, groupID string) ([]models.Post, error) {
	if viewerID == "" {
		return nil, models.ErrNotAuthenticated
	}

	var out []models.Post
	err := s.Store.View(func(c *store.Collections) error {
		group, err := c.Group(groupID)
		if err != nil {
			return err
		}
		if !group.IsMember(viewerID) {
			return fmt.Errorf("%s is not a member of group %s: %w", viewerID, groupID, models.ErrInvalidState)
		}
		for _, post := range c.Posts() {
			if post.GroupID == groupID {
				out = append(out, *post.Clone())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
