package models

import "time"

// Comment is attached to exactly one post or event, oldest first.
type Comment struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"timestamp"`
}

// Post is a feed entry. Likes holds profile IDs with set semantics
// (toggle, not counter). GroupID, when set, scopes visibility to that
// group's members.
type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content" validate:"required"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	GroupID   string    `json:"groupId,omitempty"`
	CreatedAt time.Time `json:"timestamp"`
	Likes     []string  `json:"likes"`
	Comments  []Comment `json:"comments"`
}

// Clone returns a deep copy safe to hand out beyond the store lock.
func (p *Post) Clone() *Post {
	cp := *p
	cp.Likes = append([]string(nil), p.Likes...)
	cp.Comments = append([]Comment(nil), p.Comments...)
	return &cp
}
