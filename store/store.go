package store

import (
	"fmt"
	"sync"

	"mindhuddle_server/models"
)

// Collections holds the five entity collections. Insertion order is kept
// per collection so fixture order survives map iteration.
type Collections struct {
	users         map[string]*models.UserProfile
	userOrder     []string
	conversations map[string]*models.Conversation
	convOrder     []string
	posts         map[string]*models.Post
	postOrder     []string
	events        map[string]*models.CalendarEvent
	eventOrder    []string
	groups        map[string]*models.Group
	groupOrder    []string
}

// AppStore is the single in-memory store every service mutates through.
// The mutex serializes paired updates so a mirrored relationship is never
// observed half-applied.
type AppStore struct {
	mu sync.RWMutex
	c  Collections
}

// NewAppStore returns an empty store.
func NewAppStore() *AppStore {
	return &AppStore{c: Collections{
		users:         make(map[string]*models.UserProfile),
		conversations: make(map[string]*models.Conversation),
		posts:         make(map[string]*models.Post),
		events:        make(map[string]*models.CalendarEvent),
		groups:        make(map[string]*models.Group),
	}}
}

// NewSeededAppStore returns a store populated with the fixture dataset.
func NewSeededAppStore() *AppStore {
	s := NewAppStore()
	s.Reset()
	return s
}

// Update runs fn with exclusive access to the collections. Every mutating
// operation goes through here so both sides of a mirrored update land in
// one critical section.
func (s *AppStore) Update(fn func(c *Collections) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.c)
}

// View runs fn with shared read access to the collections.
func (s *AppStore) View(fn func(c *Collections) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.c)
}

// Reset discards all state and reseeds the fixture dataset.
func (s *AppStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c = Collections{
		users:         make(map[string]*models.UserProfile),
		conversations: make(map[string]*models.Conversation),
		posts:         make(map[string]*models.Post),
		events:        make(map[string]*models.CalendarEvent),
		groups:        make(map[string]*models.Group),
	}
	seedFixtures(&s.c)
}

// User returns the profile with the given ID.
func (c *Collections) User(id string) (*models.UserProfile, error) {
	u, ok := c.users[id]
	if !ok {
		return nil, fmt.Errorf("profile %s: %w", id, models.ErrNotFound)
	}
	return u, nil
}

// UserByEmail returns the profile with the given email, if any.
func (c *Collections) UserByEmail(email string) (*models.UserProfile, error) {
	for _, id := range c.userOrder {
		if c.users[id].Email == email {
			return c.users[id], nil
		}
	}
	return nil, fmt.Errorf("profile with email %s: %w", email, models.ErrNotFound)
}

// AddUser inserts or replaces a profile.
func (c *Collections) AddUser(u *models.UserProfile) {
	if _, exists := c.users[u.ID]; !exists {
		c.userOrder = append(c.userOrder, u.ID)
	}
	c.users[u.ID] = u
}

// Users returns all profiles in insertion order.
func (c *Collections) Users() []*models.UserProfile {
	out := make([]*models.UserProfile, 0, len(c.userOrder))
	for _, id := range c.userOrder {
		out = append(out, c.users[id])
	}
	return out
}

// Conversation returns the conversation with the given ID.
func (c *Collections) Conversation(id string) (*models.Conversation, error) {
	conv, ok := c.conversations[id]
	if !ok {
		return nil, fmt.Errorf("conversation %s: %w", id, models.ErrNotFound)
	}
	return conv, nil
}

// ConversationBetween returns the conversation whose participant pair is
// exactly {a, b}, regardless of order. At most one such conversation
// exists.
func (c *Collections) ConversationBetween(a, b string) (*models.Conversation, bool) {
	for _, id := range c.convOrder {
		conv := c.conversations[id]
		if conv.HasParticipant(a) && conv.HasParticipant(b) {
			return conv, true
		}
	}
	return nil, false
}

// AddConversation inserts or replaces a conversation.
func (c *Collections) AddConversation(conv *models.Conversation) {
	if _, exists := c.conversations[conv.ID]; !exists {
		c.convOrder = append(c.convOrder, conv.ID)
	}
	c.conversations[conv.ID] = conv
}

// Conversations returns all conversations in insertion order.
func (c *Collections) Conversations() []*models.Conversation {
	out := make([]*models.Conversation, 0, len(c.convOrder))
	for _, id := range c.convOrder {
		out = append(out, c.conversations[id])
	}
	return out
}

// Post returns the post with the given ID.
func (c *Collections) Post(id string) (*models.Post, error) {
	p, ok := c.posts[id]
	if !ok {
		return nil, fmt.Errorf("post %s: %w", id, models.ErrNotFound)
	}
	return p, nil
}

// AddPost inserts or replaces a post.
func (c *Collections) AddPost(p *models.Post) {
	if _, exists := c.posts[p.ID]; !exists {
		c.postOrder = append(c.postOrder, p.ID)
	}
	c.posts[p.ID] = p
}

// Posts returns all posts in insertion order.
func (c *Collections) Posts() []*models.Post {
	out := make([]*models.Post, 0, len(c.postOrder))
	for _, id := range c.postOrder {
		out = append(out, c.posts[id])
	}
	return out
}

// Event returns the event with the given ID.
func (c *Collections) Event(id string) (*models.CalendarEvent, error) {
	e, ok := c.events[id]
	if !ok {
		return nil, fmt.Errorf("event %s: %w", id, models.ErrNotFound)
	}
	return e, nil
}

// AddEvent inserts or replaces an event.
func (c *Collections) AddEvent(e *models.CalendarEvent) {
	if _, exists := c.events[e.ID]; !exists {
		c.eventOrder = append(c.eventOrder, e.ID)
	}
	c.events[e.ID] = e
}

// Events returns all events in insertion order.
func (c *Collections) Events() []*models.CalendarEvent {
	out := make([]*models.CalendarEvent, 0, len(c.eventOrder))
	for _, id := range c.eventOrder {
		out = append(out, c.events[id])
	}
	return out
}

// Group returns the group with the given ID.
func (c *Collections) Group(id string) (*models.Group, error) {
	g, ok := c.groups[id]
	if !ok {
		return nil, fmt.Errorf("group %s: %w", id, models.ErrNotFound)
	}
	return g, nil
}

// AddGroup inserts or replaces a group.
func (c *Collections) AddGroup(g *models.Group) {
	if _, exists := c.groups[g.ID]; !exists {
		c.groupOrder = append(c.groupOrder, g.ID)
	}
	c.groups[g.ID] = g
}

// Groups returns all groups in insertion order.
func (c *Collections) Groups() []*models.Group {
	out := make([]*models.Group, 0, len(c.groupOrder))
	for _, id := range c.groupOrder {
		out = append(out, c.groups[id])
	}
	return out
}
