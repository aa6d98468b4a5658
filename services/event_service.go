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

// EventService owns the event collection: creation, organizer updates,
// like/attendance toggles, comments, and the event list views.
type EventService struct {
	Store *store.AppStore
}

// CreateEventInput carries the optional fields of a new event; blanks get
// the same defaults the event form applies.
type CreateEventInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	Location    string    `json:"location"`
	IsVirtual   bool      `json:"isVirtual"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
}

// CreateEvent creates an event organized by the actor. The organizer
// attends from creation.
func (s *EventService) CreateEvent(ctx context.Context, actorID string, input CreateEventInput) (*models.CalendarEvent, error) {
	if actorID == "" {
		return nil, models.ErrNotAuthenticated
	}

	if input.Title == "" {
		input.Title = "Untitled Event"
	}
	if input.Location == "" {
		input.Location = "TBD"
	}
	if input.Category == "" {
		input.Category = "General"
	}
	if input.StartDate.IsZero() {
		input.StartDate = time.Now()
	}

	event := &models.CalendarEvent{
		ID:          uuid.New().String(),
		OrganizerID: actorID,
		Title:       input.Title,
		Description: input.Description,
		StartDate:   input.StartDate,
		Location:    input.Location,
		IsVirtual:   input.IsVirtual,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Attendees:   []string{actorID},
		Likes:       []string{},
		Comments:    []models.Comment{},
	}

	err := s.Store.Update(func(c *store.Collections) error {
		if _, err := c.User(actorID); err != nil {
			return err
		}
		c.AddEvent(event)
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("📅 Event created: %s (%s) by %s", event.Title, event.ID, actorID)
	return event.Clone(), nil
}

// UpdateEvent applies a partial update. Only the organizer may edit.
func (s *EventService) UpdateEvent(ctx context.Context, actorID, eventID string, updates map[string]interface{}) (*models.CalendarEvent, error) {
	if actorID == "" {
		return nil, models.ErrNotAuthenticated
	}

	var updated *models.CalendarEvent
	err := s.Store.Update(func(c *store.Collections) error {
		event, err := c.Event(eventID)
		if err != nil {
			return err
		}
		if event.OrganizerID != actorID {
			return fmt.Errorf("%s is not the organizer of %s: %w", actorID, eventID, models.ErrInvalidState)
		}
		for key, value := range updates {
			switch key {
			case "title":
				event.Title = asString(value)
			case "description":
				event.Description = asString(value)
			case "location":
				event.Location = asString(value)
			case "category":
				event.Category = asString(value)
			case "imageUrl":
				event.ImageURL = asString(value)
			case "isVirtual":
				v, _ := value.(bool)
				event.IsVirtual = v
			case "startDate":
				t, err := time.Parse(time.RFC3339, asString(value))
				if err != nil {
					return fmt.Errorf("bad startDate: %w", models.ErrInvalidState)
				}
				event.StartDate = t
			default:
				return fmt.Errorf("field %q is not updatable: %w", key, models.ErrInvalidState)
			}
		}
		updated = event.Clone()
		return nil
	})
	if err != nil {
		log.Printf("❌ Event update %s by %s failed: %v", eventID, actorID, err)
		return nil, err
	}
	return updated, nil
}

// ToggleLike flips the actor's membership in the event's like set.
func (s *EventService) ToggleLike(ctx context.Context, actorID, eventID string) error {
	return s.toggle(actorID, eventID, func(e *models.CalendarEvent) {
		e.Likes = utils.Toggle(e.Likes, actorID)
	})
}

// ToggleAttendance flips the actor's membership in the attendee set,
// independently of likes.
func (s *EventService) ToggleAttendance(ctx context.Context, actorID, eventID string) error {
	return s.toggle(actorID, eventID, func(e *models.CalendarEvent) {
		e.Attendees = utils.Toggle(e.Attendees, actorID)
	})
}

func (s *EventService) toggle(actorID, eventID string, apply func(*models.CalendarEvent)) error {
	if actorID == "" {
		return models.ErrNotAuthenticated
	}
	return s.Store.Update(func(c *store.Collections) error {
		if _, err := c.User(actorID); err != nil {
			return err
		}
		event, err := c.Event(eventID)
		if err != nil {
			return err
		}
		apply(event)
		return nil
	})
}

// AddComment appends a comment to the event. Blank content is rejected.
func (s *EventService) AddComment(ctx context.Context, actorID, eventID, content string) (*models.Comment, error) {
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
		event, err := c.Event(eventID)
		if err != nil {
			return err
		}
		event.Comments = append(event.Comments, comment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("💬 Comment added to event %s by %s", eventID, actorID)
	return &comment, nil
}

// FilterEvents returns events sorted by start time ascending, optionally
// narrowed by a text query over title/description/location and a
// virtual/in-person mode.
func (s *EventService) FilterEvents(ctx context.Context, query, mode string) ([]models.CalendarEvent, error) {
	var out []models.CalendarEvent
	err := s.Store.View(func(c *store.Collections) error {
		lowerQ := strings.ToLower(query)
		for _, event := range c.Events() {
			if query != "" {
				haystack := strings.ToLower(event.Title + " " + event.Description + " " + event.Location)
				if !strings.Contains(haystack, lowerQ) {
					continue
				}
			}
			switch mode {
			case models.EventFilterVirtual:
				if !event.IsVirtual {
					continue
				}
			case models.EventFilterInPerson:
				if event.IsVirtual {
					continue
				}
			}
			out = append(out, *event.Clone())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out, nil
}
