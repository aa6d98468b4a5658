package models

import "time"

// CalendarEvent is an organized gathering. Attendees and Likes are
// independent sets of profile IDs; the organizer attends from creation.
type CalendarEvent struct {
	ID          string    `json:"id"`
	OrganizerID string    `json:"organizerId"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	Location    string    `json:"location"`
	IsVirtual   bool      `json:"isVirtual"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Attendees   []string  `json:"attendees"`
	Likes       []string  `json:"likes"`
	Comments    []Comment `json:"comments"`
}

// Clone returns a deep copy safe to hand out beyond the store lock.
func (e *CalendarEvent) Clone() *CalendarEvent {
	cp := *e
	cp.Attendees = append([]string(nil), e.Attendees...)
	cp.Likes = append([]string(nil), e.Likes...)
	cp.Comments = append([]Comment(nil), e.Comments...)
	return &cp
}
