package models

// Group is a membership circle. Members mirrors each member profile's
// Groups list. Admins is always a subset of Members: leaving or being
// removed from a group revokes admin status.
type Group struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Members     []string `json:"members"`
	Admins      []string `json:"admins"`
}

// IsMember reports whether userID belongs to the group.
func (g *Group) IsMember(userID string) bool {
	for _, id := range g.Members {
		if id == userID {
			return true
		}
	}
	return false
}

// IsAdmin reports whether userID administers the group.
func (g *Group) IsAdmin(userID string) bool {
	for _, id := range g.Admins {
		if id == userID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy safe to hand out beyond the store lock.
func (g *Group) Clone() *Group {
	cp := *g
	cp.Members = append([]string(nil), g.Members...)
	cp.Admins = append([]string(nil), g.Admins...)
	return &cp
}

// GroupDetail is a group enriched with member profiles for detail views.
type GroupDetail struct {
	Group
	MemberProfiles []UserProfile `json:"memberProfiles"`
}
