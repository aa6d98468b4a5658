package models

// UserProfile defines the structure for user profiles
type UserProfile struct {
	ID        string   `json:"id"`
	Name      string   `json:"name" validate:"required"`
	Email     string   `json:"email" validate:"required,email"`
	Headline  string   `json:"headline"`
	Bio       string   `json:"bio"`
	AvatarURL string   `json:"avatarUrl,omitempty"`
	CoverURL  string   `json:"coverUrl,omitempty"`
	Location  string   `json:"location"`
	Company   string   `json:"company,omitempty"`
	Status    string   `json:"status"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`

	// Connection management. Connections is symmetric across two
	// profiles; SentRequests and ReceivedRequests are asymmetric mirrors
	// of each other; Groups mirrors Group.Members.
	Connections      []string `json:"connections"`
	SentRequests     []string `json:"sentRequests"`
	ReceivedRequests []string `json:"receivedRequests"`
	Groups           []string `json:"groups"`
}

// Clone returns a deep copy safe to hand out beyond the store lock.
func (p *UserProfile) Clone() *UserProfile {
	cp := *p
	cp.Skills = append([]string(nil), p.Skills...)
	cp.Interests = append([]string(nil), p.Interests...)
	cp.Connections = append([]string(nil), p.Connections...)
	cp.SentRequests = append([]string(nil), p.SentRequests...)
	cp.ReceivedRequests = append([]string(nil), p.ReceivedRequests...)
	cp.Groups = append([]string(nil), p.Groups...)
	return &cp
}

// RankedProfile is a profile annotated with discovery metadata.
type RankedProfile struct {
	UserProfile
	Relevance int  `json:"relevance"`
	Nearby    bool `json:"isLocal"`
}
