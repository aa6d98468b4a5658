package store

import (
	"time"

	"mindhuddle_server/models"
)

// DefaultUserID is the profile the login flow resolves when no snapshot
// exists yet.
const DefaultUserID = "u0"

// seedFixtures populates the collections with the demo dataset. Relative
// timestamps keep the feed and event list looking live regardless of when
// the process starts.
func seedFixtures(c *Collections) {
	now := time.Now()

	c.AddUser(&models.UserProfile{
		ID:        DefaultUserID,
		Name:      "Alex Nakachi",
		Email:     "alex@mindhuddle.com",
		Headline:  "Senior React Engineer & AI Enthusiast",
		Bio:       "Passionate about building scalable frontend architectures and integrating LLMs into everyday workflows. Believer in the Ubuntu philosophy of software development: code is better when shared.",
		AvatarURL: "https://picsum.photos/200/200?random=1",
		Location:  "San Francisco, CA",
		Company:   "TechFlow Inc.",
		Status:    models.StatusOpenToWork,
		Skills:    []string{"React", "TypeScript", "Gemini API", "Tailwind", "System Design"},
		Interests: []string{"Artificial Intelligence", "Open Source", "Digital Nomadism"},
		Connections:      []string{"u2"},
		ReceivedRequests: []string{"u3"},
		Groups:           []string{"g1"},
	})
	c.AddUser(&models.UserProfile{
		ID:        "u1",
		Name:      "Sarah Chen",
		Email:     "sarah@example.com",
		Headline:  "Product Manager @ InnovateX | AI Strategist",
		Bio:       "Driving product vision through data-backed insights. Exploring the intersection of human empathy and artificial intelligence.",
		AvatarURL: "https://picsum.photos/200/200?random=2",
		Location:  "New York, NY",
		Company:   "InnovateX",
		Status:    models.StatusHiring,
		Skills:    []string{"Product Strategy", "User Research", "Agile", "Data Analysis"},
		Interests: []string{"FinTech", "Leadership", "Hiking"},
		Groups:    []string{"g1", "g2"},
	})
	c.AddUser(&models.UserProfile{
		ID:        "u2",
		Name:      "Kwame Osei",
		Email:     "kwame@example.com",
		Headline:  "Community Builder | Ubuntu Advocate",
		Bio:       "Building bridges between communities through technology. Specialized in sustainable tech solutions for emerging markets.",
		AvatarURL: "https://picsum.photos/200/200?random=3",
		Location:  "Accra, Ghana",
		Company:   "RootsTech",
		Status:    models.StatusMentoring,
		Skills:      []string{"Community Management", "Public Speaking", "Sustainability", "React Native"},
		Interests:   []string{"Social Impact", "Cultural Exchange", "Music"},
		Connections: []string{DefaultUserID},
		Groups:      []string{"g1", "g3"},
	})
	c.AddUser(&models.UserProfile{
		ID:        "u3",
		Name:      "Elena Rodriguez",
		Email:     "elena@example.com",
		Headline:  "UX Researcher & Cognitive Scientist",
		Bio:       "Understanding the 'why' behind user behaviors. Currently traveling and researching digital nomad workflows.",
		AvatarURL: "https://picsum.photos/200/200?random=4",
		Location:  "Lisbon, Portugal",
		Company:   "Freelance",
		Status:    models.StatusTraveling,
		Skills:       []string{"UX Research", "Cognitive Science", "Figma", "Accessibility"},
		Interests:    []string{"Travel", "Psychology", "Remote Work"},
		SentRequests: []string{DefaultUserID},
		Groups:       []string{"g2"},
	})
	c.AddUser(&models.UserProfile{
		ID:        "u4",
		Name:      "David Kim",
		Email:     "david@example.com",
		Headline:  "Full Stack Developer | Cloud Architect",
		Bio:       "Scalable backend systems and intuitive frontends. Obsessed with clean code and cloud infrastructure.",
		AvatarURL: "https://picsum.photos/200/200?random=5",
		Location:  "Seattle, WA",
		Company:   "CloudScale",
		Status:    models.StatusBusy,
		Skills:    []string{"Python", "AWS", "Docker", "Kubernetes"},
		Interests: []string{"Cloud Computing", "Gaming", "Startups"},
		Groups:    []string{"g2", "g3"},
	})

	m0 := models.Message{ID: "m0", ConversationID: "c1", SenderID: DefaultUserID, Content: "Hi Kwame, love the work you're doing with RootsTech.", CreatedAt: now.Add(-3 * time.Hour)}
	m1 := models.Message{ID: "m1", ConversationID: "c1", SenderID: "u2", Content: "Thanks Alex! I really appreciated your insights on the Ubuntu philosophy in tech!", CreatedAt: now.Add(-2 * time.Hour)}
	c.AddConversation(&models.Conversation{
		ID:             "c1",
		OwnerID:        DefaultUserID,
		ParticipantIDs: []string{DefaultUserID, "u2"},
		Messages:       []models.Message{m0, m1},
		LastMessage:    &m1,
		UnreadCount:    1,
	})
	m2 := models.Message{ID: "m2", ConversationID: "c2", SenderID: DefaultUserID, Content: "Let's schedule a time to discuss the product roadmap.", CreatedAt: now.Add(-24 * time.Hour)}
	c.AddConversation(&models.Conversation{
		ID:             "c2",
		OwnerID:        DefaultUserID,
		ParticipantIDs: []string{DefaultUserID, "u1"},
		Messages:       []models.Message{m2},
		LastMessage:    &m2,
		UnreadCount:    0,
	})

	c.AddGroup(&models.Group{
		ID:          "g1",
		Name:        "AI Innovators",
		Description: "A community for professionals exploring the frontiers of Artificial Intelligence, Machine Learning, and Generative Models. Share insights, research, and applications.",
		ImageURL:    "https://picsum.photos/800/400?random=50",
		Category:    "Technology",
		Members:     []string{DefaultUserID, "u1", "u2"},
		Admins:      []string{"u1"},
	})
	c.AddGroup(&models.Group{
		ID:          "g2",
		Name:        "Digital Nomads Global",
		Description: "Connecting remote workers and location-independent professionals from around the world. Tips on visas, coworking spaces, and work-life balance.",
		ImageURL:    "https://picsum.photos/800/400?random=51",
		Category:    "Lifestyle",
		Members:     []string{"u1", "u3", "u4"},
		Admins:      []string{"u3"},
	})
	c.AddGroup(&models.Group{
		ID:          "g3",
		Name:        "React Developers",
		Description: "The premier group for React.js, Next.js, and React Native developers. Discuss best practices, hooks, state management, and the future of the web.",
		ImageURL:    "https://picsum.photos/800/400?random=52",
		Category:    "Engineering",
		Members:     []string{"u2", "u4"},
		Admins:      []string{"u4"},
	})

	c.AddPost(&models.Post{
		ID:        "p1",
		AuthorID:  "u1",
		Content:   "Embracing the spirit of #Ubuntu in tech development means we don't just build for users; we build WITH communities. Had an amazing session today discussing sustainable tech.",
		CreatedAt: now.Add(-2 * time.Hour),
		Likes:     []string{DefaultUserID, "u2", "u3"},
		Comments: []models.Comment{
			{ID: "cm1", AuthorID: "u2", Content: "Absolutely agree! Community-driven development is the future.", CreatedAt: now.Add(-55 * time.Minute)},
		},
		GroupID: "g1",
	})
	c.AddPost(&models.Post{
		ID:        "p2",
		AuthorID:  "u3",
		Content:   "Just landed in Lisbon! Looking to connect with other digital nomads and UX researchers in the area. Let's grab coffee!",
		CreatedAt: now.Add(-5 * time.Hour),
		Likes:     []string{"u1"},
		ImageURL:  "https://picsum.photos/800/400?random=10",
		GroupID:   "g2",
	})
	c.AddPost(&models.Post{
		ID:        "p3",
		AuthorID:  "u2",
		Content:   "The best way to predict the future is to create it. Working on some exciting new initiatives at RootsTech.",
		CreatedAt: now.Add(-24 * time.Hour),
		Likes:     []string{DefaultUserID, "u4"},
	})

	c.AddEvent(&models.CalendarEvent{
		ID:          "e1",
		OrganizerID: "u1",
		Title:       "Future of AI in Product Management",
		Description: "Join us for a deep dive into how Artificial Intelligence is reshaping the landscape of Product Management. We will cover automated user research, predictive analytics, and ethical considerations.",
		StartDate:   now.Add(48 * time.Hour),
		Location:    "Zoom (Virtual)",
		IsVirtual:   true,
		Category:    "Technology",
		Likes:       []string{DefaultUserID, "u3"},
		Comments: []models.Comment{
			{ID: "ec1", AuthorID: DefaultUserID, Content: "Can't wait for this! The agenda looks packed.", CreatedAt: now.Add(-time.Hour)},
		},
		ImageURL:  "https://picsum.photos/800/400?random=20",
		Attendees: []string{DefaultUserID, "u3", "u4"},
	})
	c.AddEvent(&models.CalendarEvent{
		ID:          "e2",
		OrganizerID: "u2",
		Title:       "Tech Mixer Accra",
		Description: "A casual evening of networking, food, and music for the tech community in Accra. Come meet developers, designers, and founders building the next generation of African tech.",
		StartDate:   now.Add(123 * time.Hour),
		Location:    "Impact Hub, Accra",
		IsVirtual:   false,
		Category:    "Networking",
		Likes:       []string{"u2", "u1", "u4"},
		Attendees:   []string{"u2", "u1", "u4"},
		ImageURL:    "https://picsum.photos/800/400?random=21",
	})
}
