package services

import (
	"context"
	"sort"
	"strings"

	"mindhuddle_server/models"
	"mindhuddle_server/store"
)

// DiscoveryService derives the people-discovery views. Everything here is
// a pure recomputation over the users collection; nothing is cached.
type DiscoveryService struct {
	Store *store.AppStore
}

// DiscoveryFilters narrows the candidate set before ranking. All filters
// are conjunctive.
type DiscoveryFilters struct {
	Query  string
	Mode   string
	Status string
	Skill  string
}

// DiscoverProfiles returns every profile except the viewer's, filtered
// and ranked per the requested mode:
//
//   - all: fixture order
//   - recommended: descending relevance (2 per shared skill, 1 per shared
//     interest), stable on ties
//   - nearby: location substring match in either direction
func (s *DiscoveryService) DiscoverProfiles(ctx context.Context, viewerID string, filters DiscoveryFilters) ([]models.RankedProfile, error) {
	if viewerID == "" {
		return nil, models.ErrNotAuthenticated
	}

	var viewer *models.UserProfile
	var candidates []*models.UserProfile
	err := s.Store.View(func(c *store.Collections) error {
		v, err := c.User(viewerID)
		if err != nil {
			return err
		}
		viewer = v.Clone()
		for _, u := range c.Users() {
			if u.ID == viewerID {
				continue
			}
			candidates = append(candidates, u.Clone())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	lowerQ := strings.ToLower(filters.Query)
	lowerSkill := strings.ToLower(filters.Skill)

	var ranked []models.RankedProfile
	for _, u := range candidates {
		if filters.Query != "" && !matchesQuery(u, lowerQ) {
			continue
		}
		if filters.Status != "" && u.Status != filters.Status {
			continue
		}
		if filters.Skill != "" && !hasSkillContaining(u, lowerSkill) {
			continue
		}
		nearby := isNearby(viewer.Location, u.Location)
		if filters.Mode == models.DiscoveryModeNearby && !nearby {
			continue
		}
		ranked = append(ranked, models.RankedProfile{
			UserProfile: *u,
			Relevance:   relevance(viewer, u),
			Nearby:      nearby,
		})
	}

	if filters.Mode == models.DiscoveryModeRecommended {
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Relevance > ranked[j].Relevance
		})
	}
	return ranked, nil
}

// AllSkills returns the sorted union of every profile's skills, for the
// skill filter dropdown.
func (s *DiscoveryService) AllSkills(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var skills []string
	err := s.Store.View(func(c *store.Collections) error {
		for _, u := range c.Users() {
			for _, skill := range u.Skills {
				if _, ok := seen[skill]; !ok {
					seen[skill] = struct{}{}
					skills = append(skills, skill)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(skills)
	return skills, nil
}

// relevance scores a candidate against the viewer: shared skills weigh
// double shared interests.
func relevance(viewer, candidate *models.UserProfile) int {
	score := 0
	for _, skill := range candidate.Skills {
		for _, mine := range viewer.Skills {
			if skill == mine {
				score += 2
				break
			}
		}
	}
	for _, interest := range candidate.Interests {
		for _, mine := range viewer.Interests {
			if interest == mine {
				score++
				break
			}
		}
	}
	return score
}

// isNearby treats two locations as close when either string contains the
// other, case-insensitively. "San Francisco" matches "San Francisco, CA".
func isNearby(viewerLoc, targetLoc string) bool {
	if viewerLoc == "" || targetLoc == "" {
		return false
	}
	mine := strings.ToLower(viewerLoc)
	theirs := strings.ToLower(targetLoc)
	return strings.Contains(mine, theirs) || strings.Contains(theirs, mine)
}

func matchesQuery(u *models.UserProfile, lowerQ string) bool {
	if strings.Contains(strings.ToLower(u.Name), lowerQ) ||
		strings.Contains(strings.ToLower(u.Headline), lowerQ) ||
		strings.Contains(strings.ToLower(u.Location), lowerQ) {
		return true
	}
	return hasSkillContaining(u, lowerQ)
}

func hasSkillContaining(u *models.UserProfile, lowerNeedle string) bool {
	for _, skill := range u.Skills {
		if strings.Contains(strings.ToLower(skill), lowerNeedle) {
			return true
		}
	}
	return false
}
