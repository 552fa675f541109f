package store

import "github.com/zentryhq/zentry/internal/models"

// TeamMemberPatch selects team member fields for a partial update.
type TeamMemberPatch struct {
	Name        *string
	Role        *string
	Department  *string
	Avatar      *string
	Email       *string
	Phone       *string
	Location    *string
	Skills      *[]string
	Experience  *string
	Performance *models.PerformanceMetric
	SocialLinks *models.SocialLinks
}

// AddTeamMember inserts a team member at the head of the collection.
func (s *Store) AddTeamMember(m models.TeamMember) models.TeamMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	if m.ID == "" {
		m.ID = s.NewID()
	}
	s.team = append([]models.TeamMember{cloneTeamMember(m)}, s.team...)
	return m
}

// TeamMembers returns a snapshot of all team members, newest first.
func (s *Store) TeamMembers() []models.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TeamMember, 0, len(s.team))
	for _, m := range s.team {
		out = append(out, cloneTeamMember(m))
	}
	return out
}

// GetTeamMember retrieves a team member by id.
func (s *Store) GetTeamMember(id string) (models.TeamMember, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.team {
		if m.ID == id {
			return cloneTeamMember(m), true
		}
	}
	return models.TeamMember{}, false
}

// UpdateTeamMember merges the patch into the member matching id. Renames
// do not rewrite task assignees: assignment is by display name and stale
// names simply stop matching.
func (s *Store) UpdateTeamMember(id string, patch TeamMemberPatch) (models.TeamMember, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.team {
		if s.team[i].ID != id {
			continue
		}
		m := &s.team[i]
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.Role != nil {
			m.Role = *patch.Role
		}
		if patch.Department != nil {
			m.Department = *patch.Department
		}
		if patch.Avatar != nil {
			m.Avatar = *patch.Avatar
		}
		if patch.Email != nil {
			m.Email = *patch.Email
		}
		if patch.Phone != nil {
			m.Phone = *patch.Phone
		}
		if patch.Location != nil {
			m.Location = *patch.Location
		}
		if patch.Skills != nil {
			skills := make([]string, len(*patch.Skills))
			copy(skills, *patch.Skills)
			m.Skills = skills
		}
		if patch.Experience != nil {
			m.Experience = *patch.Experience
		}
		if patch.Performance != nil {
			perf := *patch.Performance
			m.Performance = &perf
		}
		if patch.SocialLinks != nil {
			links := *patch.SocialLinks
			m.SocialLinks = &links
		}
		return cloneTeamMember(*m), true
	}
	return models.TeamMember{}, false
}

// DeleteTeamMember removes the member matching id.
func (s *Store) DeleteTeamMember(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.team {
		if s.team[i].ID == id {
			s.team = append(s.team[:i], s.team[i+1:]...)
			return
		}
	}
}
