// Package store owns every ZENtry entity collection in memory. It is the
// single source of truth for all views; nothing in it survives a restart.
package store

import (
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/zentryhq/zentry/internal/metrics"
	"github.com/zentryhq/zentry/internal/models"
)

// Store holds one collection per entity type. All mutations funnel through
// named operations; collections are never handed out by reference.
//
// List-style collections keep newest-first order: adds insert at the head.
type Store struct {
	mu sync.RWMutex

	deals         []models.Deal
	contacts      []models.Contact
	team          []models.TeamMember
	projects      []models.Project
	tasks         []models.Task
	campaigns     []models.MarketingCampaign
	flows         []models.AutomationFlow
	emails        []models.Email
	posts         []models.FeedPost
	files         []models.FileEntry
	sites         []models.Site
	notifications []models.Notification
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// NewID returns a time-ordered random identifier. Ids are owned by the
// store so rapid-fire creations from independent callers cannot collide;
// callers may still supply their own ids, which are taken verbatim and
// without a uniqueness check.
func (s *Store) NewID() string {
	return ulid.Make().String()
}

// countMutation bumps the mutation counter. Called with the write lock held.
func (s *Store) countMutation() {
	metrics.Inc(metrics.StoreMutations)
}

// --- clone helpers ---
//
// Snapshot readers hand out copies so callers can never mutate stored
// records through a returned value. Only fields with reference semantics
// need explicit work.

func cloneTeamMember(m models.TeamMember) models.TeamMember {
	if len(m.Skills) > 0 {
		skills := make([]string, len(m.Skills))
		copy(skills, m.Skills)
		m.Skills = skills
	}
	if m.Performance != nil {
		perf := *m.Performance
		m.Performance = &perf
	}
	if m.SocialLinks != nil {
		links := *m.SocialLinks
		m.SocialLinks = &links
	}
	return m
}

func cloneProject(p models.Project) models.Project {
	if len(p.Members) > 0 {
		members := make([]string, len(p.Members))
		copy(members, p.Members)
		p.Members = members
	}
	if p.Stakeholders != nil {
		st := *p.Stakeholders
		p.Stakeholders = &st
	}
	return p
}

func cloneTask(t models.Task) models.Task {
	if len(t.TimeLogs) > 0 {
		logs := make([]models.TimeLog, len(t.TimeLogs))
		copy(logs, t.TimeLogs)
		t.TimeLogs = logs
	}
	return t
}

func cloneCampaign(c models.MarketingCampaign) models.MarketingCampaign {
	if len(c.Reviews) > 0 {
		reviews := make([]string, len(c.Reviews))
		copy(reviews, c.Reviews)
		c.Reviews = reviews
	}
	return c
}

func clonePost(p models.FeedPost) models.FeedPost {
	if len(p.LikedBy) > 0 {
		liked := make([]string, len(p.LikedBy))
		copy(liked, p.LikedBy)
		p.LikedBy = liked
	}
	if len(p.Comments) > 0 {
		comments := make([]models.Comment, len(p.Comments))
		copy(comments, p.Comments)
		p.Comments = comments
	}
	return p
}
