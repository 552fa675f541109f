package store

import "github.com/zentryhq/zentry/internal/models"

// SitePatch selects site fields for a partial update.
type SitePatch struct {
	Name     *string
	URL      *string
	Type     *models.SiteType
	Visitors *string
	Status   *models.SiteStatus
}

// AddSite inserts a site at the head of the collection.
func (s *Store) AddSite(site models.Site) models.Site {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	if site.ID == "" {
		site.ID = s.NewID()
	}
	s.sites = append([]models.Site{site}, s.sites...)
	return site
}

// Sites returns a snapshot of all sites, newest first.
func (s *Store) Sites() []models.Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Site, len(s.sites))
	copy(out, s.sites)
	return out
}

// UpdateSite merges the patch into the site matching id.
func (s *Store) UpdateSite(id string, patch SitePatch) (models.Site, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.sites {
		if s.sites[i].ID != id {
			continue
		}
		site := &s.sites[i]
		if patch.Name != nil {
			site.Name = *patch.Name
		}
		if patch.URL != nil {
			site.URL = *patch.URL
		}
		if patch.Type != nil {
			site.Type = *patch.Type
		}
		if patch.Visitors != nil {
			site.Visitors = *patch.Visitors
		}
		if patch.Status != nil {
			site.Status = *patch.Status
		}
		return *site, true
	}
	return models.Site{}, false
}

// SetSiteStatus moves the site matching id to the given status.
func (s *Store) SetSiteStatus(id string, status models.SiteStatus) (models.Site, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.sites {
		if s.sites[i].ID == id {
			s.sites[i].Status = status
			return s.sites[i], true
		}
	}
	return models.Site{}, false
}

// DeleteSite removes the site matching id.
func (s *Store) DeleteSite(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.sites {
		if s.sites[i].ID == id {
			s.sites = append(s.sites[:i], s.sites[i+1:]...)
			return
		}
	}
}
