package store

import "github.com/zentryhq/zentry/internal/models"

// CampaignPatch selects campaign fields for a partial update. Budget,
// reach, conversions and ROI stay display strings end to end.
type CampaignPatch struct {
	Name        *string
	Status      *models.CampaignStatus
	Budget      *string
	Reach       *string
	Conversions *string
	ROI         *string
}

// AddCampaign inserts a campaign at the head of the collection.
func (s *Store) AddCampaign(c models.MarketingCampaign) models.MarketingCampaign {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	if c.ID == "" {
		c.ID = s.NewID()
	}
	s.campaigns = append([]models.MarketingCampaign{cloneCampaign(c)}, s.campaigns...)
	return c
}

// Campaigns returns a snapshot of all campaigns, newest first.
func (s *Store) Campaigns() []models.MarketingCampaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MarketingCampaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		out = append(out, cloneCampaign(c))
	}
	return out
}

// GetCampaign retrieves a campaign by id.
func (s *Store) GetCampaign(id string) (models.MarketingCampaign, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.campaigns {
		if c.ID == id {
			return cloneCampaign(c), true
		}
	}
	return models.MarketingCampaign{}, false
}

// UpdateCampaign merges the patch into the campaign matching id.
func (s *Store) UpdateCampaign(id string, patch CampaignPatch) (models.MarketingCampaign, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.campaigns {
		if s.campaigns[i].ID != id {
			continue
		}
		c := &s.campaigns[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		if patch.Budget != nil {
			c.Budget = *patch.Budget
		}
		if patch.Reach != nil {
			c.Reach = *patch.Reach
		}
		if patch.Conversions != nil {
			c.Conversions = *patch.Conversions
		}
		if patch.ROI != nil {
			c.ROI = *patch.ROI
		}
		return cloneCampaign(*c), true
	}
	return models.MarketingCampaign{}, false
}

// DeleteCampaign removes the campaign matching id.
func (s *Store) DeleteCampaign(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.campaigns {
		if s.campaigns[i].ID == id {
			s.campaigns = append(s.campaigns[:i], s.campaigns[i+1:]...)
			return
		}
	}
}

// LaunchCampaign activates the campaign and stamps the launch time.
// Reach and ROI receive fresh display values as a side effect of the
// launch, matching the dashboard's expectations.
func (s *Store) LaunchCampaign(id, launchedAt string) (models.MarketingCampaign, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.campaigns {
		if s.campaigns[i].ID != id {
			continue
		}
		c := &s.campaigns[i]
		c.Status = models.CampaignActive
		c.LastLaunched = launchedAt
		c.Reach = "24.2k"
		c.ROI = "+14%"
		return cloneCampaign(*c), true
	}
	return models.MarketingCampaign{}, false
}

// ToggleCampaign flips the campaign between Active and Deactivated.
// Campaigns in any other status become Active.
func (s *Store) ToggleCampaign(id string) (models.MarketingCampaign, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.campaigns {
		if s.campaigns[i].ID != id {
			continue
		}
		c := &s.campaigns[i]
		if c.Status == models.CampaignActive {
			c.Status = models.CampaignDeactivated
		} else {
			c.Status = models.CampaignActive
		}
		return cloneCampaign(*c), true
	}
	return models.MarketingCampaign{}, false
}

// FlowPatch selects automation flow fields for a partial update.
type FlowPatch struct {
	Name    *string
	Trigger *string
	Action  *string
	Status  *models.FlowStatus
}

// AddFlow inserts an automation flow at the head of the collection.
func (s *Store) AddFlow(f models.AutomationFlow) models.AutomationFlow {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	if f.ID == "" {
		f.ID = s.NewID()
	}
	s.flows = append([]models.AutomationFlow{f}, s.flows...)
	return f
}

// Flows returns a snapshot of all automation flows, newest first.
func (s *Store) Flows() []models.AutomationFlow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AutomationFlow, len(s.flows))
	copy(out, s.flows)
	return out
}

// UpdateFlow merges the patch into the flow matching id.
func (s *Store) UpdateFlow(id string, patch FlowPatch) (models.AutomationFlow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.flows {
		if s.flows[i].ID != id {
			continue
		}
		f := &s.flows[i]
		if patch.Name != nil {
			f.Name = *patch.Name
		}
		if patch.Trigger != nil {
			f.Trigger = *patch.Trigger
		}
		if patch.Action != nil {
			f.Action = *patch.Action
		}
		if patch.Status != nil {
			f.Status = *patch.Status
		}
		return *f, true
	}
	return models.AutomationFlow{}, false
}

// DeleteFlow removes the flow matching id.
func (s *Store) DeleteFlow(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.flows {
		if s.flows[i].ID == id {
			s.flows = append(s.flows[:i], s.flows[i+1:]...)
			return
		}
	}
}

// ToggleFlow flips the flow between Running and Paused.
func (s *Store) ToggleFlow(id string) (models.AutomationFlow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.flows {
		if s.flows[i].ID != id {
			continue
		}
		f := &s.flows[i]
		if f.Status == models.FlowRunning {
			f.Status = models.FlowPaused
		} else {
			f.Status = models.FlowRunning
		}
		return *f, true
	}
	return models.AutomationFlow{}, false
}
