package models

// CampaignStatus is the lifecycle state of a marketing campaign.
type CampaignStatus string

const (
	CampaignActive      CampaignStatus = "Active"
	CampaignDraft       CampaignStatus = "Draft"
	CampaignPaused      CampaignStatus = "Paused"
	CampaignEnded       CampaignStatus = "Ended"
	CampaignDeactivated CampaignStatus = "Deactivated"
)

// ValidCampaignStatuses is the set of all valid campaign statuses.
var ValidCampaignStatuses = []CampaignStatus{
	CampaignActive,
	CampaignDraft,
	CampaignPaused,
	CampaignEnded,
	CampaignDeactivated,
}

// IsValid returns true if the campaign status is recognized.
func (s CampaignStatus) IsValid() bool {
	for _, v := range ValidCampaignStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// MarketingCampaign is an acquisition campaign. Budget, reach, conversions
// and roi carry pre-formatted display strings, matching the dashboard.
type MarketingCampaign struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Status       CampaignStatus `json:"status"`
	Budget       string         `json:"budget"`
	Reach        string         `json:"reach"`
	Conversions  string         `json:"conversions"`
	ROI          string         `json:"roi"`
	Reviews      []string       `json:"reviews,omitempty"`
	LastLaunched string         `json:"last_launched,omitempty"`
}

// FlowStatus is the run state of an automation flow.
type FlowStatus string

const (
	FlowRunning FlowStatus = "Running"
	FlowPaused  FlowStatus = "Paused"
)

// IsValid returns true if the flow status is recognized.
func (s FlowStatus) IsValid() bool {
	return s == FlowRunning || s == FlowPaused
}

// AutomationFlow is a trigger/action automation rule.
type AutomationFlow struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Trigger string     `json:"trigger"`
	Action  string     `json:"action"`
	Status  FlowStatus `json:"status"`
}
