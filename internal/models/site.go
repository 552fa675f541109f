package models

// SiteType distinguishes a plain site from a storefront.
type SiteType string

const (
	SiteTypeSite  SiteType = "Site"
	SiteTypeStore SiteType = "Store"
)

// IsValid returns true if the site type is recognized.
func (t SiteType) IsValid() bool {
	return t == SiteTypeSite || t == SiteTypeStore
}

// SiteStatus is the deployment state of a site.
type SiteStatus string

const (
	SitePublished SiteStatus = "Published"
	SiteDraft     SiteStatus = "Draft"
	SiteDeploying SiteStatus = "Deploying"
)

// ValidSiteStatuses is the set of all valid site statuses.
var ValidSiteStatuses = []SiteStatus{
	SitePublished,
	SiteDraft,
	SiteDeploying,
}

// IsValid returns true if the site status is recognized.
func (s SiteStatus) IsValid() bool {
	for _, v := range ValidSiteStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Site is a managed web property.
type Site struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	URL      string     `json:"url"`
	Type     SiteType   `json:"type"`
	Visitors string     `json:"visitors"`
	Status   SiteStatus `json:"status"`
}
