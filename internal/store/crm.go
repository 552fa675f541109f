package store

import "github.com/zentryhq/zentry/internal/models"

// DealPatch selects deal fields for a partial update. Nil fields are left
// unchanged.
type DealPatch struct {
	Title   *string
	Company *string
	Amount  *float64
	Stage   *models.DealStage
	Contact *string
}

// AddDeal inserts a deal at the head of the collection and returns the
// stored record. An empty id is replaced with a store-assigned one.
func (s *Store) AddDeal(d models.Deal) models.Deal {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	if d.ID == "" {
		d.ID = s.NewID()
	}
	s.deals = append([]models.Deal{d}, s.deals...)
	return d
}

// Deals returns a snapshot of all deals, newest first.
func (s *Store) Deals() []models.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Deal, len(s.deals))
	copy(out, s.deals)
	return out
}

// GetDeal retrieves a deal by id.
func (s *Store) GetDeal(id string) (models.Deal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.deals {
		if d.ID == id {
			return d, true
		}
	}
	return models.Deal{}, false
}

// UpdateDeal merges the patch into the deal matching id. Missing ids are
// ignored; a new deal is never created as a side effect.
func (s *Store) UpdateDeal(id string, p DealPatch) (models.Deal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.deals {
		if s.deals[i].ID != id {
			continue
		}
		d := &s.deals[i]
		if p.Title != nil {
			d.Title = *p.Title
		}
		if p.Company != nil {
			d.Company = *p.Company
		}
		if p.Amount != nil {
			d.Amount = *p.Amount
		}
		if p.Stage != nil {
			d.Stage = *p.Stage
		}
		if p.Contact != nil {
			d.Contact = *p.Contact
		}
		return *d, true
	}
	return models.Deal{}, false
}

// DeleteDeal removes the deal matching id. Absent ids are a no-op, so the
// call is idempotent.
func (s *Store) DeleteDeal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.deals {
		if s.deals[i].ID == id {
			s.deals = append(s.deals[:i], s.deals[i+1:]...)
			return
		}
	}
}

// ContactPatch selects contact fields for a partial update.
type ContactPatch struct {
	Name    *string
	Email   *string
	Company *string
	Status  *models.ContactStatus
	Value   *float64
}

// AddContact inserts a contact at the head of the collection.
func (s *Store) AddContact(c models.Contact) models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	if c.ID == "" {
		c.ID = s.NewID()
	}
	s.contacts = append([]models.Contact{c}, s.contacts...)
	return c
}

// Contacts returns a snapshot of all contacts, newest first.
func (s *Store) Contacts() []models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// UpdateContact merges the patch into the contact matching id.
func (s *Store) UpdateContact(id string, p ContactPatch) (models.Contact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.contacts {
		if s.contacts[i].ID != id {
			continue
		}
		c := &s.contacts[i]
		if p.Name != nil {
			c.Name = *p.Name
		}
		if p.Email != nil {
			c.Email = *p.Email
		}
		if p.Company != nil {
			c.Company = *p.Company
		}
		if p.Status != nil {
			c.Status = *p.Status
		}
		if p.Value != nil {
			c.Value = *p.Value
		}
		return *c, true
	}
	return models.Contact{}, false
}

// DeleteContact removes the contact matching id.
func (s *Store) DeleteContact(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			return
		}
	}
}
