package store

import "github.com/zentryhq/zentry/internal/models"

// AddFile inserts a file entry at the head of the collection.
func (s *Store) AddFile(f models.FileEntry) models.FileEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	if f.ID == "" {
		f.ID = s.NewID()
	}
	s.files = append([]models.FileEntry{f}, s.files...)
	return f
}

// Files returns a snapshot of all file entries, newest first.
func (s *Store) Files() []models.FileEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.FileEntry, len(s.files))
	copy(out, s.files)
	return out
}

// GetFile retrieves a file entry by id.
func (s *Store) GetFile(id string) (models.FileEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.files {
		if f.ID == id {
			return f, true
		}
	}
	return models.FileEntry{}, false
}

// DeleteFile removes the file entry matching id.
func (s *Store) DeleteFile(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.files {
		if s.files[i].ID == id {
			s.files = append(s.files[:i], s.files[i+1:]...)
			return
		}
	}
}
