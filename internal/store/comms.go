package store

import "github.com/zentryhq/zentry/internal/models"

// AddEmail inserts an email at the head of the collection.
func (s *Store) AddEmail(e models.Email) models.Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	if e.ID == "" {
		e.ID = s.NewID()
	}
	s.emails = append([]models.Email{e}, s.emails...)
	return e
}

// Emails returns a snapshot of all emails, newest first.
func (s *Store) Emails() []models.Email {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Email, len(s.emails))
	copy(out, s.emails)
	return out
}

// MarkEmailRead marks the email matching id as read.
func (s *Store) MarkEmailRead(id string) (models.Email, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.emails {
		if s.emails[i].ID == id {
			s.emails[i].Read = true
			return s.emails[i], true
		}
	}
	return models.Email{}, false
}

// ToggleEmailStar flips the starred flag on the email matching id.
func (s *Store) ToggleEmailStar(id string) (models.Email, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.emails {
		if s.emails[i].ID == id {
			s.emails[i].Starred = !s.emails[i].Starred
			return s.emails[i], true
		}
	}
	return models.Email{}, false
}

// ArchiveEmail moves the email matching id into the archive.
func (s *Store) ArchiveEmail(id string) (models.Email, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.emails {
		if s.emails[i].ID == id {
			s.emails[i].Type = models.EmailArchived
			return s.emails[i], true
		}
	}
	return models.Email{}, false
}

// DeleteEmail removes the email matching id.
func (s *Store) DeleteEmail(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.emails {
		if s.emails[i].ID == id {
			s.emails = append(s.emails[:i], s.emails[i+1:]...)
			return
		}
	}
}

// AddPost inserts a feed post at the head of the collection.
func (s *Store) AddPost(p models.FeedPost) models.FeedPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	if p.ID == "" {
		p.ID = s.NewID()
	}
	s.posts = append([]models.FeedPost{clonePost(p)}, s.posts...)
	return p
}

// Posts returns a snapshot of all feed posts, newest first.
func (s *Store) Posts() []models.FeedPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.FeedPost, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, clonePost(p))
	}
	return out
}

// ToggleLike adds or removes the user from the post's like set and
// adjusts the count to match.
func (s *Store) ToggleLike(postID, user string) (models.FeedPost, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		p := &s.posts[i]
		for j, who := range p.LikedBy {
			if who == user {
				p.LikedBy = append(p.LikedBy[:j], p.LikedBy[j+1:]...)
				p.Likes--
				return clonePost(*p), true
			}
		}
		p.LikedBy = append(p.LikedBy, user)
		p.Likes++
		return clonePost(*p), true
	}
	return models.FeedPost{}, false
}

// AddComment appends a comment to the post matching postID.
func (s *Store) AddComment(postID string, c models.Comment) (models.FeedPost, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		if c.ID == "" {
			c.ID = s.NewID()
		}
		s.posts[i].Comments = append(s.posts[i].Comments, c)
		return clonePost(s.posts[i]), true
	}
	return models.FeedPost{}, false
}

// DeletePost removes the post matching id.
func (s *Store) DeletePost(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return
		}
	}
}

// AddNotification inserts a notification at the head of the collection.
func (s *Store) AddNotification(n models.Notification) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	if n.ID == "" {
		n.ID = s.NewID()
	}
	s.notifications = append([]models.Notification{n}, s.notifications...)
	return n
}

// Notifications returns a snapshot of all notifications, newest first.
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// MarkAllNotificationsRead marks every notification as read.
func (s *Store) MarkAllNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countMutation()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}
