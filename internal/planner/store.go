package planner

import (
	"sync"

	"github.com/Alexandru2223/postpilot/internal/domain"
)

// Store is the in-memory working set of scheduled posts. Order is insertion
// order; it carries no lookup meaning, only default iteration. The store
// lives for the process lifetime and is reseeded on every start.
//
// Mutations are guarded by a mutex because the HTTP surface reaches the
// store from concurrent handlers; operation semantics are otherwise those of
// a plain list.
type Store struct {
	mu    sync.Mutex
	posts []domain.Post
}

func NewStore() *Store {
	return &Store{}
}

// Add appends a post. No duplicate-id check is performed; callers guarantee
// uniqueness by deriving ids from the current timestamp.
func (s *Store) Add(p domain.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, p)
}

// Update replaces every editable field of the post with matching id. The id
// itself, the originating description and the generated reel content are
// kept. A missing id is a silent no-op.
func (s *Store) Update(id int64, fields domain.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		p := &s.posts[i]
		p.Title = fields.Title
		p.Caption = fields.Caption
		p.Hashtags = fields.Hashtags
		p.Platform = fields.Platform
		p.Time = fields.Time
		p.Date = fields.Date
		p.Status = fields.Status
		p.PostType = fields.PostType
		return
	}
}

// Remove deletes the post with matching id; no-op if not found.
func (s *Store) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return
		}
	}
}

// Get returns the post with matching id.
func (s *Store) Get(id int64) (domain.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Post{}, false
}

// All returns a copy of the working set in insertion order.
func (s *Store) All() []domain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// PostsForDate returns exactly the posts whose date equals the canonical
// YYYY-MM-DD key, in store order. Recomputed on every call; the working set
// is a few dozen posts at most.
func (s *Store) PostsForDate(key string) []domain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Post
	for _, p := range s.posts {
		if p.Date == key {
			out = append(out, p)
		}
	}
	return out
}

// DueScheduled returns the scheduled posts whose date+time slot is on or
// before the given cutoff. The comparison is lexicographic on the canonical
// "YYYY-MM-DD HH:MM" form.
func (s *Store) DueScheduled(dateKey, timeOfDay string) []domain.Post {
	cutoff := dateKey + " " + timeOfDay
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Post
	for _, p := range s.posts {
		if p.Status == domain.StatusScheduled && p.Date+" "+p.Time <= cutoff {
			out = append(out, p)
		}
	}
	return out
}

// MarkPublished flips the post with matching id to published. A missing id is
// a silent no-op, same as Update.
func (s *Store) MarkPublished(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].Status = domain.StatusPublished
			return
		}
	}
}

// RemovePublishedBefore drops published posts dated strictly before the given
// key and reports how many were removed.
func (s *Store) RemovePublishedBefore(dateKey string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.posts[:0]
	removed := 0
	for _, p := range s.posts {
		if p.Status == domain.StatusPublished && p.Date < dateKey {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	s.posts = kept
	return removed
}

// Len returns the number of posts currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.posts)
}
