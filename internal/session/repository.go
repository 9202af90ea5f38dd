package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type Repository struct {
	cache *cache.Cache
}

func NewRepository() *Repository {
	// Sessions expire an hour after the last touch; expired entries are
	// purged every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &Repository{
		cache: c,
	}
}

func (r *Repository) Create() *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	stored := *s
	r.cache.Set(s.ID, &stored, cache.DefaultExpiration)
	return s
}

// Get returns a copy of the stored session. Callers mutate their copy
// freely and make changes visible with Save; the stored session is never
// shared between goroutines.
func (r *Repository) Get(sessionID string) (*Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		s := *x.(*Session)
		return &s, true
	}
	return nil, false
}

func (r *Repository) Save(s *Session) {
	s.UpdatedAt = time.Now()
	stored := *s
	r.cache.Set(s.ID, &stored, cache.DefaultExpiration)
}

func (r *Repository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
