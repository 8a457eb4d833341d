package repo

import (
	"sync"

	"github.com/threatintel-platform/backend/internal/models"
)

// FeedRepo keeps threat feeds in insertion order. A single RWMutex
// serializes writers; duplicate ids are accepted on create.
type FeedRepo struct {
	mu    sync.RWMutex
	feeds []models.ThreatFeed
}

func NewFeedRepo(seed []models.ThreatFeed) (*FeedRepo, error) {
	for _, f := range seed {
		if err := f.Validate(); err != nil {
			return nil, err
		}
	}
	return &FeedRepo{feeds: append([]models.ThreatFeed(nil), seed...)}, nil
}

func (r *FeedRepo) List() []models.ThreatFeed {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.ThreatFeed(nil), r.feeds...)
}

func (r *FeedRepo) Get(id string) (models.ThreatFeed, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.feeds {
		if f.ID == id {
			return f, true
		}
	}
	return models.ThreatFeed{}, false
}

func (r *FeedRepo) Create(f models.ThreatFeed) models.ThreatFeed {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.feeds = append(r.feeds, f)
	return f
}

func (r *FeedRepo) Update(id string, f models.ThreatFeed) (models.ThreatFeed, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.feeds {
		if existing.ID == id {
			r.feeds[i] = f
			return f, true
		}
	}
	return models.ThreatFeed{}, false
}

func (r *FeedRepo) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, f := range r.feeds {
		if f.ID == id {
			r.feeds = append(r.feeds[:i], r.feeds[i+1:]...)
			return true
		}
	}
	return false
}
