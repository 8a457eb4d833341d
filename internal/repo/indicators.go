package repo

import (
	"strings"
	"sync"

	"github.com/threatintel-platform/backend/internal/models"
)

// IndicatorRepo is read-only at the API surface; the mutex only matters
// if a future mutation path is added.
type IndicatorRepo struct {
	mu         sync.RWMutex
	indicators []models.ThreatIndicator
}

func NewIndicatorRepo(seed []models.ThreatIndicator) (*IndicatorRepo, error) {
	for _, ind := range seed {
		if err := ind.Validate(); err != nil {
			return nil, err
		}
	}
	return &IndicatorRepo{indicators: append([]models.ThreatIndicator(nil), seed...)}, nil
}

func (r *IndicatorRepo) List() []models.ThreatIndicator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.ThreatIndicator(nil), r.indicators...)
}

func (r *IndicatorRepo) Get(id string) (models.ThreatIndicator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ind := range r.indicators {
		if ind.ID == id {
			return ind, true
		}
	}
	return models.ThreatIndicator{}, false
}

// Search applies the filters as independent AND predicates. Zero-valued
// fields impose no constraint, so an empty filter returns everything.
func (r *IndicatorRepo) Search(filters models.SearchFilters) []models.ThreatIndicator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]models.ThreatIndicator, 0, len(r.indicators))
	term := strings.ToLower(filters.SearchTerm)

	for _, ind := range r.indicators {
		if filters.Type != "" && ind.Type != filters.Type {
			continue
		}
		if filters.Source != "" && ind.Source != filters.Source {
			continue
		}
		if filters.Confidence != 0 && ind.Confidence < filters.Confidence {
			continue
		}
		if len(filters.Tags) > 0 && !ind.HasAnyTag(filters.Tags) {
			continue
		}
		if term != "" && !matchesTerm(ind, term) {
			continue
		}
		results = append(results, ind)
	}

	return results
}

func matchesTerm(ind models.ThreatIndicator, term string) bool {
	if strings.Contains(strings.ToLower(ind.Value), term) {
		return true
	}
	return ind.Description != "" && strings.Contains(strings.ToLower(ind.Description), term)
}

// Related returns every other indicator sharing at least one tag with the
// given one. The bool is false when the id itself does not resolve.
func (r *IndicatorRepo) Related(id string) ([]models.ThreatIndicator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var target *models.ThreatIndicator
	for i := range r.indicators {
		if r.indicators[i].ID == id {
			target = &r.indicators[i]
			break
		}
	}
	if target == nil {
		return nil, false
	}

	related := make([]models.ThreatIndicator, 0)
	for _, ind := range r.indicators {
		if ind.ID != id && ind.HasAnyTag(target.Tags) {
			related = append(related, ind)
		}
	}
	return related, true
}
