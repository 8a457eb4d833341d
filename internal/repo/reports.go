package repo

import (
	"fmt"
	"sync"
	"time"

	"github.com/threatintel-platform/backend/internal/models"
)

// ReportRepo keeps reports in insertion order behind a single RWMutex.
type ReportRepo struct {
	mu      sync.RWMutex
	reports []models.Report
}

func NewReportRepo(seed []models.Report) (*ReportRepo, error) {
	for _, rep := range seed {
		if err := rep.Validate(); err != nil {
			return nil, err
		}
	}
	return &ReportRepo{reports: append([]models.Report(nil), seed...)}, nil
}

func (r *ReportRepo) List() []models.Report {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Report(nil), r.reports...)
}

func (r *ReportRepo) Get(id string) (models.Report, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rep := range r.reports {
		if rep.ID == id {
			return rep, true
		}
	}
	return models.Report{}, false
}

// Create assigns the next sequential id and a creation timestamp; the id
// is derived from the collection length, so it must run under the write
// lock together with the append.
func (r *ReportRepo) Create(rep models.Report) models.Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep.ID = fmt.Sprintf("report-%d", len(r.reports)+1)
	rep.CreatedAt = time.Now().Format(time.RFC3339)
	r.reports = append(r.reports, rep)
	return rep
}

func (r *ReportRepo) Update(id string, rep models.Report) (models.Report, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.reports {
		if existing.ID == id {
			r.reports[i] = rep
			return rep, true
		}
	}
	return models.Report{}, false
}

func (r *ReportRepo) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rep := range r.reports {
		if rep.ID == id {
			r.reports = append(r.reports[:i], r.reports[i+1:]...)
			return true
		}
	}
	return false
}
