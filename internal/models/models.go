package models

import (
	"errors"
	"fmt"
)

// User is the public view of an account. The username doubles as the id.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == "admin"
}

// Credential is a User plus its password hash. It is never serialized to
// clients; handlers hand out the embedded User only.
type Credential struct {
	User
	FullName     string `json:"-"`
	PasswordHash string `json:"-"`
}

// Public strips the hash.
func (c Credential) Public() User {
	return c.User
}

type ThreatIndicator struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Value       string   `json:"value"`
	Source      string   `json:"source"`
	Confidence  float64  `json:"confidence"`
	Timestamp   string   `json:"timestamp"`
	Tags        []string `json:"tags"`
	Description string   `json:"description,omitempty"`
}

func (i ThreatIndicator) Validate() error {
	if i.ID == "" {
		return errors.New("indicator id is required")
	}
	if i.Type == "" || i.Value == "" {
		return fmt.Errorf("indicator %s: type and value are required", i.ID)
	}
	if i.Confidence < 0 || i.Confidence > 1 {
		return fmt.Errorf("indicator %s: confidence %v outside [0,1]", i.ID, i.Confidence)
	}
	return nil
}

// HasAnyTag reports whether the indicator carries at least one of the
// given tags.
func (i ThreatIndicator) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range i.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

type ThreatFeed struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Source      string            `json:"source"`
	Description string            `json:"description"`
	LastUpdated string            `json:"lastUpdated"`
	Indicators  []ThreatIndicator `json:"indicators"`
}

func (f ThreatFeed) Validate() error {
	if f.ID == "" {
		return errors.New("feed id is required")
	}
	if f.Name == "" {
		return fmt.Errorf("feed %s: name is required", f.ID)
	}
	for _, ind := range f.Indicators {
		if err := ind.Validate(); err != nil {
			return fmt.Errorf("feed %s: %w", f.ID, err)
		}
	}
	return nil
}

type Report struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CreatedAt   string `json:"createdAt"`
	CreatedBy   string `json:"createdBy"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Format      string `json:"format"`
}

func (r Report) Validate() error {
	if r.ID == "" {
		return errors.New("report id is required")
	}
	switch r.Format {
	case "pdf", "csv", "json":
	default:
		return fmt.Errorf("report %s: unknown format %q", r.ID, r.Format)
	}
	return nil
}

// SearchFilters are AND-composed; zero values impose no constraint.
// FromDate/ToDate are accepted on the wire but not applied to results.
type SearchFilters struct {
	Type       string   `json:"type,omitempty"`
	Source     string   `json:"source,omitempty"`
	Confidence float64  `json:"confidence,omitempty"`
	FromDate   string   `json:"fromDate,omitempty"`
	ToDate     string   `json:"toDate,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	SearchTerm string   `json:"searchTerm,omitempty"`
}

type TimelineDataPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type SourceDistribution struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

type TypeDistribution struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type VisualizationData struct {
	TimelineData       []TimelineDataPoint  `json:"timelineData"`
	SourceDistribution []SourceDistribution `json:"sourceDistribution"`
	TypeDistribution   []TypeDistribution   `json:"typeDistribution"`
}
