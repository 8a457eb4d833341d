package repo

import (
	"fmt"
	"time"

	"github.com/threatintel-platform/backend/internal/hash"
	"github.com/threatintel-platform/backend/internal/models"
)

// Demo datasets. There is no persistence behind them; every process
// starts from these records.

func SeedUsers() ([]models.Credential, error) {
	seed := []struct {
		username, fullName, email, password, role string
	}{
		{"admin", "Admin User", "admin@example.com", "admin", "admin"},
		{"analyst", "Analyst User", "analyst@example.com", "analyst", "analyst"},
	}

	creds := make([]models.Credential, 0, len(seed))
	for _, s := range seed {
		pwHash, err := hash.HashPassword(s.password)
		if err != nil {
			return nil, fmt.Errorf("seed user %s: %w", s.username, err)
		}
		creds = append(creds, models.Credential{
			User: models.User{
				Username: s.username,
				Email:    s.email,
				Role:     s.role,
			},
			FullName:     s.fullName,
			PasswordHash: pwHash,
		})
	}
	return creds, nil
}

func SeedIndicators() []models.ThreatIndicator {
	now := time.Now().Format(time.RFC3339)
	return []models.ThreatIndicator{
		{
			ID:          "indicator-1",
			Type:        "IP",
			Value:       "192.168.1.1",
			Source:      "MISP",
			Confidence:  0.8,
			Timestamp:   now,
			Tags:        []string{"malware", "c2"},
			Description: "Command and control server",
		},
		{
			ID:          "indicator-2",
			Type:        "Domain",
			Value:       "example.com",
			Source:      "OTX",
			Confidence:  0.9,
			Timestamp:   now,
			Tags:        []string{"phishing"},
			Description: "Phishing domain",
		},
		{
			ID:          "indicator-3",
			Type:        "Hash",
			Value:       "a94a8fe5ccb19ba61c4c0873d391e987982fbbd3",
			Source:      "VirusTotal",
			Confidence:  0.95,
			Timestamp:   now,
			Tags:        []string{"ransomware"},
			Description: "Ransomware hash",
		},
	}
}

func SeedFeeds() []models.ThreatFeed {
	now := time.Now().Format(time.RFC3339)
	return []models.ThreatFeed{
		{
			ID:          "feed-1",
			Name:        "MISP Feed",
			Source:      "MISP",
			Description: "Community-driven threat intelligence sharing platform.",
			LastUpdated: now,
			Indicators: []models.ThreatIndicator{
				// Same id as the standalone indicator collection's first
				// entry; the two collections are independent and are
				// deliberately not reconciled.
				{
					ID:          "indicator-1",
					Type:        "IP",
					Value:       "192.168.1.1",
					Source:      "MISP",
					Confidence:  0.8,
					Timestamp:   now,
					Tags:        []string{"malware", "c2"},
					Description: "Command and control server",
				},
			},
		},
		{
			ID:          "feed-2",
			Name:        "AlienVault OTX",
			Source:      "OTX",
			Description: "Open Threat Exchange - crowd-sourced threat data.",
			LastUpdated: now,
			Indicators:  []models.ThreatIndicator{},
		},
		{
			ID:          "feed-3",
			Name:        "Recorded Future",
			Source:      "Recorded Future",
			Description: "Machine learning-based threat intelligence.",
			LastUpdated: now,
			Indicators:  []models.ThreatIndicator{},
		},
	}
}

func SeedReports() []models.Report {
	now := time.Now().Format(time.RFC3339)
	return []models.Report{
		{
			ID:          "report-1",
			Name:        "Monthly Threat Summary",
			CreatedAt:   now,
			CreatedBy:   "admin",
			Description: "Summary of threats detected in the past month",
			Content:     "This is the report content",
			Format:      "pdf",
		},
		{
			ID:          "report-2",
			Name:        "Critical Vulnerabilities Report",
			CreatedAt:   now,
			CreatedBy:   "analyst",
			Description: "List of critical vulnerabilities requiring immediate attention",
			Content:     "This is the report content",
			Format:      "csv",
		},
		{
			ID:          "report-3",
			Name:        "Malware Analysis",
			CreatedAt:   now,
			CreatedBy:   "admin",
			Description: "Analysis of recent malware samples and their behaviors",
			Content:     "This is the report content",
			Format:      "json",
		},
	}
}
