package entitlement

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/woozio/download-service/internal/domain"
)

// catalogueFile mirrors the YAML schema of configs/licenses.yaml.
type catalogueFile struct {
	Licenses []struct {
		Key            string   `yaml:"key"`
		Active         bool     `yaml:"active"`
		ExpiresAt      string   `yaml:"expires_at"`
		AllowedDomains []string `yaml:"allowed_domains"`
		AllowedFiles   []string `yaml:"allowed_files"`
	} `yaml:"licenses"`
}

// LoadCatalogue reads the license catalogue from a YAML file. Expiry dates are
// calendar dates (YYYY-MM-DD) interpreted as midnight UTC; an empty value
// means the record never expires.
func LoadCatalogue(path string) ([]domain.LicenseRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read license catalogue: %w", err)
	}

	var f catalogueFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse license catalogue: %w", err)
	}

	records := make([]domain.LicenseRecord, 0, len(f.Licenses))
	for _, entry := range f.Licenses {
		record := domain.LicenseRecord{
			Key:            entry.Key,
			Active:         entry.Active,
			AllowedDomains: entry.AllowedDomains,
			AllowedFiles:   entry.AllowedFiles,
		}
		if entry.ExpiresAt != "" {
			expires, parseErr := time.ParseInLocation("2006-01-02", entry.ExpiresAt, time.UTC)
			if parseErr != nil {
				return nil, fmt.Errorf("license %q: parse expires_at %q: %w", entry.Key, entry.ExpiresAt, parseErr)
			}
			record.ExpiresAt = expires
		}
		records = append(records, record)
	}
	return records, nil
}
