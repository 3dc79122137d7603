package domain

import (
	"strings"
	"time"
)

// LicenseRecord is one entitlement grant. Records are loaded once at startup
// and never mutated afterwards.
type LicenseRecord struct {
	Key            string    `json:"key"`
	Active         bool      `json:"active"`
	ExpiresAt      time.Time `json:"expires_at,omitempty"`
	AllowedDomains []string  `json:"allowed_domains"`
	AllowedFiles   []string  `json:"allowed_files"`
}

// Expired reports whether the record is past its expiry date. A record stays
// valid through the whole expiry day UTC and expires at 00:00 of the next day.
// A zero ExpiresAt means the record never expires.
func (r LicenseRecord) Expired(now time.Time) bool {
	if r.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(r.ExpiresAt.AddDate(0, 0, 1))
}

// AllowsDomain matches the requesting domain against the allow-list: an exact
// match or a subdomain of an allowed entry. Substrings elsewhere in the name
// do not match, so "evil-woozio.local.attacker.com" never passes for "woozio.local".
func (r LicenseRecord) AllowsDomain(domain string) bool {
	domain = strings.TrimSpace(domain)
	for _, allowed := range r.AllowedDomains {
		if allowed == "" {
			continue
		}
		if domain == allowed || strings.HasSuffix(domain, "."+allowed) {
			return true
		}
	}
	return false
}

// AllowsFile requires an exact entry in the allowed file list.
func (r LicenseRecord) AllowsFile(file string) bool {
	for _, allowed := range r.AllowedFiles {
		if file == allowed {
			return true
		}
	}
	return false
}

// SignedURLGrant is the capability token returned to the caller. It is never
// stored server-side; the server keeps no record of issuance.
type SignedURLGrant struct {
	URL       string    `json:"url"`
	File      string    `json:"file"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
