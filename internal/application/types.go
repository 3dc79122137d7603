package application

import "time"

// Config carries the issuance policy knobs. Values are policy, not algorithm,
// and come from bootstrap configuration.
type Config struct {
	GrantTTL time.Duration
}

// DownloadInput is the caller-supplied request triple plus the client address
// used as the rate-limit fallback identity.
type DownloadInput struct {
	License  string
	Domain   string
	File     string
	ClientIP string
}
