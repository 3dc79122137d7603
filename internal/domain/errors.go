package domain

import "errors"

var (
	ErrLicenseNotFound  = errors.New("license not found")
	ErrLicenseInactive  = errors.New("license inactive")
	ErrLicenseExpired   = errors.New("license expired")
	ErrDomainNotAllowed = errors.New("domain not allowed")
	ErrFileNotPermitted = errors.New("file not permitted for license")
	ErrMissingFields    = errors.New("missing license, domain, or file")
	ErrInvalidFileName  = errors.New("invalid file name")
	ErrRateLimited      = errors.New("rate limited")
	ErrIssuanceFailed   = errors.New("signed url issuance failed")
)
