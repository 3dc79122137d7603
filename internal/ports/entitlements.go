package ports

import "github.com/woozio/download-service/internal/domain"

// EntitlementSource is a read-only lookup over the license catalogue.
// Implementations must be safe for concurrent use and immutable at runtime.
type EntitlementSource interface {
	Lookup(key string) (domain.LicenseRecord, bool)
}
