package entitlement

import (
	"fmt"

	"github.com/woozio/download-service/internal/domain"
)

// Store is the in-memory entitlement source. Records are copied in at
// construction and never mutated afterwards, so lookups need no locking.
type Store struct {
	records map[string]domain.LicenseRecord
}

func NewStore(records []domain.LicenseRecord) (*Store, error) {
	byKey := make(map[string]domain.LicenseRecord, len(records))
	for _, record := range records {
		if record.Key == "" {
			return nil, fmt.Errorf("license record with empty key")
		}
		if _, exists := byKey[record.Key]; exists {
			return nil, fmt.Errorf("duplicate license key %q", record.Key)
		}
		byKey[record.Key] = record
	}
	return &Store{records: byKey}, nil
}

// Lookup is an exact, case-sensitive match on the license key.
func (s *Store) Lookup(key string) (domain.LicenseRecord, bool) {
	record, ok := s.records[key]
	return record, ok
}

// Len reports the catalogue size, used for startup logging.
func (s *Store) Len() int { return len(s.records) }
