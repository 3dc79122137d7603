package entitlement

import (
	"testing"

	"github.com/woozio/download-service/internal/domain"
)

func TestLookupIsExactAndCaseSensitive(t *testing.T) {
	store, err := NewStore([]domain.LicenseRecord{
		{Key: "ABC-123-XYZ", Active: true},
	})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, ok := store.Lookup("ABC-123-XYZ"); !ok {
		t.Fatalf("seeded key must resolve")
	}
	if _, ok := store.Lookup("abc-123-xyz"); ok {
		t.Fatalf("lookup must be case-sensitive")
	}
	if _, ok := store.Lookup("ABC-123"); ok {
		t.Fatalf("partial keys must not resolve")
	}
}

func TestNewStoreRejectsDuplicatesAndEmptyKeys(t *testing.T) {
	if _, err := NewStore([]domain.LicenseRecord{{Key: "A"}, {Key: "A"}}); err == nil {
		t.Fatalf("expected duplicate key error")
	}
	if _, err := NewStore([]domain.LicenseRecord{{Key: ""}}); err == nil {
		t.Fatalf("expected empty key error")
	}
}
