package entitlement

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleCatalogue = `
licenses:
  - key: ABC-123-XYZ
    active: true
    expires_at: "2026-12-31"
    allowed_domains:
      - yourtheme.com
    allowed_files:
      - theme-a/demo.zip
  - key: NO-EXPIRY
    active: false
    allowed_domains: []
    allowed_files: []
`

func writeCatalogue(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "licenses.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write catalogue: %v", err)
	}
	return path
}

func TestLoadCatalogue(t *testing.T) {
	records, err := LoadCatalogue(writeCatalogue(t, sampleCatalogue))
	if err != nil {
		t.Fatalf("load catalogue: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("unexpected record count: %d", len(records))
	}

	first := records[0]
	if first.Key != "ABC-123-XYZ" || !first.Active {
		t.Fatalf("unexpected first record: %+v", first)
	}
	wantExpiry := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	if !first.ExpiresAt.Equal(wantExpiry) {
		t.Fatalf("unexpected expiry: got=%v want=%v", first.ExpiresAt, wantExpiry)
	}

	second := records[1]
	if !second.ExpiresAt.IsZero() {
		t.Fatalf("missing expires_at must parse as zero time, got %v", second.ExpiresAt)
	}
}

func TestLoadCatalogueRejectsBadDate(t *testing.T) {
	path := writeCatalogue(t, "licenses:\n  - key: X\n    active: true\n    expires_at: \"31/12/2026\"\n")
	if _, err := LoadCatalogue(path); err == nil {
		t.Fatalf("expected parse error for malformed date")
	}
}

func TestLoadCatalogueMissingFile(t *testing.T) {
	if _, err := LoadCatalogue(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
