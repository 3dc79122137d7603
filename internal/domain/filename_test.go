package domain

import "testing"

func TestSafeFileName(t *testing.T) {
	cases := []struct {
		name string
		safe bool
	}{
		{"theme-a/demo.zip", true},
		{"pkg.zip", true},
		{"deep/nested/pkg_v2.zip", true},
		{"../../etc/passwd", false},
		{"a.txt", false},
		{"pkg.zip;rm", false},
		{"pkg .zip", false},
		{"..zip", false},
		{"theme/../other.zip", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := SafeFileName(tc.name); got != tc.safe {
			t.Fatalf("SafeFileName(%q)=%v want=%v", tc.name, got, tc.safe)
		}
	}
}
