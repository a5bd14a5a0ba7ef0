package version

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"1.10.0", "1.9.9", 1},
		{"1.9.9", "1.10.0", -1},
		{"2.0", "2.0.0", 0},
		{"2.0.0", "2.0", 0},
		{"1.0.542", "1.0.533", 1},
		{"1.0.2", "1.0.10", -1},
		{"", "0", 0},
		{"", "0.0.0", 0},
		{"1.2.3-beta", "1.2.3", 0},
		{"1.2.4-beta", "1.2.3", 1},
		{"01.2", "1.2", 0},
		{"1.x", "1.0", 0},
		{"v1.0", "0.0", 0},
		{"1.20", "1.3", 1},
		{"0.0.1", "0", 1},
		{"99999999999999999999", "1", 1},
	}

	for _, tt := range tests {
		result := Compare(tt.a, tt.b)
		if result != tt.expected {
			t.Errorf("Compare(%q, %q) = %d; want %d", tt.a, tt.b, result, tt.expected)
		}
	}
}

func TestCompareTotalOrder(t *testing.T) {
	versions := []string{"", "0", "0.1", "0.10", "0.9.9", "1", "1.0.1", "1.2", "1.2.0", "1.10", "2", "2.0.0.1", "10.0"}

	for _, a := range versions {
		if got := Compare(a, a); got != 0 {
			t.Errorf("Compare(%q, %q) = %d; want 0", a, a, got)
		}
		for _, b := range versions {
			if Compare(a, b) != -Compare(b, a) {
				t.Errorf("Compare is not antisymmetric for %q and %q", a, b)
			}
			for _, c := range versions {
				if Compare(a, b) <= 0 && Compare(b, c) <= 0 && Compare(a, c) > 0 {
					t.Errorf("Compare is not transitive for %q <= %q <= %q", a, b, c)
				}
			}
		}
	}
}

func TestSortDescending(t *testing.T) {
	versions := []string{"1.2", "1.10", "0.9", "2.0", "1.9.9"}
	SortDescending(versions)

	want := []string{"2.0", "1.10", "1.9.9", "1.2", "0.9"}
	for i := range want {
		if versions[i] != want[i] {
			t.Fatalf("SortDescending = %v; want %v", versions, want)
		}
	}
}

func TestIsPrerelease(t *testing.T) {
	tests := []struct {
		v        string
		expected bool
	}{
		{"1.2.3", false},
		{"1.2.3-beta", true},
		{"1.0.0-rc.1", true},
		{"not-a-version", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsPrerelease(tt.v); got != tt.expected {
			t.Errorf("IsPrerelease(%q) = %v; want %v", tt.v, got, tt.expected)
		}
	}
}

func TestInfo(t *testing.T) {
	origVersion, origTime, origCommit := Version, BuildTime, GitCommit
	defer func() { Version, BuildTime, GitCommit = origVersion, origTime, origCommit }()

	Version, BuildTime, GitCommit = "v1.0.0", "unknown", "unknown"
	if got := Info(); got != "v1.0.0 (development build)" {
		t.Errorf("Info() = %q", got)
	}

	BuildTime, GitCommit = "2026-01-02T03:04:05Z", "abc"
	if got := Info(); got != "v1.0.0 (built 2026-01-02 03:04:05 UTC, commit abc)" {
		t.Errorf("Info() = %q", got)
	}
}
