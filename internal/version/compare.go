package version

import (
	"sort"
	"strconv"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// Compare orders two dot-separated numeric version strings.
// Returns: -1 if a < b, 0 if a == b, 1 if a > b
//
// Segments are compared numerically left to right. A missing or non-numeric
// segment counts as 0, so "1.2" == "1.2.0" and "" == "0.0". Only the leading
// integer of a segment is read: "3-beta" compares as 3.
func Compare(a, b string) int {
	partsA := strings.Split(a, ".")
	partsB := strings.Split(b, ".")

	maxLen := len(partsA)
	if len(partsB) > maxLen {
		maxLen = len(partsB)
	}

	for i := 0; i < maxLen; i++ {
		numA := segment(partsA, i)
		numB := segment(partsB, i)

		if numA < numB {
			return -1
		}
		if numA > numB {
			return 1
		}
	}

	return 0
}

// SortDescending sorts versions newest first, in place.
func SortDescending(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		return Compare(versions[i], versions[j]) > 0
	})
}

func segment(parts []string, i int) int64 {
	if i >= len(parts) {
		return 0
	}
	return parseVersionPart(parts[i])
}

// parseVersionPart reads the leading base-10 integer of a version component.
// Leading whitespace and a single sign are accepted; anything else yields 0.
// Values beyond int64 saturate.
func parseVersionPart(part string) int64 {
	part = strings.TrimLeft(part, " \t\n\r")

	i := 0
	if i < len(part) && (part[i] == '-' || part[i] == '+') {
		i++
	}
	start := i
	for i < len(part) && part[i] >= '0' && part[i] <= '9' {
		i++
	}

	if i == start {
		return 0
	}

	// ParseInt returns the saturated value alongside ErrRange.
	num, _ := strconv.ParseInt(part[:i], 10, 64)
	return num
}

// IsPrerelease reports whether v carries a semantic-version pre-release
// label such as "1.2.3-beta". It is informational only: Compare ignores
// pre-release labels.
func IsPrerelease(v string) bool {
	parsed, err := goversion.NewVersion(v)
	if err != nil {
		return false
	}
	return parsed.Prerelease() != ""
}
