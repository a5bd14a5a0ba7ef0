package utils

import (
	"regexp"
)

// VersionRegex matches a route version segment: dot-separated components of
// letters, digits, '-' and '+', such as 1.2.0 or 2.0.0-beta.1
var VersionRegex = regexp.MustCompile(`^[0-9A-Za-z+-]+(?:\.[0-9A-Za-z+-]+)*$`)

// PlatformRegex matches a platform name such as linux, Windows or macos-arm64
var PlatformRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,31}$`)

// IsValidVersion checks if the provided string can be used as a version filter
func IsValidVersion(version string) bool {
	if len(version) > 64 {
		return false
	}
	return VersionRegex.MatchString(version)
}

// IsValidPlatform checks if the provided string can be used as a platform filter
func IsValidPlatform(platform string) bool {
	return PlatformRegex.MatchString(platform)
}
