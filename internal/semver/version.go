package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SemVersion represents a semantic version (major.minor.patch-preRelease+build).
type SemVersion struct {
	Major      int
	Minor      int
	Patch      int
	PreRelease string
	Build      string
}

var (
	// versionRegex matches major.minor.patch with an optional "v" prefix,
	// pre-release and build metadata.
	versionRegex = regexp.MustCompile(
		`^v?(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
			`(?:-([0-9A-Za-z\-\.]+))?` +
			`(?:\+([0-9A-Za-z\-\.]+))?$`,
	)

	// labelRegex matches documentation version labels: "2.1", "v3", "3.5.0".
	labelRegex = regexp.MustCompile(`^v?(\d+)(?:\.(\d+))?(?:\.(\d+))?(?:[-+.]?([0-9A-Za-z\-\.]+))?$`)

	// ErrInvalidVersion is returned when a string is not a semantic version.
	ErrInvalidVersion = errors.New("invalid version format")
)

// maxVersionLength bounds the input handed to the regex engine.
const maxVersionLength = 128

// String returns the string representation of the semantic version.
func (v SemVersion) String() string {
	var sb strings.Builder
	sb.Grow(20)
	sb.WriteString(strconv.Itoa(v.Major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Patch))
	if v.PreRelease != "" {
		sb.WriteByte('-')
		sb.WriteString(v.PreRelease)
	}
	if v.Build != "" {
		sb.WriteByte('+')
		sb.WriteString(v.Build)
	}
	return sb.String()
}

// ParseVersion parses a strict semantic version ("1.2.3", "v1.2.3-rc.1+build.5").
func ParseVersion(s string) (SemVersion, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > maxVersionLength {
		return SemVersion{}, fmt.Errorf("%w: exceeds maximum length of %d", ErrInvalidVersion, maxVersionLength)
	}

	m := versionRegex.FindStringSubmatch(trimmed)
	if m == nil {
		return SemVersion{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	// The regex guarantees decimal digits; Atoi only fails on overflow.
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return SemVersion{}, fmt.Errorf("%w: major: %v", ErrInvalidVersion, err)
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return SemVersion{}, fmt.Errorf("%w: minor: %v", ErrInvalidVersion, err)
	}
	patch, err := strconv.Atoi(m[3])
	if err != nil {
		return SemVersion{}, fmt.Errorf("%w: patch: %v", ErrInvalidVersion, err)
	}

	return SemVersion{Major: major, Minor: minor, Patch: patch, PreRelease: m[4], Build: m[5]}, nil
}

// ParseLabel parses a documentation version label. Missing minor or patch
// components are zero; anything trailing the numbers becomes PreRelease.
func ParseLabel(s string) (SemVersion, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || len(trimmed) > maxVersionLength {
		return SemVersion{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	m := labelRegex.FindStringSubmatch(trimmed)
	if m == nil {
		return SemVersion{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	var nums [3]int
	for i := range nums {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return SemVersion{}, fmt.Errorf("%w: %v", ErrInvalidVersion, err)
		}
		nums[i] = n
	}

	return SemVersion{Major: nums[0], Minor: nums[1], Patch: nums[2], PreRelease: m[4]}, nil
}

// Compare returns -1 if v < other, 0 if equal and +1 if v > other.
// A pre-release sorts before its release; build metadata is ignored.
func (v SemVersion) Compare(other SemVersion) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}

	switch {
	case v.PreRelease == "" && other.PreRelease == "":
		return 0
	case v.PreRelease == "":
		return 1
	case other.PreRelease == "":
		return -1
	default:
		return comparePreRelease(v.PreRelease, other.PreRelease)
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func comparePreRelease(a, b string) int {
	aIDs := strings.Split(a, ".")
	bIDs := strings.Split(b, ".")

	for i := range min(len(aIDs), len(bIDs)) {
		if c := compareIdentifier(aIDs[i], bIDs[i]); c != 0 {
			return c
		}
	}
	return compareInt(len(aIDs), len(bIDs))
}

func compareIdentifier(a, b string) int {
	aNum, aIsNum := numericIdentifier(a)
	bNum, bIsNum := numericIdentifier(b)

	switch {
	case aIsNum && bIsNum:
		return compareInt(aNum, bNum)
	case aIsNum:
		return -1
	case bIsNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// numericIdentifier reports whether s is a numeric identifier without leading zeros.
func numericIdentifier(s string) (int, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || strings.ContainsAny(s, "+-") {
		return 0, false
	}
	return n, true
}
