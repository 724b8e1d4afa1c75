package update

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version represents a parsed semantic version.
type Version struct {
	Major int
	Minor int
	Patch int
	Raw   string
}

var versionPattern = regexp.MustCompile(`\d+\.\d+\.\d+`)

// ParseVersion parses a version string in the format "v0.6.1" or "0.6.1".
// Pre-release and build suffixes ("-rc.1", "+abc") are ignored, and
// surrounding whitespace (a VERSION file's trailing newline) is trimmed.
// The "dev" version is a special case that returns a zero version.
func ParseVersion(v string) (*Version, error) {
	v = strings.TrimSpace(v)
	raw := v
	v = strings.TrimPrefix(v, "v")

	if v == "dev" || v == "" {
		return &Version{Raw: raw}, nil
	}

	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}

	parts := strings.Split(v, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("parsing version %q: expected format MAJOR.MINOR.PATCH", raw)
	}

	nums := make([]int, 3)
	for i, name := range []string{"major", "minor", "patch"} {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return nil, fmt.Errorf("parsing %s version %q: %w", name, parts[i], err)
		}
		nums[i] = n
	}

	return &Version{Major: nums[0], Minor: nums[1], Patch: nums[2], Raw: raw}, nil
}

// FindVersion extracts the first MAJOR.MINOR.PATCH from free-form tool
// output such as "2.0.64 (Claude Code)".
func FindVersion(output string) (*Version, error) {
	m := versionPattern.FindString(output)
	if m == "" {
		return nil, fmt.Errorf("no version found in %q", strings.TrimSpace(output))
	}
	return ParseVersion(m)
}

// IsDev returns true if this is a development build (not a proper release version).
func (v *Version) IsDev() bool {
	return v.Raw == "dev" || v.Raw == ""
}

// String returns the version in "MAJOR.MINOR.PATCH" form, without the v prefix.
func (v *Version) String() string {
	if v.IsDev() {
		return "dev"
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Tag returns the release tag, "vMAJOR.MINOR.PATCH".
func (v *Version) Tag() string {
	if v.IsDev() {
		return "dev"
	}
	return "v" + v.String()
}

// Compare compares two versions and returns:
//   - -1 if v < other
//   - 0 if v == other
//   - 1 if v > other
//
// Dev versions are always considered less than any proper version.
func (v *Version) Compare(other *Version) int {
	switch {
	case v.IsDev() && other.IsDev():
		return 0
	case v.IsDev():
		return -1
	case other.IsDev():
		return 1
	}

	if v.Major != other.Major {
		return compareInts(v.Major, other.Major)
	}
	if v.Minor != other.Minor {
		return compareInts(v.Minor, other.Minor)
	}
	return compareInts(v.Patch, other.Patch)
}

// AtLeast reports whether v >= other.
func (v *Version) AtLeast(other *Version) bool {
	return v.Compare(other) >= 0
}

// IsNewerThan returns true if v is newer than other.
func (v *Version) IsNewerThan(other *Version) bool {
	return v.Compare(other) > 0
}

func compareInts(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
