// Package semver implements the version scheme used to order versions and
// match dynamic selectors.
//
// Versions that parse as semantic versions are ordered by
// github.com/Masterminds/semver/v3. Anything else falls back to a lenient
// segment-wise ordering, so "1.0-SNAPSHOT" or "2024.01.rc1" still sort.
package semver

import (
	"strconv"
	"strings"
	"unicode"

	mm "github.com/Masterminds/semver/v3"
	"go.trai.ch/depres/internal/core/ports"
)

// Scheme implements ports.VersionScheme.
type Scheme struct{}

var _ ports.VersionScheme = Scheme{}

// New creates a Scheme.
func New() Scheme {
	return Scheme{}
}

// Compare returns -1, 0 or 1 as a is lower than, equal to or higher than b.
// Distinct strings never compare equal so that the ordering is total.
func (Scheme) Compare(a, b string) int {
	if a == b {
		return 0
	}
	va, errA := mm.NewVersion(a)
	vb, errB := mm.NewVersion(b)
	if errA == nil && errB == nil {
		if c := va.Compare(vb); c != 0 {
			return c
		}
	}
	if c := compareSegments(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Parse turns a constraint into a selector.
func (s Scheme) Parse(constraint string) (ports.VersionSelector, error) {
	return parseSelector(constraint)
}

// Max returns the highest of versions, or "" when versions is empty.
func (s Scheme) Max(versions []string) string {
	var best string
	for i, v := range versions {
		if i == 0 || s.Compare(v, best) > 0 {
			best = v
		}
	}
	return best
}

// qualifierRank orders well-known textual qualifiers. Unknown qualifiers rank
// between dev and rc.
var qualifierRank = map[string]int{
	"dev":      -1,
	"rc":       1,
	"snapshot": 2,
	"final":    3,
	"ga":       4,
	"release":  5,
	"sp":       6,
}

// compareSegments splits both versions on separators and digit/letter
// boundaries and compares part by part. Numeric parts are higher than
// textual ones; a trailing numeric part makes a version higher, a trailing
// textual part makes it lower ("1.0.1" > "1.0" > "1.0-beta").
func compareSegments(a, b string) int {
	pa, pb := splitVersion(a), splitVersion(b)
	for i := 0; i < len(pa) && i < len(pb); i++ {
		if c := comparePart(pa[i], pb[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(pa) > len(pb):
		if isNumeric(pa[len(pb)]) {
			return 1
		}
		return -1
	case len(pa) < len(pb):
		if isNumeric(pb[len(pa)]) {
			return -1
		}
		return 1
	}
	return 0
}

func comparePart(a, b string) int {
	na, aNum := numeric(a)
	nb, bNum := numeric(b)
	switch {
	case aNum && bNum:
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	case aNum:
		return 1
	case bNum:
		return -1
	}
	la, lb := strings.ToLower(a), strings.ToLower(b)
	ra, aKnown := qualifierRank[la]
	rb, bKnown := qualifierRank[lb]
	if aKnown || bKnown {
		if ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(la, lb)
}

func splitVersion(v string) []string {
	var parts []string
	var cur strings.Builder
	lastDigit := false
	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}
	for _, r := range v {
		if r == '.' || r == '-' || r == '_' || r == '+' {
			flush()
			continue
		}
		digit := unicode.IsDigit(r)
		if cur.Len() > 0 && digit != lastDigit {
			flush()
		}
		cur.WriteRune(r)
		lastDigit = digit
	}
	flush()
	return parts
}

func numeric(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	return n, err == nil
}

func isNumeric(s string) bool {
	_, ok := numeric(s)
	return ok
}

// IsPreRelease reports whether version is a pre-release or snapshot build.
func IsPreRelease(version string) bool {
	if strings.Contains(strings.ToUpper(version), "SNAPSHOT") {
		return true
	}
	v, err := mm.NewVersion(version)
	if err != nil {
		return false
	}
	return v.Prerelease() != ""
}
