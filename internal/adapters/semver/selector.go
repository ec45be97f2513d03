package semver

import (
	"strings"

	mm "github.com/Masterminds/semver/v3"
	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// LatestRelease selects the highest version that is not a pre-release.
	LatestRelease = "latest.release"
	// LatestIntegration selects the highest version of any kind.
	LatestIntegration = "latest.integration"
)

func parseSelector(raw string) (ports.VersionSelector, error) {
	constraint := strings.TrimSpace(raw)
	switch {
	case constraint == "", constraint == LatestIntegration, constraint == "+":
		return latestSelector{raw: raw, releasesOnly: false}, nil
	case constraint == LatestRelease:
		return latestSelector{raw: raw, releasesOnly: true}, nil
	case strings.HasSuffix(constraint, "+"):
		return prefixSelector{prefix: strings.TrimSuffix(constraint, "+")}, nil
	case isRange(constraint):
		return parseInterval(raw, constraint)
	case strings.ContainsAny(constraint, "<>=^~*,| "):
		return newConstraintSelector(raw, constraint)
	}
	return exactSelector{version: constraint}, nil
}

// exactSelector matches one version. It needs no repository listing.
type exactSelector struct {
	version string
}

func (s exactSelector) Accept(candidate string) bool { return candidate == s.version }
func (s exactSelector) IsDynamic() bool              { return false }
func (s exactSelector) String() string               { return s.version }

type latestSelector struct {
	raw          string
	releasesOnly bool
}

func (s latestSelector) Accept(candidate string) bool {
	return !s.releasesOnly || !IsPreRelease(candidate)
}
func (s latestSelector) IsDynamic() bool { return true }
func (s latestSelector) String() string  { return s.raw }

// prefixSelector matches "1.+" style requests.
type prefixSelector struct {
	prefix string
}

func (s prefixSelector) Accept(candidate string) bool {
	return strings.HasPrefix(candidate, s.prefix)
}
func (s prefixSelector) IsDynamic() bool { return true }
func (s prefixSelector) String() string  { return s.prefix + "+" }

type constraintSelector struct {
	raw        string
	constraint *mm.Constraints
}

func newConstraintSelector(raw, constraint string) (constraintSelector, error) {
	c, err := mm.NewConstraint(constraint)
	if err != nil {
		return constraintSelector{}, zerr.With(
			zerr.Wrap(err, domain.ErrInvalidVersionSelector.Error()),
			"selector", raw,
		)
	}
	return constraintSelector{raw: raw, constraint: c}, nil
}

func (s constraintSelector) Accept(candidate string) bool {
	v, err := mm.NewVersion(candidate)
	if err != nil {
		return false
	}
	return s.constraint.Check(v)
}
func (s constraintSelector) IsDynamic() bool { return true }
func (s constraintSelector) String() string  { return s.raw }

func isRange(s string) bool {
	if len(s) < 3 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return (first == '[' || first == '(' || first == ']') && (last == ']' || last == ')' || last == '[')
}

// intervalSelector matches "[1.0,2.0)" style requests. Bounds are compared
// with the scheme ordering, so pre-releases and non-semver versions that sort
// inside the interval match. A bracket facing away from its bound excludes it.
type intervalSelector struct {
	raw            string
	lower, upper   string
	lowerInclusive bool
	upperInclusive bool
}

func parseInterval(raw, s string) (intervalSelector, error) {
	open, closing := s[0], s[len(s)-1]
	lower, upper, hasComma := strings.Cut(s[1:len(s)-1], ",")
	lower, upper = strings.TrimSpace(lower), strings.TrimSpace(upper)

	if !hasComma {
		if open != '[' || closing != ']' || lower == "" {
			return intervalSelector{}, zerr.With(domain.ErrInvalidVersionSelector, "selector", raw)
		}
		return intervalSelector{raw: raw, lower: lower, upper: lower, lowerInclusive: true, upperInclusive: true}, nil
	}
	if lower == "" && upper == "" {
		return intervalSelector{}, zerr.With(domain.ErrInvalidVersionSelector, "selector", raw)
	}
	return intervalSelector{
		raw:            raw,
		lower:          lower,
		upper:          upper,
		lowerInclusive: open == '[',
		upperInclusive: closing == ']',
	}, nil
}

func (s intervalSelector) Accept(candidate string) bool {
	var scheme Scheme
	if s.lower != "" {
		c := scheme.Compare(candidate, s.lower)
		if c < 0 || (c == 0 && !s.lowerInclusive) {
			return false
		}
	}
	if s.upper != "" {
		c := scheme.Compare(candidate, s.upper)
		if c > 0 || (c == 0 && !s.upperInclusive) {
			return false
		}
	}
	return true
}
func (s intervalSelector) IsDynamic() bool { return true }
func (s intervalSelector) String() string  { return s.raw }
