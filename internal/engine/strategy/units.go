package strategy

import (
	"math"
	"strings"
	"time"

	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/zerr"
)

var timeUnits = map[string]time.Duration{
	"ms":           time.Millisecond,
	"millisecond":  time.Millisecond,
	"milliseconds": time.Millisecond,
	"s":            time.Second,
	"second":       time.Second,
	"seconds":      time.Second,
	"m":            time.Minute,
	"minute":       time.Minute,
	"minutes":      time.Minute,
	"h":            time.Hour,
	"hour":         time.Hour,
	"hours":        time.Hour,
	"d":            24 * time.Hour,
	"day":          24 * time.Hour,
	"days":         24 * time.Hour,
}

// ParseDuration converts a value and a unit name into a duration. Units are
// matched case-insensitively in singular, plural or abbreviated form.
func ParseDuration(value int, unit string) (time.Duration, error) {
	if value < 0 {
		return 0, zerr.With(domain.ErrInvalidDuration, "value", value)
	}
	scale, ok := timeUnits[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		err := zerr.With(domain.ErrInvalidTimeUnit, "unit", unit)
		return 0, zerr.With(err, "accepted", "ms, s, m, h, d")
	}
	if int64(value) > math.MaxInt64/int64(scale) {
		err := zerr.With(domain.ErrInvalidDuration, "value", value)
		return 0, zerr.With(err, "unit", unit)
	}
	return time.Duration(value) * scale, nil
}
