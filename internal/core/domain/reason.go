package domain

import "strings"

// SelectionReason records why a version was selected. Diagnostics switch
// over it exhaustively, so the set is closed.
type SelectionReason int

const (
	// ReasonRequested means the declared version was used unchanged.
	ReasonRequested SelectionReason = iota
	// ReasonForced means a forced module pinned the version.
	ReasonForced
	// ReasonConflictResolution means the version won a conflict between paths.
	ReasonConflictResolution
	// ReasonSelectedByRule means a dependency resolve rule chose the version.
	ReasonSelectedByRule
	// ReasonRoot marks the modules declared directly by a configuration.
	ReasonRoot
)

var reasonNames = [...]string{
	ReasonRequested:          "REQUESTED",
	ReasonForced:             "FORCED",
	ReasonConflictResolution: "CONFLICT_RESOLUTION",
	ReasonSelectedByRule:     "SELECTED_BY_RULE",
	ReasonRoot:               "ROOT",
}

// String returns the upper-case name of the reason.
func (r SelectionReason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return "UNKNOWN"
	}
	return reasonNames[r]
}

// ParseSelectionReason converts a name (case-insensitive) back into a reason.
func ParseSelectionReason(s string) (SelectionReason, bool) {
	for i, name := range reasonNames {
		if strings.EqualFold(name, s) {
			return SelectionReason(i), true
		}
	}
	return ReasonRequested, false
}
