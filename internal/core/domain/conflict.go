package domain

// ConflictResolution selects how divergent versions of one module are handled.
// The zero value is ConflictResolutionLatest.
type ConflictResolution int

const (
	// ConflictResolutionLatest selects the highest requested version.
	ConflictResolutionLatest ConflictResolution = iota
	// ConflictResolutionStrict fails the resolution on any divergence.
	ConflictResolutionStrict
)

// String returns "latest" or "strict".
func (c ConflictResolution) String() string {
	if c == ConflictResolutionStrict {
		return "strict"
	}
	return "latest"
}
