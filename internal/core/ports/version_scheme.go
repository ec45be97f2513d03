package ports

// VersionSelector matches candidate versions against a parsed constraint.
type VersionSelector interface {
	// Accept reports whether candidate satisfies the constraint.
	Accept(candidate string) bool
	// IsDynamic reports whether a repository listing is needed to pick a version.
	IsDynamic() bool
	// String returns the constraint as written.
	String() string
}

// VersionScheme orders versions and parses version constraints.
type VersionScheme interface {
	// Compare returns -1, 0 or 1 as a is lower than, equal to or higher than b.
	Compare(a, b string) int
	// Parse turns a constraint into a selector.
	Parse(constraint string) (VersionSelector, error)
}
