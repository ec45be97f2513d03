package domain

// ResolveDetails is the mutable context handed to each dependency resolve
// rule. Rules observe the requested selector and may call UseVersion; the
// last call before the rule chain finishes wins.
type ResolveDetails struct {
	requested ModuleVersionSelector
	target    ModuleVersionSelector
	reason    SelectionReason
	updated   bool
}

// NewResolveDetails creates details for a requested selector. Until a rule
// intervenes the target is the request itself.
func NewResolveDetails(requested ModuleVersionSelector) *ResolveDetails {
	return &ResolveDetails{
		requested: requested,
		target:    requested,
		reason:    ReasonRequested,
	}
}

// Requested returns the selector as declared.
func (d *ResolveDetails) Requested() ModuleVersionSelector {
	return d.requested
}

// Target returns the selector that will be resolved.
func (d *ResolveDetails) Target() ModuleVersionSelector {
	return d.target
}

// Reason returns the reason recorded by the last UseVersion call.
func (d *ResolveDetails) Reason() SelectionReason {
	return d.reason
}

// UseVersion overrides the requested version.
func (d *ResolveDetails) UseVersion(version string, reason SelectionReason) {
	d.target = d.requested.WithVersion(version)
	d.reason = reason
	d.updated = true
}

// Updated reports whether any rule called UseVersion.
func (d *ResolveDetails) Updated() bool {
	return d.updated
}
