package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidNotation is returned when a module notation cannot be parsed.
	ErrInvalidNotation = zerr.New("invalid module notation")

	// ErrInvalidTimeUnit is returned when a cache duration names an unknown unit.
	ErrInvalidTimeUnit = zerr.New("invalid time unit")

	// ErrInvalidDuration is returned when a cache duration is negative.
	ErrInvalidDuration = zerr.New("invalid cache duration")

	// ErrInvalidVersionSelector is returned when a version constraint cannot be parsed.
	ErrInvalidVersionSelector = zerr.New("invalid version selector")

	// ErrStrategyFrozen is returned when a strategy is mutated after resolution started.
	ErrStrategyFrozen = zerr.New("resolution strategy can no longer be changed")

	// ErrRuleFailed is returned when a dependency resolve rule fails.
	ErrRuleFailed = zerr.New("dependency resolve rule failed")

	// ErrVersionConflict is returned when strict conflict resolution finds divergent versions.
	ErrVersionConflict = zerr.New("version conflict")

	// ErrModuleNotFound is returned when no repository provides a module version.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrNoMatchingVersion is returned when no listed version satisfies a selector.
	ErrNoMatchingVersion = zerr.New("no matching version")

	// ErrCacheIO is returned when the module versions cache cannot be read or written.
	ErrCacheIO = zerr.New("module versions cache I/O failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnknownConfiguration is returned when a requested configuration is not declared.
	ErrUnknownConfiguration = zerr.New("unknown configuration")

	// ErrSubstitutionVersionMissing is returned when a configured substitution names no version.
	ErrSubstitutionVersionMissing = zerr.New("substitution requires useVersion")

	// ErrUnknownRepository is returned when a repository id is not declared.
	ErrUnknownRepository = zerr.New("unknown repository")

	// ErrModuleAlreadySelected is returned when a graph already holds a module.
	ErrModuleAlreadySelected = zerr.New("module already selected")

	// ErrMissingDependency is returned when a graph edge points at a module that was not selected.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrResolutionFailed is returned when resolving a configuration fails.
	ErrResolutionFailed = zerr.New("resolution failed")
)
