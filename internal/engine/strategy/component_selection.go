package strategy

import (
	"slices"

	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
	"go.trai.ch/zerr"
)

// ComponentSelection is the candidate a component selection rule judges.
type ComponentSelection struct {
	candidate domain.ModuleVersionIdentifier
	rejection string
	rejected  bool
}

// Candidate returns the version under consideration.
func (s *ComponentSelection) Candidate() domain.ModuleVersionIdentifier {
	return s.candidate
}

// Reject excludes the candidate with a reason shown in diagnostics.
func (s *ComponentSelection) Reject(reason string) {
	s.rejected = true
	s.rejection = reason
}

// ComponentSelectionRule judges one candidate.
type ComponentSelectionRule func(selection *ComponentSelection)

type selectionRule struct {
	module *domain.ModuleIdentifier
	action ComponentSelectionRule
}

// ComponentSelectionRules filter the candidate versions considered for a
// request. They never rewrite the request itself.
type ComponentSelectionRules struct {
	parser ports.NotationParser
	rules  []selectionRule
}

func newComponentSelectionRules(parser ports.NotationParser) *ComponentSelectionRules {
	return &ComponentSelectionRules{parser: parser}
}

// All adds a rule consulted for every module.
func (r *ComponentSelectionRules) All(rule ComponentSelectionRule) {
	r.rules = append(r.rules, selectionRule{action: rule})
}

// Module adds a rule consulted only for the module named by notation
// ("group:name").
func (r *ComponentSelectionRules) Module(notation any, rule ComponentSelectionRule) error {
	sel, err := r.parser.ParseSelector(notation)
	if err != nil {
		return err
	}
	if sel.Version != "" {
		err := zerr.With(domain.ErrInvalidNotation, "notation", sel.String())
		return zerr.With(err, "reason", "module notation must not carry a version")
	}
	module := sel.Module
	r.rules = append(r.rules, selectionRule{module: &module, action: rule})
	return nil
}

// Len returns the number of registered rules.
func (r *ComponentSelectionRules) Len() int {
	return len(r.rules)
}

// Apply runs the rules in registration order and stops at the first
// rejection.
func (r *ComponentSelectionRules) Apply(candidate domain.ModuleVersionIdentifier) (accepted bool, rejection string) {
	selection := &ComponentSelection{candidate: candidate}
	for _, rule := range r.rules {
		if rule.module != nil && *rule.module != candidate.Module {
			continue
		}
		rule.action(selection)
		if selection.rejected {
			return false, selection.rejection
		}
	}
	return true, ""
}

func (r *ComponentSelectionRules) copy() *ComponentSelectionRules {
	return &ComponentSelectionRules{
		parser: r.parser,
		rules:  slices.Clone(r.rules),
	}
}
