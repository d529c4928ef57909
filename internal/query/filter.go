// Package query derives display subsets from store snapshots. Filters never
// mutate their input and preserve the snapshot's order. Keyword matching here
// is uniformly case-insensitive; the stores' own Search stays case-sensitive.
package query

import (
	"strings"

	"github.com/Sill-Liu/test-platform/internal/models"
)

// Keyword reports whether s contains keyword, ignoring case. An empty
// keyword matches everything.
func Keyword(s, keyword string) bool {
	if keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(keyword))
}

// Equals is an exact-match filter where the empty want means no restriction.
func Equals(got, want string) bool {
	return want == "" || got == want
}

// Apply returns the items for which keep is true, preserving order.
func Apply[T any](items []T, keep func(T) bool) []T {
	var out []T
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// BugFilter narrows a bug list. All set conditions must hold (logical AND).
type BugFilter struct {
	Keyword            string
	RelatedRequirement string
	Status             string
	Handler            string
}

func (f BugFilter) Match(b models.Bug) bool {
	return Keyword(b.Title, f.Keyword) &&
		Equals(b.RelatedRequirement, f.RelatedRequirement) &&
		Equals(string(b.Status), f.Status) &&
		Equals(b.Handler, f.Handler)
}

// Bugs applies f over the snapshot.
func Bugs(items []models.Bug, f BugFilter) []models.Bug {
	return Apply(items, f.Match)
}

// DemandFilter narrows a demand list.
type DemandFilter struct {
	Keyword     string
	IterationID string
	Status      string
	Priority    string
}

func (f DemandFilter) Match(d models.Demand) bool {
	return Keyword(d.Name, f.Keyword) &&
		Equals(d.IterationID, f.IterationID) &&
		Equals(string(d.Status), f.Status) &&
		Equals(string(d.Priority), f.Priority)
}

// Demands applies f over the snapshot.
func Demands(items []models.Demand, f DemandFilter) []models.Demand {
	return Apply(items, f.Match)
}

// RequirementFilter narrows the canned requirement list.
type RequirementFilter struct {
	Keyword   string
	ProjectID string
	Type      string
}

func (f RequirementFilter) Match(r models.Requirement) bool {
	return Keyword(r.Title, f.Keyword) &&
		Equals(r.ProjectID, f.ProjectID) &&
		Equals(r.Type, f.Type)
}

// Requirements applies f over the snapshot.
func Requirements(items []models.Requirement, f RequirementFilter) []models.Requirement {
	return Apply(items, f.Match)
}
