package candidate

import "strings"

// RoleAll is the filter sentinel matching every role.
const RoleAll = 0

// FilterSpec carries the candidate list filter parameters.
// An empty Text, a StatusAll (or empty) Status, and a RoleAll RoleID are
// pass-throughs, not exclusions. Active predicates are AND-combined.
type FilterSpec struct {
	Text   string
	Status Status
	RoleID int
}

// Filter returns the candidates matching every active predicate.
// POST: Result preserves input order; input slice is not mutated
func Filter(all []CandidateRegistration, spec FilterSpec) []CandidateRegistration {
	out := make([]CandidateRegistration, 0, len(all))
	text := strings.ToLower(spec.Text)
	for _, c := range all {
		if text != "" &&
			!strings.Contains(strings.ToLower(c.FullName), text) &&
			!strings.Contains(strings.ToLower(c.Email), text) {
			continue
		}
		if spec.Status != "" && spec.Status != StatusAll && c.Status != spec.Status {
			continue
		}
		if spec.RoleID != RoleAll && c.Role.ID != spec.RoleID {
			continue
		}
		out = append(out, c)
	}
	return out
}
