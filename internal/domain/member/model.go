package member

import (
	"clubreg/internal/domain/candidate"
	"clubreg/internal/domain/role"
)

// Member is an approved candidate with an assignable team label.
// Members are derived, never independently created: the list is materialized
// by reconciling the candidate collection against the persisted team overlay.
type Member struct {
	candidate.CandidateRegistration
	Team string `json:"team,omitempty"`
}

// DefaultTeam returns the role-derived team label used when no team has been
// assigned manually.
func DefaultTeam(r role.Role) string {
	return "Team " + role.NameByID(r.ID)
}

// ResolvedTeam returns the member's explicit team, or the role-derived
// default when none is assigned.
func (m Member) ResolvedTeam() string {
	if m.Team != "" {
		return m.Team
	}
	return DefaultTeam(m.Role)
}

// Reconcile merges the prior member list with the current candidate
// collection, keyed by candidate id.
// POST: prior members come first and keep their team assignments; every
// APPROVED candidate not already present is appended with the default team;
// candidates that are neither approved nor previously recorded are excluded
// INVARIANT: each id appears at most once; prior records are never purged,
// so membership is append-only even if the source candidate changes later
func Reconcile(candidates []candidate.CandidateRegistration, prior []Member) []Member {
	seen := make(map[int64]bool, len(prior))
	merged := make([]Member, 0, len(prior))
	for _, m := range prior {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		merged = append(merged, m)
	}
	for _, c := range candidates {
		if c.Status != candidate.StatusApproved {
			continue
		}
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		merged = append(merged, Member{
			CandidateRegistration: c,
			Team:                  DefaultTeam(c.Role),
		})
	}
	return merged
}

// AssignTeam sets the team label for the member with the given id.
// The label is free-form: no validation against the role-derived defaults.
// A missing id leaves the list untouched; callers still report success,
// which existing callers depend on.
func AssignTeam(members []Member, id int64, team string) []Member {
	for i := range members {
		if members[i].ID == id {
			members[i].Team = team
			break
		}
	}
	return members
}
