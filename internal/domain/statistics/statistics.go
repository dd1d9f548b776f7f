// Package statistics computes aggregate reporting figures from snapshots of
// the candidate and member collections. All functions are pure: callers
// decide when to recompute, and nothing here mutates the stores.
package statistics

import (
	"math"

	"clubreg/internal/domain/candidate"
	"clubreg/internal/domain/member"
	"clubreg/internal/domain/role"
)

// UnassignedTeam is the bucket label for members without any team.
const UnassignedTeam = "Unassigned"

// Overview summarizes application volume and decision rates.
// Rates are rounded integer percentages; all zero when there are no
// applications (never NaN).
type Overview struct {
	TotalApplications int `json:"totalApplications"`
	ApprovedRate      int `json:"approvedRate"`
	RejectedRate      int `json:"rejectedRate"`
	PendingRate       int `json:"pendingRate"`
}

// RoleStatistics counts applications per resolved role name.
type RoleStatistics struct {
	Role     string `json:"role"`
	Total    int    `json:"total"`
	Approved int    `json:"approved"`
	Rejected int    `json:"rejected"`
	Pending  int    `json:"pending"`
}

// TeamStatistics counts members per team label.
type TeamStatistics struct {
	Team       string `json:"team"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// Report bundles the derived statistics views.
type Report struct {
	Overview Overview         `json:"overview"`
	Roles    []RoleStatistics `json:"roles"`
	Teams    []TeamStatistics `json:"teams"`
}

// Compute derives the full statistics report from the given snapshots.
// POST: every catalog role appears in Roles even with zero applicants;
// unrecognized roles are counted under a dynamically added Unknown bucket;
// Teams always contains the Unassigned bucket plus one per default team
// INVARIANT: inputs are not mutated
func Compute(candidates []candidate.CandidateRegistration, members []member.Member) Report {
	total := len(candidates)
	var approved, rejected, pending int
	for _, c := range candidates {
		switch c.Status {
		case candidate.StatusApproved:
			approved++
		case candidate.StatusRejected:
			rejected++
		case candidate.StatusPending:
			pending++
		}
	}

	report := Report{
		Overview: Overview{
			TotalApplications: total,
			ApprovedRate:      rate(approved, total),
			RejectedRate:      rate(rejected, total),
			PendingRate:       rate(pending, total),
		},
		Roles: computeRoles(candidates),
		Teams: computeTeams(members),
	}
	return report
}

// computeRoles buckets candidates by resolved role name, seeding a zero
// bucket for every catalog role so empty roles still appear.
func computeRoles(candidates []candidate.CandidateRegistration) []RoleStatistics {
	index := make(map[string]int, len(role.Catalog)+1)
	stats := make([]RoleStatistics, 0, len(role.Catalog)+1)
	for _, r := range role.Catalog {
		index[r.Name] = len(stats)
		stats = append(stats, RoleStatistics{Role: r.Name})
	}

	for _, c := range candidates {
		name := role.NameByID(c.Role.ID)
		i, ok := index[name]
		if !ok {
			i = len(stats)
			index[name] = i
			stats = append(stats, RoleStatistics{Role: name})
		}
		stats[i].Total++
		switch c.Status {
		case candidate.StatusApproved:
			stats[i].Approved++
		case candidate.StatusRejected:
			stats[i].Rejected++
		case candidate.StatusPending:
			stats[i].Pending++
		}
	}
	return stats
}

// computeTeams buckets members by resolved team, seeding the Unassigned
// bucket and one bucket per role-derived default team.
func computeTeams(members []member.Member) []TeamStatistics {
	index := make(map[string]int, len(role.Catalog)+2)
	stats := make([]TeamStatistics, 0, len(role.Catalog)+2)
	add := func(team string) int {
		if i, ok := index[team]; ok {
			return i
		}
		index[team] = len(stats)
		stats = append(stats, TeamStatistics{Team: team})
		return len(stats) - 1
	}

	add(UnassignedTeam)
	for _, r := range role.Catalog {
		add("Team " + r.Name)
	}
	for _, m := range members {
		stats[add(m.ResolvedTeam())].Count++
	}
	for i := range stats {
		stats[i].Percentage = rate(stats[i].Count, len(members))
	}
	return stats
}

// rate returns round(n/total*100), or 0 when total is 0.
func rate(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(total) * 100))
}
