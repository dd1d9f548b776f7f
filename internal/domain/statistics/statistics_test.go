package statistics_test

import (
	"testing"

	"clubreg/internal/domain/candidate"
	"clubreg/internal/domain/member"
	"clubreg/internal/domain/role"
	"clubreg/internal/domain/statistics"
)

func withStatus(id int64, roleID int, status candidate.Status) candidate.CandidateRegistration {
	r, _ := role.ByID(roleID)
	return candidate.CandidateRegistration{ID: id, Role: r, Status: status}
}

func roleStat(report statistics.Report, name string) (statistics.RoleStatistics, bool) {
	for _, rs := range report.Roles {
		if rs.Role == name {
			return rs, true
		}
	}
	return statistics.RoleStatistics{}, false
}

func teamStat(report statistics.Report, name string) (statistics.TeamStatistics, bool) {
	for _, ts := range report.Teams {
		if ts.Team == name {
			return ts, true
		}
	}
	return statistics.TeamStatistics{}, false
}

// TestComputeEmpty checks the zero-input report: all rates zero, never NaN.
func TestComputeEmpty(t *testing.T) {
	report := statistics.Compute(nil, nil)

	if report.Overview.TotalApplications != 0 {
		t.Errorf("total = %d, want 0", report.Overview.TotalApplications)
	}
	if report.Overview.ApprovedRate != 0 || report.Overview.RejectedRate != 0 || report.Overview.PendingRate != 0 {
		t.Errorf("rates must all be 0 on empty input, got %+v", report.Overview)
	}

	// Every catalog role still gets a zero bucket.
	if len(report.Roles) != len(role.Catalog) {
		t.Fatalf("expected %d role buckets, got %d", len(role.Catalog), len(report.Roles))
	}
	for _, rs := range report.Roles {
		if rs.Total != 0 || rs.Approved != 0 || rs.Rejected != 0 || rs.Pending != 0 {
			t.Errorf("role %q bucket not zero: %+v", rs.Role, rs)
		}
	}

	// Unassigned plus one bucket per default team, all at zero percent.
	if len(report.Teams) != len(role.Catalog)+1 {
		t.Fatalf("expected %d team buckets, got %d", len(role.Catalog)+1, len(report.Teams))
	}
	if report.Teams[0].Team != statistics.UnassignedTeam {
		t.Errorf("first team bucket = %q, want %q", report.Teams[0].Team, statistics.UnassignedTeam)
	}
}

// TestComputeRates checks rounded percentage rates.
func TestComputeRates(t *testing.T) {
	var candidates []candidate.CandidateRegistration
	for i := int64(0); i < 5; i++ {
		candidates = append(candidates, withStatus(i, 1, candidate.StatusApproved))
	}
	for i := int64(5); i < 8; i++ {
		candidates = append(candidates, withStatus(i, 2, candidate.StatusRejected))
	}
	for i := int64(8); i < 10; i++ {
		candidates = append(candidates, withStatus(i, 3, candidate.StatusPending))
	}

	report := statistics.Compute(candidates, nil)
	ov := report.Overview
	if ov.TotalApplications != 10 {
		t.Errorf("total = %d, want 10", ov.TotalApplications)
	}
	if ov.ApprovedRate != 50 {
		t.Errorf("approvedRate = %d, want 50", ov.ApprovedRate)
	}
	if ov.RejectedRate != 30 {
		t.Errorf("rejectedRate = %d, want 30", ov.RejectedRate)
	}
	if ov.PendingRate != 20 {
		t.Errorf("pendingRate = %d, want 20", ov.PendingRate)
	}
}

// TestComputeRateRounding checks that rates round rather than truncate.
func TestComputeRateRounding(t *testing.T) {
	candidates := []candidate.CandidateRegistration{
		withStatus(1, 1, candidate.StatusApproved),
		withStatus(2, 1, candidate.StatusApproved),
		withStatus(3, 1, candidate.StatusPending),
	}
	report := statistics.Compute(candidates, nil)
	// 2/3 = 66.67 rounds to 67, 1/3 = 33.33 rounds to 33.
	if report.Overview.ApprovedRate != 67 {
		t.Errorf("approvedRate = %d, want 67", report.Overview.ApprovedRate)
	}
	if report.Overview.PendingRate != 33 {
		t.Errorf("pendingRate = %d, want 33", report.Overview.PendingRate)
	}
}

// TestComputeRoleBuckets checks per-role counting and the Unknown bucket.
func TestComputeRoleBuckets(t *testing.T) {
	candidates := []candidate.CandidateRegistration{
		withStatus(1, 2, candidate.StatusApproved),
		withStatus(2, 2, candidate.StatusRejected),
		withStatus(3, 2, candidate.StatusPending),
		{ID: 4, Role: role.Role{ID: 42, Name: "Ghost"}, Status: candidate.StatusPending},
	}

	report := statistics.Compute(candidates, nil)

	dev, ok := roleStat(report, "Development")
	if !ok {
		t.Fatal("Development bucket missing")
	}
	if dev.Total != 3 || dev.Approved != 1 || dev.Rejected != 1 || dev.Pending != 1 {
		t.Errorf("Development bucket = %+v", dev)
	}

	// Roles with zero applicants still appear.
	if _, ok := roleStat(report, "Event"); !ok {
		t.Error("Event bucket missing despite zero applicants")
	}

	// The unrecognized role lands in a dynamic Unknown bucket, not dropped.
	unknown, ok := roleStat(report, role.UnknownName)
	if !ok {
		t.Fatal("Unknown bucket missing")
	}
	if unknown.Total != 1 || unknown.Pending != 1 {
		t.Errorf("Unknown bucket = %+v", unknown)
	}
}

// TestComputeTeamBuckets checks per-team counting and percentages.
func TestComputeTeamBuckets(t *testing.T) {
	members := []member.Member{
		{CandidateRegistration: withStatus(1, 1, candidate.StatusApproved), Team: "Team Design"},
		{CandidateRegistration: withStatus(2, 1, candidate.StatusApproved), Team: "Team Design"},
		{CandidateRegistration: withStatus(3, 2, candidate.StatusApproved)}, // defaults to Team Development
		{CandidateRegistration: withStatus(4, 1, candidate.StatusApproved), Team: "Team Custom"},
	}

	report := statistics.Compute(nil, members)

	design, ok := teamStat(report, "Team Design")
	if !ok {
		t.Fatal("Team Design bucket missing")
	}
	if design.Count != 2 || design.Percentage != 50 {
		t.Errorf("Team Design = %+v, want count 2 percentage 50", design)
	}

	dev, _ := teamStat(report, "Team Development")
	if dev.Count != 1 || dev.Percentage != 25 {
		t.Errorf("Team Development = %+v, want count 1 percentage 25", dev)
	}

	custom, ok := teamStat(report, "Team Custom")
	if !ok {
		t.Fatal("dynamic Team Custom bucket missing")
	}
	if custom.Count != 1 {
		t.Errorf("Team Custom count = %d, want 1", custom.Count)
	}

	unassigned, _ := teamStat(report, statistics.UnassignedTeam)
	if unassigned.Count != 0 {
		t.Errorf("Unassigned count = %d, want 0", unassigned.Count)
	}
}
