package member_test

import (
	"testing"

	"clubreg/internal/domain/candidate"
	"clubreg/internal/domain/member"
	"clubreg/internal/domain/role"
)

func approved(id int64, r role.Role) candidate.CandidateRegistration {
	return candidate.CandidateRegistration{ID: id, FullName: "Member", Email: "m@example.com", Role: r, Status: candidate.StatusApproved}
}

// TestDefaultTeam tests the role-derived team label.
func TestDefaultTeam(t *testing.T) {
	if got := member.DefaultTeam(role.Role{ID: 2, Name: "Development"}); got != "Team Development" {
		t.Errorf("DefaultTeam = %q, want %q", got, "Team Development")
	}
	if got := member.DefaultTeam(role.Role{ID: 99}); got != "Team Unknown" {
		t.Errorf("DefaultTeam unknown role = %q, want %q", got, "Team Unknown")
	}
}

// TestReconcile tests the merge of approved candidates with the overlay.
func TestReconcile(t *testing.T) {
	t.Run("empty prior yields defaults for approved candidates", func(t *testing.T) {
		got := member.Reconcile([]candidate.CandidateRegistration{approved(1, role.Role{ID: 2, Name: "Development"})}, nil)
		if len(got) != 1 {
			t.Fatalf("expected 1 member, got %d", len(got))
		}
		if got[0].ID != 1 || got[0].Team != "Team Development" {
			t.Errorf("got member %+v, want id 1 with Team Development", got[0])
		}
	})

	t.Run("non-approved candidates are excluded", func(t *testing.T) {
		candidates := []candidate.CandidateRegistration{
			{ID: 1, Status: candidate.StatusPending, Role: role.Role{ID: 1}},
			{ID: 2, Status: candidate.StatusRejected, Role: role.Role{ID: 1}},
			approved(3, role.Role{ID: 1, Name: "Design"}),
		}
		got := member.Reconcile(candidates, nil)
		if len(got) != 1 || got[0].ID != 3 {
			t.Fatalf("expected only candidate 3, got %+v", got)
		}
	})

	t.Run("manual team assignment survives role change", func(t *testing.T) {
		prior := []member.Member{{
			CandidateRegistration: approved(1, role.Role{ID: 1, Name: "Design"}),
			Team:                  "Team X",
		}}
		// The same candidate now carries a different role.
		got := member.Reconcile([]candidate.CandidateRegistration{approved(1, role.Role{ID: 2, Name: "Development"})}, prior)
		if len(got) != 1 {
			t.Fatalf("expected 1 member, got %d", len(got))
		}
		if got[0].Team != "Team X" {
			t.Errorf("team = %q, want preserved %q", got[0].Team, "Team X")
		}
	})

	t.Run("stale prior members are tolerated, not purged", func(t *testing.T) {
		prior := []member.Member{{
			CandidateRegistration: approved(99, role.Role{ID: 1, Name: "Design"}),
			Team:                  "Team Design",
		}}
		got := member.Reconcile(nil, prior)
		if len(got) != 1 || got[0].ID != 99 {
			t.Fatalf("stale member dropped: %+v", got)
		}
	})

	t.Run("prior order first, then candidate order, no duplicates", func(t *testing.T) {
		prior := []member.Member{
			{CandidateRegistration: approved(2, role.Role{ID: 1, Name: "Design"}), Team: "Team A"},
		}
		candidates := []candidate.CandidateRegistration{
			approved(1, role.Role{ID: 1, Name: "Design"}),
			approved(2, role.Role{ID: 1, Name: "Design"}),
			approved(3, role.Role{ID: 3, Name: "Media"}),
		}
		got := member.Reconcile(candidates, prior)
		if len(got) != 3 {
			t.Fatalf("expected 3 members, got %d", len(got))
		}
		wantIDs := []int64{2, 1, 3}
		for i, id := range wantIDs {
			if got[i].ID != id {
				t.Errorf("position %d: id = %d, want %d", i, got[i].ID, id)
			}
		}
	})
}

// TestResolvedTeam tests the explicit-or-default team resolution.
func TestResolvedTeam(t *testing.T) {
	m := member.Member{CandidateRegistration: approved(1, role.Role{ID: 4, Name: "Marketing"})}
	if got := m.ResolvedTeam(); got != "Team Marketing" {
		t.Errorf("ResolvedTeam = %q, want default", got)
	}
	m.Team = "Team Special"
	if got := m.ResolvedTeam(); got != "Team Special" {
		t.Errorf("ResolvedTeam = %q, want explicit", got)
	}
}

// TestAssignTeam tests team assignment including the missing-id no-op.
func TestAssignTeam(t *testing.T) {
	members := []member.Member{
		{CandidateRegistration: approved(1, role.Role{ID: 1, Name: "Design"}), Team: "Team Design"},
		{CandidateRegistration: approved(2, role.Role{ID: 2, Name: "Development"}), Team: "Team Development"},
	}

	got := member.AssignTeam(members, 2, "Team Rocket")
	if got[1].Team != "Team Rocket" {
		t.Errorf("team = %q, want %q", got[1].Team, "Team Rocket")
	}
	if got[0].Team != "Team Design" {
		t.Errorf("other member changed: %q", got[0].Team)
	}

	// Unknown id leaves the list untouched.
	got = member.AssignTeam(got, 42, "Team Nowhere")
	if got[0].Team != "Team Design" || got[1].Team != "Team Rocket" {
		t.Errorf("missing id must be a no-op, got %+v", got)
	}
}
