package export_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"clubreg/internal/domain/candidate"
	"clubreg/internal/domain/export"
	"clubreg/internal/domain/member"
	"clubreg/internal/domain/role"
)

// TestMemberRows checks column alignment and the team fallback.
func TestMemberRows(t *testing.T) {
	created := time.Date(2025, 3, 2, 15, 4, 0, 0, time.Local)
	members := []member.Member{
		{
			CandidateRegistration: candidate.CandidateRegistration{
				ID: 1, FullName: "Ana Tran", Email: "ana@example.com",
				Role: role.Role{ID: 2, Name: "Development"}, CreatedAt: created,
			},
			Team: "Team X",
		},
		{
			CandidateRegistration: candidate.CandidateRegistration{
				ID: 2, FullName: "Bob Lee", Email: "bob@example.com",
				Role: role.Role{ID: 3, Name: "Media"}, CreatedAt: created,
			},
		},
	}

	rows := export.MemberRows(members)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	want := []string{"Ana Tran", "ana@example.com", "Team X", "2/3/2025 15:04"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row 0 col %d = %q, want %q", i, rows[0][i], cell)
		}
	}
	if rows[1][2] != "Team Media" {
		t.Errorf("unassigned member team = %q, want role default", rows[1][2])
	}
}

// TestCandidateRows checks the applications sheet columns.
func TestCandidateRows(t *testing.T) {
	candidates := []candidate.CandidateRegistration{
		{ID: 1, FullName: "Ana Tran", Email: "ana@example.com", Role: role.Role{ID: 1, Name: "Design"}},
		{ID: 2, FullName: "Ghost", Email: "g@example.com", Role: role.Role{ID: 42}},
	}
	rows := export.CandidateRows(candidates)
	if rows[0][2] != "Design" {
		t.Errorf("role column = %q, want Design", rows[0][2])
	}
	if rows[1][2] != role.UnknownName {
		t.Errorf("unknown role column = %q, want %q", rows[1][2], role.UnknownName)
	}
}

// TestWriteCSV checks header emission and escaping.
func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := [][]string{{"Ana, the designer", "ana@example.com", "Team Design"}}
	if err := export.WriteCSV(&buf, export.CandidateHeaders, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if lines[0] != "Full Name,Email,Role" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], `"Ana, the designer"`) {
		t.Errorf("comma-containing cell not quoted: %q", lines[1])
	}
}
