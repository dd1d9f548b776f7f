// Package export builds the fixed-column spreadsheet rows for member and
// candidate downloads. Export is a one-way, on-demand side effect with no
// round-trip back into the stores.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"clubreg/internal/domain/candidate"
	"clubreg/internal/domain/member"
	"clubreg/internal/domain/role"
)

// Fixed column headers for the two download screens.
var (
	MemberHeaders    = []string{"Full Name", "Email", "Team", "Created At"}
	CandidateHeaders = []string{"Full Name", "Email", "Role"}
)

// createdAtLayout renders the submission date in the member download.
const createdAtLayout = "2/1/2006 15:04"

// MemberRows builds one row per member for the member download.
// POST: Rows align with MemberHeaders; team falls back to the role default
func MemberRows(members []member.Member) [][]string {
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{
			m.FullName,
			m.Email,
			m.ResolvedTeam(),
			m.CreatedAt.Format(createdAtLayout),
		})
	}
	return rows
}

// CandidateRows builds one row per candidate for the applications download.
// POST: Rows align with CandidateHeaders
func CandidateRows(candidates []candidate.CandidateRegistration) [][]string {
	rows := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, []string{
			c.FullName,
			c.Email,
			role.NameByID(c.Role.ID),
		})
	}
	return rows
}

// WriteCSV writes a header row followed by the data rows.
// PRE: every row has len(headers) columns
// POST: The full sheet is flushed to w, or an error is returned
func WriteCSV(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
