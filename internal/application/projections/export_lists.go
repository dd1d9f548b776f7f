package projections

import (
	"context"
	"fmt"

	"clubreg/internal/domain/export"
)

// ExportResult carries a ready-to-encode sheet.
type ExportResult struct {
	Headers []string
	Rows    [][]string
}

// QueryExportMembers builds the member download sheet from the reconciled
// member list.
// POST: Columns are export.MemberHeaders; one row per member
func QueryExportMembers(ctx context.Context, deps GetMemberListDeps) (ExportResult, error) {
	list, err := QueryGetMemberList(ctx, deps)
	if err != nil {
		return ExportResult{}, fmt.Errorf("export members: %w", err)
	}
	return ExportResult{
		Headers: export.MemberHeaders,
		Rows:    export.MemberRows(list.Members),
	}, nil
}

// QueryExportCandidates builds the applications download sheet.
// POST: Columns are export.CandidateHeaders; one row per candidate
func QueryExportCandidates(ctx context.Context, deps GetCandidateListDeps) (ExportResult, error) {
	all, err := deps.CandidateStore.Load(ctx)
	if err != nil {
		return ExportResult{}, fmt.Errorf("export candidates: %w", err)
	}
	return ExportResult{
		Headers: export.CandidateHeaders,
		Rows:    export.CandidateRows(all),
	}, nil
}
