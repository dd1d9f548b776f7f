package projections

import (
	"context"
	"fmt"

	"clubreg/internal/domain/candidate"
)

// GetCandidateListQuery carries the admin list filters.
// Zero values (empty Search, empty/ALL Status, zero RoleID) pass everything
// through.
type GetCandidateListQuery struct {
	Search string
	Status candidate.Status
	RoleID int
}

// GetCandidateListDeps holds dependencies for GetCandidateList.
type GetCandidateListDeps struct {
	CandidateStore CandidateStore
}

// GetCandidateListResult carries the query result.
type GetCandidateListResult struct {
	Candidates []candidate.CandidateRegistration
}

// QueryGetCandidateList returns the candidates matching the filters.
// POST: Predicates are AND-combined; submission order is preserved
func QueryGetCandidateList(ctx context.Context, query GetCandidateListQuery, deps GetCandidateListDeps) (GetCandidateListResult, error) {
	all, err := deps.CandidateStore.Load(ctx)
	if err != nil {
		return GetCandidateListResult{}, fmt.Errorf("get candidate list: %w", err)
	}

	filtered := candidate.Filter(all, candidate.FilterSpec{
		Text:   query.Search,
		Status: query.Status,
		RoleID: query.RoleID,
	})
	return GetCandidateListResult{Candidates: filtered}, nil
}
