package projections

import (
	"context"
	"fmt"

	"clubreg/internal/domain/statistics"
)

// GetStatisticsDeps holds dependencies for GetStatistics.
type GetStatisticsDeps struct {
	CandidateStore CandidateStore
	MemberStore    MemberStore
}

// GetStatisticsResult carries the derived report.
type GetStatisticsResult struct {
	Report statistics.Report
}

// QueryGetStatistics computes the statistics report from the current
// snapshots. Full recompute on every call; nothing is cached or mutated.
// POST: Works on the member collection as persisted — no reconcile here
func QueryGetStatistics(ctx context.Context, deps GetStatisticsDeps) (GetStatisticsResult, error) {
	candidates, err := deps.CandidateStore.Load(ctx)
	if err != nil {
		return GetStatisticsResult{}, fmt.Errorf("get statistics: %w", err)
	}
	members, err := deps.MemberStore.Load(ctx)
	if err != nil {
		return GetStatisticsResult{}, fmt.Errorf("get statistics: %w", err)
	}

	return GetStatisticsResult{Report: statistics.Compute(candidates, members)}, nil
}
