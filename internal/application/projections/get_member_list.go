package projections

import (
	"context"
	"fmt"

	"clubreg/internal/domain/member"
)

// GetMemberListDeps holds dependencies for GetMemberList.
type GetMemberListDeps struct {
	CandidateStore CandidateStore
	MemberStore    MemberStore
}

// GetMemberListResult carries the reconciled member list.
type GetMemberListResult struct {
	Members []member.Member
}

// QueryGetMemberList derives the member list: approved candidates merged
// with the persisted team-assignment overlay, reconciled on every read.
// POST: The merged list is persisted back as the new member collection, so
// once a member, always a member — later candidate edits are not re-validated
func QueryGetMemberList(ctx context.Context, deps GetMemberListDeps) (GetMemberListResult, error) {
	candidates, err := deps.CandidateStore.Load(ctx)
	if err != nil {
		return GetMemberListResult{}, fmt.Errorf("get member list: %w", err)
	}
	prior, err := deps.MemberStore.Load(ctx)
	if err != nil {
		return GetMemberListResult{}, fmt.Errorf("get member list: %w", err)
	}

	merged := member.Reconcile(candidates, prior)
	if err := deps.MemberStore.Replace(ctx, merged); err != nil {
		return GetMemberListResult{}, fmt.Errorf("get member list: %w", err)
	}
	return GetMemberListResult{Members: merged}, nil
}
