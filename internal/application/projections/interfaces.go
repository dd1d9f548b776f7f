package projections

import (
	"context"

	domainCandidate "clubreg/internal/domain/candidate"
	domainMember "clubreg/internal/domain/member"
)

// CandidateStore interface for candidate collection reads.
type CandidateStore interface {
	Load(ctx context.Context) ([]domainCandidate.CandidateRegistration, error)
}

// MemberStore interface for member collection reads and the reconcile
// write-back.
type MemberStore interface {
	Load(ctx context.Context) ([]domainMember.Member, error)
	Replace(ctx context.Context, all []domainMember.Member) error
}
