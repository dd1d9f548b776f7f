package member

import (
	"context"

	domain "clubreg/internal/domain/member"
)

// Store persists the member collection (the team-assignment overlay).
// Like the candidate collection it is read and written whole; there is no
// transactional coupling with the candidate blob.
type Store interface {
	Load(ctx context.Context) ([]domain.Member, error)
	Replace(ctx context.Context, all []domain.Member) error
}
