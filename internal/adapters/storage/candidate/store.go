package candidate

import (
	"context"

	domain "clubreg/internal/domain/candidate"
)

// Store persists the candidate collection.
// The collection is read and written whole: every mutation overwrites the
// persisted blob, there are no partial writes.
type Store interface {
	Load(ctx context.Context) ([]domain.CandidateRegistration, error)
	Replace(ctx context.Context, all []domain.CandidateRegistration) error
}
