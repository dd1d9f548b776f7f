package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"clubreg/internal/domain/candidate"
	"clubreg/internal/domain/role"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// CandidateStore defines the persistence interface for the candidate collection.
type CandidateStore interface {
	Load(ctx context.Context) ([]candidate.CandidateRegistration, error)
	Replace(ctx context.Context, all []candidate.CandidateRegistration) error
}

// RegisterCandidateInput carries the application form fields.
type RegisterCandidateInput struct {
	FullName      string
	Email         string
	RoleID        int
	ReasonToApply string
}

// RegisterCandidateDeps holds dependencies for RegisterCandidate.
type RegisterCandidateDeps struct {
	CandidateStore CandidateStore
}

// RegisterCandidateResult carries the stored registration.
type RegisterCandidateResult struct {
	Candidate candidate.CandidateRegistration
}

// ExecuteRegisterCandidate records a new club-membership application.
// PRE: Input fields come straight from the registration form
// POST: A PENDING registration with a unique timestamp-derived id and an
// empty note is appended to the persisted collection
func ExecuteRegisterCandidate(ctx context.Context, input RegisterCandidateInput, deps RegisterCandidateDeps) (RegisterCandidateResult, error) {
	r, ok := role.ByID(input.RoleID)
	if !ok {
		return RegisterCandidateResult{}, candidate.ErrInvalidRole
	}

	now := timeNow()
	c := candidate.CandidateRegistration{
		ID:            now.UnixMilli(),
		FullName:      strings.TrimSpace(input.FullName),
		Email:         strings.TrimSpace(input.Email),
		Role:          r,
		ReasonToApply: strings.TrimSpace(input.ReasonToApply),
		Status:        candidate.StatusPending,
		Note:          "",
		CreatedAt:     now,
	}
	if err := c.Validate(); err != nil {
		return RegisterCandidateResult{}, err
	}

	all, err := deps.CandidateStore.Load(ctx)
	if err != nil {
		return RegisterCandidateResult{}, fmt.Errorf("register candidate: %w", err)
	}

	// Timestamp-derived ids collide when two submissions land in the same
	// millisecond; bump past the current maximum to keep ids unique and
	// monotonic.
	for _, existing := range all {
		if existing.ID >= c.ID {
			c.ID = existing.ID + 1
		}
	}

	all = append(all, c)
	if err := deps.CandidateStore.Replace(ctx, all); err != nil {
		return RegisterCandidateResult{}, fmt.Errorf("register candidate: %w", err)
	}

	slog.Info("candidate_registered", "id", c.ID, "role", c.Role.Name, "email", c.Email)
	return RegisterCandidateResult{Candidate: c}, nil
}
