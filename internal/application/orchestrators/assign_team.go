package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"clubreg/internal/domain/member"
)

// MemberStore defines the persistence interface for the member collection.
type MemberStore interface {
	Load(ctx context.Context) ([]member.Member, error)
	Replace(ctx context.Context, all []member.Member) error
}

// AssignTeamInput carries a team assignment.
type AssignTeamInput struct {
	MemberID int64
	Team     string // free-form label, not validated against the defaults
}

// AssignTeamDeps holds dependencies for AssignTeam.
type AssignTeamDeps struct {
	MemberStore MemberStore
}

// ExecuteAssignTeam sets the team label on a member.
// POST: The matching member carries the new team; an unknown id is a no-op
// that still reports success (preserved behavior — callers do not check
// presence before assigning)
func ExecuteAssignTeam(ctx context.Context, input AssignTeamInput, deps AssignTeamDeps) error {
	all, err := deps.MemberStore.Load(ctx)
	if err != nil {
		return fmt.Errorf("assign team: %w", err)
	}

	all = member.AssignTeam(all, input.MemberID, input.Team)

	if err := deps.MemberStore.Replace(ctx, all); err != nil {
		return fmt.Errorf("assign team: %w", err)
	}

	slog.Info("team_assigned", "member_id", input.MemberID, "team", input.Team)
	return nil
}
