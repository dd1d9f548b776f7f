package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"clubreg/internal/domain/account"
)

// AccountStore defines the persistence interface for admin accounts.
type AccountStore interface {
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	Save(ctx context.Context, value account.Account) error
	Count(ctx context.Context) (int, error)
}

// SeedAdminDeps holds dependencies for SeedAdmin.
type SeedAdminDeps struct {
	AccountStore AccountStore
}

// ExecuteSeedAdmin creates the initial admin account when none exist.
// POST: Idempotent — a populated account table is left untouched
func ExecuteSeedAdmin(ctx context.Context, deps SeedAdminDeps, adminEmail, adminPassword string) error {
	n, err := deps.AccountStore.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if n > 0 {
		return nil
	}

	a := account.Account{
		ID:        uuid.New().String(),
		Email:     adminEmail,
		Role:      account.RoleAdmin,
		CreatedAt: timeNow(),
	}
	if err := a.SetPassword(adminPassword); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := deps.AccountStore.Save(ctx, a); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	slog.Info("admin_seeded", "email", adminEmail)
	return nil
}
