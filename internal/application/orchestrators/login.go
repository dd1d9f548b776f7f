package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"clubreg/internal/domain/account"
)

// Login errors. Both credential failures map to the same error so the
// response does not reveal which half was wrong.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account is temporarily locked")
)

// LoginInput carries login form fields.
type LoginInput struct {
	Email    string
	Password string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	AccountStore AccountStore
}

// LoginResult carries the authenticated account.
type LoginResult struct {
	Account account.Account
}

// ExecuteLogin verifies credentials and maintains the lockout counters.
// POST: On success the failure counter is reset; on a wrong password the
// counter is incremented and may lock the account
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	a, err := deps.AccountStore.GetByEmail(ctx, input.Email)
	if err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	if a.IsLocked(timeNow()) {
		slog.Warn("login_locked", "email", input.Email)
		return LoginResult{}, ErrAccountLocked
	}
	if err := a.CheckPassword(input.Password); err != nil {
		a.RecordFailedLogin(timeNow())
		if err := deps.AccountStore.Save(ctx, a); err != nil {
			slog.Error("login_counter_save_failed", "email", input.Email, "error", err)
		}
		return LoginResult{}, ErrInvalidCredentials
	}

	a.ResetFailedLogins()
	if err := deps.AccountStore.Save(ctx, a); err != nil {
		slog.Error("login_counter_save_failed", "email", input.Email, "error", err)
	}

	slog.Info("login_succeeded", "email", a.Email, "role", a.Role)
	return LoginResult{Account: a}, nil
}
