package candidate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"clubreg/internal/domain/role"
)

// Length bounds for user-submitted fields, matching the registration form.
const (
	MinFullNameLength = 2
	MaxFullNameLength = 100
	MinReasonLength   = 10
	MaxReasonLength   = 500
)

// Status of a candidate application.
type Status string

// PENDING is the only non-terminal state; applications may move
// PENDING -> APPROVED or PENDING -> REJECTED and nowhere else.
const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// StatusAll is the filter sentinel matching every status.
const StatusAll Status = "ALL"

// DefaultActor is recorded on a decision when no reviewer name is supplied.
const DefaultActor = "Admin"

// Domain errors
var (
	ErrEmptyFullName    = errors.New("full name cannot be empty")
	ErrFullNameTooShort = errors.New("full name must be at least 2 characters")
	ErrFullNameTooLong  = errors.New("full name cannot exceed 100 characters")
	ErrInvalidEmail     = errors.New("email must be valid")
	ErrInvalidRole      = errors.New("selected role is not valid")
	ErrReasonTooShort   = errors.New("reason to apply must be at least 10 characters")
	ErrReasonTooLong    = errors.New("reason to apply must be at most 500 characters")
	ErrInvalidDecision  = errors.New("decision must be APPROVED or REJECTED")
)

// CandidateRegistration is a submitted club-membership application.
// IDs are creation-timestamp-derived and unique within the collection.
type CandidateRegistration struct {
	ID            int64     `json:"id"`
	FullName      string    `json:"fullName"`
	Email         string    `json:"email"`
	Role          role.Role `json:"role"`
	ReasonToApply string    `json:"reasonToApply"`
	Status        Status    `json:"status"`
	Note          string    `json:"note"`
	CreatedAt     time.Time `json:"createdAt"`
	ActionLog     string    `json:"actionLog,omitempty"`
}

// Valid reports whether s is a known application status.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Terminal reports whether s is a terminal status.
// INVARIANT: APPROVED and REJECTED are terminal; PENDING is not
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Validate checks if the CandidateRegistration has valid data.
// PRE: CandidateRegistration struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Email must contain '@', Role must be in the catalog
func (c *CandidateRegistration) Validate() error {
	name := strings.TrimSpace(c.FullName)
	if name == "" {
		return ErrEmptyFullName
	}
	if len([]rune(name)) < MinFullNameLength {
		return ErrFullNameTooShort
	}
	if len([]rune(name)) > MaxFullNameLength {
		return ErrFullNameTooLong
	}
	if !strings.Contains(c.Email, "@") {
		return ErrInvalidEmail
	}
	if _, ok := role.ByID(c.Role.ID); !ok {
		return ErrInvalidRole
	}
	reason := len([]rune(strings.TrimSpace(c.ReasonToApply)))
	if reason < MinReasonLength {
		return ErrReasonTooShort
	}
	if reason > MaxReasonLength {
		return ErrReasonTooLong
	}
	return nil
}

// ApplyDecision records a review decision on the candidate.
// PRE: decision is APPROVED or REJECTED
// POST: Status is set to decision; Note keeps its previous value when note is
// empty; exactly one audit line is appended to ActionLog
// INVARIANT: ActionLog is append-only, one line per decision
func (c *CandidateRegistration) ApplyDecision(decision Status, note, actor string, at time.Time) error {
	if decision != StatusApproved && decision != StatusRejected {
		return ErrInvalidDecision
	}
	if actor == "" {
		actor = DefaultActor
	}

	action := "Rejected"
	if decision == StatusApproved {
		action = "Approved"
	}
	line := fmt.Sprintf("%s %s at %02d:%02d %d/%d/%d",
		actor, action, at.Hour(), at.Minute(), at.Day(), int(at.Month()), at.Year())
	if note != "" {
		line += " with reason: " + note
	}

	c.Status = decision
	if note != "" {
		c.Note = note
	}
	if c.ActionLog == "" {
		c.ActionLog = line
	} else {
		c.ActionLog += "\n" + line
	}
	return nil
}
