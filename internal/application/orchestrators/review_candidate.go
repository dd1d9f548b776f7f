package orchestrators

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"clubreg/internal/adapters/email"
	"clubreg/internal/domain/candidate"
)

// ReviewCandidateInput carries a review decision.
type ReviewCandidateInput struct {
	CandidateID int64
	Decision    candidate.Status // StatusApproved or StatusRejected
	Note        string           // optional reason, recorded in the audit line
	Actor       string           // reviewer name; empty falls back to "Admin"
}

// ReviewCandidateDeps holds dependencies for ReviewCandidate.
type ReviewCandidateDeps struct {
	CandidateStore CandidateStore
	EmailSender    email.Sender // optional: nil skips the notification email
	EmailFrom      string
	EmailReplyTo   string
}

// ReviewCandidateResult carries the outcome of a review.
type ReviewCandidateResult struct {
	Candidate candidate.CandidateRegistration
	Found     bool
}

// ExecuteReviewCandidate applies an approve/reject decision to a candidate.
// PRE: Decision is APPROVED or REJECTED
// POST: The matching candidate gets the new status and exactly one appended
// audit line; an unknown id is a silent no-op still reported as success,
// which callers depend on
func ExecuteReviewCandidate(ctx context.Context, input ReviewCandidateInput, deps ReviewCandidateDeps) (ReviewCandidateResult, error) {
	if input.Decision != candidate.StatusApproved && input.Decision != candidate.StatusRejected {
		return ReviewCandidateResult{}, candidate.ErrInvalidDecision
	}

	all, err := deps.CandidateStore.Load(ctx)
	if err != nil {
		return ReviewCandidateResult{}, fmt.Errorf("review candidate: %w", err)
	}

	result := ReviewCandidateResult{}
	for i := range all {
		if all[i].ID != input.CandidateID {
			continue
		}
		if err := all[i].ApplyDecision(input.Decision, input.Note, input.Actor, timeNow()); err != nil {
			return ReviewCandidateResult{}, err
		}
		result.Candidate = all[i]
		result.Found = true
		break
	}

	// The collection is written back whole even when no id matched,
	// mirroring the overwrite-on-every-mutation persistence model.
	if err := deps.CandidateStore.Replace(ctx, all); err != nil {
		return ReviewCandidateResult{}, fmt.Errorf("review candidate: %w", err)
	}

	if !result.Found {
		slog.Warn("candidate_review_no_match", "id", input.CandidateID)
		return result, nil
	}

	slog.Info("candidate_reviewed", "id", input.CandidateID, "decision", string(input.Decision), "actor", input.Actor)

	if deps.EmailSender != nil {
		sendDecisionEmail(ctx, deps, result.Candidate)
	}
	return result, nil
}

// sendDecisionEmail notifies the candidate of the decision. Best effort: a
// failure is logged and never propagated to the review result.
func sendDecisionEmail(ctx context.Context, deps ReviewCandidateDeps, c candidate.CandidateRegistration) {
	name := html.EscapeString(c.FullName)
	subject := "Your club application has been rejected"
	body := fmt.Sprintf("<p>Hi %s,</p><p>Unfortunately your application for the %s role was not successful.</p>", name, c.Role.Name)
	if c.Status == candidate.StatusApproved {
		subject = "Welcome to the club!"
		body = fmt.Sprintf("<p>Hi %s,</p><p>Your application for the %s role has been approved. See you at the next meetup!</p>", name, c.Role.Name)
	}
	if c.Note != "" && c.Status == candidate.StatusRejected {
		body += fmt.Sprintf("<p>Reason: %s</p>", html.EscapeString(c.Note))
	}

	_, err := deps.EmailSender.Send(ctx, email.SendRequest{
		To:      []string{c.Email},
		From:    deps.EmailFrom,
		Subject: subject,
		HTML:    body,
		ReplyTo: deps.EmailReplyTo,
	})
	if err != nil {
		slog.Error("decision_email_failed", "candidate_id", c.ID, "error", err)
	}
}
