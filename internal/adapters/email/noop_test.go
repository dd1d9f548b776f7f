package email_test

import (
	"context"
	"testing"

	"clubreg/internal/adapters/email"
)

func TestNoopSender(t *testing.T) {
	s := email.NewNoopSender()
	res, err := s.Send(context.Background(), email.SendRequest{
		To:      []string{"ana@example.com"},
		Subject: "Welcome to the club!",
		HTML:    "<p>Hi</p>",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if res.MessageID == "" {
		t.Error("empty message id")
	}
	if res.SentAt.IsZero() {
		t.Error("zero SentAt")
	}
}
