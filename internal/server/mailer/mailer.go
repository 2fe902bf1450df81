// Package mailer delivers password-recovery emails. The production
// implementation uses Resend; a log-only fallback serves local development
// where no API key is configured.
package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/Yashraj9595/mealmate/internal/logging"
)

type Mailer interface {
	SendResetCode(ctx context.Context, recipient, code string) error
}

type ResendMailer struct {
	client *resend.Client
	sender string
}

func NewResendMailer(apiKey, sender string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey), sender: sender}
}

func (m *ResendMailer) SendResetCode(ctx context.Context, recipient, code string) error {
	params := &resend.SendEmailRequest{
		From:    m.sender,
		To:      []string{recipient},
		Subject: "Your MealMate verification code",
		Text:    fmt.Sprintf("Your verification code is: %s\nIt expires in a few minutes.", code),
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	return nil
}

// LogMailer writes the code to the log instead of sending it. Development only.
type LogMailer struct {
	logger logging.Logger
}

func NewLogMailer(logger logging.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendResetCode(ctx context.Context, recipient, code string) error {
	m.logger.Info(ctx, "password reset code issued", "recipient", recipient, "code", code)
	return nil
}
