package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendPayoutNotification(ctx context.Context, email, name string, amount float64, reference string) error {
	subject := "Your payout has been processed"
	body := fmt.Sprintf("Hello %s,\n\nA payout of %.2f has been sent to your PayPal account.", name, amount)
	if reference != "" {
		body += fmt.Sprintf("\n\nReference: %s", reference)
	}
	body += "\n\nBest regards,\nThe Staynest Team"
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) SendPayoutSummary(ctx context.Context, email string, count int, total float64) error {
	subject := "Daily payout summary"
	body := fmt.Sprintf("Payouts recorded in the last 24 hours: %d\nTotal amount: %.2f\n", count, total)
	return s.send(ctx, email, "", subject, body)
}

func (s *emailService) send(ctx context.Context, to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
