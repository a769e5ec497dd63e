package service

import (
	"context"
	"fmt"

	"roomreserve-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
	disabled bool
}

func NewEmailService(apiKey, from, fromName string, disabled bool) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
		disabled: disabled,
	}
}

func (s *emailService) SendReservationRequestedNotification(ctx context.Context, adminEmail, requesterName, resourceName, slot string) error {
	subject := fmt.Sprintf("New reservation request for %s", resourceName)
	body := fmt.Sprintf("Hello,\n\n%s requested %s for %s.\n\nThe request is awaiting your decision.\n\nRoom Reservations", requesterName, resourceName, slot)
	return s.send(adminEmail, "", subject, body)
}

func (s *emailService) SendReservationDecisionNotification(ctx context.Context, email, name, resourceName, slot, decision, reason string) error {
	subject := fmt.Sprintf("Your reservation for %s was %s", resourceName, decision)
	body := fmt.Sprintf("Hello %s,\n\nYour reservation for %s (%s) was %s.", name, resourceName, slot, decision)
	if reason != "" {
		body += fmt.Sprintf("\n\nObservation: %s", reason)
	}
	body += "\n\nRoom Reservations"
	return s.send(email, name, subject, body)
}

func (s *emailService) SendPendingSummary(ctx context.Context, adminEmail string, pendingCount int) error {
	subject := "Pending reservation requests"
	body := fmt.Sprintf("Hello,\n\nThere are %d reservation requests awaiting a decision.\n\nRoom Reservations", pendingCount)
	return s.send(adminEmail, "", subject, body)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	if s.disabled {
		logger.Debug("email disabled, skipping send", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
