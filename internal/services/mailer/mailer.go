// Package mailer dispatches transactional email through the SMTP transport.
// The only message the gateway sends is the password-reset link.
package mailer

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/matchpulse/matchpulse-backend/internal/lib/sl"
	"github.com/matchpulse/matchpulse-backend/internal/lib/smtp"
)

// Service sends password-reset emails.
type Service struct {
	transport smtp.TransportInterface
	resetURL  string
	log       *slog.Logger
}

// New creates a mailer Service. resetURL is the client page the reset link
// points at; the token is appended as a query parameter.
func New(log *slog.Logger, transport smtp.TransportInterface, resetURL string) *Service {
	return &Service{
		transport: transport,
		resetURL:  resetURL,
		log:       log,
	}
}

// SendPasswordReset emails the reset link for the given token to the user.
func (s *Service) SendPasswordReset(to, token string) error {
	resetLink := fmt.Sprintf("%s?token=%s", s.resetURL, token)

	subject := "Restablecer tu contraseña"
	bodyText := fmt.Sprintf(
		"Para restablecer tu contraseña, haz clic en el siguiente enlace:\n\n%s\n\nSi no solicitaste esto, ignora este correo.",
		resetLink)

	return s.sendEmail([]string{to}, subject, bodyText)
}

func (s *Service) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer client.Close()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", slog.String("from", s.transport.GetSMTPUser()), sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", slog.String("recipient", addr), sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get Data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close Data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("password reset email sent", slog.Any("to", to))
	return nil
}
