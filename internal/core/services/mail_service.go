package services

import (
	"context"
	"log"

	"staffhub/internal/adapters/persistence/models"
)

// Mailer dispatches outbound mail. Formatting and delivery live outside
// the auth core; handlers call this seam after the service returns.
type Mailer interface {
	SendResetPasswordMail(ctx context.Context, user *models.PublicUser, link string) error
}

// LogMailer is the default Mailer; it records the dispatch without
// delivering anything.
type LogMailer struct{}

// NewLogMailer creates a mailer that only logs
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// SendResetPasswordMail logs the reset mail dispatch
func (m *LogMailer) SendResetPasswordMail(_ context.Context, user *models.PublicUser, link string) error {
	log.Printf("📧 Reset password mail queued for %s: %s", user.Email, link)
	return nil
}
