// Package email sends transactional mail. Delivery failures are reported to
// callers but are never allowed to fail the operation that triggered them.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/serenitypath/hospital-api/internal/config"
	"github.com/serenitypath/hospital-api/internal/model"
)

// Sender delivers notifications to patients.
type Sender interface {
	SendBookingConfirmed(booking *model.PatientBooking, memberName string) error
}

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender returns a Sender backed by the configured SMTP relay, or a
// no-op sender when SMTP is not configured.
func NewSMTPSender(cfg config.SMTPConfig) Sender {
	if !cfg.Enabled() {
		return NoopSender{}
	}
	return &smtpSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpSender) SendBookingConfirmed(booking *model.PatientBooking, memberName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", booking.PatientEmail)
	m.SetHeader("Subject", "Your appointment is confirmed")
	m.SetBody("text/plain", fmt.Sprintf(
		"Dear %s,\n\nYour appointment with %s on %s (%s) has been confirmed.\n\nIf you need to reschedule, please contact us.\n",
		booking.PatientName, memberName, booking.Date, booking.TimeSlot,
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}

// NoopSender drops every message. Used when SMTP is not configured and in
// tests.
type NoopSender struct{}

func (NoopSender) SendBookingConfirmed(*model.PatientBooking, string) error { return nil }
