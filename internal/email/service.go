package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/feliciafavrholdt/vetlocator-api/internal/config"
	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
)

type Service interface {
	SendAppointmentConfirmation(ctx context.Context, to string, appointment *model.Appointment) error
}

type service struct {
	cfg config.SMTPConfig
}

func NewService(cfg config.SMTPConfig) Service {
	return &service{cfg: cfg}
}

// SendAppointmentConfirmation mails the owner of the animal. Skipped
// silently when no SMTP host is configured, e.g. in tests and dev.
func (s *service) SendAppointmentConfirmation(ctx context.Context, to string, appointment *model.Appointment) error {
	if s.cfg.Host == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Appointment for %s on %s", appointment.AnimalName, appointment.Date))
	m.SetBody("text/plain", fmt.Sprintf(
		"Your appointment for %s with %s at %s is scheduled on %s at %s.\nReason: %s\nStatus: %s\n",
		appointment.AnimalName,
		appointment.VeterinarianName,
		appointment.ClinicName,
		appointment.Date,
		appointment.Time,
		appointment.Reason,
		appointment.Status,
	))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}
