package notifier

import (
	"fmt"
	"net"
	"net/smtp"
	"strings"

	appointmentDto "atria/internal/domains/appointment/model/dto"
)

const emailSubject = "Appointment confirmation"

// sendEmail talks plain SMTP to the relay configured under EXTERNAL_MAILER.
// The relay handles authentication and DKIM, so no auth is performed here.
func (n *notifierImpl) sendEmail(event appointmentDto.AppointmentCreatedEvent) error {
	mailer := n.cfg.External.Mailer

	var body strings.Builder

	fmt.Fprintf(&body, "From: %s\r\n", mailer.From)
	fmt.Fprintf(&body, "To: %s\r\n", event.PatientEmail)
	fmt.Fprintf(&body, "Subject: %s\r\n", emailSubject)
	body.WriteString("\r\n")
	fmt.Fprintf(&body, "Dear %s,\r\n\r\n", event.PatientName)
	fmt.Fprintf(&body, "%s\r\n", appointmentSummary(event))
	body.WriteString("\r\nIf you need to reschedule, please contact us.\r\n")

	addr := net.JoinHostPort(mailer.Host, mailer.Port)

	if err := smtp.SendMail(addr, nil, mailer.From, []string{event.PatientEmail}, []byte(body.String())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
