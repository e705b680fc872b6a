package notify

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender delivers booking emails through the SendGrid API.
type SendGridSender struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridSender(apiKey, fromEmail, fromName string) *SendGridSender {
	return &SendGridSender{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *SendGridSender) Send(n Notification) error {
	if s.apiKey == "" {
		// No key configured (local/dev): log instead of sending.
		log.Printf("notification (no sendgrid key): to=%s serial=%d", n.Recipient, n.Appointment.Serial)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(n.Appointment.PatientName, n.Recipient)

	body := bodyFor(&n.Appointment)
	message := mail.NewSingleEmailPlainText(from, subjectFor(&n.Appointment), to, body)

	client := sendgrid.NewSendClient(s.apiKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}

	return nil
}

var _ Sender = (*SendGridSender)(nil)
