package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/mailersend/mailersend-go"
)

const emailSendTimeout = 5 * time.Second

// MailerSendEmail sends booking emails through the MailerSend API.
type MailerSendEmail struct {
	client    *mailersend.Mailersend
	fromName  string
	fromEmail string
}

func NewMailerSendEmail(apiKey, fromName, fromEmail string) *MailerSendEmail {
	return &MailerSendEmail{
		client:    mailersend.NewMailersend(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (m *MailerSendEmail) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	ctx, cancel := context.WithTimeout(ctx, emailSendTimeout)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(mailersend.From{Name: m.fromName, Email: m.fromEmail})
	msg.SetRecipients([]mailersend.Recipient{{Email: to}})
	msg.SetSubject(subject)
	msg.SetHTML(htmlBody)

	if _, err := m.client.Email.Send(ctx, msg); err != nil {
		return fmt.Errorf("mailersend: %w", err)
	}

	return nil
}
