package notification

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/RazanXCode/MadinahHub/internal/domain"
)

type message struct {
	subject string
	html    string
	text    string
}

var emailTmpl = template.Must(template.New("booking_email").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1>{{.Heading}}</h1>
    <p>Hi {{.Username}},</p>
    <p>{{.Lead}} <strong>{{.EventTitle}}</strong>.</p>
    <p><strong>Date:</strong> {{.StartDate}}</p>
    <p><strong>Location:</strong> {{.Location}}</p>
    {{if .Code}}
    <div style="text-align: center; margin: 30px 0;">
      <p>Show this code at the event:</p>
      <p style="font-size: 24px; letter-spacing: 2px;"><strong>{{.Code}}</strong></p>
      <p>Booking reference: {{.BookingID}}</p>
    </div>
    {{end}}
    <p style="font-size: 12px; color: #777;">This is an automated message. Please do not reply.</p>
  </div>
</body>
</html>`))

func render(kind factKind, contact *domain.UserContact, n domain.BookingNotification) message {
	var msg message

	data := struct {
		Heading    string
		Lead       string
		Username   string
		EventTitle string
		StartDate  string
		Location   string
		Code       string
		BookingID  string
	}{
		Username:   contact.Username,
		EventTitle: n.EventTitle,
		StartDate:  n.StartDate.Format("Monday, January 2, 2006 15:04 MST"),
		Location:   n.EventLocation,
		BookingID:  n.BookingID,
	}

	switch kind {
	case factConfirmed:
		msg.subject = fmt.Sprintf("Your ticket for %s", n.EventTitle)
		msg.text = fmt.Sprintf(
			"Booking confirmed for %s on %s at %s. Redemption code: %s",
			n.EventTitle, data.StartDate, n.EventLocation, n.RedemptionCode,
		)
		data.Heading = "Booking Confirmation"
		data.Lead = "Your booking has been confirmed for"
		data.Code = n.RedemptionCode
	case factCancelled:
		msg.subject = fmt.Sprintf("Booking cancelled: %s", n.EventTitle)
		msg.text = fmt.Sprintf(
			"Your booking for %s has been cancelled.",
			n.EventTitle,
		)
		data.Heading = "Booking Cancelled"
		data.Lead = "Your booking has been cancelled for"
	}

	var buf bytes.Buffer
	if err := emailTmpl.Execute(&buf, data); err != nil {
		// Template and data are static; fall back to the plain text.
		msg.html = "<p>" + template.HTMLEscapeString(msg.text) + "</p>"
		return msg
	}
	msg.html = buf.String()

	return msg
}
