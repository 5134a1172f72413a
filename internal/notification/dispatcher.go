// Package notification dispatches best-effort side effects for booking
// facts. Dispatch runs on a worker goroutine strictly after the
// booking transaction has committed; a transport failure or backlog
// never reaches the booking caller.
package notification

import (
	"context"

	"github.com/RazanXCode/MadinahHub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// ContactDirectory resolves a user's contact channels. Backed by the
// identity layer's user store.
type ContactDirectory interface {
	Contact(ctx context.Context, userID string) (*domain.UserContact, error)
}

type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
}

type SmsSender interface {
	SendSms(ctx context.Context, to, body string) error
}

type PushSender interface {
	SendPush(ctx context.Context, chatID int64, text string) error
}

type factKind string

const (
	factConfirmed factKind = "booking_confirmed"
	factCancelled factKind = "booking_cancelled"
)

type task struct {
	kind factKind
	n    domain.BookingNotification
}

// Dispatcher queues booking facts and fans each one out to the
// configured transports, one attempt per transport. No retries: a
// second attempt could mean a duplicate message for the same booking.
type Dispatcher struct {
	contacts ContactDirectory
	email    EmailSender
	sms      SmsSender
	push     PushSender
	queue    chan task
	logger   logger.Logger
}

// New builds a dispatcher. Any transport may be nil, in which case the
// corresponding channel is skipped.
func New(
	contacts ContactDirectory,
	email EmailSender,
	sms SmsSender,
	push PushSender,
	queueSize int,
	logger logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		contacts: contacts,
		email:    email,
		sms:      sms,
		push:     push,
		queue:    make(chan task, queueSize),
		logger:   logger,
	}
}

// BookingConfirmed enqueues the fact without blocking. If the queue is
// full the fact is dropped and logged: delivery is best-effort.
func (d *Dispatcher) BookingConfirmed(n domain.BookingNotification) {
	d.enqueue(task{kind: factConfirmed, n: n})
}

func (d *Dispatcher) BookingCancelled(n domain.BookingNotification) {
	d.enqueue(task{kind: factCancelled, n: n})
}

func (d *Dispatcher) enqueue(t task) {
	select {
	case d.queue <- t:
	default:
		d.logger.Warn("notification dropped, queue full",
			logger.String("kind", string(t.kind)),
			logger.String("booking_id", t.n.BookingID),
		)
	}
}

// Start runs the worker loop until the context is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	d.logger.Info("notification dispatcher started",
		logger.Int("queue_size", cap(d.queue)),
	)

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("notification dispatcher stopped")
			return
		case t := <-d.queue:
			d.dispatch(ctx, t)
		}
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, t task) {
	contact, err := d.contacts.Contact(ctx, t.n.UserID)
	if err != nil {
		d.logger.Error("failed to resolve contact for notification",
			logger.String("user_id", t.n.UserID),
			logger.String("booking_id", t.n.BookingID),
			logger.String("error", err.Error()),
		)
		return
	}

	msg := render(t.kind, contact, t.n)

	if d.email != nil && contact.Email != "" {
		if err := d.email.SendEmail(ctx, contact.Email, msg.subject, msg.html); err != nil {
			d.logger.Error("email notification failed",
				logger.String("booking_id", t.n.BookingID),
				logger.String("error", err.Error()),
			)
		}
	}

	if d.sms != nil && contact.Phone != "" {
		if err := d.sms.SendSms(ctx, contact.Phone, msg.text); err != nil {
			d.logger.Error("sms notification failed",
				logger.String("booking_id", t.n.BookingID),
				logger.String("error", err.Error()),
			)
		}
	}

	if d.push != nil && contact.TelegramChatID != nil {
		if err := d.push.SendPush(ctx, *contact.TelegramChatID, msg.text); err != nil {
			d.logger.Error("push notification failed",
				logger.String("booking_id", t.n.BookingID),
				logger.String("error", err.Error()),
			)
		}
	}
}
