package notification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/RazanXCode/MadinahHub/internal/domain"
	"github.com/RazanXCode/MadinahHub/internal/notification/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func fullContact() *domain.UserContact {
	chatID := int64(42)
	return &domain.UserContact{
		UserID:         "u1",
		Username:       "amina",
		Email:          "amina@example.com",
		Phone:          "+966500000000",
		TelegramChatID: &chatID,
	}
}

func confirmedNotification() domain.BookingNotification {
	return domain.BookingNotification{
		BookingID:      "b1",
		TicketID:       "t1",
		EventID:        "e1",
		UserID:         "u1",
		EventTitle:     "Old City Walk",
		EventLocation:  "North Gate",
		StartDate:      time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC),
		RedemptionCode: "AbC123xYz",
	}
}

func runDispatcher(t *testing.T, d *Dispatcher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	t.Cleanup(cancel)

	done := make(chan struct{})
	go func() {
		d.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop on context cancel")
	}
}

func TestDispatcher_Confirmed_AllTransports(t *testing.T) {
	contacts := mocks.NewMockContactDirectory(t)
	email := mocks.NewMockEmailSender(t)
	sms := mocks.NewMockSmsSender(t)
	push := mocks.NewMockPushSender(t)
	log := newTestLogger(t)

	contacts.EXPECT().Contact(mock.Anything, "u1").Return(fullContact(), nil)
	email.EXPECT().SendEmail(mock.Anything, "amina@example.com", mock.Anything, mock.Anything).Return(nil).Once()
	sms.EXPECT().SendSms(mock.Anything, "+966500000000", mock.Anything).Return(nil).Once()
	push.EXPECT().SendPush(mock.Anything, int64(42), mock.Anything).Return(nil).Once()

	d := New(contacts, email, sms, push, 16, log)
	d.BookingConfirmed(confirmedNotification())

	runDispatcher(t, d)
}

func TestDispatcher_SkipsMissingChannelsAndNilTransports(t *testing.T) {
	contacts := mocks.NewMockContactDirectory(t)
	email := mocks.NewMockEmailSender(t)
	log := newTestLogger(t)

	contact := fullContact()
	contact.Phone = ""
	contact.TelegramChatID = nil

	contacts.EXPECT().Contact(mock.Anything, "u1").Return(contact, nil)
	email.EXPECT().SendEmail(mock.Anything, "amina@example.com", mock.Anything, mock.Anything).Return(nil).Once()

	d := New(contacts, email, nil, nil, 16, log)
	d.BookingConfirmed(confirmedNotification())

	runDispatcher(t, d)
}

func TestDispatcher_TransportFailureDoesNotStopOthers(t *testing.T) {
	contacts := mocks.NewMockContactDirectory(t)
	email := mocks.NewMockEmailSender(t)
	sms := mocks.NewMockSmsSender(t)
	log := newTestLogger(t)

	contacts.EXPECT().Contact(mock.Anything, "u1").Return(fullContact(), nil)
	email.EXPECT().SendEmail(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp down")).Once()
	sms.EXPECT().SendSms(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	d := New(contacts, email, sms, nil, 16, log)
	d.BookingCancelled(confirmedNotification())

	runDispatcher(t, d)
}

func TestDispatcher_ContactLookupFailureSkipsDelivery(t *testing.T) {
	contacts := mocks.NewMockContactDirectory(t)
	email := mocks.NewMockEmailSender(t)
	log := newTestLogger(t)

	contacts.EXPECT().Contact(mock.Anything, "u1").Return(nil, domain.ErrUserNotFound)

	d := New(contacts, email, nil, nil, 16, log)
	d.BookingConfirmed(confirmedNotification())

	runDispatcher(t, d)

	email.AssertNotCalled(t, "SendEmail")
}

func TestDispatcher_EnqueueNeverBlocks(t *testing.T) {
	contacts := mocks.NewMockContactDirectory(t)
	log := newTestLogger(t)

	// Worker not started, queue of one: the second fact must be
	// dropped, not block the caller.
	d := New(contacts, nil, nil, nil, 1, log)

	done := make(chan struct{})
	go func() {
		d.BookingConfirmed(confirmedNotification())
		d.BookingConfirmed(confirmedNotification())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("enqueue blocked on full queue")
	}
}

func TestRender_Confirmed(t *testing.T) {
	msg := render(factConfirmed, fullContact(), confirmedNotification())

	assert.Contains(t, msg.subject, "Old City Walk")
	assert.Contains(t, msg.text, "AbC123xYz")
	assert.Contains(t, msg.html, "AbC123xYz")
	assert.Contains(t, msg.html, "amina")
	assert.True(t, strings.Contains(msg.html, "Booking Confirmation"))
}

func TestRender_Cancelled(t *testing.T) {
	msg := render(factCancelled, fullContact(), confirmedNotification())

	assert.Contains(t, msg.subject, "cancelled")
	assert.Contains(t, msg.text, "Old City Walk")
	assert.NotContains(t, msg.html, "Show this code")
}
