package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/RazanXCode/MadinahHub/internal/domain"
	"github.com/RazanXCode/MadinahHub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

func testEvent() *domain.Event {
	seats := 50
	return &domain.Event{
		ID:        "e1",
		Title:     "Quran Recitation Night",
		Location:  "Main Hall",
		Capacity:  &seats,
		Kind:      domain.EventKindPrivate,
		Status:    domain.EventStatusUpcoming,
		StartDate: time.Now().Add(24 * time.Hour),
		EndDate:   time.Now().Add(26 * time.Hour),
	}
}

func TestBookingService_Book_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	issuer := mocks.NewMockTicketIssuer(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, issuer, notifier, log)

	event := testEvent()
	tkt := &domain.Ticket{
		ID:      "t1",
		EventID: "e1",
		Status:  domain.TicketStatusValid,
		Code:    "AbC123xYz",
	}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	issuer.EXPECT().Issue(event, mock.Anything).Return(tkt, nil)
	bookingRepo.EXPECT().CreateWithTicket(mock.Anything, mock.Anything, tkt).Return(nil)
	notifier.EXPECT().BookingConfirmed(mock.Anything).Return()

	confirmation, err := svc.Book(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.NotEmpty(t, confirmation.BookingID)
	assert.Equal(t, "t1", confirmation.TicketID)
	assert.Equal(t, "AbC123xYz", confirmation.RedemptionCode)
}

func TestBookingService_Book_NotifiesWithEventFacts(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	issuer := mocks.NewMockTicketIssuer(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, issuer, notifier, log)

	event := testEvent()
	tkt := &domain.Ticket{ID: "t1", EventID: "e1", Code: "code-1"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	issuer.EXPECT().Issue(event, mock.Anything).Return(tkt, nil)
	bookingRepo.EXPECT().CreateWithTicket(mock.Anything, mock.Anything, tkt).Return(nil)

	var got domain.BookingNotification
	notifier.EXPECT().BookingConfirmed(mock.Anything).Run(func(n domain.BookingNotification) {
		got = n
	}).Return()

	_, err := svc.Book(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, "e1", got.EventID)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, event.Title, got.EventTitle)
	assert.Equal(t, "code-1", got.RedemptionCode)
}

func TestBookingService_Book_EventNotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	issuer := mocks.NewMockTicketIssuer(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, issuer, notifier, log)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Book(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestBookingService_Book_FinishedEvent(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	issuer := mocks.NewMockTicketIssuer(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, issuer, notifier, log)

	event := testEvent()
	event.Status = domain.EventStatusFinished
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Book(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotBookable)
}

func TestBookingService_Book_CapacityExceeded(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	issuer := mocks.NewMockTicketIssuer(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, issuer, notifier, log)

	event := testEvent()
	tkt := &domain.Ticket{ID: "t1", Code: "code-1"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	issuer.EXPECT().Issue(event, mock.Anything).Return(tkt, nil)
	bookingRepo.EXPECT().CreateWithTicket(mock.Anything, mock.Anything, tkt).Return(domain.ErrCapacityExceeded)

	_, err := svc.Book(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestBookingService_Book_AlreadyBooked(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	issuer := mocks.NewMockTicketIssuer(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, issuer, notifier, log)

	event := testEvent()
	tkt := &domain.Ticket{ID: "t1", Code: "code-1"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	issuer.EXPECT().Issue(event, mock.Anything).Return(tkt, nil)
	bookingRepo.EXPECT().CreateWithTicket(mock.Anything, mock.Anything, tkt).Return(domain.ErrAlreadyBooked)

	_, err := svc.Book(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestBookingService_Book_IssuerError(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	issuer := mocks.NewMockTicketIssuer(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, issuer, notifier, log)

	event := testEvent()
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	issuer.EXPECT().Issue(event, mock.Anything).Return(nil, errors.New("encode failed"))

	_, err := svc.Book(context.Background(), "e1", "u1")

	require.Error(t, err)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	issuer := mocks.NewMockTicketIssuer(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, issuer, notifier, log)

	res := &domain.Cancellation{
		Booking: domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusCancelled},
		Ticket:  domain.Ticket{ID: "t1", Status: domain.TicketStatusCancelled},
		Event:   *testEvent(),
	}

	bookingRepo.EXPECT().CancelWithTicket(mock.Anything, "b1", "u1").Return(res, nil)
	notifier.EXPECT().BookingCancelled(mock.Anything).Return()

	err := svc.Cancel(context.Background(), "b1", "u1")

	require.NoError(t, err)
}

func TestBookingService_Cancel_Forbidden(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	issuer := mocks.NewMockTicketIssuer(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, issuer, notifier, log)

	bookingRepo.EXPECT().CancelWithTicket(mock.Anything, "b1", "intruder").Return(nil, domain.ErrForbidden)

	err := svc.Cancel(context.Background(), "b1", "intruder")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	issuer := mocks.NewMockTicketIssuer(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, issuer, notifier, log)

	bookingRepo.EXPECT().CancelWithTicket(mock.Anything, "b1", "u1").Return(nil, domain.ErrAlreadyCancelled)

	err := svc.Cancel(context.Background(), "b1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	issuer := mocks.NewMockTicketIssuer(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, issuer, notifier, log)

	bookingRepo.EXPECT().CancelWithTicket(mock.Anything, "missing", "u1").Return(nil, domain.ErrBookingNotFound)

	err := svc.Cancel(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

// fakeBookingRepo applies the capacity and duplicate-booking guards
// under a single lock, the way the Postgres repository serializes them
// on the event row. Cancelling releases the slot exactly once.
type fakeBookingRepo struct {
	mu       sync.Mutex
	event    domain.Event
	capacity int
	valid    int
	byUser   map[string]bool
	bookings map[string]*domain.Booking
}

func newFakeBookingRepo(event domain.Event, capacity int) *fakeBookingRepo {
	return &fakeBookingRepo{
		event:    event,
		capacity: capacity,
		byUser:   make(map[string]bool),
		bookings: make(map[string]*domain.Booking),
	}
}

func (f *fakeBookingRepo) CreateWithTicket(_ context.Context, b *domain.Booking, _ *domain.Ticket) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.byUser[b.UserID] {
		return domain.ErrAlreadyBooked
	}
	if f.valid >= f.capacity {
		return domain.ErrCapacityExceeded
	}
	f.valid++
	f.byUser[b.UserID] = true
	stored := *b
	f.bookings[b.ID] = &stored
	return nil
}

func (f *fakeBookingRepo) CancelWithTicket(_ context.Context, bookingID, userID string) (*domain.Cancellation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if b.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if b.Status == domain.BookingStatusCancelled {
		return nil, domain.ErrAlreadyCancelled
	}

	b.Status = domain.BookingStatusCancelled
	f.valid--
	delete(f.byUser, userID)

	return &domain.Cancellation{
		Booking: *b,
		Ticket:  domain.Ticket{ID: "t-" + b.ID, BookingID: b.ID, Status: domain.TicketStatusCancelled},
		Event:   f.event,
	}, nil
}

func (f *fakeBookingRepo) ListByUser(context.Context, string) ([]*domain.BookingSummary, error) {
	return nil, nil
}

type noopNotifier struct{}

func (noopNotifier) BookingConfirmed(domain.BookingNotification) {}
func (noopNotifier) BookingCancelled(domain.BookingNotification) {}

func TestBookingService_Book_ConcurrentLastSlot(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	issuer := mocks.NewMockTicketIssuer(t)
	log := newTestLogger(t)

	event := testEvent()
	one := 1
	event.Capacity = &one

	repo := newFakeBookingRepo(*event, 1)
	svc := NewBookingService(repo, eventRepo, issuer, noopNotifier{}, log)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	issuer.EXPECT().Issue(event, mock.Anything).RunAndReturn(
		func(_ *domain.Event, b *domain.Booking) (*domain.Ticket, error) {
			return &domain.Ticket{ID: "t-" + b.UserID, BookingID: b.ID, Code: "c-" + b.UserID}, nil
		})

	const users = 8
	errs := make(chan error, users)
	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := svc.Book(context.Background(), "e1", fmt.Sprintf("u%d", n))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	var ok, exceeded int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrCapacityExceeded):
			exceeded++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, ok)
	assert.Equal(t, users-1, exceeded)
}

func TestBookingService_RebookAfterCancel(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	issuer := mocks.NewMockTicketIssuer(t)
	log := newTestLogger(t)

	event := testEvent()
	one := 1
	event.Capacity = &one

	repo := newFakeBookingRepo(*event, 1)
	svc := NewBookingService(repo, eventRepo, issuer, noopNotifier{}, log)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	issuer.EXPECT().Issue(event, mock.Anything).RunAndReturn(
		func(_ *domain.Event, b *domain.Booking) (*domain.Ticket, error) {
			return &domain.Ticket{ID: "t-" + b.ID, BookingID: b.ID, Code: "c-" + b.ID}, nil
		})

	first, err := svc.Book(context.Background(), "e1", "u1")
	require.NoError(t, err)

	_, err = svc.Book(context.Background(), "e1", "u1")
	require.ErrorIs(t, err, domain.ErrAlreadyBooked)

	require.NoError(t, svc.Cancel(context.Background(), first.BookingID, "u1"))

	second, err := svc.Book(context.Background(), "e1", "u1")
	require.NoError(t, err)
	assert.NotEqual(t, first.BookingID, second.BookingID)
}

func TestBookingService_CancelFreesSlotForOtherUser(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	issuer := mocks.NewMockTicketIssuer(t)
	log := newTestLogger(t)

	event := testEvent()
	one := 1
	event.Capacity = &one

	repo := newFakeBookingRepo(*event, 1)
	svc := NewBookingService(repo, eventRepo, issuer, noopNotifier{}, log)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	issuer.EXPECT().Issue(event, mock.Anything).RunAndReturn(
		func(_ *domain.Event, b *domain.Booking) (*domain.Ticket, error) {
			return &domain.Ticket{ID: "t-" + b.ID, BookingID: b.ID, Code: "c-" + b.ID}, nil
		})

	// The only slot goes to the first user.
	first, err := svc.Book(context.Background(), "e1", "uA")
	require.NoError(t, err)

	_, err = svc.Book(context.Background(), "e1", "uB")
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)

	// Cancelling frees exactly one slot for the next booking.
	require.NoError(t, svc.Cancel(context.Background(), first.BookingID, "uA"))

	_, err = svc.Book(context.Background(), "e1", "uB")
	require.NoError(t, err)

	// The freed slot is spent again: a third user is rejected.
	_, err = svc.Book(context.Background(), "e1", "uC")
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestBookingService_ListByUser_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	issuer := mocks.NewMockTicketIssuer(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, issuer, notifier, log)

	summaries := []*domain.BookingSummary{
		{BookingID: "b1", EventID: "e1", EventTitle: "Quran Recitation Night"},
	}
	bookingRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(summaries, nil)

	result, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
