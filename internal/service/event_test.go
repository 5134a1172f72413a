package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RazanXCode/MadinahHub/internal/domain"
	"github.com/RazanXCode/MadinahHub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validInput() domain.CreateEventInput {
	seats := 100
	return domain.CreateEventInput{
		Title:       "Dates Market Tour",
		Description: "Guided tour of the old market",
		Location:    "Central Market",
		Capacity:    &seats,
		StartDate:   time.Now().Add(48 * time.Hour),
		EndDate:     time.Now().Add(52 * time.Hour),
		Kind:        domain.EventKindPrivate,
	}
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.CreateEvent(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, domain.EventStatusUpcoming, event.Status)
	assert.Equal(t, domain.EventKindPrivate, event.Kind)
	require.NotNil(t, event.Capacity)
	assert.Equal(t, 100, *event.Capacity)
}

func TestEventService_CreateEvent_DefaultsToPrivate(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validInput()
	input.Kind = ""

	event, err := svc.CreateEvent(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.EventKindPrivate, event.Kind)
}

func TestEventService_CreateEvent_UnlimitedCapacity(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validInput()
	input.Capacity = nil

	event, err := svc.CreateEvent(context.Background(), input)

	require.NoError(t, err)
	assert.Nil(t, event.Capacity)
}

func TestEventService_CreateEvent_MissingTitle(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	input := validInput()
	input.Title = ""

	_, err := svc.CreateEvent(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_EndBeforeStart(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	input := validInput()
	input.EndDate = input.StartDate.Add(-time.Hour)

	_, err := svc.CreateEvent(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_NonPositiveCapacity(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	input := validInput()
	zero := 0
	input.Capacity = &zero

	_, err := svc.CreateEvent(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_UnknownKind(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	input := validInput()
	input.Kind = domain.EventKind("secret")

	_, err := svc.CreateEvent(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_GetDetails(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	details := &domain.EventDetails{
		Event:        domain.Event{ID: "e1", Title: "Dates Market Tour"},
		ValidTickets: 7,
	}
	repo.EXPECT().GetDetails(mock.Anything, "e1").Return(details, nil)

	got, err := svc.GetDetails(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, 7, got.ValidTickets)
}

func TestEventService_ActivateStarted_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	started := []*domain.Event{
		{ID: "e1", Status: domain.EventStatusActive},
	}
	repo.EXPECT().ActivateStarted(mock.Anything).Return(started, nil)

	got, err := svc.ActivateStarted(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.EventStatusActive, got[0].Status)
}

func TestEventService_ActivateStarted_RepoError(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().ActivateStarted(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.ActivateStarted(context.Background())

	require.Error(t, err)
}

func TestEventService_FinishElapsed_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	finished := []*domain.Event{
		{ID: "e1", Status: domain.EventStatusFinished},
	}
	repo.EXPECT().FinishElapsed(mock.Anything).Return(finished, nil)

	got, err := svc.FinishElapsed(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestEventService_FinishElapsed_RepoError(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().FinishElapsed(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.FinishElapsed(context.Background())

	require.Error(t, err)
}
