package capacity

import (
	"testing"

	"github.com/RazanXCode/MadinahHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capped(n int) *domain.Event {
	return &domain.Event{
		ID:       "e1",
		Kind:     domain.EventKindPrivate,
		Capacity: &n,
	}
}

func TestCheck_AdmitsWhileBelowCapacity(t *testing.T) {
	e := capped(5)

	for valid := 0; valid < 5; valid++ {
		require.NoError(t, Check(e, valid))
	}
}

func TestCheck_RejectsAtCapacity(t *testing.T) {
	e := capped(5)

	err := Check(e, 5)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestCheck_RejectsBeyondCapacity(t *testing.T) {
	// Should never happen, but the guard must still hold.
	e := capped(2)

	err := Check(e, 7)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestCheck_PublicEventIgnoresStoredCapacity(t *testing.T) {
	n := 1
	e := &domain.Event{ID: "e1", Kind: domain.EventKindPublic, Capacity: &n}

	assert.NoError(t, Check(e, 100))
}

func TestCheck_NilCapacityNeverRejects(t *testing.T) {
	e := &domain.Event{ID: "e1", Kind: domain.EventKindPrivate}

	assert.NoError(t, Check(e, 100000))
}

func TestRemaining(t *testing.T) {
	e := capped(10)

	assert.Equal(t, 10, Remaining(e, 0))
	assert.Equal(t, 4, Remaining(e, 6))
	assert.Equal(t, 0, Remaining(e, 10))
	assert.Equal(t, 0, Remaining(e, 12))
}

func TestRemaining_Uncapped(t *testing.T) {
	e := &domain.Event{ID: "e1", Kind: domain.EventKindPublic}

	assert.Equal(t, -1, Remaining(e, 3))
}
