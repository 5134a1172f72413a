package ticket

import (
	"errors"
	"testing"

	"github.com/RazanXCode/MadinahHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingEncoder struct{}

func (failingEncoder) Encode(string) (string, error) {
	return "", errors.New("encoder down")
}

func TestIssuer_Issue(t *testing.T) {
	issuer := NewIssuer(ShortUUIDEncoder{})

	event := &domain.Event{ID: "e1", Title: "Quran Study Circle", Location: "Main Hall"}
	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1"}

	tkt, err := issuer.Issue(event, booking)

	require.NoError(t, err)
	assert.NotEmpty(t, tkt.ID)
	assert.Equal(t, "e1", tkt.EventID)
	assert.Equal(t, "b1", tkt.BookingID)
	assert.Equal(t, domain.TicketStatusValid, tkt.Status)
	assert.NotEmpty(t, tkt.Code)
	assert.False(t, tkt.CreatedAt.IsZero())
}

func TestIssuer_CodesUniquePerBooking(t *testing.T) {
	issuer := NewIssuer(ShortUUIDEncoder{})
	event := &domain.Event{ID: "e1", Title: "Lecture", Location: "Hall B"}

	seen := make(map[string]bool)
	for _, bookingID := range []string{"b1", "b2", "b3", "b4"} {
		tkt, err := issuer.Issue(event, &domain.Booking{ID: bookingID, EventID: "e1"})
		require.NoError(t, err)
		assert.False(t, seen[tkt.Code], "duplicate code for booking %s", bookingID)
		seen[tkt.Code] = true
	}
}

func TestIssuer_EncoderFailure(t *testing.T) {
	issuer := NewIssuer(failingEncoder{})

	_, err := issuer.Issue(&domain.Event{ID: "e1"}, &domain.Booking{ID: "b1"})

	require.Error(t, err)
}
