package ports

import "github.com/RazanXCode/MadinahHub/internal/domain"

// BookingNotifier receives facts strictly after the booking transaction
// has committed. Implementations must not block and must not surface
// failures to the caller.
type BookingNotifier interface {
	BookingConfirmed(n domain.BookingNotification)
	BookingCancelled(n domain.BookingNotification)
}
