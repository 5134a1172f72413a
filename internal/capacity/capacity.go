// Package capacity holds the admission rule for event reservations.
//
// The rule itself is pure; atomicity comes from evaluating it while the
// event row is locked inside the repository transaction, so a new
// ticket is counted before any concurrent attempt reads the remaining
// count. Release is the guarded valid -> cancelled ticket transition in
// the same transaction scope: a ticket leaves valid exactly once, so a
// release can never lift capacity above the original ceiling.
package capacity

import "github.com/RazanXCode/MadinahHub/internal/domain"

// Check reports whether one more reservation may be admitted for the
// event, given the current number of valid tickets. Public and
// uncapped events always admit.
func Check(e *domain.Event, validTickets int) error {
	if !e.CapacityEnforced() {
		return nil
	}
	if validTickets >= *e.Capacity {
		return domain.ErrCapacityExceeded
	}
	return nil
}

// Remaining returns the number of free slots, or -1 when the event does
// not enforce capacity.
func Remaining(e *domain.Event, validTickets int) int {
	if !e.CapacityEnforced() {
		return -1
	}
	r := *e.Capacity - validTickets
	if r < 0 {
		return 0
	}
	return r
}
