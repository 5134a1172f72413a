// Package repository implements Postgres storage for the booking
// engine. All booking/ticket writes happen inside transactions that
// lock the event row, so the capacity and duplicate-booking invariants
// live in the shared store, not in process memory.
package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/RazanXCode/MadinahHub/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

const uniqueViolation = "23505"

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// classify maps retryable Postgres failures (serialization, deadlock)
// to the transient sentinel so callers know a retry may succeed.
func classify(err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code.Class() == "40" {
		return fmt.Errorf("%w: %s", domain.ErrTransientStorage, pgErr.Message)
	}
	return err
}
