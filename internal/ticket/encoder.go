package ticket

import "github.com/lithammer/shortuuid/v3"

// ShortUUIDEncoder derives a compact opaque code from the ticket
// payload. The payload embeds the booking id, so codes are unique per
// ticket.
type ShortUUIDEncoder struct{}

func (ShortUUIDEncoder) Encode(payload string) (string, error) {
	return shortuuid.NewWithNamespace(payload), nil
}
