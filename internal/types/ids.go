package types

import (
	"time"

	"github.com/google/uuid"
)

// FormatID represents a UUIDv7 custom format identifier.
// String alias enables type safety while maintaining JSON string
// serialization. UUIDv7 time-ordering keeps sequential inserts clustered
// in B-tree indexes.
type FormatID string

// NewFormatID generates a UUIDv7 format identifier.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewFormatID() FormatID {
	return FormatID(uuid.Must(uuid.NewV7()).String())
}

// String returns the canonical UUID text form.
func (id FormatID) String() string {
	return string(id)
}

// ParseFormatID validates and converts a string to FormatID.
// Rejects malformed UUIDs to prevent invalid IDs from entering the system.
func ParseFormatID(s string) (FormatID, error) {
	_, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return FormatID(s), nil
}

// FormatIDTime extracts the timestamp embedded in a UUIDv7 ID.
// Returns zero time for invalid UUIDs; caller should check IsZero().
func FormatIDTime(id FormatID) time.Time {
	u, err := uuid.Parse(string(id))
	if err != nil {
		return time.Time{}
	}
	sec, nsec := u.Time().UnixTime()
	return time.Unix(sec, nsec)
}
