package memory

import (
	"github.com/google/uuid"

	"vanta/internal/ports"
)

// TimeIDs hands out UUIDv7 strings. They embed the creation timestamp and
// sort in creation order.
type TimeIDs struct{}

var _ ports.IDGenerator = TimeIDs{}

// NewID returns a fresh time-ordered ID
func (TimeIDs) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does
		return uuid.NewString()
	}
	return id.String()
}
