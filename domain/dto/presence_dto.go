// domain/dto/presence_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus is one entry of the users:status snapshot and the payload of
// user:status events.
type UserStatus struct {
	UserID uuid.UUID `json:"user_id"`
	Status string    `json:"status"` // online | idle | offline
}

// PresenceInfo is the REST presence view: live status plus the advisory
// last-seen timestamp mirrored in redis on offline transitions.
type PresenceInfo struct {
	UserID   uuid.UUID  `json:"user_id"`
	Status   string     `json:"status"`
	LastSeen *time.Time `json:"last_seen,omitempty"`
}
