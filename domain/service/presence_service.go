// domain/service/presence_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/pairchat/gofiber-dm-api/domain/dto"
)

// PresenceService exposes live presence to the REST surface and records the
// advisory last-seen mirror. The authoritative status map lives inside the
// websocket hub; this service only reads it and stamps redis on offline.
type PresenceService interface {
	StatusOf(userID uuid.UUID) string
	Presence(userID uuid.UUID) (*dto.PresenceInfo, error)

	// TouchLastSeen records the offline timestamp. Called by the hub when a
	// user's last session closes.
	TouchLastSeen(userID uuid.UUID) error
}
