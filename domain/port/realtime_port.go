// domain/port/realtime_port.go
package port

import "github.com/google/uuid"

// RealtimePort is how services deliver events to open realtime sessions
// without depending on the websocket package. Delivery is best-effort: a
// session that is gone simply receives nothing.
type RealtimePort interface {
	// DeliverToUser sends one event to every open session of the user.
	DeliverToUser(userID uuid.UUID, event string, data interface{})

	// DeliverToSession sends one event to a single session, used for the
	// sender-side confirmation echo.
	DeliverToSession(sessionID uuid.UUID, event string, data interface{})
}

// PresencePort exposes the hub's live status map to services. The hub is
// authoritative while the process runs; both reads are point-in-time
// snapshots.
type PresencePort interface {
	// StatusOf returns the live status of a user, StatusOffline when unknown.
	StatusOf(userID uuid.UUID) string

	// Snapshot returns every currently online or idle user.
	Snapshot() map[uuid.UUID]string
}
