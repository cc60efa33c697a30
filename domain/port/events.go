// domain/port/events.go
package port

// Event names on the realtime channel. Services address deliveries through
// RealtimePort with these names; the websocket layer uses the same set for
// inbound dispatch.
const (
	EventUserConnect = "user:connect"
	EventUsersStatus = "users:status"
	EventUserOnline  = "user:online"
	EventUserOffline = "user:offline"
	EventUserStatus  = "user:status"

	EventMessageSend    = "message:send"
	EventMessageReceive = "message:receive"
	EventMessageSent    = "message:sent"
	EventMessageError   = "message:error"
)

// Presence statuses. Offline is never stored; absence from the live status
// map means offline.
const (
	StatusOnline  = "online"
	StatusIdle    = "idle"
	StatusOffline = "offline"
)
