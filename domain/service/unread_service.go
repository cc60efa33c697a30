// domain/service/unread_service.go
package service

import (
	"github.com/google/uuid"
)

// UnreadService computes unread state on demand; no counter is maintained
// beside the message store, so nothing can drift.
type UnreadService interface {
	// UnreadCounts groups the receiver's unread messages by sender. Senders
	// with zero unread are absent from the map.
	UnreadCounts(receiverID uuid.UUID) (map[uuid.UUID]int64, error)

	// MarkRead marks the receiver's own inbound messages read and returns
	// how many rows actually changed; re-marking already-read messages is a
	// no-op reported as zero.
	MarkRead(receiverID uuid.UUID, messageIDs []uuid.UUID) (int64, error)
}
