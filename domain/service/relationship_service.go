// domain/service/relationship_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/pairchat/gofiber-dm-api/domain/dto"
	"github.com/pairchat/gofiber-dm-api/domain/models"
)

// RelationshipService owns the pairwise state machine. Every operation
// normalizes the pair before touching storage; transitions are conditional
// on the expected pre-state so concurrent callers cannot double-transition.
type RelationshipService interface {
	// Request creates a pending request from requester to target, or revives
	// an unfriended row in place.
	Request(requesterID, targetID uuid.UUID) (*models.Relationship, error)

	// Accept transitions pending -> accepted. Only the non-requesting party
	// may accept.
	Accept(relationshipID, callerID uuid.UUID) (*models.Relationship, error)

	// Reject deletes a pending row. Either party may reject/cancel.
	Reject(relationshipID, callerID uuid.UUID) error

	// Unfriend transitions accepted -> unfriended, keeping the row.
	Unfriend(callerID, otherID uuid.UUID) (*models.Relationship, error)

	// Block transitions any state (or no row) -> blocked with caller as the
	// acting party.
	Block(callerID, otherID uuid.UUID) (*models.Relationship, error)

	// Unblock transitions blocked -> unfriended. Only the blocker may unblock.
	Unblock(callerID, otherID uuid.UUID) (*models.Relationship, error)

	// StatusBetween interprets the pair's row from the viewer's perspective.
	// Reports StatusNone when no row exists.
	StatusBetween(viewerID, otherID uuid.UUID) (*dto.RelationshipView, error)

	// ListByStatus returns the viewer's relationships with the given status,
	// each interpreted from the viewer's perspective.
	ListByStatus(viewerID uuid.UUID, status models.RelationshipStatus) ([]*dto.RelationshipView, error)

	// Friends returns accepted counterparts with their profiles.
	Friends(viewerID uuid.UUID) ([]*dto.FriendDTO, error)

	// CanMessage reports whether the pair's status is accepted.
	CanMessage(a, b uuid.UUID) (bool, error)
}
