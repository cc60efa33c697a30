// domain/models/relationship.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// RelationshipStatus enumerates the pairwise state machine.
type RelationshipStatus string

const (
	RelationshipPending    RelationshipStatus = "pending"
	RelationshipAccepted   RelationshipStatus = "accepted"
	RelationshipBlocked    RelationshipStatus = "blocked"
	RelationshipUnfriended RelationshipStatus = "unfriended"
)

// Relationship - the single row describing the state between two identities.
// PairLow/PairHigh hold the two user ids ordered so PairLow < PairHigh
// lexicographically; at most one row exists per ordered pair. ActingParty is
// the requester while pending and the blocker while blocked, nil otherwise.
type Relationship struct {
	ID          uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey"`
	PairLow     uuid.UUID          `json:"pair_low" gorm:"type:uuid;not null;uniqueIndex:idx_relationships_pair"`
	PairHigh    uuid.UUID          `json:"pair_high" gorm:"type:uuid;not null;uniqueIndex:idx_relationships_pair"`
	Status      RelationshipStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	ActingParty *uuid.UUID         `json:"acting_party,omitempty" gorm:"type:uuid"`
	AcceptedAt  *time.Time         `json:"accepted_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func (Relationship) TableName() string {
	return "relationships"
}

// NormalizePair orders two user ids so both directions of a pair resolve to
// the same stored row.
func NormalizePair(a, b uuid.UUID) (low, high uuid.UUID) {
	if a.String() < b.String() {
		return a, b
	}
	return b, a
}

// Other returns the counterpart of userID in this pair.
func (r *Relationship) Other(userID uuid.UUID) uuid.UUID {
	if r.PairLow == userID {
		return r.PairHigh
	}
	return r.PairLow
}

// Involves reports whether userID is one of the pair.
func (r *Relationship) Involves(userID uuid.UUID) bool {
	return r.PairLow == userID || r.PairHigh == userID
}
