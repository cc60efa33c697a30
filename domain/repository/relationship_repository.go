// domain/repository/relationship_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/pairchat/gofiber-dm-api/domain/models"
)

type RelationshipRepository interface {
	Create(rel *models.Relationship) error
	FindByID(id uuid.UUID) (*models.Relationship, error)

	// FindByPair looks up the single row for a normalized pair. Callers pass
	// the ids in any order; the repository normalizes before querying.
	FindByPair(a, b uuid.UUID) (*models.Relationship, error)

	// UpdateStatusIf performs the conditional transition: the update applies
	// only while the stored status still equals expected. Returns the number
	// of rows changed (0 means a concurrent transition won).
	UpdateStatusIf(id uuid.UUID, expected, next models.RelationshipStatus, fields map[string]interface{}) (int64, error)

	Delete(id uuid.UUID) error

	// ListByStatusFor returns rows involving userID with the given status.
	ListByStatusFor(userID uuid.UUID, status models.RelationshipStatus) ([]*models.Relationship, error)
}
