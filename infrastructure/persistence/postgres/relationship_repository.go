// infrastructure/persistence/postgres/relationship_repository.go
package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/pairchat/gofiber-dm-api/domain/models"
	"github.com/pairchat/gofiber-dm-api/domain/repository"
	"gorm.io/gorm"
)

type relationshipRepository struct {
	db *gorm.DB
}

func NewRelationshipRepository(db *gorm.DB) repository.RelationshipRepository {
	return &relationshipRepository{db: db}
}

func (r *relationshipRepository) Create(rel *models.Relationship) error {
	if rel.ID == uuid.Nil {
		rel.ID = uuid.New()
	}
	// Normalization is enforced here as well as in the service so no write
	// path can produce a reversed pair.
	rel.PairLow, rel.PairHigh = models.NormalizePair(rel.PairLow, rel.PairHigh)
	return r.db.Create(rel).Error
}

func (r *relationshipRepository) FindByID(id uuid.UUID) (*models.Relationship, error) {
	var rel models.Relationship
	if err := r.db.Where("id = ?", id).First(&rel).Error; err != nil {
		return nil, err
	}
	return &rel, nil
}

func (r *relationshipRepository) FindByPair(a, b uuid.UUID) (*models.Relationship, error) {
	low, high := models.NormalizePair(a, b)
	var rel models.Relationship
	if err := r.db.Where("pair_low = ? AND pair_high = ?", low, high).First(&rel).Error; err != nil {
		return nil, err
	}
	return &rel, nil
}

// UpdateStatusIf is the compare-and-swap transition: the WHERE clause pins
// the expected pre-state, so of two concurrent transitions exactly one sees
// a row change and the other reads zero rows affected.
func (r *relationshipRepository) UpdateStatusIf(id uuid.UUID, expected, next models.RelationshipStatus, fields map[string]interface{}) (int64, error) {
	updates := map[string]interface{}{
		"status":     next,
		"updated_at": time.Now(),
	}
	for k, v := range fields {
		updates[k] = v
	}

	res := r.db.Model(&models.Relationship{}).
		Where("id = ? AND status = ?", id, expected).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *relationshipRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Relationship{}, "id = ?", id).Error
}

func (r *relationshipRepository) ListByStatusFor(userID uuid.UUID, status models.RelationshipStatus) ([]*models.Relationship, error) {
	var rels []*models.Relationship
	if err := r.db.Where("(pair_low = ? OR pair_high = ?) AND status = ?", userID, userID, status).
		Order("updated_at DESC").
		Find(&rels).Error; err != nil {
		return nil, err
	}
	return rels, nil
}
