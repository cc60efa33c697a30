// infrastructure/persistence/postgres/push_subscription_repository.go
package postgres

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pairchat/gofiber-dm-api/domain/models"
	"github.com/pairchat/gofiber-dm-api/domain/repository"
	"gorm.io/gorm"
)

type pushSubscriptionRepository struct {
	db *gorm.DB
}

func NewPushSubscriptionRepository(db *gorm.DB) repository.PushSubscriptionRepository {
	return &pushSubscriptionRepository{db: db}
}

// Upsert is keyed by endpoint: a browser re-subscribing with fresh key
// material updates the existing row instead of violating the unique index.
func (r *pushSubscriptionRepository) Upsert(sub *models.PushSubscription) error {
	var existing models.PushSubscription
	err := r.db.Where("endpoint = ?", sub.Endpoint).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if sub.ID == uuid.Nil {
			sub.ID = uuid.New()
		}
		return r.db.Create(sub).Error
	}
	if err != nil {
		return err
	}

	return r.db.Model(&models.PushSubscription{}).
		Where("id = ?", existing.ID).
		Updates(map[string]interface{}{
			"user_id":    sub.UserID,
			"p256dh":     sub.P256dh,
			"auth":       sub.Auth,
			"updated_at": time.Now(),
		}).Error
}

func (r *pushSubscriptionRepository) FindByUserID(userID uuid.UUID) ([]*models.PushSubscription, error) {
	var subs []*models.PushSubscription
	if err := r.db.Where("user_id = ?", userID).Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *pushSubscriptionRepository) DeleteByEndpoint(endpoint string) error {
	return r.db.Where("endpoint = ?", endpoint).Delete(&models.PushSubscription{}).Error
}

func (r *pushSubscriptionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PushSubscription{}, "id = ?", id).Error
}
