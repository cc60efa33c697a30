// domain/repository/push_subscription_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/pairchat/gofiber-dm-api/domain/models"
)

type PushSubscriptionRepository interface {
	// Upsert creates the subscription or refreshes key material for an
	// already-registered endpoint.
	Upsert(sub *models.PushSubscription) error

	FindByUserID(userID uuid.UUID) ([]*models.PushSubscription, error)
	DeleteByEndpoint(endpoint string) error
	Delete(id uuid.UUID) error
}
