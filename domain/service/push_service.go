// domain/service/push_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pairchat/gofiber-dm-api/domain/dto"
	"github.com/pairchat/gofiber-dm-api/domain/models"
)

// PushService manages subscriptions and dispatches notifications to every
// registered endpoint of a user.
type PushService interface {
	Subscribe(userID uuid.UUID, req *dto.SubscribeRequest) (*models.PushSubscription, error)
	Unsubscribe(userID uuid.UUID, endpoint string) error

	// Notify attempts delivery to each subscription independently: one
	// failure never prevents the remaining attempts. Endpoints reported gone
	// are pruned. No retry is performed.
	Notify(ctx context.Context, userID uuid.UUID, payload *dto.PushPayload) (*dto.DispatchResult, error)
}
