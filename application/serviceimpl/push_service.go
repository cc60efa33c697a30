// application/serviceimpl/push_service.go
package serviceimpl

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pairchat/gofiber-dm-api/domain/dto"
	"github.com/pairchat/gofiber-dm-api/domain/models"
	"github.com/pairchat/gofiber-dm-api/domain/port"
	"github.com/pairchat/gofiber-dm-api/domain/repository"
	"github.com/pairchat/gofiber-dm-api/domain/service"
	"github.com/pairchat/gofiber-dm-api/pkg/apperrors"
)

type pushService struct {
	subscriptionRepo repository.PushSubscriptionRepository
	sender           port.PushSender
	log              *zap.Logger
}

func NewPushService(
	subscriptionRepo repository.PushSubscriptionRepository,
	sender port.PushSender,
	log *zap.Logger,
) service.PushService {
	return &pushService{
		subscriptionRepo: subscriptionRepo,
		sender:           sender,
		log:              log,
	}
}

func (s *pushService) Subscribe(userID uuid.UUID, req *dto.SubscribeRequest) (*models.PushSubscription, error) {
	if strings.TrimSpace(req.Endpoint) == "" {
		return nil, apperrors.InvalidArg("endpoint is required")
	}
	if req.Keys.P256dh == "" || req.Keys.Auth == "" {
		return nil, apperrors.InvalidArg("subscription keys are required")
	}

	sub := &models.PushSubscription{
		UserID:   userID,
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
	}
	if err := s.subscriptionRepo.Upsert(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *pushService) Unsubscribe(userID uuid.UUID, endpoint string) error {
	if strings.TrimSpace(endpoint) == "" {
		return apperrors.InvalidArg("endpoint is required")
	}
	return s.subscriptionRepo.DeleteByEndpoint(endpoint)
}

// Notify attempts every subscription of the user independently. A failed
// endpoint never prevents the remaining attempts; an endpoint the push
// service reports gone is deleted on the spot so the next notify skips it.
// There is no retry.
func (s *pushService) Notify(ctx context.Context, userID uuid.UUID, payload *dto.PushPayload) (*dto.DispatchResult, error) {
	subs, err := s.subscriptionRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	result := &dto.DispatchResult{}
	if len(subs) == 0 {
		return result, nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	for _, sub := range subs {
		err := s.sender.Send(ctx, sub, body)
		switch {
		case err == nil:
			result.Delivered++
		case errors.Is(err, port.ErrSubscriptionGone):
			if delErr := s.subscriptionRepo.Delete(sub.ID); delErr != nil {
				s.log.Warn("gone subscription not pruned",
					zap.String("subscription_id", sub.ID.String()), zap.Error(delErr))
			}
			result.Pruned++
		default:
			result.Failed++
			s.log.Warn("push attempt failed",
				zap.String("user_id", userID.String()),
				zap.String("endpoint", sub.Endpoint),
				zap.Error(err))
		}
	}
	return result, nil
}
