// application/serviceimpl/presence_service.go
package serviceimpl

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pairchat/gofiber-dm-api/domain/dto"
	"github.com/pairchat/gofiber-dm-api/domain/port"
	"github.com/pairchat/gofiber-dm-api/domain/service"
)

const (
	lastSeenKeyPrefix = "presence:last_seen:"
	lastSeenTTL       = 30 * 24 * time.Hour
	redisTimeout      = 2 * time.Second
)

// presenceService reads live status through the presence port and keeps the
// advisory last-seen mirror in redis. The live map is authoritative while the
// process runs; last-seen survives restarts, live status intentionally does
// not.
type presenceService struct {
	live  port.PresencePort
	redis *redis.Client
	log   *zap.Logger
}

func NewPresenceService(live port.PresencePort, redisClient *redis.Client, log *zap.Logger) service.PresenceService {
	return &presenceService{live: live, redis: redisClient, log: log}
}

func (s *presenceService) StatusOf(userID uuid.UUID) string {
	return s.live.StatusOf(userID)
}

func (s *presenceService) Presence(userID uuid.UUID) (*dto.PresenceInfo, error) {
	info := &dto.PresenceInfo{
		UserID: userID,
		Status: s.live.StatusOf(userID),
	}
	if info.Status != port.StatusOffline {
		return info, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	raw, err := s.redis.Get(ctx, lastSeenKeyPrefix+userID.String()).Result()
	if err != nil {
		if err == redis.Nil {
			return info, nil
		}
		return nil, err
	}
	if ts, parseErr := time.Parse(time.RFC3339, raw); parseErr == nil {
		info.LastSeen = &ts
	}
	return info, nil
}

func (s *presenceService) TouchLastSeen(userID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	now := time.Now().UTC().Format(time.RFC3339)
	if err := s.redis.Set(ctx, lastSeenKeyPrefix+userID.String(), now, lastSeenTTL).Err(); err != nil {
		s.log.Warn("last-seen write failed",
			zap.String("user_id", userID.String()), zap.Error(err))
		return err
	}
	return nil
}
