// application/serviceimpl/unread_service.go
package serviceimpl

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pairchat/gofiber-dm-api/domain/repository"
	"github.com/pairchat/gofiber-dm-api/domain/service"
	"github.com/pairchat/gofiber-dm-api/pkg/apperrors"
)

type unreadService struct {
	messageRepo repository.MessageRepository
	log         *zap.Logger
}

func NewUnreadService(messageRepo repository.MessageRepository, log *zap.Logger) service.UnreadService {
	return &unreadService{messageRepo: messageRepo, log: log}
}

// UnreadCounts aggregates straight off the message rows. Nothing is cached
// or incrementally maintained, so the counts cannot drift from the store.
func (s *unreadService) UnreadCounts(receiverID uuid.UUID) (map[uuid.UUID]int64, error) {
	rows, err := s.messageRepo.UnreadCountsBySender(receiverID)
	if err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.SenderID] = row.Count
	}
	return counts, nil
}

// MarkRead only touches rows addressed to the caller that are still unread;
// repeating the call is harmless and reports zero.
func (s *unreadService) MarkRead(receiverID uuid.UUID, messageIDs []uuid.UUID) (int64, error) {
	if len(messageIDs) == 0 {
		return 0, apperrors.InvalidArg("message ids are required")
	}
	updated, err := s.messageRepo.MarkRead(receiverID, messageIDs)
	if err != nil {
		return 0, err
	}
	s.log.Debug("messages marked read",
		zap.String("receiver_id", receiverID.String()),
		zap.Int("requested", len(messageIDs)),
		zap.Int64("updated", updated))
	return updated, nil
}
