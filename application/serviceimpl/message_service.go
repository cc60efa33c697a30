// application/serviceimpl/message_service.go
package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pairchat/gofiber-dm-api/domain/dto"
	"github.com/pairchat/gofiber-dm-api/domain/models"
	"github.com/pairchat/gofiber-dm-api/domain/port"
	"github.com/pairchat/gofiber-dm-api/domain/repository"
	"github.com/pairchat/gofiber-dm-api/domain/service"
	"github.com/pairchat/gofiber-dm-api/pkg/apperrors"
)

const pushTimeout = 10 * time.Second

type messageService struct {
	messageRepo         repository.MessageRepository
	userRepo            repository.UserRepository
	relationshipService service.RelationshipService
	pushService         service.PushService
	realtime            port.RealtimePort
	log                 *zap.Logger
}

func NewMessageService(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	relationshipService service.RelationshipService,
	pushService service.PushService,
	realtime port.RealtimePort,
	log *zap.Logger,
) service.MessageService {
	return &messageService{
		messageRepo:         messageRepo,
		userRepo:            userRepo,
		relationshipService: relationshipService,
		pushService:         pushService,
		realtime:            realtime,
		log:                 log,
	}
}

// Send runs the full pipeline: validate, gate on the relationship, persist,
// deliver live, echo to the originating session, then push asynchronously.
// A rejected send persists nothing.
func (s *messageService) Send(senderID uuid.UUID, originSession uuid.UUID, req *dto.SendMessageRequest) (*models.Message, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.ErrEmptyContent
	}
	messageType := req.MessageType
	if messageType == "" {
		messageType = models.MessageTypeText
	}
	if !models.ValidMessageType(messageType) {
		return nil, apperrors.ErrBadMessageType
	}
	if req.ReceiverID == uuid.Nil || req.ReceiverID == senderID {
		return nil, apperrors.InvalidArg("receiver is required and cannot be yourself")
	}

	ok, err := s.relationshipService.CanMessage(senderID, req.ReceiverID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrNotFriends
	}

	msg := &models.Message{
		SenderID:    senderID,
		ReceiverID:  req.ReceiverID,
		Content:     content,
		MessageType: messageType,
		ReplyToID:   req.ReplyToID,
	}
	if req.Attachment != nil {
		msg.AttachmentURL = req.Attachment.URL
		msg.AttachmentName = req.Attachment.Name
		msg.AttachmentSize = req.Attachment.Size
		msg.AttachmentMime = req.Attachment.Mime
	}
	if err := s.messageRepo.Create(msg); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "message persist failed", err)
	}

	payload := dto.NewMessagePayload(msg)

	// Live delivery to every open session of the receiver, then the
	// confirmation echo to the session that originated the send. REST sends
	// carry no origin session, so the echo is skipped.
	s.realtime.DeliverToUser(msg.ReceiverID, port.EventMessageReceive, payload)
	if originSession != uuid.Nil {
		s.realtime.DeliverToSession(originSession, port.EventMessageSent, payload)
	}

	// Push hand-off is fire-and-forget: its outcome never affects the send.
	go s.pushNewMessage(msg)

	return msg, nil
}

func (s *messageService) pushNewMessage(msg *models.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
	defer cancel()

	title := "New message"
	if sender, err := s.userRepo.FindByID(msg.SenderID); err == nil {
		if sender.DisplayName != "" {
			title = sender.DisplayName
		} else {
			title = sender.Username
		}
	}

	body := msg.Content
	if msg.MessageType != models.MessageTypeText {
		body = "Sent a " + msg.MessageType
	}

	result, err := s.pushService.Notify(ctx, msg.ReceiverID, &dto.PushPayload{
		Title: title,
		Body:  body,
		Tag:   "dm-" + msg.SenderID.String(),
	})
	if err != nil {
		s.log.Warn("push dispatch failed",
			zap.String("message_id", msg.ID.String()),
			zap.String("receiver_id", msg.ReceiverID.String()),
			zap.Error(err))
		return
	}
	s.log.Debug("push dispatched",
		zap.String("message_id", msg.ID.String()),
		zap.Int("delivered", result.Delivered),
		zap.Int("failed", result.Failed),
		zap.Int("pruned", result.Pruned))
}

func (s *messageService) Conversation(callerID, partnerID uuid.UUID, limit int, beforeID *uuid.UUID) ([]*models.Message, error) {
	if partnerID == uuid.Nil {
		return nil, apperrors.InvalidArg("partner is required")
	}
	return s.messageRepo.FindBetween(callerID, partnerID, limit, beforeID)
}

func (s *messageService) Partners(callerID uuid.UUID) ([]*dto.UserBasicDTO, error) {
	ids, err := s.messageRepo.PartnerIDs(callerID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*dto.UserBasicDTO{}, nil
	}
	users, err := s.userRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserBasicDTO, 0, len(users))
	for _, u := range users {
		out = append(out, &dto.UserBasicDTO{
			ID:              u.ID,
			Username:        u.Username,
			DisplayName:     u.DisplayName,
			ProfileImageURL: u.ProfileImageURL,
		})
	}
	return out, nil
}

func (s *messageService) SoftDelete(messageID, callerID uuid.UUID) error {
	msg, err := s.messageRepo.FindByID(messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMessageNotFound
		}
		return err
	}
	if msg.SenderID != callerID {
		return apperrors.Forbidden("only the sender may delete a message")
	}
	if msg.IsDeleted {
		return nil
	}

	now := time.Now()
	msg.IsDeleted = true
	msg.DeletedAt = &now
	return s.messageRepo.Update(msg)
}

// React sets the caller's reaction, replacing any earlier reaction from the
// same user, and notifies the other participant.
func (s *messageService) React(messageID, callerID uuid.UUID, emoji string) (*models.Message, error) {
	if strings.TrimSpace(emoji) == "" {
		return nil, apperrors.InvalidArg("emoji is required")
	}
	msg, err := s.messageRepo.FindByID(messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, err
	}
	if msg.IsDeleted {
		return nil, apperrors.ErrMessageNotFound
	}
	if msg.SenderID != callerID && msg.ReceiverID != callerID {
		return nil, apperrors.Forbidden("only conversation participants may react")
	}

	msg.Reactions = msg.Reactions.With(callerID, emoji)
	if err := s.messageRepo.Update(msg); err != nil {
		return nil, err
	}

	other := msg.ReceiverID
	if callerID == msg.ReceiverID {
		other = msg.SenderID
	}
	s.realtime.DeliverToUser(other, port.EventMessageReceive, dto.NewMessagePayload(msg))
	return msg, nil
}
