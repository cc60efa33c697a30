// application/serviceimpl/relationship_service.go
package serviceimpl

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pairchat/gofiber-dm-api/domain/dto"
	"github.com/pairchat/gofiber-dm-api/domain/models"
	"github.com/pairchat/gofiber-dm-api/domain/repository"
	"github.com/pairchat/gofiber-dm-api/domain/service"
	"github.com/pairchat/gofiber-dm-api/pkg/apperrors"
)

type relationshipService struct {
	relationshipRepo repository.RelationshipRepository
	userRepo         repository.UserRepository
	log              *zap.Logger
}

func NewRelationshipService(
	relationshipRepo repository.RelationshipRepository,
	userRepo repository.UserRepository,
	log *zap.Logger,
) service.RelationshipService {
	return &relationshipService{
		relationshipRepo: relationshipRepo,
		userRepo:         userRepo,
		log:              log,
	}
}

func (s *relationshipService) Request(requesterID, targetID uuid.UUID) (*models.Relationship, error) {
	if requesterID == targetID {
		return nil, apperrors.ErrSelfRelationship
	}
	if _, err := s.userRepo.FindByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	existing, err := s.relationshipRepo.FindByPair(requesterID, targetID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// No row yet: create the pending request.
		low, high := models.NormalizePair(requesterID, targetID)
		rel := &models.Relationship{
			PairLow:     low,
			PairHigh:    high,
			Status:      models.RelationshipPending,
			ActingParty: &requesterID,
		}
		if err := s.relationshipRepo.Create(rel); err != nil {
			return nil, err
		}
		s.log.Info("friend request created",
			zap.String("requester_id", requesterID.String()),
			zap.String("target_id", targetID.String()))
		return rel, nil
	}

	switch existing.Status {
	case models.RelationshipPending:
		return nil, apperrors.ErrRequestExists
	case models.RelationshipAccepted:
		return nil, apperrors.ErrAlreadyFriends
	case models.RelationshipBlocked:
		return nil, apperrors.ErrBlocked
	case models.RelationshipUnfriended:
		// Revive the row in place instead of inserting a second one.
		affected, err := s.relationshipRepo.UpdateStatusIf(
			existing.ID, models.RelationshipUnfriended, models.RelationshipPending,
			map[string]interface{}{
				"acting_party": requesterID,
				"accepted_at":  nil,
			})
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			return nil, apperrors.ErrTransitionConflict
		}
		return s.relationshipRepo.FindByID(existing.ID)
	default:
		return nil, apperrors.Internal("unknown relationship status")
	}
}

func (s *relationshipService) Accept(relationshipID, callerID uuid.UUID) (*models.Relationship, error) {
	rel, err := s.relationshipRepo.FindByID(relationshipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRelationshipNotFound
		}
		return nil, err
	}
	if !rel.Involves(callerID) {
		return nil, apperrors.ErrRelationshipNotFound
	}
	if rel.Status != models.RelationshipPending {
		return nil, apperrors.ErrNoLongerPending
	}
	if rel.ActingParty != nil && *rel.ActingParty == callerID {
		return nil, apperrors.ErrNotRequestRecipient
	}

	now := time.Now()
	affected, err := s.relationshipRepo.UpdateStatusIf(
		rel.ID, models.RelationshipPending, models.RelationshipAccepted,
		map[string]interface{}{
			"acting_party": nil,
			"accepted_at":  now,
		})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperrors.ErrTransitionConflict
	}

	s.log.Info("friend request accepted",
		zap.String("relationship_id", rel.ID.String()),
		zap.String("caller_id", callerID.String()))
	return s.relationshipRepo.FindByID(rel.ID)
}

// Reject removes a pending request entirely. Either party may call it: the
// recipient to decline, the requester to cancel.
func (s *relationshipService) Reject(relationshipID, callerID uuid.UUID) error {
	rel, err := s.relationshipRepo.FindByID(relationshipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRelationshipNotFound
		}
		return err
	}
	if !rel.Involves(callerID) {
		return apperrors.ErrRelationshipNotFound
	}
	if rel.Status != models.RelationshipPending {
		return apperrors.ErrNoLongerPending
	}
	return s.relationshipRepo.Delete(rel.ID)
}

func (s *relationshipService) Unfriend(callerID, otherID uuid.UUID) (*models.Relationship, error) {
	rel, err := s.relationshipRepo.FindByPair(callerID, otherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFriends
		}
		return nil, err
	}
	if rel.Status != models.RelationshipAccepted {
		return nil, apperrors.ErrNotFriends
	}

	affected, err := s.relationshipRepo.UpdateStatusIf(
		rel.ID, models.RelationshipAccepted, models.RelationshipUnfriended,
		map[string]interface{}{
			"acting_party": nil,
			"accepted_at":  nil,
		})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperrors.ErrTransitionConflict
	}
	return s.relationshipRepo.FindByID(rel.ID)
}

func (s *relationshipService) Block(callerID, otherID uuid.UUID) (*models.Relationship, error) {
	if callerID == otherID {
		return nil, apperrors.ErrSelfRelationship
	}
	if _, err := s.userRepo.FindByID(otherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	rel, err := s.relationshipRepo.FindByPair(callerID, otherID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		low, high := models.NormalizePair(callerID, otherID)
		created := &models.Relationship{
			PairLow:     low,
			PairHigh:    high,
			Status:      models.RelationshipBlocked,
			ActingParty: &callerID,
		}
		if err := s.relationshipRepo.Create(created); err != nil {
			return nil, err
		}
		return created, nil
	}

	if rel.Status == models.RelationshipBlocked {
		if rel.ActingParty != nil && *rel.ActingParty == callerID {
			// Blocking twice is a no-op.
			return rel, nil
		}
		return nil, apperrors.ErrBlocked
	}

	affected, err := s.relationshipRepo.UpdateStatusIf(
		rel.ID, rel.Status, models.RelationshipBlocked,
		map[string]interface{}{
			"acting_party": callerID,
			"accepted_at":  nil,
		})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperrors.ErrTransitionConflict
	}

	s.log.Info("user blocked",
		zap.String("blocker_id", callerID.String()),
		zap.String("blocked_id", otherID.String()))
	return s.relationshipRepo.FindByID(rel.ID)
}

func (s *relationshipService) Unblock(callerID, otherID uuid.UUID) (*models.Relationship, error) {
	rel, err := s.relationshipRepo.FindByPair(callerID, otherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRelationshipNotFound
		}
		return nil, err
	}
	if rel.Status != models.RelationshipBlocked {
		return nil, apperrors.ErrRelationshipNotFound
	}
	if rel.ActingParty == nil || *rel.ActingParty != callerID {
		return nil, apperrors.ErrNotBlocker
	}

	affected, err := s.relationshipRepo.UpdateStatusIf(
		rel.ID, models.RelationshipBlocked, models.RelationshipUnfriended,
		map[string]interface{}{
			"acting_party": nil,
		})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperrors.ErrTransitionConflict
	}
	return s.relationshipRepo.FindByID(rel.ID)
}

func (s *relationshipService) StatusBetween(viewerID, otherID uuid.UUID) (*dto.RelationshipView, error) {
	rel, err := s.relationshipRepo.FindByPair(viewerID, otherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.RelationshipView{OtherID: otherID, Status: dto.StatusNone}, nil
		}
		return nil, err
	}
	view := s.viewFor(rel, viewerID)
	return view, nil
}

func (s *relationshipService) ListByStatus(viewerID uuid.UUID, status models.RelationshipStatus) ([]*dto.RelationshipView, error) {
	rels, err := s.relationshipRepo.ListByStatusFor(viewerID, status)
	if err != nil {
		return nil, err
	}
	views := make([]*dto.RelationshipView, 0, len(rels))
	for _, rel := range rels {
		views = append(views, s.viewFor(rel, viewerID))
	}
	return views, nil
}

func (s *relationshipService) Friends(viewerID uuid.UUID) ([]*dto.FriendDTO, error) {
	rels, err := s.relationshipRepo.ListByStatusFor(viewerID, models.RelationshipAccepted)
	if err != nil {
		return nil, err
	}
	if len(rels) == 0 {
		return []*dto.FriendDTO{}, nil
	}

	otherIDs := make([]uuid.UUID, 0, len(rels))
	sinceByOther := make(map[uuid.UUID]*time.Time, len(rels))
	for _, rel := range rels {
		other := rel.Other(viewerID)
		otherIDs = append(otherIDs, other)
		sinceByOther[other] = rel.AcceptedAt
	}

	users, err := s.userRepo.FindByIDs(otherIDs)
	if err != nil {
		return nil, err
	}

	friends := make([]*dto.FriendDTO, 0, len(users))
	for _, u := range users {
		friends = append(friends, &dto.FriendDTO{
			FriendID: u.ID,
			SinceAt:  sinceByOther[u.ID],
			User: dto.UserBasicDTO{
				ID:              u.ID,
				Username:        u.Username,
				DisplayName:     u.DisplayName,
				ProfileImageURL: u.ProfileImageURL,
			},
		})
	}
	return friends, nil
}

func (s *relationshipService) CanMessage(a, b uuid.UUID) (bool, error) {
	rel, err := s.relationshipRepo.FindByPair(a, b)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return rel.Status == models.RelationshipAccepted, nil
}

// viewFor interprets a row from one side: pending direction and who placed a
// block are derived from the acting party.
func (s *relationshipService) viewFor(rel *models.Relationship, viewerID uuid.UUID) *dto.RelationshipView {
	view := &dto.RelationshipView{
		ID:         rel.ID,
		OtherID:    rel.Other(viewerID),
		Status:     rel.Status,
		AcceptedAt: rel.AcceptedAt,
		UpdatedAt:  rel.UpdatedAt,
	}
	switch rel.Status {
	case models.RelationshipPending:
		if rel.ActingParty != nil && *rel.ActingParty == viewerID {
			view.Direction = "outgoing"
		} else {
			view.Direction = "incoming"
		}
	case models.RelationshipBlocked:
		view.BlockedBy = rel.ActingParty
	}
	return view
}
