// infrastructure/persistence/postgres/message_repository.go
package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/pairchat/gofiber-dm-api/domain/models"
	"github.com/pairchat/gofiber-dm-api/domain/repository"
	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(msg *models.Message) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	return r.db.Create(msg).Error
}

func (r *messageRepository) FindByID(id uuid.UUID) (*models.Message, error) {
	var msg models.Message
	if err := r.db.Where("id = ?", id).First(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) Update(msg *models.Message) error {
	return r.db.Save(msg).Error
}

func (r *messageRepository) FindBetween(a, b uuid.UUID, limit int, beforeID *uuid.UUID) ([]*models.Message, error) {
	q := r.db.Where(
		"((sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)) AND is_deleted = ?",
		a, b, b, a, false,
	)

	if beforeID != nil {
		var cursor models.Message
		if err := r.db.Select("id, created_at").Where("id = ?", *beforeID).First(&cursor).Error; err != nil {
			return nil, err
		}
		// Tie-break on id so rows sharing the cursor's timestamp are not
		// skipped across pages.
		q = q.Where("created_at < ? OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var msgs []*models.Message
	if err := q.Order("created_at DESC, id DESC").Limit(limit).Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *messageRepository) UnreadCountsBySender(receiverID uuid.UUID) ([]repository.SenderCount, error) {
	var counts []repository.SenderCount
	err := r.db.Model(&models.Message{}).
		Select("sender_id, COUNT(*) AS count").
		Where("receiver_id = ? AND is_read = ? AND is_deleted = ?", receiverID, false, false).
		Group("sender_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// MarkRead only touches rows addressed to receiverID that are still unread,
// which makes repeated calls report zero additional updates.
func (r *messageRepository) MarkRead(receiverID uuid.UUID, messageIDs []uuid.UUID) (int64, error) {
	if len(messageIDs) == 0 {
		return 0, nil
	}
	res := r.db.Model(&models.Message{}).
		Where("id IN ? AND receiver_id = ? AND is_read = ?", messageIDs, receiverID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

func (r *messageRepository) PartnerIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	var partners []uuid.UUID
	err := r.db.Raw(
		"SELECT DISTINCT CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END AS partner_id "+
			"FROM messages WHERE (sender_id = ? OR receiver_id = ?) AND is_deleted = ?",
		userID, userID, userID, false,
	).Scan(&partners).Error
	if err != nil {
		return nil, err
	}
	return partners, nil
}
