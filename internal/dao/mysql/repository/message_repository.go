package repository

import (
	"hexachats_server/internal/model"

	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates the gorm-backed MessageRepository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// FindByConversationId returns up to limit of the newest messages in the
// conversation, newest first. Snowflake ids are monotonic, so ordering by
// uuid orders by send time.
func (r *messageRepository) FindByConversationId(conversationId string, limit int) ([]model.Message, error) {
	var messages []model.Message
	q := r.db.Where("conversation_id = ?", conversationId).Order("uuid DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&messages).Error; err != nil {
		return nil, wrapDBErrorf(err, "list messages for conversation %s", conversationId)
	}
	return messages, nil
}

func (r *messageRepository) Create(message *model.Message) error {
	if err := r.db.Create(message).Error; err != nil {
		return wrapDBError(err, "create message")
	}
	return nil
}

// MarkRead flags every message in the conversation addressed to readerId.
// Marking is idempotent: rereading keeps the flag set.
func (r *messageRepository) MarkRead(conversationId, readerId string) error {
	err := r.db.Model(&model.Message{}).
		Where("conversation_id = ? AND receive_id = ? AND read_flag = 0", conversationId, readerId).
		Update("read_flag", 1).Error
	if err != nil {
		return wrapDBErrorf(err, "mark read conversation %s", conversationId)
	}
	return nil
}

func (r *messageRepository) UpdateStatus(uuid int64, status int8) error {
	if err := r.db.Model(&model.Message{}).Where("uuid = ?", uuid).Update("status", status).Error; err != nil {
		return wrapDBErrorf(err, "update message %d status", uuid)
	}
	return nil
}
