package repository

import (
	"time"

	"hexachats_server/internal/model"

	"gorm.io/gorm"
)

type statusRepository struct {
	db *gorm.DB
}

// NewStatusRepository creates the gorm-backed StatusRepository.
func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepository{db: db}
}

func (r *statusRepository) Create(record *model.StatusRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return wrapDBError(err, "create status record")
	}
	return nil
}

// FindActiveByUserId returns the user's statuses whose expiry is still in
// the future, newest first.
func (r *statusRepository) FindActiveByUserId(userId string, now time.Time) ([]model.StatusRecord, error) {
	var records []model.StatusRecord
	err := r.db.Where("user_id = ? AND expires_at > ?", userId, now).
		Order("created_at DESC").Find(&records).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "list statuses for user %s", userId)
	}
	return records, nil
}
