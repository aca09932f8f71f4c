package repository

import (
	"hexachats_server/internal/model"

	"gorm.io/gorm"
)

type callRepository struct {
	db *gorm.DB
}

// NewCallRepository creates the gorm-backed CallRepository.
func NewCallRepository(db *gorm.DB) CallRepository {
	return &callRepository{db: db}
}

func (r *callRepository) Create(record *model.CallRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return wrapDBError(err, "create call record")
	}
	return nil
}

// FindByParticipant returns calls where the user is either side, newest
// first.
func (r *callRepository) FindByParticipant(userId string) ([]model.CallRecord, error) {
	var records []model.CallRecord
	err := r.db.Where("caller_id = ? OR callee_id = ?", userId, userId).
		Order("started_at DESC").Find(&records).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "list calls for user %s", userId)
	}
	return records, nil
}
