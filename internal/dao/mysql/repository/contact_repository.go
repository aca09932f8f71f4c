package repository

import (
	"hexachats_server/internal/model"

	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates the gorm-backed ContactRepository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) FindByUserIdAndContactId(userId, contactId string) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.First(&contact, "user_id = ? AND contact_id = ?", userId, contactId).Error; err != nil {
		return nil, wrapDBErrorf(err, "find contact %s -> %s", userId, contactId)
	}
	return &contact, nil
}

func (r *contactRepository) FindByUserId(userId string) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.Where("user_id = ?", userId).Find(&contacts).Error; err != nil {
		return nil, wrapDBError(err, "list contacts")
	}
	return contacts, nil
}

func (r *contactRepository) FindWatchers(contactId string) ([]string, error) {
	var watchers []string
	err := r.db.Model(&model.Contact{}).
		Where("contact_id = ?", contactId).
		Pluck("user_id", &watchers).Error
	if err != nil {
		return nil, wrapDBError(err, "list watchers")
	}
	return watchers, nil
}

func (r *contactRepository) Create(contact *model.Contact) error {
	if err := r.db.Create(contact).Error; err != nil {
		return wrapDBError(err, "create contact")
	}
	return nil
}

func (r *contactRepository) SoftDelete(userId, contactId string) error {
	if err := r.db.Where("user_id = ? AND contact_id = ?", userId, contactId).Delete(&model.Contact{}).Error; err != nil {
		return wrapDBErrorf(err, "delete contact %s -> %s", userId, contactId)
	}
	return nil
}
