package repository

import (
	"hexachats_server/internal/model"

	"gorm.io/gorm"
)

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates the gorm-backed CatalogRepository.
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) FindByUuid(uuid string) (*model.CatalogService, error) {
	var svc model.CatalogService
	if err := r.db.First(&svc, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "find catalog service uuid=%s", uuid)
	}
	return &svc, nil
}

func (r *catalogRepository) FindByPlatform(platform string, activeOnly bool) ([]model.CatalogService, error) {
	var services []model.CatalogService
	q := r.db.Where("platform = ?", platform)
	if activeOnly {
		q = q.Where("active = 1")
	}
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		return nil, wrapDBErrorf(err, "list catalog services for %s", platform)
	}
	return services, nil
}

func (r *catalogRepository) FindAll(activeOnly bool) ([]model.CatalogService, error) {
	var services []model.CatalogService
	q := r.db.Order("platform ASC, name ASC")
	if activeOnly {
		q = q.Where("active = 1")
	}
	if err := q.Find(&services).Error; err != nil {
		return nil, wrapDBError(err, "list catalog services")
	}
	return services, nil
}

func (r *catalogRepository) Create(service *model.CatalogService) error {
	if err := r.db.Create(service).Error; err != nil {
		return wrapDBError(err, "create catalog service")
	}
	return nil
}

func (r *catalogRepository) SetActiveByUuids(uuids []string, active int8) error {
	if len(uuids) == 0 {
		return nil
	}
	if err := r.db.Model(&model.CatalogService{}).Where("uuid IN ?", uuids).Update("active", active).Error; err != nil {
		return wrapDBError(err, "batch set catalog active flag")
	}
	return nil
}

func (r *catalogRepository) SoftDeleteByUuids(uuids []string) error {
	if len(uuids) == 0 {
		return nil
	}
	if err := r.db.Where("uuid IN ?", uuids).Delete(&model.CatalogService{}).Error; err != nil {
		return wrapDBError(err, "batch delete catalog services")
	}
	return nil
}
