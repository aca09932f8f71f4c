package repository

import (
	"hexachats_server/internal/model"

	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates the gorm-backed OrderRepository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) FindByUuid(uuid string) (*model.Order, error) {
	var order model.Order
	if err := r.db.First(&order, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "find order uuid=%s", uuid)
	}
	return &order, nil
}

func (r *orderRepository) FindByUserId(userId string) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Where("user_id = ?", userId).Order("placed_at DESC").Find(&orders).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "list orders for user %s", userId)
	}
	return orders, nil
}

func (r *orderRepository) FindAll(page, pageSize int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64
	if err := r.db.Model(&model.Order{}).Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "count orders")
	}
	q := r.db.Order("placed_at DESC")
	if page > 0 && pageSize > 0 {
		q = q.Offset((page - 1) * pageSize).Limit(pageSize)
	}
	if err := q.Find(&orders).Error; err != nil {
		return nil, 0, wrapDBError(err, "list orders")
	}
	return orders, total, nil
}

func (r *orderRepository) Create(order *model.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return wrapDBError(err, "create order")
	}
	return nil
}

func (r *orderRepository) UpdateStatus(uuid string, status int8) error {
	if err := r.db.Model(&model.Order{}).Where("uuid = ?", uuid).Update("status", status).Error; err != nil {
		return wrapDBErrorf(err, "update order %s status", uuid)
	}
	return nil
}
