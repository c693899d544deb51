package repository

import (
	"errors"

	"github.com/banarasikart/bsk-api/internal/models"

	"gorm.io/gorm"
)

// OrderRepository is the order data access interface. Order and item
// creation are separate calls on purpose: the assembler persists the order
// first and then each line item, surfacing partial failures to the caller.
type OrderRepository interface {
	Create(order *models.Order) error
	CreateItem(item *models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	List(filter OrderListFilter) ([]models.Order, int64, error)
	ListRecent(limit int) ([]models.Order, error)
	ListItems(orderID uint) ([]models.OrderItem, error)
	UpdateStatus(id uint, status string) (int64, error)
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository is the GORM implementation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates the order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Create inserts an order without items.
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// CreateItem inserts one order line item.
func (r *GormOrderRepository) CreateItem(item *models.OrderItem) error {
	return r.db.Create(item).Error
}

// GetByID fetches one order with its items, nil when absent.
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// List returns orders newest-first plus the unpaged total.
func (r *GormOrderRepository) List(filter OrderListFilter) ([]models.Order, int64, error) {
	var orders []models.Order
	query := r.db.Model(&models.Order{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("created_at desc, id desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ListRecent returns the most recently created orders.
func (r *GormOrderRepository) ListRecent(limit int) ([]models.Order, error) {
	if limit <= 0 {
		return []models.Order{}, nil
	}
	var orders []models.Order
	if err := r.db.Order("created_at desc, id desc").Limit(limit).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListItems returns an order's line items.
func (r *GormOrderRepository) ListItems(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.db.Where("order_id = ?", orderID).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus overwrites an order's status. Returns rows affected so the
// caller can distinguish a missing order.
func (r *GormOrderRepository) UpdateStatus(id uint, status string) (int64, error) {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
