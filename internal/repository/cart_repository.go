package repository

import (
	"errors"
	"time"

	"github.com/banarasikart/bsk-api/internal/models"

	"gorm.io/gorm"
)

// CartRepository is the cart data access interface.
type CartRepository interface {
	ListBySession(sessionID string) ([]models.CartItem, error)
	GetByID(id uint) (*models.CartItem, error)
	GetBySessionAndProduct(sessionID string, productID uint) (*models.CartItem, error)
	Create(item *models.CartItem) error
	UpdateQuantity(id uint, quantity int) error
	Delete(id uint) (int64, error)
	ClearBySession(sessionID string) error
	DeleteStale(before time.Time) (int64, error)
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates the cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListBySession returns a session's cart entries with their products.
func (r *GormCartRepository) ListBySession(sessionID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Where("session_id = ?", sessionID).Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID fetches one cart entry, nil when absent.
func (r *GormCartRepository) GetByID(id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetBySessionAndProduct fetches the entry for a (session, product) pair,
// nil when absent.
func (r *GormCartRepository) GetBySessionAndProduct(sessionID string, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("session_id = ? AND product_id = ?", sessionID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a cart entry.
func (r *GormCartRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// UpdateQuantity overwrites an entry's quantity.
func (r *GormCartRepository) UpdateQuantity(id uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", id).Updates(map[string]interface{}{
		"quantity":   quantity,
		"updated_at": time.Now(),
	}).Error
}

// Delete removes a cart entry. Returns the number of rows affected.
func (r *GormCartRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.CartItem{}, id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ClearBySession removes every entry for a session.
func (r *GormCartRepository) ClearBySession(sessionID string) error {
	return r.db.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
}

// DeleteStale removes entries not touched since the cutoff. Used by the
// background purge loop.
func (r *GormCartRepository) DeleteStale(before time.Time) (int64, error) {
	result := r.db.Where("updated_at < ?", before).Delete(&models.CartItem{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
