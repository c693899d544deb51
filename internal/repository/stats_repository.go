package repository

import (
	"github.com/banarasikart/bsk-api/internal/constants"
	"github.com/banarasikart/bsk-api/internal/models"

	"gorm.io/gorm"
)

// StatsRepository aggregates read-only admin metrics. It carries no business
// rules beyond the count predicates themselves.
type StatsRepository interface {
	GetOverview(lowStockThreshold int) (StatsOverviewRow, error)
}

// StatsOverviewRow is the raw aggregate result.
type StatsOverviewRow struct {
	TotalProducts int64
	LowStock      int64
	OutOfStock    int64
	TotalOrders   int64
	PendingOrders int64
}

// GormStatsRepository is the GORM implementation.
type GormStatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates the stats repository.
func NewStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

// GetOverview computes the dashboard counts on demand.
func (r *GormStatsRepository) GetOverview(lowStockThreshold int) (StatsOverviewRow, error) {
	result := StatsOverviewRow{}

	activeProducts := func() *gorm.DB {
		return r.db.Model(&models.Product{}).Where("is_active = ?", true)
	}

	if err := activeProducts().Count(&result.TotalProducts).Error; err != nil {
		return result, err
	}
	if err := activeProducts().
		Where("stock_quantity > 0 AND stock_quantity < ?", lowStockThreshold).
		Count(&result.LowStock).Error; err != nil {
		return result, err
	}
	if err := activeProducts().
		Where("stock_quantity = 0").
		Count(&result.OutOfStock).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Order{}).Count(&result.TotalOrders).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Order{}).
		Where("status = ?", constants.OrderStatusPending).
		Count(&result.PendingOrders).Error; err != nil {
		return result, err
	}
	return result, nil
}
