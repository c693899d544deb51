package service

import (
	"context"
	"time"

	"github.com/banarasikart/bsk-api/internal/cache"
	"github.com/banarasikart/bsk-api/internal/logger"
	"github.com/banarasikart/bsk-api/internal/models"
	"github.com/banarasikart/bsk-api/internal/repository"
)

const statsCacheKey = "stats:overview"

// StatsOverview is the admin dashboard snapshot.
type StatsOverview struct {
	TotalProducts int64          `json:"total_products"`
	LowStock      int64          `json:"low_stock"`
	OutOfStock    int64          `json:"out_of_stock"`
	TotalOrders   int64          `json:"total_orders"`
	PendingOrders int64          `json:"pending_orders"`
	RecentOrders  []models.Order `json:"recent_orders"`
}

// StatsService computes dashboard aggregates on demand. With the cache
// enabled a snapshot is held briefly so dashboard polling stays cheap.
type StatsService struct {
	statsRepo         repository.StatsRepository
	orderRepo         repository.OrderRepository
	lowStockThreshold int
	recentOrders      int
	cacheTTL          time.Duration
}

// NewStatsService creates the stats service.
func NewStatsService(statsRepo repository.StatsRepository, orderRepo repository.OrderRepository, lowStockThreshold, recentOrders int, cacheTTL time.Duration) *StatsService {
	if lowStockThreshold <= 0 {
		lowStockThreshold = 10
	}
	if recentOrders <= 0 {
		recentOrders = 5
	}
	return &StatsService{
		statsRepo:         statsRepo,
		orderRepo:         orderRepo,
		lowStockThreshold: lowStockThreshold,
		recentOrders:      recentOrders,
		cacheTTL:          cacheTTL,
	}
}

// GetOverview returns the current dashboard snapshot. Counts cover active
// products only; low stock means above zero but under the threshold, so an
// out-of-stock product is never counted twice. force skips the cached
// snapshot.
func (s *StatsService) GetOverview(ctx context.Context, force bool) (*StatsOverview, error) {
	if s.cacheTTL > 0 && !force {
		var cached StatsOverview
		hit, err := cache.GetJSON(ctx, statsCacheKey, &cached)
		if err != nil {
			logger.Warnw("stats_cache_read_failed", "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	row, err := s.statsRepo.GetOverview(s.lowStockThreshold)
	if err != nil {
		return nil, err
	}
	recent, err := s.orderRepo.ListRecent(s.recentOrders)
	if err != nil {
		return nil, err
	}

	overview := &StatsOverview{
		TotalProducts: row.TotalProducts,
		LowStock:      row.LowStock,
		OutOfStock:    row.OutOfStock,
		TotalOrders:   row.TotalOrders,
		PendingOrders: row.PendingOrders,
		RecentOrders:  recent,
	}

	if s.cacheTTL > 0 {
		if err := cache.SetJSON(ctx, statsCacheKey, overview, s.cacheTTL); err != nil {
			logger.Warnw("stats_cache_write_failed", "error", err)
		}
	}
	return overview, nil
}
