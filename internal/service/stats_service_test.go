package service

import (
	"context"
	"testing"

	"github.com/banarasikart/bsk-api/internal/constants"
	"github.com/banarasikart/bsk-api/internal/models"
	"github.com/banarasikart/bsk-api/internal/repository"

	"gorm.io/gorm"
)

func newStatsFixture(t *testing.T) (*StatsService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewStatsService(
		repository.NewStatsRepository(db),
		repository.NewOrderRepository(db),
		10, 5, 0,
	)
	return svc, db
}

func TestStatsOverviewCounts(t *testing.T) {
	svc, db := newStatsFixture(t)
	category := seedCategory(t, db, "Silk Sarees")

	seedProduct(t, db, category.ID, "Plenty", "100.00", 50)
	seedProduct(t, db, category.ID, "Scarce", "100.00", 3)
	seedProduct(t, db, category.ID, "Gone", "100.00", 0)
	inactive := seedProduct(t, db, category.ID, "Retired", "100.00", 2)
	if err := db.Model(&models.Product{}).Where("id = ?", inactive.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	for _, status := range []string{
		constants.OrderStatusPending,
		constants.OrderStatusPending,
		constants.OrderStatusPaid,
	} {
		order := &models.Order{
			CustomerName:    "Asha",
			CustomerEmail:   "asha@example.com",
			ShippingAddress: "12 MG Road",
			Total:           mustMoney(t, "100.00"),
			Status:          status,
		}
		if err := db.Create(order).Error; err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}

	overview, err := svc.GetOverview(context.Background(), false)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if overview.TotalProducts != 3 {
		t.Fatalf("total products: want 3 got %d", overview.TotalProducts)
	}
	// Out-of-stock products never count as low stock.
	if overview.LowStock != 1 {
		t.Fatalf("low stock: want 1 got %d", overview.LowStock)
	}
	if overview.OutOfStock != 1 {
		t.Fatalf("out of stock: want 1 got %d", overview.OutOfStock)
	}
	if overview.TotalOrders != 3 {
		t.Fatalf("total orders: want 3 got %d", overview.TotalOrders)
	}
	if overview.PendingOrders != 2 {
		t.Fatalf("pending orders: want 2 got %d", overview.PendingOrders)
	}
}

func TestStatsOverviewRecentOrdersCapped(t *testing.T) {
	svc, db := newStatsFixture(t)

	for i := 0; i < 8; i++ {
		order := &models.Order{
			CustomerName:    "Asha",
			CustomerEmail:   "asha@example.com",
			ShippingAddress: "12 MG Road",
			Total:           mustMoney(t, "10.00"),
			Status:          constants.OrderStatusPending,
		}
		if err := db.Create(order).Error; err != nil {
			t.Fatalf("seed order %d: %v", i, err)
		}
	}

	overview, err := svc.GetOverview(context.Background(), false)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(overview.RecentOrders) != 5 {
		t.Fatalf("recent orders: want 5 got %d", len(overview.RecentOrders))
	}
	for i := 1; i < len(overview.RecentOrders); i++ {
		prev, cur := overview.RecentOrders[i-1], overview.RecentOrders[i]
		if prev.CreatedAt.Before(cur.CreatedAt) {
			t.Fatalf("recent orders not newest-first at index %d", i)
		}
	}
}

func TestStatsOverviewEmptyStore(t *testing.T) {
	svc, _ := newStatsFixture(t)

	overview, err := svc.GetOverview(context.Background(), false)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.TotalProducts != 0 || overview.TotalOrders != 0 {
		t.Fatalf("empty store overview: %+v", overview)
	}
	if len(overview.RecentOrders) != 0 {
		t.Fatalf("recent orders on empty store: %d", len(overview.RecentOrders))
	}
}
