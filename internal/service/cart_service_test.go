package service

import (
	"errors"
	"testing"

	"github.com/banarasikart/bsk-api/internal/models"
	"github.com/banarasikart/bsk-api/internal/repository"

	"gorm.io/gorm"
)

func newCartFixture(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))
	return svc, db
}

func TestCartAddMergesSameProduct(t *testing.T) {
	svc, db := newCartFixture(t)
	category := seedCategory(t, db, "Silk Sarees")
	product := seedProduct(t, db, category.ID, "Kanjivaram", "250.00", 20)

	if _, err := svc.Add("sess-1", product.ID, 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	item, err := svc.Add("sess-1", product.ID, 3)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if item.Quantity != 5 {
		t.Fatalf("merged quantity: want 5 got %d", item.Quantity)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("session_id = ?", "sess-1").Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("cart rows: want 1 got %d", count)
	}
}

func TestCartAddSeparateSessions(t *testing.T) {
	svc, db := newCartFixture(t)
	category := seedCategory(t, db, "Cotton Sarees")
	product := seedProduct(t, db, category.ID, "Chanderi", "80.00", 10)

	if _, err := svc.Add("sess-a", product.ID, 1); err != nil {
		t.Fatalf("add sess-a: %v", err)
	}
	if _, err := svc.Add("sess-b", product.ID, 4); err != nil {
		t.Fatalf("add sess-b: %v", err)
	}

	aItems, err := svc.List("sess-a")
	if err != nil {
		t.Fatalf("list sess-a: %v", err)
	}
	if len(aItems) != 1 || aItems[0].Quantity != 1 {
		t.Fatalf("sess-a entries: %+v", aItems)
	}
	bItems, err := svc.List("sess-b")
	if err != nil {
		t.Fatalf("list sess-b: %v", err)
	}
	if len(bItems) != 1 || bItems[0].Quantity != 4 {
		t.Fatalf("sess-b entries: %+v", bItems)
	}
}

func TestCartAddRejectsBadInput(t *testing.T) {
	svc, db := newCartFixture(t)
	category := seedCategory(t, db, "Designer Sarees")
	product := seedProduct(t, db, category.ID, "Banarasi", "500.00", 5)

	if _, err := svc.Add("sess-1", product.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("zero quantity: want ErrInvalidQuantity got %v", err)
	}
	if _, err := svc.Add("sess-1", product.ID, -2); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("negative quantity: want ErrInvalidQuantity got %v", err)
	}
	if _, err := svc.Add("sess-1", product.ID+99, 1); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("missing product: want ErrProductNotAvailable got %v", err)
	}

	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product: %v", err)
	}
	if _, err := svc.Add("sess-1", product.ID, 1); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("inactive product: want ErrProductNotAvailable got %v", err)
	}
}

func TestCartSetQuantity(t *testing.T) {
	svc, db := newCartFixture(t)
	category := seedCategory(t, db, "Silk Sarees")
	product := seedProduct(t, db, category.ID, "Mysore Silk", "120.00", 10)

	added, err := svc.Add("sess-1", product.ID, 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	item, removed, err := svc.SetQuantity(added.ID, 7)
	if err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if removed {
		t.Fatal("set quantity reported removal")
	}
	if item.Quantity != 7 {
		t.Fatalf("quantity: want 7 got %d", item.Quantity)
	}

	_, removed, err = svc.SetQuantity(added.ID, 0)
	if err != nil {
		t.Fatalf("set quantity zero: %v", err)
	}
	if !removed {
		t.Fatal("zero quantity did not remove the entry")
	}
	items, err := svc.List("sess-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("entries after removal: want 0 got %d", len(items))
	}

	if _, _, err := svc.SetQuantity(added.ID, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("set on removed entry: want ErrNotFound got %v", err)
	}

	// The pair index must not block re-adding a removed product.
	if _, err := svc.Add("sess-1", product.ID, 1); err != nil {
		t.Fatalf("re-add after removal: %v", err)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	svc, db := newCartFixture(t)
	category := seedCategory(t, db, "Cotton Sarees")
	first := seedProduct(t, db, category.ID, "Tant", "45.00", 10)
	second := seedProduct(t, db, category.ID, "Sambalpuri", "60.00", 10)

	added, err := svc.Add("sess-1", first.ID, 1)
	if err != nil {
		t.Fatalf("add first: %v", err)
	}
	if _, err := svc.Add("sess-1", second.ID, 2); err != nil {
		t.Fatalf("add second: %v", err)
	}

	if err := svc.Remove(added.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Remove(added.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double remove: want ErrNotFound got %v", err)
	}

	if err := svc.Clear("sess-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := svc.Clear("sess-1"); err != nil {
		t.Fatalf("clear empty session: %v", err)
	}
	count, err := svc.ItemCount("sess-1")
	if err != nil {
		t.Fatalf("item count: %v", err)
	}
	if count != 0 {
		t.Fatalf("item count after clear: want 0 got %d", count)
	}
}

func TestCartTotalUsesCurrentPrice(t *testing.T) {
	svc, db := newCartFixture(t)
	category := seedCategory(t, db, "Silk Sarees")
	first := seedProduct(t, db, category.ID, "Kanjivaram", "200.00", 10)
	second := seedProduct(t, db, category.ID, "Paithani", "50.00", 10)

	if _, err := svc.Add("sess-1", first.ID, 2); err != nil {
		t.Fatalf("add first: %v", err)
	}
	if _, err := svc.Add("sess-1", second.ID, 2); err != nil {
		t.Fatalf("add second: %v", err)
	}

	total, err := svc.Total("sess-1")
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	assertMoney(t, total, "500.00")

	if err := db.Model(&models.Product{}).Where("id = ?", first.ID).
		Update("price", mustMoney(t, "150.00")).Error; err != nil {
		t.Fatalf("reprice: %v", err)
	}
	total, err = svc.Total("sess-1")
	if err != nil {
		t.Fatalf("total after reprice: %v", err)
	}
	assertMoney(t, total, "400.00")
}

func TestCartListDropsInactiveProducts(t *testing.T) {
	svc, db := newCartFixture(t)
	category := seedCategory(t, db, "Designer Sarees")
	kept := seedProduct(t, db, category.ID, "Patola", "300.00", 10)
	dropped := seedProduct(t, db, category.ID, "Gadwal", "90.00", 10)

	if _, err := svc.Add("sess-1", kept.ID, 1); err != nil {
		t.Fatalf("add kept: %v", err)
	}
	if _, err := svc.Add("sess-1", dropped.ID, 1); err != nil {
		t.Fatalf("add dropped: %v", err)
	}

	if err := db.Model(&models.Product{}).Where("id = ?", dropped.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	items, err := svc.List("sess-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("entries: want 1 got %d", len(items))
	}
	if items[0].ProductID != kept.ID {
		t.Fatalf("surviving entry: want product %d got %d", kept.ID, items[0].ProductID)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("session_id = ?", "sess-1").Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("dead entry not pruned: want 1 row got %d", count)
	}
}

func TestCartListClampsDisplayQuantityToStock(t *testing.T) {
	svc, db := newCartFixture(t)
	category := seedCategory(t, db, "Cotton Sarees")
	product := seedProduct(t, db, category.ID, "Kota Doria", "70.00", 10)

	if _, err := svc.Add("sess-1", product.ID, 4); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).Update("stock_quantity", 3).Error; err != nil {
		t.Fatalf("shrink stock: %v", err)
	}

	items, err := svc.List("sess-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("entries: want 1 got %d", len(items))
	}
	entry := items[0]
	if entry.Quantity != 4 {
		t.Fatalf("ledger quantity mutated: want 4 got %d", entry.Quantity)
	}
	if entry.DisplayQuantity != 3 || !entry.StockLimited {
		t.Fatalf("clamp: want display 3 limited, got display %d limited %v", entry.DisplayQuantity, entry.StockLimited)
	}
}
