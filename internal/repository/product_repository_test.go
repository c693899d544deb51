package repository

import (
	"fmt"
	"testing"

	"github.com/banarasikart/bsk-api/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createTestProduct(t *testing.T, repo *GormProductRepository, name string, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:  1,
		Name:        name,
		Description: "woven " + name,
		Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
		SKU:         fmt.Sprintf("BSK-%s-%s", t.Name(), name),
		IsActive:    active,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestProductRepositorySearchMatchesNameAndDescription(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	createTestProduct(t, repo, "Kanjivaram Silk", true)
	byDescription := createTestProduct(t, repo, "Plain Weave", true)

	found, total, err := repo.List(ProductListFilter{Search: "kanjivaram"})
	if err != nil {
		t.Fatalf("search by name failed: %v", err)
	}
	if total != 1 || len(found) != 1 {
		t.Fatalf("name search: want 1 got %d", total)
	}

	found, _, err = repo.List(ProductListFilter{Search: "PLAIN WEAVE"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(found) != 1 || found[0].ID != byDescription.ID {
		t.Fatalf("description search missed: %+v", found)
	}
}

func TestProductRepositoryDeactivate(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	product := createTestProduct(t, repo, "Patola", true)

	affected, err := repo.Deactivate(product.ID)
	if err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("rows affected: want 1 got %d", affected)
	}

	stored, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored == nil || stored.IsActive {
		t.Fatalf("record gone or still active: %+v", stored)
	}

	affected, err = repo.Deactivate(product.ID + 99)
	if err != nil {
		t.Fatalf("deactivate missing errored: %v", err)
	}
	if affected != 0 {
		t.Fatalf("rows affected for missing id: want 0 got %d", affected)
	}
}

func TestProductRepositoryPagination(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	for i := 0; i < 7; i++ {
		createTestProduct(t, repo, fmt.Sprintf("Saree %02d", i), true)
	}

	page1, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 3})
	if err != nil {
		t.Fatalf("page 1 failed: %v", err)
	}
	if total != 7 || len(page1) != 3 {
		t.Fatalf("page 1: total=%d len=%d", total, len(page1))
	}

	page3, _, err := repo.List(ProductListFilter{Page: 3, PageSize: 3})
	if err != nil {
		t.Fatalf("page 3 failed: %v", err)
	}
	if len(page3) != 1 {
		t.Fatalf("page 3: want 1 got %d", len(page3))
	}
}
