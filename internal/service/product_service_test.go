package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/banarasikart/bsk-api/internal/constants"
	"github.com/banarasikart/bsk-api/internal/models"
	"github.com/banarasikart/bsk-api/internal/repository"

	"gorm.io/gorm"
)

func newProductFixture(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewProductService(repository.NewProductRepository(db), repository.NewCategoryRepository(db))
	return svc, db
}

func TestProductCreateGeneratesSKU(t *testing.T) {
	svc, db := newProductFixture(t)
	category := seedCategory(t, db, "Silk Sarees")
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	product, err := svc.Create(CreateProductInput{
		CategoryID:  category.ID,
		Name:        "Kanjivaram",
		Description: "handwoven",
		Price:       mustMoney(t, "250.00"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if product.SKU != constants.SKUPrefix+"1700000000000" {
		t.Fatalf("generated sku: got %s", product.SKU)
	}
	if !product.IsActive {
		t.Fatal("new product not active")
	}
}

func TestProductCreateRejectsDuplicateSKU(t *testing.T) {
	svc, db := newProductFixture(t)
	category := seedCategory(t, db, "Silk Sarees")

	if _, err := svc.Create(CreateProductInput{
		CategoryID: category.ID,
		Name:       "Kanjivaram",
		Price:      mustMoney(t, "250.00"),
		SKU:        "BSK-DUP",
	}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(CreateProductInput{
		CategoryID: category.ID,
		Name:       "Paithani",
		Price:      mustMoney(t, "100.00"),
		SKU:        "BSK-DUP",
	}); !errors.Is(err, ErrSKUExists) {
		t.Fatalf("duplicate sku: want ErrSKUExists got %v", err)
	}
}

func TestProductCreateValidation(t *testing.T) {
	svc, db := newProductFixture(t)
	category := seedCategory(t, db, "Silk Sarees")

	if _, err := svc.Create(CreateProductInput{
		CategoryID: category.ID,
		Name:       "  ",
		Price:      mustMoney(t, "10.00"),
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("blank name: want ErrValidation got %v", err)
	}
	if _, err := svc.Create(CreateProductInput{
		CategoryID: category.ID,
		Name:       "Freebie",
		Price:      mustMoney(t, "0.00"),
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("zero price: want ErrValidation got %v", err)
	}
	if _, err := svc.Create(CreateProductInput{
		CategoryID: category.ID + 99,
		Name:       "Orphan",
		Price:      mustMoney(t, "10.00"),
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing category: want ErrNotFound got %v", err)
	}
}

func TestProductUpdatePartial(t *testing.T) {
	svc, db := newProductFixture(t)
	category := seedCategory(t, db, "Silk Sarees")
	product := seedProduct(t, db, category.ID, "Kanjivaram", "250.00", 20)

	newPrice := mustMoney(t, "199.00")
	featured := true
	updated, err := svc.Update(product.ID, UpdateProductInput{
		Price:    &newPrice,
		Featured: &featured,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	assertMoney(t, updated.Price, "199.00")
	if !updated.Featured {
		t.Fatal("featured flag not applied")
	}
	if updated.Name != "Kanjivaram" || updated.StockQuantity != 20 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	badStock := -1
	if _, err := svc.Update(product.ID, UpdateProductInput{StockQuantity: &badStock}); !errors.Is(err, ErrValidation) {
		t.Fatalf("negative stock: want ErrValidation got %v", err)
	}
	if _, err := svc.Update(product.ID+99, UpdateProductInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing product: want ErrNotFound got %v", err)
	}
}

func TestProductSoftDelete(t *testing.T) {
	svc, db := newProductFixture(t)
	category := seedCategory(t, db, "Silk Sarees")
	product := seedProduct(t, db, category.ID, "Kanjivaram", "250.00", 20)

	if err := svc.SoftDelete(product.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	var stored models.Product
	if err := db.First(&stored, product.ID).Error; err != nil {
		t.Fatalf("record removed instead of deactivated: %v", err)
	}
	if stored.IsActive {
		t.Fatal("product still active")
	}

	if err := svc.SoftDelete(product.ID + 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing product: want ErrNotFound got %v", err)
	}
}

func TestProductListFilters(t *testing.T) {
	svc, db := newProductFixture(t)
	silk := seedCategory(t, db, "Silk Sarees")
	cotton := seedCategory(t, db, "Cotton Sarees")

	kanjivaram := seedProduct(t, db, silk.ID, "Kanjivaram Classic", "250.00", 20)
	seedProduct(t, db, cotton.ID, "Chanderi", "80.00", 10)
	hidden := seedProduct(t, db, silk.ID, "Discontinued Weave", "50.00", 0)

	if err := db.Model(&models.Product{}).Where("id = ?", kanjivaram.ID).Update("featured", true).Error; err != nil {
		t.Fatalf("mark featured: %v", err)
	}
	if err := db.Model(&models.Product{}).Where("id = ?", hidden.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	active, total, err := svc.List(repository.ProductListFilter{OnlyActive: true})
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if total != 2 || len(active) != 2 {
		t.Fatalf("active products: want 2 got total=%d len=%d", total, len(active))
	}

	featured := true
	starred, _, err := svc.List(repository.ProductListFilter{OnlyActive: true, Featured: &featured})
	if err != nil {
		t.Fatalf("list featured: %v", err)
	}
	if len(starred) != 1 || starred[0].ID != kanjivaram.ID {
		t.Fatalf("featured filter: %+v", starred)
	}

	byCategory, _, err := svc.List(repository.ProductListFilter{OnlyActive: true, CategoryID: cotton.ID})
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].CategoryID != cotton.ID {
		t.Fatalf("category filter: %+v", byCategory)
	}

	found, _, err := svc.List(repository.ProductListFilter{OnlyActive: true, Search: "KANJIVARAM"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 1 || !strings.Contains(found[0].Name, "Kanjivaram") {
		t.Fatalf("case-insensitive search: %+v", found)
	}
}
