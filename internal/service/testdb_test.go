package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/banarasikart/bsk-api/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Description: name + " sarees"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return category
}

func seedProduct(t *testing.T, db *gorm.DB, categoryID uint, name, price string, stock int) *models.Product {
	t.Helper()
	amount, err := models.NewMoneyFromString(price)
	if err != nil {
		t.Fatalf("seed product price: %v", err)
	}
	product := &models.Product{
		CategoryID:    categoryID,
		Name:          name,
		Description:   "handwoven " + name,
		Price:         amount,
		StockQuantity: stock,
		SKU:           fmt.Sprintf("BSK-%s-%s", t.Name(), name),
		IsActive:      true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func mustMoney(t *testing.T, s string) models.Money {
	t.Helper()
	m, err := models.NewMoneyFromString(s)
	if err != nil {
		t.Fatalf("parse money %q: %v", s, err)
	}
	return m
}

func assertMoney(t *testing.T, got models.Money, want string) {
	t.Helper()
	d, err := decimal.NewFromString(want)
	if err != nil {
		t.Fatalf("parse want %q: %v", want, err)
	}
	if !got.Equal(d) {
		t.Fatalf("amount mismatch: want %s got %s", want, got.String())
	}
}
