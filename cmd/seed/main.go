package main

import (
	"fmt"

	"github.com/banarasikart/bsk-api/internal/config"
	"github.com/banarasikart/bsk-api/internal/logger"
	"github.com/banarasikart/bsk-api/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	categories := []models.Category{
		{Name: "Silk Sarees", Description: "Pure silk sarees from Kanchipuram, Banaras and Mysore"},
		{Name: "Cotton Sarees", Description: "Handloom cotton sarees for everyday wear"},
		{Name: "Designer Sarees", Description: "Contemporary designer and occasion wear"},
	}
	for i := range categories {
		cat := &categories[i]
		var existing models.Category
		if err := models.DB.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(cat).Error; err != nil {
				stdLog.Printf("failed to create category %s: %v", cat.Name, err)
			} else {
				stdLog.Printf("created category: %s", cat.Name)
			}
		} else {
			*cat = existing
			stdLog.Printf("category already exists: %s", cat.Name)
		}
	}

	categoryID := map[string]uint{}
	for _, cat := range categories {
		categoryID[cat.Name] = cat.ID
	}

	products := []models.Product{
		{
			CategoryID:    categoryID["Silk Sarees"],
			Name:          "Kanjivaram Bridal Silk",
			Description:   "Traditional Kanjivaram silk saree with gold zari border",
			Price:         money("24999.00"),
			StockQuantity: 12,
			Images:        models.StringArray{},
			Featured:      true,
			SKU:           "BSK-SILK-0001",
			IsActive:      true,
		},
		{
			CategoryID:    categoryID["Silk Sarees"],
			Name:          "Banarasi Katan Silk",
			Description:   "Handwoven Banarasi katan silk with floral motifs",
			Price:         money("18500.00"),
			StockQuantity: 8,
			Images:        models.StringArray{},
			NewArrival:    true,
			SKU:           "BSK-SILK-0002",
			IsActive:      true,
		},
		{
			CategoryID:    categoryID["Cotton Sarees"],
			Name:          "Chanderi Cotton",
			Description:   "Lightweight Chanderi cotton with silver butta",
			Price:         money("3499.00"),
			StockQuantity: 30,
			Images:        models.StringArray{},
			SKU:           "BSK-COT-0001",
			IsActive:      true,
		},
		{
			CategoryID:     categoryID["Designer Sarees"],
			Name:           "Limited Edition Patola",
			Description:    "Double ikat Patola, numbered limited run",
			Price:          money("45000.00"),
			StockQuantity:  3,
			Images:         models.StringArray{},
			LimitedEdition: true,
			Featured:       true,
			SKU:            "BSK-DES-0001",
			IsActive:       true,
		},
	}
	for i := range products {
		product := &products[i]
		var existing models.Product
		if err := models.DB.Where("sku = ?", product.SKU).First(&existing).Error; err != nil {
			if err := models.DB.Create(product).Error; err != nil {
				stdLog.Printf("failed to create product %s: %v", product.SKU, err)
			} else {
				stdLog.Printf("created product: %s (%s)", product.Name, product.SKU)
			}
		} else {
			stdLog.Printf("product already exists: %s", product.SKU)
		}
	}

	fmt.Println("seed finished")
}

func money(s string) models.Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return models.NewMoneyFromDecimal(d)
}
