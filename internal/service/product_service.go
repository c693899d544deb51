package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/banarasikart/bsk-api/internal/constants"
	"github.com/banarasikart/bsk-api/internal/logger"
	"github.com/banarasikart/bsk-api/internal/models"
	"github.com/banarasikart/bsk-api/internal/repository"
)

// CreateProductInput carries a new catalog entry. SKU is optional; a blank
// SKU gets a generated one.
type CreateProductInput struct {
	CategoryID         uint               `json:"category_id"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Price              models.Money       `json:"price"`
	StockQuantity      int                `json:"stock_quantity"`
	DiscountPercentage int                `json:"discount_percentage"`
	Images             models.StringArray `json:"images"`
	Featured           bool               `json:"featured"`
	NewArrival         bool               `json:"new_arrival"`
	LimitedEdition     bool               `json:"limited_edition"`
	SKU                string             `json:"sku"`
}

// UpdateProductInput carries a partial update. Nil fields are untouched.
type UpdateProductInput struct {
	CategoryID         *uint               `json:"category_id"`
	Name               *string             `json:"name"`
	Description        *string             `json:"description"`
	Price              *models.Money       `json:"price"`
	StockQuantity      *int                `json:"stock_quantity"`
	DiscountPercentage *int                `json:"discount_percentage"`
	Images             *models.StringArray `json:"images"`
	Featured           *bool               `json:"featured"`
	NewArrival         *bool               `json:"new_arrival"`
	LimitedEdition     *bool               `json:"limited_edition"`
	SKU                *string             `json:"sku"`
	IsActive           *bool               `json:"is_active"`
}

// ProductService manages the catalog.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	now          func() time.Time
}

// NewProductService creates the product service.
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		now:          time.Now,
	}
}

// GenerateSKU builds a catalog SKU from the fixed prefix and the current
// unix-millisecond clock.
func (s *ProductService) GenerateSKU() string {
	return fmt.Sprintf("%s%d", constants.SKUPrefix, s.now().UnixMilli())
}

func (s *ProductService) validatePrice(price models.Money) error {
	if price.Decimal.IsNegative() || price.Decimal.IsZero() {
		return ErrValidation
	}
	return nil
}

// List returns products matching the filter plus the unpaged total.
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// GetByID fetches one product.
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create inserts a catalog entry. A blank SKU is generated; a supplied SKU
// must be unused.
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.SKU = strings.TrimSpace(input.SKU)
	if input.Name == "" || input.CategoryID == 0 {
		return nil, ErrValidation
	}
	if err := s.validatePrice(input.Price); err != nil {
		return nil, err
	}
	if input.StockQuantity < 0 || input.DiscountPercentage < 0 || input.DiscountPercentage > 100 {
		return nil, ErrValidation
	}

	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	sku := input.SKU
	if sku == "" {
		sku = s.GenerateSKU()
	}
	count, err := s.productRepo.CountBySKU(sku, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSKUExists
	}

	product := &models.Product{
		CategoryID:         input.CategoryID,
		Name:               input.Name,
		Description:        input.Description,
		Price:              input.Price,
		StockQuantity:      input.StockQuantity,
		DiscountPercentage: input.DiscountPercentage,
		Images:             input.Images,
		Featured:           input.Featured,
		NewArrival:         input.NewArrival,
		LimitedEdition:     input.LimitedEdition,
		SKU:                sku,
		IsActive:           true,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	logger.Infow("product_created", "product_id", product.ID, "sku", product.SKU)
	return product, nil
}

// Update applies a partial update to a product.
func (s *ProductService) Update(id uint, input UpdateProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(*input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrNotFound
		}
		product.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrValidation
		}
		product.Name = name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if err := s.validatePrice(*input.Price); err != nil {
			return nil, err
		}
		product.Price = *input.Price
	}
	if input.StockQuantity != nil {
		if *input.StockQuantity < 0 {
			return nil, ErrValidation
		}
		product.StockQuantity = *input.StockQuantity
	}
	if input.DiscountPercentage != nil {
		if *input.DiscountPercentage < 0 || *input.DiscountPercentage > 100 {
			return nil, ErrValidation
		}
		product.DiscountPercentage = *input.DiscountPercentage
	}
	if input.Images != nil {
		product.Images = *input.Images
	}
	if input.Featured != nil {
		product.Featured = *input.Featured
	}
	if input.NewArrival != nil {
		product.NewArrival = *input.NewArrival
	}
	if input.LimitedEdition != nil {
		product.LimitedEdition = *input.LimitedEdition
	}
	if input.SKU != nil {
		sku := strings.TrimSpace(*input.SKU)
		if sku == "" {
			return nil, ErrValidation
		}
		if sku != product.SKU {
			count, err := s.productRepo.CountBySKU(sku, &id)
			if err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, ErrSKUExists
			}
			product.SKU = sku
		}
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// SoftDelete marks a product inactive. The record stays so existing order
// items keep a valid reference; carts drop it on their next read.
func (s *ProductService) SoftDelete(id uint) error {
	affected, err := s.productRepo.Deactivate(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	logger.Infow("product_deactivated", "product_id", id)
	return nil
}
