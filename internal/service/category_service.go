package service

import (
	"strings"

	"github.com/banarasikart/bsk-api/internal/logger"
	"github.com/banarasikart/bsk-api/internal/models"
	"github.com/banarasikart/bsk-api/internal/repository"
)

// CategoryInput carries a category create or update.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryService manages catalog categories.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates the category service.
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List returns all categories.
func (s *CategoryService) List() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// GetByID fetches one category.
func (s *CategoryService) GetByID(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Create inserts a category with a unique name.
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrValidation
	}
	count, err := s.categoryRepo.CountByName(input.Name, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNameExists
	}

	category := &models.Category{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	logger.Infow("category_created", "category_id", category.ID, "name", category.Name)
	return category, nil
}

// Update renames or redescribes a category, keeping names unique.
func (s *CategoryService) Update(id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrValidation
	}
	if input.Name != category.Name {
		count, err := s.categoryRepo.CountByName(input.Name, &id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrNameExists
		}
	}

	category.Name = input.Name
	category.Description = input.Description
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category. A category still referenced by products is
// refused.
func (s *CategoryService) Delete(id uint) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}

	count, err := s.categoryRepo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return s.categoryRepo.Delete(id)
}
