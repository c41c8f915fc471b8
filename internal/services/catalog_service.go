// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/anikshop/anikshop-backend/internal/models"
	"github.com/anikshop/anikshop-backend/internal/utils"
)

type CatalogService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=100"`
	Description   string  `json:"description" validate:"required"`
	Price         float64 `json:"price" validate:"min=0"`
	Category      string  `json:"category,omitempty"`
	ImageFilename string  `json:"image_filename,omitempty"`
}

type UpdateProductRequest struct {
	Name          string   `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description   string   `json:"description,omitempty"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	Category      string   `json:"category,omitempty"`
	ImageFilename string   `json:"image_filename,omitempty"`
	IsApproved    *bool    `json:"is_approved,omitempty"`
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	product := &models.Product{
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Price:         req.Price,
		Category:      strings.TrimSpace(req.Category),
		ImageFilename: req.ImageFilename,
	}

	if product.Name == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}
	if product.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to create product: %v", ErrPersistence, err)
	}

	return product, nil
}

func (s *CatalogService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &product, nil
}

func (s *CatalogService) ListProducts(params utils.PaginationParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{})

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	allowedSortFields := []string{"created_at", "name", "price"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return products, total, nil
}

func (s *CatalogService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = strings.TrimSpace(req.Name)
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != "" {
		updates["category"] = strings.TrimSpace(req.Category)
	}
	if req.ImageFilename != "" {
		updates["image_filename"] = req.ImageFilename
	}
	if req.IsApproved != nil {
		updates["is_approved"] = *req.IsApproved
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("%w: failed to update product: %v", ErrPersistence, err)
		}
	}

	return &product, nil
}

// DeleteProduct removes a product only when no order references it. Orders
// keep their product reference forever, so a referenced product is blocked
// from deletion rather than cascaded.
func (s *CatalogService) DeleteProduct(id uuid.UUID) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			return err
		}

		var referencingOrders int64
		if err := tx.Model(&models.Order{}).
			Where("product_id = ?", id).
			Count(&referencingOrders).Error; err != nil {
			return err
		}

		if referencingOrders > 0 {
			return fmt.Errorf("%w: %d order(s) reference this product", ErrBlocked, referencingOrders)
		}

		return tx.Delete(&product).Error
	})

	if err != nil {
		if errors.Is(err, ErrBlocked) {
			return err
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return fmt.Errorf("%w: failed to delete product: %v", ErrPersistence, err)
	}

	return nil
}
