package service

import (
	"context"
	"fmt"

	"github.com/Lixing-Zhang/top-rated-catalog/internal/catalog"
	"github.com/Lixing-Zhang/top-rated-catalog/internal/models"
	"github.com/Lixing-Zhang/top-rated-catalog/internal/repository"
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns the products in category, in catalog order
func (s *ProductService) ListProducts(ctx context.Context, category models.CategoryID) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return catalog.Filter(products, category), nil
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Categories returns the filter categories
func (s *ProductService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.repo.Categories(ctx)
}

// NewPage builds a catalog page with selection applied
func (s *ProductService) NewPage(ctx context.Context, selection models.CategoryID) (*catalog.Page, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	page := catalog.NewPage(products, categories)
	page.SetSelection(selection)
	return page, nil
}
