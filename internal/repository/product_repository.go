package repository

import (
	"context"
	"errors"

	"github.com/Lixing-Zhang/top-rated-catalog/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

const imageParams = "?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80"

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

// InMemoryProductRepository implements ProductRepository over a fixed table.
// Products keep their catalog order; callers always receive copies.
type InMemoryProductRepository struct {
	products   []models.Product
	byID       map[int64]int
	categories []models.Category
}

// NewInMemoryProductRepository creates a repository seeded with the top-rated catalog
func NewInMemoryProductRepository() *InMemoryProductRepository {
	products := []models.Product{
		// Sheets
		{
			ID:          1,
			Name:        "Luxury Bamboo Sheet Set",
			Image:       "https://images.unsplash.com/photo-1629585961025-261e8737bece" + imageParams,
			Rating:      4.9,
			Price:       129.99,
			Description: "Premium bamboo sheets with exceptional softness and breathability.",
			Category:    models.CategorySheets,
			Features:    []string{"400 Thread Count", "Temperature Regulating", "Deep Pockets"},
			ReviewCount: 142,
		},
		{
			ID:          2,
			Name:        "Cooling Bamboo Sheets",
			Image:       "https://images.unsplash.com/photo-1631679706909-1844bbd07221" + imageParams,
			Rating:      4.8,
			Price:       119.99,
			Description: "Perfect for hot sleepers with advanced cooling technology.",
			Category:    models.CategorySheets,
			Features:    []string{"Moisture Wicking", "Cooling Technology", "Hypoallergenic"},
			ReviewCount: 118,
		},
		// Sleepwear
		{
			ID:          3,
			Name:        "Classic Bamboo Pajama Set",
			Image:       "https://images.unsplash.com/photo-1590736704728-f4730bb30770" + imageParams,
			Rating:      4.8,
			Price:       89.99,
			Description: "Ultra-soft bamboo pajamas for ultimate comfort.",
			Category:    models.CategorySleepwear,
			Features:    []string{"Breathable Fabric", "Temperature Regulating", "Anti-bacterial"},
			ReviewCount: 97,
		},
		{
			ID:          4,
			Name:        "Bamboo Sleep Shirt",
			Image:       "https://images.unsplash.com/photo-1618677366787-9727aacca7ea" + imageParams,
			Rating:      4.7,
			Price:       49.99,
			Description: "Lightweight and comfortable sleep shirt for year-round use.",
			Category:    models.CategorySleepwear,
			Features:    []string{"Loose Fit", "Moisture Wicking", "Soft Touch"},
			ReviewCount: 64,
		},
		// Blankets
		{
			ID:          5,
			Name:        "Plush Bamboo Throw",
			Image:       "https://images.unsplash.com/photo-1584100936595-c0654b55a2e6" + imageParams,
			Rating:      4.9,
			Price:       69.99,
			Description: "Cozy bamboo throw perfect for any season.",
			Category:    models.CategoryBlankets,
			Features:    []string{"All-Season", "Lightweight", "Machine Washable"},
			ReviewCount: 131,
		},
		{
			ID:          6,
			Name:        "Weighted Bamboo Blanket",
			Image:       "https://images.unsplash.com/photo-1629385701021-cb8972ac7d0c" + imageParams,
			Rating:      4.8,
			Price:       149.99,
			Description: "15lb weighted blanket with bamboo cover for better sleep.",
			Category:    models.CategoryBlankets,
			Features:    []string{"15lb Weight", "Removable Cover", "Even Weight Distribution"},
			ReviewCount: 86,
		},
	}

	categories := []models.Category{
		{ID: models.CategoryAll, Name: "All Products"},
		{ID: models.CategorySheets, Name: "Sheets"},
		{ID: models.CategorySleepwear, Name: "Sleepwear"},
		{ID: models.CategoryBlankets, Name: "Blankets"},
	}

	byID := make(map[int64]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}

	return &InMemoryProductRepository{
		products:   products,
		byID:       byID,
		categories: categories,
	}
}

// GetAll returns all products in catalog order
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	for i, product := range r.products {
		products[i] = product.Clone()
	}
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	idx, exists := r.byID[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	product := r.products[idx].Clone()
	return &product, nil
}

// Categories returns the filter categories, "all" first
func (r *InMemoryProductRepository) Categories(ctx context.Context) ([]models.Category, error) {
	return append([]models.Category(nil), r.categories...), nil
}
