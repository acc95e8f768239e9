// Package catalog holds the top-rated products page view: the static
// catalog, the category filter and the single selected-category state.
package catalog

import (
	"github.com/Lixing-Zhang/top-rated-catalog/internal/models"
	"github.com/Lixing-Zhang/top-rated-catalog/internal/seo"
)

const (
	Heading         = "Top-Rated Bamboo Products"
	PageTitle       = "Top-Rated Bamboo Products | Expert Reviews & Recommendations"
	MetaDescription = "Discover our selection of top-rated bamboo products, from luxurious sheets to comfortable sleepwear. Expert-tested and customer-approved for the best sleep experience."
)

// Meta is the document head injected for search engines
type Meta struct {
	Title          string
	Description    string
	StructuredData seo.ItemList
}

// CategoryButton is one entry of the filter row
type CategoryButton struct {
	ID     models.CategoryID
	Name   string
	Active bool
}

// Page is the catalog view. A Page is not safe for concurrent use;
// each request builds its own.
type Page struct {
	products   []models.Product
	categories []models.Category
	selection  models.CategoryID
}

// NewPage creates a page over the given catalog with "all" selected
func NewPage(products []models.Product, categories []models.Category) *Page {
	return &Page{
		products:   products,
		categories: categories,
		selection:  models.CategoryAll,
	}
}

// SetSelection switches the active category. Unknown ids are accepted
// and simply match nothing.
func (p *Page) SetSelection(id models.CategoryID) {
	p.selection = id
}

func (p *Page) Selection() models.CategoryID {
	return p.selection
}

// Filtered returns the products shown for the current selection
func (p *Page) Filtered() []models.Product {
	return Filter(p.products, p.selection)
}

// Products returns the full catalog
func (p *Page) Products() []models.Product {
	return p.products
}

// CategoryButtons returns the filter row in category order
func (p *Page) CategoryButtons() []CategoryButton {
	buttons := make([]CategoryButton, len(p.categories))
	for i, c := range p.categories {
		buttons[i] = CategoryButton{
			ID:     c.ID,
			Name:   c.Name,
			Active: c.ID == p.selection,
		}
	}
	return buttons
}

// StructuredData describes the full catalog, independent of the selection
func (p *Page) StructuredData() seo.ItemList {
	return seo.NewItemList(p.products)
}

func (p *Page) Meta() Meta {
	return Meta{
		Title:          PageTitle,
		Description:    MetaDescription,
		StructuredData: p.StructuredData(),
	}
}

// Filter returns the products in category id, preserving order.
// CategoryAll returns every product. The result is never nil.
func Filter(products []models.Product, id models.CategoryID) []models.Product {
	if id == models.CategoryAll {
		return append(make([]models.Product, 0, len(products)), products...)
	}

	filtered := make([]models.Product, 0)
	for _, product := range products {
		if product.Category == id {
			filtered = append(filtered, product)
		}
	}
	return filtered
}
