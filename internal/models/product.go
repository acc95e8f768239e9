package models

// CategoryID identifies a product category
type CategoryID string

const (
	CategoryAll       CategoryID = "all"
	CategorySheets    CategoryID = "sheets"
	CategorySleepwear CategoryID = "sleepwear"
	CategoryBlankets  CategoryID = "blankets"
)

// Category is a filter entry shown on the catalog page
type Category struct {
	ID   CategoryID `json:"id"`
	Name string     `json:"name"`
}

// Product represents a bamboo product listed on the top-rated page
type Product struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Image       string     `json:"image"`
	Rating      float64    `json:"rating"`
	Price       float64    `json:"price"`
	Description string     `json:"description"`
	Category    CategoryID `json:"category"`
	Features    []string   `json:"features"`
	ReviewCount int        `json:"reviewCount"`
}

// Clone returns a copy that does not share the features slice
func (p Product) Clone() Product {
	p.Features = append([]string(nil), p.Features...)
	return p
}
