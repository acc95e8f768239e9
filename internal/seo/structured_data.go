// Package seo builds schema.org JSON-LD documents for catalog pages.
package seo

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Lixing-Zhang/top-rated-catalog/internal/models"
)

const (
	schemaContext = "https://schema.org"
	currencyUSD   = "USD"
)

// ItemList is the schema.org ItemList wrapping every catalog product
type ItemList struct {
	Context  string     `json:"@context"`
	Type     string     `json:"@type"`
	Elements []ListItem `json:"itemListElement"`
}

// ListItem is a positioned Product entry
type ListItem struct {
	Type            string          `json:"@type"`
	Position        int             `json:"position"`
	Name            string          `json:"name"`
	Image           string          `json:"image"`
	Description     string          `json:"description"`
	Offers          Offer           `json:"offers"`
	AggregateRating AggregateRating `json:"aggregateRating"`
}

type Offer struct {
	Type          string  `json:"@type"`
	Price         float64 `json:"price"`
	PriceCurrency string  `json:"priceCurrency"`
}

type AggregateRating struct {
	Type        string  `json:"@type"`
	RatingValue float64 `json:"ratingValue"`
	ReviewCount int     `json:"reviewCount"`
}

// NewItemList lists products in the given order, positions starting at 1
func NewItemList(products []models.Product) ItemList {
	elements := make([]ListItem, len(products))
	for i, p := range products {
		elements[i] = ListItem{
			Type:        "Product",
			Position:    i + 1,
			Name:        p.Name,
			Image:       p.Image,
			Description: p.Description,
			Offers: Offer{
				Type:          "Offer",
				Price:         p.Price,
				PriceCurrency: currencyUSD,
			},
			AggregateRating: AggregateRating{
				Type:        "AggregateRating",
				RatingValue: p.Rating,
				ReviewCount: p.ReviewCount,
			},
		}
	}

	return ItemList{
		Context:  schemaContext,
		Type:     "ItemList",
		Elements: elements,
	}
}

// JSON encodes the list for serving as a standalone application/ld+json document.
// HTML escaping is off; embedding in markup goes through html/template instead.
func (l ItemList) JSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(l); err != nil {
		return nil, fmt.Errorf("encode item list: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
