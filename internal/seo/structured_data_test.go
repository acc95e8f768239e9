package seo

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Lixing-Zhang/top-rated-catalog/internal/models"
	"github.com/google/go-cmp/cmp"
)

var testProducts = []models.Product{
	{ID: 1, Name: "Sheet", Image: "https://img/1", Rating: 4.9, Price: 129.99, Description: "soft", Category: models.CategorySheets, ReviewCount: 120},
	{ID: 2, Name: "Shirt & Co", Image: "https://img/2", Rating: 4.7, Price: 49.99, Description: "light", Category: models.CategorySleepwear, ReviewCount: 60},
	{ID: 3, Name: "Throw", Image: "https://img/3", Rating: 4.8, Price: 69.99, Description: "cozy", Category: models.CategoryBlankets, ReviewCount: 75},
}

func TestNewItemList_Positions(t *testing.T) {
	list := NewItemList(testProducts)

	if list.Context != "https://schema.org" || list.Type != "ItemList" {
		t.Errorf("unexpected header: %s %s", list.Context, list.Type)
	}

	if len(list.Elements) != len(testProducts) {
		t.Fatalf("expected %d elements, got %d", len(testProducts), len(list.Elements))
	}

	for i, el := range list.Elements {
		if el.Position != i+1 {
			t.Errorf("element %d position = %d, want %d", i, el.Position, i+1)
		}
		if el.Name != testProducts[i].Name {
			t.Errorf("element %d name = %s, want %s", i, el.Name, testProducts[i].Name)
		}
	}
}

func TestNewItemList_Element(t *testing.T) {
	list := NewItemList(testProducts[:1])

	want := ListItem{
		Type:        "Product",
		Position:    1,
		Name:        "Sheet",
		Image:       "https://img/1",
		Description: "soft",
		Offers:      Offer{Type: "Offer", Price: 129.99, PriceCurrency: "USD"},
		AggregateRating: AggregateRating{
			Type:        "AggregateRating",
			RatingValue: 4.9,
			ReviewCount: 120,
		},
	}
	if diff := cmp.Diff(want, list.Elements[0]); diff != "" {
		t.Errorf("element mismatch (-want +got):\n%s", diff)
	}
}

func TestNewItemList_Empty(t *testing.T) {
	list := NewItemList(nil)

	data, err := list.JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	elements, ok := decoded["itemListElement"].([]any)
	if !ok {
		t.Fatalf("itemListElement should be an array, got %T", decoded["itemListElement"])
	}
	if len(elements) != 0 {
		t.Errorf("expected no elements, got %d", len(elements))
	}
}

func TestJSON_StableAcrossCalls(t *testing.T) {
	first, err := NewItemList(testProducts).JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NewItemList(testProducts).JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("structured data differs between renders:\n%s\n%s", first, second)
	}
}

func TestJSON_Vocabulary(t *testing.T) {
	data, err := NewItemList(testProducts).JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, fragment := range []string{
		`"@context":"https://schema.org"`,
		`"@type":"ItemList"`,
		`"@type":"Offer"`,
		`"priceCurrency":"USD"`,
		`"@type":"AggregateRating"`,
		`"name":"Shirt & Co"`,
	} {
		if !bytes.Contains(data, []byte(fragment)) {
			t.Errorf("expected %s in %s", fragment, data)
		}
	}
}
