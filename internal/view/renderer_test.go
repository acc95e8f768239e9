package view

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Lixing-Zhang/top-rated-catalog/internal/catalog"
	"github.com/Lixing-Zhang/top-rated-catalog/internal/models"
	"github.com/Lixing-Zhang/top-rated-catalog/internal/repository"
)

func newPage(t *testing.T, selection models.CategoryID) *catalog.Page {
	t.Helper()
	repo := repository.NewInMemoryProductRepository()
	products, _ := repo.GetAll(context.Background())
	categories, _ := repo.Categories(context.Background())

	page := catalog.NewPage(products, categories)
	page.SetSelection(selection)
	return page
}

func render(t *testing.T, page *catalog.Page) string {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, page); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func TestRender_Head(t *testing.T) {
	html := render(t, newPage(t, models.CategoryAll))

	expected := []string{
		"<title>Top-Rated Bamboo Products | Expert Reviews &amp; Recommendations</title>",
		`<meta name="description" content="Discover our selection of top-rated bamboo products`,
		`<script type="application/ld+json">`,
		`"@type":"ItemList"`,
		`"priceCurrency":"USD"`,
	}
	for _, s := range expected {
		if !strings.Contains(html, s) {
			t.Errorf("expected output to contain %q", s)
		}
	}
}

func TestRender_FilterButtons(t *testing.T) {
	html := render(t, newPage(t, models.CategorySheets))

	for _, name := range []string{"All Products", "Sheets", "Sleepwear", "Blankets"} {
		if !strings.Contains(html, ">"+name+"</a>") {
			t.Errorf("expected a filter button labelled %s", name)
		}
	}

	if !strings.Contains(html, `href="?category=blankets"`) {
		t.Error("expected a link for the blankets category")
	}

	if got := strings.Count(html, `aria-current="true"`); got != 1 {
		t.Errorf("expected exactly one active button, got %d", got)
	}
	if !strings.Contains(html, `aria-current="true">Sheets</a>`) {
		t.Error("expected Sheets to be the active button")
	}
}

func TestRender_Cards(t *testing.T) {
	tests := []struct {
		name      string
		selection models.CategoryID
		present   []string
		absent    []string
	}{
		{
			name:      "all",
			selection: models.CategoryAll,
			present:   []string{"product-1", "product-2", "product-3", "product-4", "product-5", "product-6"},
		},
		{
			name:      "sheets",
			selection: models.CategorySheets,
			present:   []string{"product-1", "product-2"},
			absent:    []string{"product-3", "product-4", "product-5", "product-6"},
		},
		{
			name:      "unknown",
			selection: "pillows",
			absent:    []string{"product-1", "product-2", "product-3", "product-4", "product-5", "product-6"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := render(t, newPage(t, tt.selection))

			for _, id := range tt.present {
				if !strings.Contains(html, `id="`+id+`"`) {
					t.Errorf("expected card %s", id)
				}
			}
			for _, id := range tt.absent {
				if strings.Contains(html, `id="`+id+`"`) {
					t.Errorf("did not expect card %s", id)
				}
			}
		})
	}
}

func TestRender_CardContents(t *testing.T) {
	html := render(t, newPage(t, models.CategoryBlankets))

	expected := []string{
		"Weighted Bamboo Blanket",
		"$149.99",
		">4.8</span>",
		"15lb weighted blanket with bamboo cover for better sleep.",
		">Removable Cover</span>",
		`alt="Plush Bamboo Throw"`,
	}
	for _, s := range expected {
		if !strings.Contains(html, s) {
			t.Errorf("expected output to contain %q", s)
		}
	}
}

func TestRender_Stable(t *testing.T) {
	first := render(t, newPage(t, models.CategoryAll))
	second := render(t, newPage(t, models.CategoryAll))

	if first != second {
		t.Error("rendering the same page twice produced different output")
	}
}

func TestFormatters(t *testing.T) {
	if got := FormatPrice(129.99); got != "$129.99" {
		t.Errorf("FormatPrice = %s", got)
	}
	if got := FormatPrice(50); got != "$50.00" {
		t.Errorf("FormatPrice = %s", got)
	}
	if got := FormatRating(4.9); got != "4.9" {
		t.Errorf("FormatRating = %s", got)
	}
	if got := FormatRating(5); got != "5.0" {
		t.Errorf("FormatRating = %s", got)
	}
}
