package stylesource

import (
	"fmt"

	"github.com/TheSupremeTaco/RenderSpace/internal/models"
)

// Stub builds a deterministic placeholder mood board with exactly
// maxItems synthetic products tagged with the original query. Used only
// under the stub failure policy, so a broken live integration still
// renders something in demo environments.
func Stub(styleQuery string, maxItems int) *models.MoodBoard {
	if maxItems < 1 {
		maxItems = 1
	}

	products := make([]models.Product, maxItems)
	for i := range products {
		category := Categories[i%len(Categories)]
		products[i] = models.Product{
			Title:      fmt.Sprintf("Placeholder %s %d", category, i+1),
			Retailer:   "amazon",
			ProductURL: fmt.Sprintf("https://example.com/products/%d", i+1),
			ImageURL:   fmt.Sprintf("https://example.com/products/%d.jpg", i+1),
			Price:      nil,
			Category:   category,
			Tags:       []string{styleQuery, "placeholder"},
		}
	}

	return &models.MoodBoard{
		Style:    styleQuery,
		Products: products,
	}
}
