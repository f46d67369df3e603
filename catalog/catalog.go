package catalog

import (
	"strings"

	"github.com/ray-remotestate/bakepos/models"
)

// Catalog is the read-only set of purchasable products. It is built once
// and never mutated, so lookups need no locking.
type Catalog struct {
	products []models.Product
	byID     map[string]models.Product
}

func New(products []models.Product) *Catalog {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// Default returns a catalog seeded with the bakery's standard range.
func Default() *Catalog {
	return New(seedProducts)
}

func (c *Catalog) FindProductByID(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) List() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) ListByCategory(category models.Category) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Search matches products whose name contains the query, case-insensitively.
func (c *Catalog) Search(query string) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.List()
	}
	var out []models.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), query) {
			out = append(out, p)
		}
	}
	return out
}
