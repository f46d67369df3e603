package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/bakepos/catalog"
	"github.com/ray-remotestate/bakepos/models"
)

func TestDefaultCatalog(t *testing.T) {
	c := catalog.Default()

	products := c.List()
	assert.Len(t, products, 14)
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.True(t, p.Category.IsValid(), "category %q", p.Category)
		assert.GreaterOrEqual(t, p.Price, 0.0)
	}
}

func TestFindProductByID(t *testing.T) {
	c := catalog.Default()

	p, ok := c.FindProductByID("2")
	require.True(t, ok)
	assert.Equal(t, "Buttermelt Croissant", p.Name)
	assert.InDelta(t, 4.00, p.Price, 1e-9)

	_, ok = c.FindProductByID("999")
	assert.False(t, ok)
}

func TestListByCategory(t *testing.T) {
	c := catalog.Default()

	breads := c.ListByCategory(models.CategoryBread)
	require.NotEmpty(t, breads)
	for _, p := range breads {
		assert.Equal(t, models.CategoryBread, p.Category)
	}

	assert.Empty(t, c.ListByCategory(models.Category("pizza")))
}

func TestSearch(t *testing.T) {
	c := catalog.Default()

	donuts := c.Search("donut")
	require.Len(t, donuts, 2)
	for _, p := range donuts {
		assert.Contains(t, p.Name, "Donut")
	}

	assert.Len(t, c.Search("  "), 14)
	assert.Empty(t, c.Search("pizza"))
}

func TestListReturnsCopy(t *testing.T) {
	c := catalog.Default()

	products := c.List()
	products[0].Name = "Mutated"

	fresh := c.List()
	assert.NotEqual(t, "Mutated", fresh[0].Name)
}
