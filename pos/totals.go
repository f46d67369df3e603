package pos

import (
	"math"

	"github.com/ray-remotestate/bakepos/models"
)

// TaxRate is the fixed sales tax applied to every order.
const TaxRate = 0.10

// ProductFinder resolves a product id against the catalog. Lookups are
// synchronous and side-effect free.
type ProductFinder interface {
	FindProductByID(id string) (models.Product, bool)
}

type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// ComputeTotals derives subtotal, tax and total for a set of line items,
// resolving each price from the catalog at computation time. It is pure: it
// mutates nothing and the same inputs always yield the same result.
//
// An unresolvable product id contributes nothing to the subtotal. The manager
// refuses to admit such ids through AddItem, so through the public API this
// branch is unreachable; it exists so the function stays total on arbitrary
// item slices (for example records loaded from disk).
//
// All three figures are rounded half away from zero to cents.
func ComputeTotals(items []models.OrderItem, products ProductFinder) Totals {
	var subtotal float64
	for _, item := range items {
		product, ok := products.FindProductByID(item.ProductID)
		if !ok {
			continue
		}
		subtotal += product.Price * float64(item.Quantity)
	}

	subtotal = roundCents(subtotal)
	tax := roundCents(subtotal * TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    roundCents(subtotal + tax),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
