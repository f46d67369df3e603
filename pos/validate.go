package pos

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/ray-remotestate/bakepos/models"
)

// ValidateOrder checks a complete order against the rules the mutation
// operations enforce incrementally. Violations are collected rather than
// returned one at a time, so a caller handing off an order sees everything
// wrong with it at once.
func ValidateOrder(o models.Order, products ProductFinder) error {
	var result *multierror.Error

	if strings.TrimSpace(o.CustomerName) == "" {
		result = multierror.Append(result, ValidationError{
			Field:   "customer_name",
			Message: "customer name is required",
		})
	}

	if !o.OrderType.IsValid() {
		result = multierror.Append(result, ValidationError{
			Field:   "order_type",
			Message: fmt.Sprintf("invalid order type %q", o.OrderType),
		})
	}

	if o.OrderType == models.OrderTypeDineIn && strings.TrimSpace(o.TableNumber) == "" {
		result = multierror.Append(result, ValidationError{
			Field:   "table_number",
			Message: "table number is required for dine-in orders",
		})
	}

	if len(o.Items) == 0 {
		result = multierror.Append(result, ValidationError{
			Field:   "items",
			Message: "order has no items",
		})
	}

	seen := make(map[string]bool, len(o.Items))
	for i, item := range o.Items {
		if seen[item.ProductID] {
			result = multierror.Append(result, ValidationError{
				Field:   fmt.Sprintf("items[%d].product_id", i),
				Message: fmt.Sprintf("duplicate line entry for product %q", item.ProductID),
			})
		}
		seen[item.ProductID] = true

		if item.Quantity < 1 {
			result = multierror.Append(result, ValidationError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "quantity must be at least 1",
			})
		}

		if _, ok := products.FindProductByID(item.ProductID); !ok {
			result = multierror.Append(result, NotFoundError{ProductID: item.ProductID})
		}
	}

	return result.ErrorOrNil()
}
