package pos

import (
	"errors"
	"fmt"
)

// ErrNoActiveOrder is returned when a mutation is attempted while the
// manager holds no current order.
var ErrNoActiveOrder = errors.New("no active order")

// ValidationError reports invalid input to a mutation. The current order is
// always left unchanged when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a product id the catalog cannot resolve.
type NotFoundError struct {
	ProductID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("product %q not found in catalog", e.ProductID)
}
