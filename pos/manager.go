package pos

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ray-remotestate/bakepos/models"
)

// promoRate is the discount granted by the DISCOUNT10 promo code.
const promoRate = 0.10

// OrderSink receives a finalized order. The manager does not know or care
// how the sink keeps it.
type OrderSink interface {
	Append(order models.Order) error
}

// Manager owns exactly one current order and keeps its derived totals
// correct after every mutation. Callers hold the handle explicitly; there is
// no ambient instance. It is not safe for concurrent use: a POS terminal is
// a single writer, and any arbitration between terminals belongs to the
// caller.
type Manager struct {
	products ProductFinder
	current  *models.Order
	seq      int
	discount float64 // active promo rate, re-applied on every recompute
}

func NewManager(products ProductFinder) *Manager {
	return &Manager{products: products}
}

// CreateOrder replaces the current order with a fresh empty one and returns
// a copy of it.
func (m *Manager) CreateOrder() models.Order {
	m.seq++
	order := models.Order{
		ID:           uuid.New(),
		CustomerName: "New Customer",
		OrderNumber:  fmt.Sprintf("#%03d", m.seq),
		OrderType:    models.OrderTypeDineIn,
		Items:        []models.OrderItem{},
		Status:       models.StatusOpen,
		CreatedAt:    time.Now().UTC(),
	}
	m.current = &order
	m.discount = 0
	return order.Clone()
}

// CurrentOrder returns a copy of the order being edited.
func (m *Manager) CurrentOrder() (models.Order, error) {
	if m.current == nil {
		return models.Order{}, ErrNoActiveOrder
	}
	return m.current.Clone(), nil
}

// AddItem adds quantity units of product to the current order. When a line
// entry for the product already exists its quantity is increased and, if
// notes were given, its notes replaced; otherwise a new entry is appended.
func (m *Manager) AddItem(product models.Product, quantity int, notes string) error {
	if m.current == nil {
		return ErrNoActiveOrder
	}
	if quantity < 1 {
		return ValidationError{Field: "quantity", Message: "quantity must be a positive integer"}
	}
	if _, ok := m.products.FindProductByID(product.ID); !ok {
		return NotFoundError{ProductID: product.ID}
	}

	if item := m.current.Item(product.ID); item != nil {
		item.Quantity += quantity
		if notes != "" {
			item.Notes = notes
		}
	} else {
		m.current.Items = append(m.current.Items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  quantity,
			Notes:     notes,
		})
	}

	m.recompute()
	return nil
}

// SetItemQuantity replaces the quantity of an existing line entry. Zero (or
// a negative value, clamped to zero) removes the entry. Unlike AddItem it
// never creates an entry: setting a quantity for an absent product is a
// no-op.
func (m *Manager) SetItemQuantity(productID string, quantity int) error {
	if m.current == nil {
		return ErrNoActiveOrder
	}
	if quantity < 0 {
		quantity = 0
	}

	if quantity == 0 {
		kept := m.current.Items[:0]
		for _, item := range m.current.Items {
			if item.ProductID != productID {
				kept = append(kept, item)
			}
		}
		m.current.Items = kept
	} else if item := m.current.Item(productID); item != nil {
		item.Quantity = quantity
	}

	m.recompute()
	return nil
}

func (m *Manager) UpdateCustomerName(name string) error {
	if m.current == nil {
		return ErrNoActiveOrder
	}
	if strings.TrimSpace(name) == "" {
		return ValidationError{Field: "customer_name", Message: "customer name cannot be blank"}
	}
	m.current.CustomerName = name
	return nil
}

// UpdateTableNumber replaces the table number; an empty string clears it.
func (m *Manager) UpdateTableNumber(table string) error {
	if m.current == nil {
		return ErrNoActiveOrder
	}
	m.current.TableNumber = table
	return nil
}

func (m *Manager) UpdateOrderType(orderType models.OrderType) error {
	if m.current == nil {
		return ErrNoActiveOrder
	}
	if !orderType.IsValid() {
		return ValidationError{Field: "order_type", Message: fmt.Sprintf("invalid order type %q", orderType)}
	}
	m.current.OrderType = orderType
	return nil
}

// ApplyPromo applies a promo code to the current order. Only DISCOUNT10 is
// honoured: it grants 10% of the subtotal, tracked across later item
// mutations. Any other code is rejected.
func (m *Manager) ApplyPromo(code string) error {
	if m.current == nil {
		return ErrNoActiveOrder
	}
	if !strings.EqualFold(strings.TrimSpace(code), "discount10") {
		return ValidationError{Field: "promo_code", Message: "invalid promo code"}
	}
	m.discount = promoRate
	m.recompute()
	return nil
}

// PlaceOrder finalizes the current order and hands it to the sink with
// status Pending and an ordered-at timestamp. On success the manager no
// longer holds a current order; CreateOrder starts the next transaction. On
// failure the current order is left open and unchanged.
func (m *Manager) PlaceOrder(sink OrderSink) (models.Order, error) {
	if m.current == nil {
		return models.Order{}, ErrNoActiveOrder
	}
	if err := ValidateOrder(*m.current, m.products); err != nil {
		return models.Order{}, err
	}

	placed := m.current.Clone()
	placed.Status = models.StatusPending
	now := time.Now().UTC()
	placed.OrderedAt = &now

	if err := sink.Append(placed); err != nil {
		return models.Order{}, fmt.Errorf("hand off order: %w", err)
	}

	m.current = nil
	m.discount = 0
	return placed, nil
}

// recompute is the single place totals are derived. Every item mutation
// funnels through it.
func (m *Manager) recompute() {
	t := ComputeTotals(m.current.Items, m.products)
	m.current.Subtotal = t.Subtotal
	m.current.Tax = t.Tax
	m.current.Discount = roundCents(t.Subtotal * m.discount)
	m.current.Total = roundCents(t.Subtotal + t.Tax - m.current.Discount)
}
