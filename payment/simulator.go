// Package payment simulates a payment gateway. There is no real charge:
// after a configurable processing delay the stored order is marked paid.
package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/bakepos/models"
	"github.com/ray-remotestate/bakepos/pos"
	"github.com/ray-remotestate/bakepos/store"
)

const (
	MethodCash = "cash"
	MethodCard = "card"
	MethodQRIS = "qris"
)

func validMethod(method string) bool {
	return method == MethodCash || method == MethodCard || method == MethodQRIS
}

type Simulator struct {
	orders store.OrderStore
	delay  time.Duration
	log    *logrus.Logger
}

func NewSimulator(orders store.OrderStore, delay time.Duration, log *logrus.Logger) *Simulator {
	return &Simulator{orders: orders, delay: delay, log: log}
}

// Process waits out the simulated gateway delay, then marks the order paid
// with the chosen method and a Completed status. Cancelling the context
// aborts the wait and leaves the order untouched.
func (s *Simulator) Process(ctx context.Context, orderID uuid.UUID, method string) (models.Order, error) {
	if !validMethod(method) {
		return models.Order{}, pos.ValidationError{Field: "payment_method", Message: "payment method must be cash, card or qris"}
	}

	select {
	case <-ctx.Done():
		return models.Order{}, ctx.Err()
	case <-time.After(s.delay):
	}

	order, err := s.orders.MarkPaid(orderID, method)
	if err != nil {
		return models.Order{}, err
	}

	s.log.WithFields(logrus.Fields{
		"order_id":       order.ID,
		"order_number":   order.OrderNumber,
		"payment_method": method,
		"total":          order.Total,
	}).Info("payment processed")

	return order, nil
}
