package payment_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/bakepos/models"
	"github.com/ray-remotestate/bakepos/payment"
	"github.com/ray-remotestate/bakepos/pos"
	"github.com/ray-remotestate/bakepos/store"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func storedOrder(t *testing.T, s store.OrderStore) models.Order {
	t.Helper()
	order := models.Order{
		ID:           uuid.New(),
		CustomerName: "Eloise",
		OrderNumber:  "#001",
		OrderType:    models.OrderTypeTakeAway,
		Items:        []models.OrderItem{{ProductID: "1", Quantity: 1}},
		Status:       models.StatusPending,
		Total:        6.05,
	}
	require.NoError(t, s.Append(order))
	return order
}

func TestProcessMarksOrderPaid(t *testing.T) {
	s := store.NewMemoryStore()
	order := storedOrder(t, s)
	sim := payment.NewSimulator(s, 10*time.Millisecond, quietLogger())

	paid, err := sim.Process(context.Background(), order.ID, payment.MethodCard)
	require.NoError(t, err)
	assert.True(t, paid.IsPaid)
	assert.Equal(t, payment.MethodCard, paid.PaymentMethod)
	assert.Equal(t, models.StatusCompleted, paid.Status)
}

func TestProcessRejectsUnknownMethod(t *testing.T) {
	s := store.NewMemoryStore()
	order := storedOrder(t, s)
	sim := payment.NewSimulator(s, 0, quietLogger())

	_, err := sim.Process(context.Background(), order.ID, "barter")
	var vErr pos.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "payment_method", vErr.Field)

	got, err := s.Get(order.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPaid)
}

func TestProcessUnknownOrder(t *testing.T) {
	sim := payment.NewSimulator(store.NewMemoryStore(), 0, quietLogger())

	_, err := sim.Process(context.Background(), uuid.New(), payment.MethodCash)
	assert.ErrorIs(t, err, store.ErrOrderNotFound)
}

func TestProcessCancelledContext(t *testing.T) {
	s := store.NewMemoryStore()
	order := storedOrder(t, s)
	sim := payment.NewSimulator(s, time.Minute, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sim.Process(ctx, order.ID, payment.MethodQRIS)
	assert.ErrorIs(t, err, context.Canceled)

	got, err := s.Get(order.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPaid)
}
