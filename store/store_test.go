package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/bakepos/models"
	"github.com/ray-remotestate/bakepos/store"
)

func sampleOrder(number string) models.Order {
	now := time.Now().UTC().Truncate(time.Second)
	return models.Order{
		ID:           uuid.New(),
		CustomerName: "Eloise",
		OrderNumber:  number,
		TableNumber:  "05",
		OrderType:    models.OrderTypeDineIn,
		Items: []models.OrderItem{
			{ProductID: "1", Quantity: 1},
			{ProductID: "9", Quantity: 2},
		},
		Status:    models.StatusPending,
		Subtotal:  15.50,
		Tax:       1.55,
		Total:     17.05,
		CreatedAt: now,
		OrderedAt: &now,
	}
}

func stores(t *testing.T) map[string]store.OrderStore {
	t.Helper()
	return map[string]store.OrderStore{
		"memory": store.NewMemoryStore(),
		"file":   store.NewFileStore(filepath.Join(t.TempDir(), "orders.json")),
	}
}

func TestAppendAndGet(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			order := sampleOrder("#001")
			require.NoError(t, s.Append(order))

			got, err := s.Get(order.ID)
			require.NoError(t, err)
			assert.Equal(t, order.OrderNumber, got.OrderNumber)
			assert.Equal(t, order.Items, got.Items)
			assert.InDelta(t, order.Total, got.Total, 1e-9)

			_, err = s.Get(uuid.New())
			assert.ErrorIs(t, err, store.ErrOrderNotFound)
		})
	}
}

func TestList(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			empty, err := s.List()
			require.NoError(t, err)
			assert.Empty(t, empty)

			require.NoError(t, s.Append(sampleOrder("#001")))
			require.NoError(t, s.Append(sampleOrder("#002")))

			orders, err := s.List()
			require.NoError(t, err)
			require.Len(t, orders, 2)
			assert.Equal(t, "#001", orders[0].OrderNumber)
			assert.Equal(t, "#002", orders[1].OrderNumber)
		})
	}
}

func TestMarkPaid(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			order := sampleOrder("#001")
			require.NoError(t, s.Append(order))

			paid, err := s.MarkPaid(order.ID, "card")
			require.NoError(t, err)
			assert.True(t, paid.IsPaid)
			assert.Equal(t, "card", paid.PaymentMethod)
			assert.Equal(t, models.StatusCompleted, paid.Status)

			got, err := s.Get(order.ID)
			require.NoError(t, err)
			assert.True(t, got.IsPaid)

			_, err = s.MarkPaid(uuid.New(), "cash")
			assert.ErrorIs(t, err, store.ErrOrderNotFound)
		})
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	order := sampleOrder("#001")

	first := store.NewFileStore(path)
	require.NoError(t, first.Append(order))

	second := store.NewFileStore(path)
	got, err := second.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.CustomerName, got.CustomerName)
	require.NotNil(t, got.OrderedAt)
	assert.True(t, order.OrderedAt.Equal(*got.OrderedAt))
}
