// Package store keeps placed order records. It is the service's stand-in
// for durable storage: a memory implementation for tests and a JSON file
// implementation for running the demo.
package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/ray-remotestate/bakepos/models"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderStore is the persistence sink the POS hands finalized orders to.
type OrderStore interface {
	Append(order models.Order) error
	Get(id uuid.UUID) (models.Order, error)
	List() ([]models.Order, error)
	MarkPaid(id uuid.UUID, method string) (models.Order, error)
}

// MemoryStore holds order records in memory.
type MemoryStore struct {
	mu     sync.Mutex
	orders []models.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order.Clone())
	return nil
}

func (s *MemoryStore) Get(id uuid.UUID) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o.Clone(), nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (s *MemoryStore) List() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o.Clone())
	}
	return out, nil
}

func (s *MemoryStore) MarkPaid(id uuid.UUID, method string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].IsPaid = true
			s.orders[i].PaymentMethod = method
			s.orders[i].Status = models.StatusCompleted
			return s.orders[i].Clone(), nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}
