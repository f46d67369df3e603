package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/ray-remotestate/bakepos/models"
)

// FileStore persists order records as a single JSON array on disk. Every
// operation reads and rewrites the whole file; order volumes in a demo POS
// make that a non-issue, and it keeps the file inspectable by hand.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Append(order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return err
	}
	return s.save(append(orders, order))
}

func (s *FileStore) Get(id uuid.UUID) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return models.Order{}, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (s *FileStore) List() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) MarkPaid(id uuid.UUID, method string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return models.Order{}, err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders[i].IsPaid = true
			orders[i].PaymentMethod = method
			orders[i].Status = models.StatusCompleted
			if err := s.save(orders); err != nil {
				return models.Order{}, err
			}
			return orders[i], nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (s *FileStore) load() ([]models.Order, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read orders file: %w", err)
	}
	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("parse orders file: %w", err)
	}
	return orders, nil
}

func (s *FileStore) save(orders []models.Order) error {
	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write orders file: %w", err)
	}
	return nil
}
