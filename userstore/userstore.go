// Package userstore keeps staff accounts in memory, seeded with a default
// admin. Passwords are stored as bcrypt hashes only.
package userstore

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ray-remotestate/bakepos/models"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type record struct {
	user models.User
	hash string
}

type Store struct {
	mu      sync.Mutex
	byEmail map[string]record
}

func New() *Store {
	return &Store{byEmail: make(map[string]record)}
}

// SeedDefaultAdmin registers the demo admin account when the store is
// empty.
func (s *Store) SeedDefaultAdmin() error {
	s.mu.Lock()
	empty := len(s.byEmail) == 0
	s.mu.Unlock()
	if !empty {
		return nil
	}
	_, err := s.Create("Admin User", "admin@bakery.com", "password123", models.RoleAdmin)
	return err
}

func (s *Store) Create(name, email, password string, role models.Role) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	key := normalize(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[key]; ok {
		return models.User{}, ErrUserExists
	}

	user := models.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	s.byEmail[key] = record{user: user, hash: string(hash)}
	return user, nil
}

// Authenticate returns the user matching email when the password checks out
// against the stored hash.
func (s *Store) Authenticate(email, password string) (models.User, error) {
	s.mu.Lock()
	rec, ok := s.byEmail[normalize(email)]
	s.mu.Unlock()

	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.hash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return rec.user, nil
}

func (s *Store) GetByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.byEmail[normalize(email)]
	return rec.user, ok
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
