package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/bakepos/catalog"
	"github.com/ray-remotestate/bakepos/payment"
	"github.com/ray-remotestate/bakepos/pos"
	"github.com/ray-remotestate/bakepos/reports"
	"github.com/ray-remotestate/bakepos/store"
	"github.com/ray-remotestate/bakepos/userstore"
)

// Handler carries every collaborator the HTTP surface needs. The POS
// mutations are serialized with a mutex: the manager models a single
// terminal with a single writer, and the HTTP layer is where that
// arbitration lives.
type Handler struct {
	Log      *logrus.Logger
	Catalog  *catalog.Catalog
	Orders   store.OrderStore
	Payments *payment.Simulator
	Reports  *reports.Service
	Users    *userstore.Store
	Secret   []byte

	// CatalogDelay reproduces the original demo's artificial browse
	// latency. Zero disables it.
	CatalogDelay time.Duration

	mu      sync.Mutex
	manager *pos.Manager
}

func New(log *logrus.Logger, cat *catalog.Catalog, orders store.OrderStore, payments *payment.Simulator, rep *reports.Service, users *userstore.Store, secret []byte) *Handler {
	return &Handler{
		Log:      log,
		Catalog:  cat,
		Orders:   orders,
		Payments: payments,
		Reports:  rep,
		Users:    users,
		Secret:   secret,
		manager:  pos.NewManager(cat),
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP statuses, keeping the body a
// plain message like the rest of the service.
func writeError(w http.ResponseWriter, err error) {
	var validationErr pos.ValidationError
	var notFoundErr pos.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &notFoundErr):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, pos.ErrNoActiveOrder):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, store.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, userstore.ErrUserExists):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, userstore.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
