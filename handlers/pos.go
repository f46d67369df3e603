package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ray-remotestate/bakepos/models"
)

// browseDelay mimics the original demo's simulated network latency on
// read-only catalog endpoints. The POS core is never delayed.
func (h *Handler) browseDelay() {
	if h.CatalogDelay > 0 {
		time.Sleep(h.CatalogDelay)
	}
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	h.browseDelay()

	var products []models.Product
	switch {
	case r.URL.Query().Get("q") != "":
		products = h.Catalog.Search(r.URL.Query().Get("q"))
	case r.URL.Query().Get("category") != "" && r.URL.Query().Get("category") != "all":
		category := models.Category(r.URL.Query().Get("category"))
		if !category.IsValid() {
			http.Error(w, "invalid category", http.StatusBadRequest)
			return
		}
		products = h.Catalog.ListByCategory(category)
	default:
		products = h.Catalog.List()
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	h.browseDelay()

	product, ok := h.Catalog.FindProductByID(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Categories)
}

// CreateOrder starts a new transaction, replacing any current order.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	order := h.manager.CreateOrder()
	h.mu.Unlock()

	h.Log.WithField("order_number", order.OrderNumber).Info("order created")
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) GetCurrentOrder(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	order, err := h.manager.CurrentOrder()
	h.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	type request struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
		Notes     string `json:"notes"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	product, ok := h.Catalog.FindProductByID(req.ProductID)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.manager.AddItem(product, req.Quantity, req.Notes); err != nil {
		writeError(w, err)
		return
	}

	order, _ := h.manager.CurrentOrder()
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) SetItemQuantity(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Quantity int `json:"quantity"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.manager.SetItemQuantity(mux.Vars(r)["productId"], req.Quantity); err != nil {
		writeError(w, err)
		return
	}

	order, _ := h.manager.CurrentOrder()
	writeJSON(w, http.StatusOK, order)
}

// UpdateOrder patches current-order metadata. Absent fields are left alone.
func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	type request struct {
		CustomerName *string `json:"customer_name"`
		TableNumber  *string `json:"table_number"`
		OrderType    *string `json:"order_type"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if req.CustomerName != nil {
		if err := h.manager.UpdateCustomerName(*req.CustomerName); err != nil {
			writeError(w, err)
			return
		}
	}
	if req.TableNumber != nil {
		if err := h.manager.UpdateTableNumber(*req.TableNumber); err != nil {
			writeError(w, err)
			return
		}
	}
	if req.OrderType != nil {
		if err := h.manager.UpdateOrderType(models.OrderType(*req.OrderType)); err != nil {
			writeError(w, err)
			return
		}
	}

	order, err := h.manager.CurrentOrder()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) ApplyPromo(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Code string `json:"code"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.manager.ApplyPromo(req.Code); err != nil {
		writeError(w, err)
		return
	}

	order, _ := h.manager.CurrentOrder()
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	placed, err := h.manager.PlaceOrder(h.Orders)
	h.mu.Unlock()

	if err != nil {
		writeError(w, err)
		return
	}

	h.Log.WithFields(map[string]interface{}{
		"order_number": placed.OrderNumber,
		"total":        placed.Total,
	}).Info("order placed")
	writeJSON(w, http.StatusCreated, placed)
}

func (h *Handler) PayOrder(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Method string `json:"method"`
	}

	orderID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	paid, err := h.Payments.Process(r.Context(), orderID, req.Method)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, paid)
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List()
	if err != nil {
		h.Log.WithError(err).Error("failed to list orders")
		http.Error(w, "failed to list orders", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}
