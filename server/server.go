package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ray-remotestate/bakepos/handlers"
	"github.com/ray-remotestate/bakepos/middlewares"
	"github.com/ray-remotestate/bakepos/models"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

func SetupRoutes(h *handlers.Handler) *Server {
	router := mux.NewRouter()
	authRoutes := router.PathPrefix("/api").Subrouter()
	authRoutes.Use(middlewares.AuthMiddleware(h.Secret))

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")
	router.HandleFunc("/register", h.Register).Methods("POST")
	router.HandleFunc("/refresh", h.RefreshToken).Methods("POST")
	router.HandleFunc("/login", h.Login).Methods("POST")
	authRoutes.HandleFunc("/logout", h.Logout).Methods("POST")
	authRoutes.HandleFunc("/me", h.Me).Methods("GET")

	// catalog
	authRoutes.HandleFunc("/products", h.ListProducts).Methods("GET")
	authRoutes.HandleFunc("/products/{id}", h.GetProduct).Methods("GET")
	authRoutes.HandleFunc("/categories", h.ListCategories).Methods("GET")

	// point of sale
	authRoutes.HandleFunc("/orders", h.CreateOrder).Methods("POST")
	authRoutes.HandleFunc("/orders", h.ListOrders).Methods("GET")
	authRoutes.HandleFunc("/orders/current", h.GetCurrentOrder).Methods("GET")
	authRoutes.HandleFunc("/orders/current", h.UpdateOrder).Methods("PATCH")
	authRoutes.HandleFunc("/orders/current/items", h.AddItem).Methods("POST")
	authRoutes.HandleFunc("/orders/current/items/{productId}", h.SetItemQuantity).Methods("PUT")
	authRoutes.HandleFunc("/orders/current/promo", h.ApplyPromo).Methods("POST")
	authRoutes.HandleFunc("/orders/current/place", h.PlaceOrder).Methods("POST")
	authRoutes.HandleFunc("/orders/{id}/pay", h.PayOrder).Methods("POST")

	// reporting, admin only
	admin := authRoutes.PathPrefix("/reports").Subrouter()
	admin.Use(middlewares.RoleBasedMiddleware(models.RoleAdmin))

	admin.HandleFunc("/sales", h.SalesReport).Methods("GET")
	admin.HandleFunc("/favorites", h.FavoriteProducts).Methods("GET")

	// staff can see the activity feed
	authRoutes.HandleFunc("/activity/history", h.OrderHistory).Methods("GET")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	svr.server = &http.Server{
		Addr:              port,
		Handler:           svr.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
