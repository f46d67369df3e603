package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/bakepos/catalog"
	"github.com/ray-remotestate/bakepos/config"
	"github.com/ray-remotestate/bakepos/handlers"
	"github.com/ray-remotestate/bakepos/payment"
	"github.com/ray-remotestate/bakepos/reports"
	"github.com/ray-remotestate/bakepos/server"
	"github.com/ray-remotestate/bakepos/store"
	"github.com/ray-remotestate/bakepos/userstore"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.Panicf("failed to load configuration, error: %v", err)
	}

	users := userstore.New()
	if err := users.SeedDefaultAdmin(); err != nil {
		log.Panicf("failed to seed default admin, error: %v", err)
	}

	cat := catalog.Default()
	orders := store.NewFileStore(cfg.OrdersFile)
	payments := payment.NewSimulator(orders, cfg.PaymentDelay, log)
	reporting := reports.NewService(orders, cat)

	h := handlers.New(log, cat, orders, payments, reporting, users, cfg.SecretKey)
	h.CatalogDelay = cfg.CatalogDelay

	svr := server.SetupRoutes(h)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Infof("bakery POS listening on :%s", cfg.Port)
		if err := svr.Run(":" + cfg.Port); err != nil {
			log.WithError(err).Info("server stopped")
		}
	}()

	<-done

	log.Info("shutting down...")
	if err := svr.Shutdown(shutdownTimeout); err != nil {
		log.WithError(err).Error("failed to shut down cleanly")
	}
}
