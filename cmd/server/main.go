package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/andreeabea/FoodDeliveryAppServer/config"
	"github.com/andreeabea/FoodDeliveryAppServer/internal/db"
	"github.com/andreeabea/FoodDeliveryAppServer/internal/notify"
	"github.com/andreeabea/FoodDeliveryAppServer/internal/ops"
	"github.com/andreeabea/FoodDeliveryAppServer/internal/service"
	"github.com/andreeabea/FoodDeliveryAppServer/internal/session"
	"github.com/andreeabea/FoodDeliveryAppServer/logging"
)

func main() {
	logger := logging.GetSugaredLogger()
	defer logger.Sync()

	cfg := config.GetConfig()

	var database db.Database
	switch cfg.Storage {
	case "memory":
		database = db.NewMemory()
	default:
		manager, err := db.NewManager(cfg)
		if err != nil {
			logger.Fatalw("unable to open storage", "error", err)
		}
		database = manager
	}
	defer database.Close()

	hub := notify.NewHub(logger)
	registry := session.NewRegistry()
	services := session.Services{
		Users:       service.NewUsers(database, logger),
		Restaurants: service.NewRestaurants(database, logger),
		Items:       service.NewItems(database, logger),
		Orders:      service.NewOrders(database, logger),
		Ratings:     service.NewRatings(database, logger),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	opsServer := &http.Server{
		Addr:    cfg.OpsAddress,
		Handler: ops.NewRouter(database, registry, logger),
	}
	go func() {
		logger.Infow("ops endpoints up", "address", cfg.OpsAddress)
		if err := opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("ops server stopped", "error", err)
		}
	}()

	listener, err := net.Listen("tcp", cfg.RunAddress)
	if err != nil {
		logger.Fatalw("unable to listen", "address", cfg.RunAddress, "error", err)
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		listener.Close()
		opsServer.Shutdown(context.Background())
		registry.CloseAll()
	}()

	logger.Infow("accepting clients", "address", cfg.RunAddress, "storage", cfg.Storage)
	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Errorw("accept failed", "error", err)
			continue
		}

		s := session.New(conn, services, hub, registry, logger)
		registry.Add(s)
		logger.Infow("client connected", "session", s.ID, "remote", conn.RemoteAddr())
		go s.Run()
	}
}
