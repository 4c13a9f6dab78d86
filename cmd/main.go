package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"stillpad-notes/stillpad/broker"
	"stillpad-notes/stillpad/config"
	"stillpad-notes/stillpad/logging"
	"stillpad-notes/stillpad/middleware"
	"stillpad-notes/stillpad/routes"
	"stillpad-notes/stillpad/services"
	"stillpad-notes/stillpad/store"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.IsProduction())

	noteStore := store.NewNoteStore()

	producer := broker.NewDisabledProducer()
	if cfg.NatsEnabled {
		connected, err := broker.NewProducer(cfg.NatsURL)
		if err != nil {
			log.Warnf("failed to connect to NATS at %s: %v", cfg.NatsURL, err)
			log.Warn("continuing without event publishing")
		} else {
			producer = connected
		}
	}
	defer producer.Close()

	webSocketService := services.NewWebSocketService()
	webSocketService.Start()
	defer webSocketService.Stop()

	noteService := services.NewNoteService(noteStore, producer, webSocketService)

	if cfg.SeedDemoNotes {
		services.SeedDemoNotes(noteService, cfg.SeedNoteCount)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	api := router.Group("/api/v1")
	routes.RegisterNoteRoutes(api, noteService)
	routes.RegisterCategoryRoutes(api, noteService)
	if !cfg.IsProduction() {
		routes.RegisterAdminRoutes(api, noteService)
	}
	routes.RegisterWebSocketRoutes(router, webSocketService)
	routes.RegisterHealthRoutes(router, noteService)

	server := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	go func() {
		log.Infof("API server is running on port %s", cfg.AppPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Forced shutdown: %v", err)
	}
}
