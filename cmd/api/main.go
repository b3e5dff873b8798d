package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/allersafe/backend/config"
	"github.com/allersafe/backend/internal/api"
	"github.com/allersafe/backend/internal/catalog"
	"github.com/allersafe/backend/internal/kvstore"
	"github.com/allersafe/backend/internal/router"
	"github.com/allersafe/backend/internal/server"
	"github.com/allersafe/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open the backing store. A nil store means session-only state.
	store, err := kvstore.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open backing store: %v", err)
	}
	if store == nil {
		log.Printf("No backing store configured; state is session-only")
	}

	// Image storage is optional
	s3cfg, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.Printf("S3 unavailable, image upload disabled: %v", err)
		s3cfg = nil
	}

	// Services
	authService := service.NewAuthService(store, cfg.JWTSecret)
	profileService := service.NewProfileService(store)
	imageService := service.NewImageService(s3cfg)
	repo := catalog.NewRepository(store)

	// Handlers and routes
	engine := router.SetupRouter(
		api.NewAuthHandler(authService),
		api.NewProfileHandler(authService, profileService),
		api.NewMealHandler(repo, profileService),
		api.NewCatalogHandler(repo, imageService),
		authService,
	)

	addr := net.JoinHostPort(cfg.ServerHost, cfg.ServerPort)
	srv := server.New(addr, engine)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Starting server on %s...", addr)
		errChan <- srv.Start()
	}()

	// Block until we receive a signal or error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server
	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
