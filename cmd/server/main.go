package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"lendshare/internal/adapters/http/middleware"
	"lendshare/internal/adapters/http/routes"
	"lendshare/internal/config"
	"lendshare/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Select storage backend (MongoDB when reachable, memory otherwise)
	store, err := config.ConnectStorage(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to set up storage: %v", err)
	}
	defer config.CloseStorage()

	// Start periodic storage snapshot logging
	snapshotService, err := services.NewSnapshotService(store, cfg.SnapshotSchedule)
	if err != nil {
		log.Fatalf("❌ Failed to start snapshot service: %v", err)
	}
	snapshotService.Start()
	defer snapshotService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "lendshare API",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, store)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s, STORAGE: %s]", cfg.Port, cfg.AppMode, store.Backend)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
