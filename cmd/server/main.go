package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bajotierra-backend/internal/config"
	"bajotierra-backend/internal/database"
	"bajotierra-backend/internal/handlers"
	"bajotierra-backend/internal/repository"
	"bajotierra-backend/internal/router"
	"bajotierra-backend/internal/services"
	"bajotierra-backend/internal/web"
)

func main() {
	log.Println("🏓 Starting Bajo Tierra Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Open SQLite Database ────
	db, err := database.NewSQLite(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("✗ SQLite initialization failed: %v", err)
	}
	log.Printf("✓ SQLite ready at %s (WAL mode)", cfg.DatabasePath)

	// ──── Step 3: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	if cfg.GeminiAPIKey == "" {
		log.Println("! GEMINI_API_KEY not set; chat requests will be rejected")
	} else {
		log.Println("✓ Gemini Flash client initialized")
	}

	// ──── Initialize Repositories & Handlers ────
	reservationRepo := repository.NewReservationRepo(db)
	reservationHandler := handlers.NewReservationHandler(reservationRepo)
	chatHandler := handlers.NewChatHandler(geminiService)

	// ──── Step 4: Frontend Assets ────
	var assets http.Handler
	if cfg.IsProduction() {
		assets = web.NewSPA(cfg.StaticDir)
		log.Printf("✓ Serving static assets from %s", cfg.StaticDir)
	} else {
		assets, err = web.NewDevProxy(cfg.DevServerURL)
		if err != nil {
			log.Fatalf("✗ Dev server proxy setup failed: %v", err)
		}
		log.Printf("✓ Proxying frontend to %s", cfg.DevServerURL)
	}

	// ──── Step 5: Start HTTP Server ────
	r := router.New(reservationHandler, chatHandler, assets, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute, // chat turns replay the transcript upstream
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Bajo Tierra Backend ready on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
