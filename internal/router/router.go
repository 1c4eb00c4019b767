package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"bajotierra-backend/internal/handlers"
	"bajotierra-backend/internal/middleware"
)

// maxBodyBytes allows base64 image uploads inside chat request bodies.
const maxBodyBytes = 50 << 20

func New(
	reservationHandler *handlers.ReservationHandler,
	chatHandler *handlers.ChatHandler,
	assets http.Handler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.BodyLimit(maxBodyBytes))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{frontendURL},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ──── Reservation Routes ────
	r.Get("/reservations", reservationHandler.List)
	r.Post("/reservations", reservationHandler.Create)

	// ──── Chat Route ────
	r.Post("/chat", chatHandler.SendMessage)

	// Everything else is the frontend: static bundle in production, dev
	// server proxy otherwise.
	if assets != nil {
		r.NotFound(assets.ServeHTTP)
	}

	return r
}
