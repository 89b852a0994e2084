package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/middleware"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// NewRouter wires services and handlers over the store and returns the
// json-server compatible API
func NewRouter(store *repository.InMemoryStore, auth config.AuthConfig, log *slog.Logger) http.Handler {
	// Initialize services
	catalogService := service.NewCatalogService(store, store)
	favoriteService := service.NewFavoriteService(store, store)
	orderService := service.NewOrderService(store, store)

	// Initialize handlers
	healthHandler := NewHealthHandler(log, Version)
	foodHandler := NewFoodHandler(catalogService, log)
	favoriteHandler := NewFavoriteHandler(favoriteService, log)
	orderHandler := NewOrderHandler(orderService, log)

	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// The app runs on devices and emulators, any origin may call in
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id", "api_key"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)

	r.Get("/foods", foodHandler.ListFoods)
	r.Get("/foods/{foodId}", foodHandler.GetFood)
	r.Get("/categories", foodHandler.ListCategories)
	r.Get("/favorites/{foodId}", favoriteHandler.GetFavorite)
	r.Get("/orders", orderHandler.ListOrders)

	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(auth))

		r.Post("/favorites", favoriteHandler.AddFavorite)
		r.Delete("/favorites/{foodId}", favoriteHandler.RemoveFavorite)
		r.Post("/orders", orderHandler.CreateOrder)
	})

	return r
}
