package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/service"
	"github.com/go-chi/chi/v5"
)

// FoodHandler handles food and category HTTP requests
type FoodHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewFoodHandler creates a new food handler
func NewFoodHandler(service *service.CatalogService, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{
		service: service,
		logger:  logger,
	}
}

// ListFoods handles GET /foods?category_like=&name_like=
func (h *FoodHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	query := service.FoodQuery{
		CategoryLike: r.URL.Query().Get("category_like"),
		NameLike:     r.URL.Query().Get("name_like"),
	}

	foods, err := h.service.ListFoods(r.Context(), query)
	if err != nil {
		h.logger.Error("failed to list foods", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, foods, h.logger)
}

// GetFood handles GET /foods/{foodId}
// - 200: the food with its extras
// - 400: Invalid ID supplied
// - 404: Food not found
func (h *FoodHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	foodID, ok := parseID(r, "foodId")
	if !ok {
		h.logger.Warn("invalid food ID", "foodId", chi.URLParam(r, "foodId"))
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	food, err := h.service.GetFood(r.Context(), foodID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.logger.Info("food not found", "foodId", foodID)
			WriteError(w, http.StatusNotFound, "Food not found", h.logger)
			return
		}

		h.logger.Error("failed to get food", "foodId", foodID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, food, h.logger)
}

// ListCategories handles GET /categories
func (h *FoodHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("failed to list categories", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, categories, h.logger)
}
