package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/service"
)

// FavoriteHandler handles the favorites resource
type FavoriteHandler struct {
	service *service.FavoriteService
	log     *slog.Logger
}

func NewFavoriteHandler(service *service.FavoriteService, log *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		log:     log,
	}
}

// GetFavorite handles GET /favorites/{foodId}; 404 means not a favorite
func (h *FavoriteHandler) GetFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "foodId")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	fav, err := h.service.GetFavorite(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Favorite not found", h.log)
			return
		}
		h.log.Error("failed to get favorite", "foodId", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, fav, h.log)
}

// AddFavorite handles POST /favorites
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req models.Favorite

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode favorite request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	fav, err := h.service.AddFavorite(r.Context(), req)
	if err != nil {
		h.log.Error("failed to add favorite", "foodId", req.ID, "error", err)

		switch {
		case errors.Is(err, service.ErrInvalidFavorite):
			WriteError(w, http.StatusBadRequest, "Invalid favorite", h.log)
		case errors.Is(err, service.ErrInvalidProduct):
			WriteError(w, http.StatusBadRequest, "Invalid product", h.log)
		case errors.Is(err, repository.ErrAlreadyExists):
			WriteError(w, http.StatusConflict, "Food is already a favorite", h.log)
		default:
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, fav, h.log)
}

// RemoveFavorite handles DELETE /favorites/{foodId}
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "foodId")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	if err := h.service.RemoveFavorite(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Favorite not found", h.log)
			return
		}
		h.log.Error("failed to remove favorite", "foodId", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	// json-server answers a delete with an empty object
	WriteJSON(w, http.StatusOK, struct{}{}, h.log)
}
