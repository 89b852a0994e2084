package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/models"
)

func TestListFoods(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{"all foods", "", 5},
		{"by category", "?category_like=2", 1},
		{"by name", "?name_like=molho", 1},
		{"by category and name", "?category_like=1&name_like=veg", 1},
		{"empty name", "?name_like=", 5},
		{"no match", "?name_like=sushi", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/foods"+tt.query, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var foods []models.Food
			if err := json.NewDecoder(w.Body).Decode(&foods); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if len(foods) != tt.wantCount {
				t.Errorf("expected %d foods, got %d", tt.wantCount, len(foods))
			}
		})
	}
}

func TestGetFood_Success(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/foods/1", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var food models.Food
	if err := json.NewDecoder(w.Body).Decode(&food); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if food.ID != 1 {
		t.Errorf("expected food ID 1, got %d", food.ID)
	}
	if food.Name != "Ao molho" {
		t.Errorf("expected food name 'Ao molho', got %s", food.Name)
	}
	if food.Price.String() != "19.9" {
		t.Errorf("expected price 19.9, got %s", food.Price)
	}
	if len(food.Extras) != 2 {
		t.Errorf("expected 2 extras, got %d", len(food.Extras))
	}
}

func TestGetFood_NotFound(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/foods/999", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	var response ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}

	if response.Error != "Food not found" {
		t.Errorf("expected error message 'Food not found', got %s", response.Error)
	}
}

func TestGetFood_InvalidID(t *testing.T) {
	r := newTestRouter(t)

	testCases := []struct {
		name string
		id   string
	}{
		{"letters", "invalid"},
		{"special chars", "abc@123"},
		{"float", "12.34"},
		{"zero", "0"},
		{"negative", "-1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/foods/"+tc.id, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400 for ID %s, got %d", tc.id, w.Code)
			}
		})
	}
}

func TestListCategories(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var categories []models.Category
	if err := json.NewDecoder(w.Body).Decode(&categories); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(categories) != 3 {
		t.Errorf("expected 3 categories, got %d", len(categories))
	}
}
