package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/models"
	"github.com/shopspring/decimal"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(*testing.T, *models.Order)
	}{
		{
			name: "successful order",
			requestBody: models.Order{
				ProductID: 1,
				Name:      "Ao molho",
				Price:     decimal.RequireFromString("19.9"),
				Category:  1,
				Extras: []models.Extra{
					{ID: 1, Name: "Bacon", Value: decimal.RequireFromString("1.5"), Quantity: 2},
				},
				Quantity: 1,
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, order *models.Order) {
				if order.ID <= 0 {
					t.Errorf("expected positive order ID, got %d", order.ID)
				}
				if len(order.Extras) != 1 {
					t.Errorf("expected 1 extra, got %d", len(order.Extras))
				}
				if order.Total == nil || order.Total.String() != "22.9" {
					t.Errorf("expected total 22.9, got %v", order.Total)
				}
			},
		},
		{
			name: "order from a client without quantity",
			requestBody: map[string]interface{}{
				"product_id":    2,
				"name":          "Veggie",
				"description":   "Macarrão",
				"price":         21.9,
				"category":      1,
				"thumbnail_url": "",
				"extras":        []interface{}{},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, order *models.Order) {
				if order.Total != nil {
					t.Errorf("expected no total, got %s", order.Total)
				}
			},
		},
		{
			name:           "missing product",
			requestBody:    models.Order{Name: "Ao molho"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown product",
			requestBody:    models.Order{ProductID: 99999, Name: "Ghost"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "extra of another food",
			requestBody: models.Order{
				ProductID: 1,
				Name:      "Ao molho",
				Extras:    []models.Extra{{ID: 6, Name: "Azeitonas"}},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body []byte
			var err error

			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatalf("failed to marshal request: %v", err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
			req.Header.Set("api_key", testAPIKey)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			if tt.expectedStatus == http.StatusCreated && tt.checkResponse != nil {
				var order models.Order
				if err := json.NewDecoder(w.Body).Decode(&order); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				tt.checkResponse(t, &order)
			}
		})
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	r := newTestRouter(t)

	body := `{"product_id": 4, "name": "Margherita", "price": 39.9, "extras": []}`
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(body))
	req.Header.Set("api_key", testAPIKey)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/orders", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", w.Code)
	}

	var orders []models.Order
	if err := json.NewDecoder(w.Body).Decode(&orders); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(orders) != 1 || orders[0].Name != "Margherita" {
		t.Errorf("unexpected orders: %+v", orders)
	}
}
