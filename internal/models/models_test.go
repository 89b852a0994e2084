package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFood_Validate(t *testing.T) {
	valid := Food{
		ID:    1,
		Name:  "Ao molho",
		Price: decimal.RequireFromString("19.90"),
		Extras: []Extra{
			{ID: 1, Name: "Bacon", Value: decimal.RequireFromString("1.50")},
		},
	}

	tests := []struct {
		name      string
		mutate    func(f *Food)
		wantField string
	}{
		{name: "valid", mutate: func(f *Food) {}},
		{name: "zero id", mutate: func(f *Food) { f.ID = 0 }, wantField: "id"},
		{name: "missing name", mutate: func(f *Food) { f.Name = "" }, wantField: "name"},
		{name: "negative price", mutate: func(f *Food) { f.Price = decimal.NewFromInt(-1) }, wantField: "price"},
		{name: "invalid extra", mutate: func(f *Food) { f.Extras = []Extra{{ID: 2, Name: "Egg", Quantity: -1}} }, wantField: "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			food := valid
			food.Extras = append([]Extra(nil), valid.Extras...)
			tt.mutate(&food)

			err := food.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("field = %s, want %s", verr.Field, tt.wantField)
			}
		})
	}
}

func TestCategory_Validate(t *testing.T) {
	if err := (Category{ID: 1, Title: "Massas"}).Validate(); err != nil {
		t.Errorf("expected valid category, got %v", err)
	}
	if err := (Category{ID: 1}).Validate(); err == nil {
		t.Error("expected error for missing title")
	}
}

func TestOrder_Validate(t *testing.T) {
	negative := decimal.NewFromInt(-5)

	tests := []struct {
		name    string
		order   Order
		wantErr bool
	}{
		{"valid", Order{ProductID: 1, Name: "Veggie", Price: decimal.NewFromInt(10)}, false},
		{"missing product", Order{Name: "Veggie"}, true},
		{"negative quantity", Order{ProductID: 1, Name: "Veggie", Quantity: -1}, true},
		{"negative total", Order{ProductID: 1, Name: "Veggie", Total: &negative}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.order.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewFavorite(t *testing.T) {
	food := Food{
		ID:       3,
		Name:     "A la Camarón",
		Price:    decimal.RequireFromString("19.90"),
		Category: 1,
		Extras:   []Extra{{ID: 1, Name: "Bacon"}},
	}

	fav := NewFavorite(food)
	if fav.ID != food.ID || fav.Name != food.Name || fav.Category != food.Category {
		t.Errorf("favorite does not mirror food: %+v", fav)
	}
	if !fav.Price.Equal(food.Price) {
		t.Errorf("price = %s, want %s", fav.Price, food.Price)
	}
}

func TestFood_PriceIsJSONNumber(t *testing.T) {
	body, err := json.Marshal(Food{ID: 1, Name: "Veggie", Price: decimal.RequireFromString("21.5")})
	if err != nil {
		t.Fatalf("failed to marshal food: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		t.Fatalf("failed to unmarshal food: %v", err)
	}
	if raw["price"] != 21.5 {
		t.Errorf("price = %v (%T), want number 21.5", raw["price"], raw["price"])
	}
}
