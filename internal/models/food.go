package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// json-server stores prices as numbers, so decimals go out unquoted
	decimal.MarshalJSONWithoutQuotes = true
}

// Food represents a dish listed by the API
// Extras are only present when the food is fetched by id
type Food struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     int64           `json:"category"`
	ThumbnailURL string          `json:"thumbnail_url"`
	ImageURL     string          `json:"image_url"`
	Extras       []Extra         `json:"extras,omitempty"`
}

// Extra is an add-on item priced per unit
type Extra struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Quantity int             `json:"quantity"`
}

// Validate checks the food and its extras
func (f Food) Validate() error {
	if f.ID <= 0 {
		return invalid("food", "id", "must be positive")
	}
	if f.Name == "" {
		return invalid("food", "name", "is required")
	}
	if f.Price.IsNegative() {
		return invalid("food", "price", "must not be negative")
	}
	for _, extra := range f.Extras {
		if err := extra.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a single extra
func (e Extra) Validate() error {
	if e.ID <= 0 {
		return invalid("extra", "id", "must be positive")
	}
	if e.Name == "" {
		return invalid("extra", "name", "is required")
	}
	if e.Value.IsNegative() {
		return invalid("extra", "value", "must not be negative")
	}
	if e.Quantity < 0 {
		return invalid("extra", "quantity", "must not be negative")
	}
	return nil
}
