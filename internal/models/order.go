package models

import "github.com/shopspring/decimal"

// Order is a submitted food with the extras chosen at submission time
// ID is assigned by the API; Quantity and Total are absent on orders
// placed by clients that do not send them
type Order struct {
	ID           int64            `json:"id,omitempty"`
	ProductID    int64            `json:"product_id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Price        decimal.Decimal  `json:"price"`
	Category     int64            `json:"category"`
	ThumbnailURL string           `json:"thumbnail_url"`
	Extras       []Extra          `json:"extras"`
	Quantity     int              `json:"quantity,omitempty"`
	Total        *decimal.Decimal `json:"total,omitempty"`
}

// Validate checks the fields every order must carry
func (o Order) Validate() error {
	if o.ProductID <= 0 {
		return invalid("order", "product_id", "must be positive")
	}
	if o.Name == "" {
		return invalid("order", "name", "is required")
	}
	if o.Price.IsNegative() {
		return invalid("order", "price", "must not be negative")
	}
	if o.Quantity < 0 {
		return invalid("order", "quantity", "must not be negative")
	}
	if o.Total != nil && o.Total.IsNegative() {
		return invalid("order", "total", "must not be negative")
	}
	for _, extra := range o.Extras {
		if err := extra.Validate(); err != nil {
			return err
		}
	}
	return nil
}
