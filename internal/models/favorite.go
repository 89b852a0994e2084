package models

import "github.com/shopspring/decimal"

// Favorite is a food marked by the user, keyed by the food id
type Favorite struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     int64           `json:"category"`
	ThumbnailURL string          `json:"thumbnail_url"`
	ImageURL     string          `json:"image_url"`
}

// NewFavorite copies the food fields without its extras
func NewFavorite(food Food) Favorite {
	return Favorite{
		ID:           food.ID,
		Name:         food.Name,
		Description:  food.Description,
		Price:        food.Price,
		Category:     food.Category,
		ThumbnailURL: food.ThumbnailURL,
		ImageURL:     food.ImageURL,
	}
}

func (f Favorite) Validate() error {
	if f.ID <= 0 {
		return invalid("favorite", "id", "must be positive")
	}
	if f.Name == "" {
		return invalid("favorite", "name", "is required")
	}
	if f.Price.IsNegative() {
		return invalid("favorite", "price", "must not be negative")
	}
	return nil
}
