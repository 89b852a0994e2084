package tui

import (
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/screens"
)

// navigateMsg pushes a route
type navigateMsg struct {
	route screens.Route
}

// goBackMsg pops the current route
type goBackMsg struct{}

type categoriesLoadedMsg struct {
	categories []models.Category
	err        error
}

// foodsLoadedMsg carries the sequence of the fetch that produced it so
// stale results can be dropped
type foodsLoadedMsg struct {
	seq   uint64
	foods []models.Food
	err   error
}

type foodLoadedMsg struct {
	food *models.Food
	err  error
}

type favoriteCheckedMsg struct {
	err error
}

type favoriteToggledMsg struct {
	toggle screens.FavoriteToggle
	err    error
}

type orderPlacedMsg struct {
	order *models.Order
	err   error
}

type ordersLoadedMsg struct {
	orders []models.Order
	err    error
}
