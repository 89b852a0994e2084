package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/money"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/repository"
)

var (
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidExtra    = errors.New("extra does not belong to product")
	ErrInvalidOrder    = errors.New("invalid order")
	ErrInvalidFavorite = errors.New("invalid favorite")
)

// OrderService handles order business logic
type OrderService struct {
	foods  repository.FoodRepository
	orders repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(foods repository.FoodRepository, orders repository.OrderRepository) *OrderService {
	return &OrderService{
		foods:  foods,
		orders: orders,
	}
}

// CreateOrder validates the order against the catalog and stores it.
// Price and extra values always come from the catalog. The total is
// recomputed when the client sends a food quantity and dropped otherwise,
// so a client total is never stored.
func (s *OrderService) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	if err := order.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}

	food, err := s.foods.GetFood(ctx, order.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidProduct
		}
		return nil, fmt.Errorf("failed to look up food %d: %w", order.ProductID, err)
	}

	known := make(map[int64]models.Extra, len(food.Extras))
	for _, extra := range food.Extras {
		known[extra.ID] = extra
	}

	priced := make([]models.Extra, 0, len(order.Extras))
	for _, extra := range order.Extras {
		catalogExtra, ok := known[extra.ID]
		if !ok {
			return nil, fmt.Errorf("%w: extra %d", ErrInvalidExtra, extra.ID)
		}
		catalogExtra.Quantity = extra.Quantity
		priced = append(priced, catalogExtra)
	}

	order.Price = food.Price
	order.Extras = priced
	order.Total = nil
	if order.Quantity > 0 {
		total := money.CartTotal(food.Price, priced, order.Quantity)
		order.Total = &total
	}

	return s.orders.CreateOrder(ctx, order)
}

// ListOrders returns the order history
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.ListOrders(ctx)
}
