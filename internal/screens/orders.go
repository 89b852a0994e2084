package screens

import (
	"context"
	"log/slog"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/money"
)

// OrderLister is the part of the API the orders screen reads
type OrderLister interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
}

// OrderItem is an order ready for display
type OrderItem struct {
	models.Order
	FormattedPrice string
}

// Orders is the order history screen
type Orders struct {
	api    OrderLister
	format *money.Formatter
	log    *slog.Logger

	items []OrderItem
	err   error
}

func NewOrders(lister OrderLister, format *money.Formatter, log *slog.Logger) *Orders {
	return &Orders{
		api:    lister,
		format: format,
		log:    orDiscard(log),
	}
}

// Load fetches the history
func (o *Orders) Load(ctx context.Context) error {
	orders, err := o.Fetch(ctx)
	o.Apply(orders, err)
	return err
}

// Fetch requests the history without touching screen state
func (o *Orders) Fetch(ctx context.Context) ([]models.Order, error) {
	return o.api.ListOrders(ctx)
}

// Apply replaces the list. On error the previous list is kept.
func (o *Orders) Apply(orders []models.Order, err error) {
	if err != nil {
		o.err = err
		o.log.Error("failed to load orders", "error", err)
		return
	}

	items := make([]OrderItem, 0, len(orders))
	for _, order := range orders {
		items = append(items, OrderItem{Order: order, FormattedPrice: o.format.Format(order.Price)})
	}
	o.items = items
	o.err = nil
}

func (o *Orders) Items() []OrderItem { return o.items }

func (o *Orders) Err() error { return o.err }
