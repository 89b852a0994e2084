package screens

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/api"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/money"
	"github.com/shopspring/decimal"
)

var errNetwork = errors.New("dial tcp: connection refused")

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newFormatter(t *testing.T) *money.Formatter {
	t.Helper()

	f, err := money.NewFormatter("pt-BR", "BRL")
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}
	return f
}

// fakeAPI is an in-memory stand-in for the API client
type fakeAPI struct {
	mu sync.Mutex

	foods      []models.Food
	categories []models.Category
	favorites  map[int64]models.Favorite
	orders     []models.Order

	listFoodsErr      error
	listCategoriesErr error
	getFoodErr     error
	getFavoriteErr error
	toggleErr      error
	createOrderErr error
	listOrdersErr  error

	filters []api.FoodFilter
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		foods: []models.Food{
			{
				ID: 1, Name: "Ao molho", Price: d("19.9"), Category: 1,
				Extras: []models.Extra{
					{ID: 1, Name: "Bacon", Value: d("1.5"), Quantity: 7},
					{ID: 2, Name: "Frango", Value: d("2"), Quantity: 3},
				},
			},
			{ID: 2, Name: "Margherita", Price: d("39.9"), Category: 2},
		},
		categories: []models.Category{{ID: 1, Title: "Massas"}, {ID: 2, Title: "Pizzas"}},
		favorites:  make(map[int64]models.Favorite),
	}
}

func (f *fakeAPI) ListFoods(ctx context.Context, filter api.FoodFilter) ([]models.Food, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.filters = append(f.filters, filter)
	if f.listFoodsErr != nil {
		return nil, f.listFoodsErr
	}

	var out []models.Food
	for _, food := range f.foods {
		if filter.Category != nil && food.Category != *filter.Category {
			continue
		}
		out = append(out, food)
	}
	return out, nil
}

func (f *fakeAPI) ListCategories(ctx context.Context) ([]models.Category, error) {
	if f.listCategoriesErr != nil {
		return nil, f.listCategoriesErr
	}
	return f.categories, nil
}

func (f *fakeAPI) GetFood(ctx context.Context, id int64) (*models.Food, error) {
	if f.getFoodErr != nil {
		return nil, f.getFoodErr
	}
	for _, food := range f.foods {
		if food.ID == id {
			food.Extras = append([]models.Extra(nil), food.Extras...)
			return &food, nil
		}
	}
	return nil, &api.StatusError{Method: "GET", Path: "/foods", StatusCode: 404}
}

func (f *fakeAPI) GetFavorite(ctx context.Context, foodID int64) (*models.Favorite, error) {
	if f.getFavoriteErr != nil {
		return nil, f.getFavoriteErr
	}
	fav, ok := f.favorites[foodID]
	if !ok {
		return nil, &api.StatusError{Method: "GET", Path: "/favorites", StatusCode: 404}
	}
	return &fav, nil
}

func (f *fakeAPI) AddFavorite(ctx context.Context, fav models.Favorite) error {
	if f.toggleErr != nil {
		return f.toggleErr
	}
	f.favorites[fav.ID] = fav
	return nil
}

func (f *fakeAPI) RemoveFavorite(ctx context.Context, foodID int64) error {
	if f.toggleErr != nil {
		return f.toggleErr
	}
	delete(f.favorites, foodID)
	return nil
}

func (f *fakeAPI) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	if f.createOrderErr != nil {
		return nil, f.createOrderErr
	}
	order.ID = int64(len(f.orders) + 1)
	f.orders = append(f.orders, order)
	return &order, nil
}

func (f *fakeAPI) ListOrders(ctx context.Context) ([]models.Order, error) {
	if f.listOrdersErr != nil {
		return nil, f.listOrdersErr
	}
	return f.orders, nil
}
