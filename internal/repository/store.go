package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// FoodRepository defines read access to the food catalog
type FoodRepository interface {
	ListFoods(ctx context.Context) ([]models.Food, error)
	GetFood(ctx context.Context, id int64) (*models.Food, error)
}

// CategoryRepository defines read access to categories
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// FavoriteRepository stores favorites keyed by food id
type FavoriteRepository interface {
	GetFavorite(ctx context.Context, id int64) (*models.Favorite, error)
	AddFavorite(ctx context.Context, fav models.Favorite) error
	RemoveFavorite(ctx context.Context, id int64) error
}

// OrderRepository stores submitted orders
type OrderRepository interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	CreateOrder(ctx context.Context, order models.Order) (*models.Order, error)
}

// InMemoryStore implements every repository with in-memory storage.
// Lists are returned in id order, matching json-server.
type InMemoryStore struct {
	mu          sync.RWMutex
	foods       map[int64]models.Food
	categories  map[int64]models.Category
	favorites   map[int64]models.Favorite
	orders      []models.Order
	nextOrderID int64
}

// NewInMemoryStore creates a store seeded with the catalog
func NewInMemoryStore(catalog Catalog) *InMemoryStore {
	s := &InMemoryStore{
		foods:       make(map[int64]models.Food, len(catalog.Foods)),
		categories:  make(map[int64]models.Category, len(catalog.Categories)),
		favorites:   make(map[int64]models.Favorite),
		nextOrderID: 1,
	}

	for _, food := range catalog.Foods {
		s.foods[food.ID] = food
	}
	for _, category := range catalog.Categories {
		s.categories[category.ID] = category
	}

	return s
}

// ListFoods returns all foods
func (s *InMemoryStore) ListFoods(ctx context.Context) ([]models.Food, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	foods := make([]models.Food, 0, len(s.foods))
	for _, food := range s.foods {
		foods = append(foods, food)
	}
	sort.Slice(foods, func(i, j int) bool { return foods[i].ID < foods[j].ID })

	return foods, nil
}

// GetFood returns a food by its ID
func (s *InMemoryStore) GetFood(ctx context.Context, id int64) (*models.Food, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	food, exists := s.foods[id]
	if !exists {
		return nil, ErrNotFound
	}
	food.Extras = append([]models.Extra(nil), food.Extras...)
	return &food, nil
}

// ListCategories returns all categories
func (s *InMemoryStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.Category, 0, len(s.categories))
	for _, category := range s.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })

	return categories, nil
}

func (s *InMemoryStore) GetFavorite(ctx context.Context, id int64) (*models.Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fav, exists := s.favorites[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &fav, nil
}

func (s *InMemoryStore) AddFavorite(ctx context.Context, fav models.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.favorites[fav.ID]; exists {
		return ErrAlreadyExists
	}
	s.favorites[fav.ID] = fav
	return nil
}

func (s *InMemoryStore) RemoveFavorite(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.favorites[id]; !exists {
		return ErrNotFound
	}
	delete(s.favorites, id)
	return nil
}

// ListOrders returns orders in submission order
func (s *InMemoryStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	return orders, nil
}

// CreateOrder stores the order under the next numeric id
func (s *InMemoryStore) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = s.nextOrderID
	s.nextOrderID++
	order.Extras = append([]models.Extra(nil), order.Extras...)
	s.orders = append(s.orders, order)

	return &order, nil
}
