package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/repository"
)

// FoodQuery carries the json-server style "_like" filters of GET /foods.
// Empty fields do not filter.
type FoodQuery struct {
	CategoryLike string
	NameLike     string
}

// CatalogService handles read access to foods and categories
type CatalogService struct {
	foods      repository.FoodRepository
	categories repository.CategoryRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(foods repository.FoodRepository, categories repository.CategoryRepository) *CatalogService {
	return &CatalogService{
		foods:      foods,
		categories: categories,
	}
}

// ListFoods returns the foods matching every filter in the query
func (s *CatalogService) ListFoods(ctx context.Context, query FoodQuery) ([]models.Food, error) {
	foods, err := s.foods.ListFoods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}

	categoryMatch := likeMatcher(query.CategoryLike)
	nameMatch := likeMatcher(query.NameLike)

	filtered := make([]models.Food, 0, len(foods))
	for _, food := range foods {
		if !categoryMatch(strconv.FormatInt(food.Category, 10)) || !nameMatch(food.Name) {
			continue
		}
		filtered = append(filtered, food)
	}

	return filtered, nil
}

// GetFood returns a food with its extras
func (s *CatalogService) GetFood(ctx context.Context, id int64) (*models.Food, error) {
	return s.foods.GetFood(ctx, id)
}

// ListCategories returns all categories
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.ListCategories(ctx)
}

// likeMatcher mirrors json-server: a case-insensitive regular expression,
// falling back to a literal match when the pattern does not compile
func likeMatcher(pattern string) func(string) bool {
	if pattern == "" {
		return func(string) bool { return true }
	}

	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(pattern))
	}
	return re.MatchString
}
