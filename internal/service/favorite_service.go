package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/repository"
)

// FavoriteService handles the favorites resource
type FavoriteService struct {
	favorites repository.FavoriteRepository
	foods     repository.FoodRepository
}

func NewFavoriteService(favorites repository.FavoriteRepository, foods repository.FoodRepository) *FavoriteService {
	return &FavoriteService{
		favorites: favorites,
		foods:     foods,
	}
}

func (s *FavoriteService) GetFavorite(ctx context.Context, id int64) (*models.Favorite, error) {
	return s.favorites.GetFavorite(ctx, id)
}

// AddFavorite stores a favorite for an existing food
func (s *FavoriteService) AddFavorite(ctx context.Context, fav models.Favorite) (*models.Favorite, error) {
	if err := fav.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFavorite, err)
	}

	if _, err := s.foods.GetFood(ctx, fav.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidProduct
		}
		return nil, fmt.Errorf("failed to look up food %d: %w", fav.ID, err)
	}

	if err := s.favorites.AddFavorite(ctx, fav); err != nil {
		return nil, err
	}
	return &fav, nil
}

func (s *FavoriteService) RemoveFavorite(ctx context.Context, id int64) error {
	return s.favorites.RemoveFavorite(ctx, id)
}
