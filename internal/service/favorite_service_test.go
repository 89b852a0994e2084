package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/repository"
)

func TestFavoriteService(t *testing.T) {
	store := newStore(t)
	svc := NewFavoriteService(store, store)
	ctx := context.Background()

	food, err := store.GetFood(ctx, 3)
	if err != nil {
		t.Fatalf("GetFood() error = %v", err)
	}

	if _, err := svc.AddFavorite(ctx, models.NewFavorite(*food)); err != nil {
		t.Fatalf("AddFavorite() error = %v", err)
	}
	if _, err := svc.GetFavorite(ctx, 3); err != nil {
		t.Errorf("GetFavorite() error = %v", err)
	}

	t.Run("duplicate", func(t *testing.T) {
		_, err := svc.AddFavorite(ctx, models.NewFavorite(*food))
		if !errors.Is(err, repository.ErrAlreadyExists) {
			t.Errorf("error = %v, want ErrAlreadyExists", err)
		}
	})

	t.Run("unknown food", func(t *testing.T) {
		_, err := svc.AddFavorite(ctx, models.Favorite{ID: 999, Name: "Ghost"})
		if !errors.Is(err, ErrInvalidProduct) {
			t.Errorf("error = %v, want ErrInvalidProduct", err)
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		_, err := svc.AddFavorite(ctx, models.Favorite{ID: 3})
		if !errors.Is(err, ErrInvalidFavorite) {
			t.Errorf("error = %v, want ErrInvalidFavorite", err)
		}
	})

	if err := svc.RemoveFavorite(ctx, 3); err != nil {
		t.Fatalf("RemoveFavorite() error = %v", err)
	}
	if _, err := svc.GetFavorite(ctx, 3); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetFavorite() after remove error = %v, want ErrNotFound", err)
	}
}
