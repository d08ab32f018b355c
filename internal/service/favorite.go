package service

import (
	"context"
	"fmt"
	"thriftstore/internal/model"
	"thriftstore/internal/repository"
)

type ToggleState string

const (
	FavoriteAdded   ToggleState = "added"
	FavoriteRemoved ToggleState = "removed"
)

type FavoriteService interface {
	Toggle(ctx context.Context, userID string, productID uint) (ToggleState, error)
	List(ctx context.Context, userID string) ([]*model.Product, error)
	IDSet(ctx context.Context, userID string) (map[uint]bool, error)
}

type favoriteServiceImpl struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
}

func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	productRepo repository.ProductRepository,
) FavoriteService {
	return &favoriteServiceImpl{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
	}
}

// Toggle flips the (user, product) membership. It is read-then-write: two
// concurrent toggles for the same pair can land in either state. Favorites
// are not safety-critical, so that race is accepted rather than locked away.
func (s *favoriteServiceImpl) Toggle(ctx context.Context, userID string, productID uint) (ToggleState, error) {
	exists, err := s.favoriteRepo.Exists(ctx, userID, productID)
	if err != nil {
		return "", fmt.Errorf("check favorite exists: %w", err)
	}

	if exists {
		if err := s.favoriteRepo.Remove(ctx, userID, productID); err != nil {
			return "", fmt.Errorf("remove favorite: %w", err)
		}
		return FavoriteRemoved, nil
	}

	if err := s.favoriteRepo.Add(ctx, userID, productID); err != nil {
		return "", fmt.Errorf("add favorite: %w", err)
	}
	return FavoriteAdded, nil
}

func (s *favoriteServiceImpl) List(ctx context.Context, userID string) ([]*model.Product, error) {
	productIDs, err := s.favoriteRepo.ListProductIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorite ids: %w", err)
	}

	if len(productIDs) == 0 {
		return []*model.Product{}, nil
	}

	products, err := s.productRepo.FindMany(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("load favorite products: %w", err)
	}

	return products, nil
}

func (s *favoriteServiceImpl) IDSet(ctx context.Context, userID string) (map[uint]bool, error) {
	productIDs, err := s.favoriteRepo.ListProductIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorite ids: %w", err)
	}

	idSet := make(map[uint]bool, len(productIDs))
	for _, id := range productIDs {
		idSet[id] = true
	}

	return idSet, nil
}
