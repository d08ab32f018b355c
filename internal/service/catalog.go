package service

import (
	"context"
	"errors"
	"thriftstore/internal/model"
	"thriftstore/internal/repository"

	"gorm.io/gorm"
)

type CatalogService interface {
	List(ctx context.Context) ([]*model.Product, error)
	ByCategory(ctx context.Context, category string) ([]*model.Product, error)
	Search(ctx context.Context, keyword string) ([]*model.Product, error)
	Get(ctx context.Context, productID uint) (*model.Product, error)
}

type catalogServiceImpl struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(
	productRepo repository.ProductRepository,
) CatalogService {
	return &catalogServiceImpl{
		productRepo: productRepo,
	}
}

func (s *catalogServiceImpl) List(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *catalogServiceImpl) ByCategory(ctx context.Context, category string) ([]*model.Product, error) {
	return s.productRepo.ByCategory(ctx, category)
}

func (s *catalogServiceImpl) Search(ctx context.Context, keyword string) ([]*model.Product, error) {
	return s.productRepo.Search(ctx, keyword)
}

// Get returns ErrProductNotFound for unknown ids; an unknown id is a
// user-visible empty result, never a crash.
func (s *catalogServiceImpl) Get(ctx context.Context, productID uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return product, nil
}
