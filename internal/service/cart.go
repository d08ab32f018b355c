package service

import (
	"context"
	"errors"
	"fmt"
	"thriftstore/internal/dto"
	"thriftstore/internal/model"
	"thriftstore/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService interface {
	Add(ctx context.Context, userID string, productID uint, quantity int32) error
	Remove(ctx context.Context, userID string, productID uint) error
	View(ctx context.Context, userID string) (*dto.CartView, error)
}

type cartServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
) CartService {
	return &cartServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *cartServiceImpl) Add(ctx context.Context, userID string, productID uint, quantity int32) error {
	if quantity <= 0 {
		return fmt.Errorf("item quantity must be positive")
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("load product: %w", err)
	}

	err := s.cartRepo.Upsert(ctx, &model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		return fmt.Errorf("upsert cart item: %w", err)
	}

	return nil
}

func (s *cartServiceImpl) Remove(ctx context.Context, userID string, productID uint) error {
	return s.cartRepo.Remove(ctx, userID, productID)
}

// View joins cart rows against the catalog and prices each line with decimal
// arithmetic. An empty cart is a valid view with a zero total.
func (s *cartServiceImpl) View(ctx context.Context, userID string) (*dto.CartView, error) {
	items, err := s.cartRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}

	view := &dto.CartView{
		Items: []dto.CartLine{},
		Total: decimal.Zero,
	}
	if len(items) == 0 {
		return view, nil
	}

	productIDs := make([]uint, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.FindMany(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("load cart products: %w", err)
	}

	productMap := make(map[uint]*model.Product, len(products))
	for _, product := range products {
		productMap[product.ID] = product
	}

	for _, item := range items {
		product, ok := productMap[item.ProductID]
		if !ok {
			// product vanished from the catalog, skip the stale row
			continue
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		view.Items = append(view.Items, dto.CartLine{
			Product: dto.ProductView{
				ID:          product.ID,
				Name:        product.Name,
				Description: product.Description,
				Price:       product.Price,
				Category:    product.Category,
			},
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
		view.Total = view.Total.Add(lineTotal)
	}

	return view, nil
}
