package service

import (
	"context"
	"fmt"
	"thriftstore/internal/client"
	"thriftstore/internal/dto"
	"thriftstore/internal/model"
	"thriftstore/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckoutService interface {
	Checkout(ctx context.Context, userID, userName string) (*dto.CheckoutView, error)
}

type checkoutServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	gateway     client.RazorpayClient
	keyID       string
	currency    string
}

func NewCheckoutService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	gateway client.RazorpayClient,
	keyID string,
	currency string,
) CheckoutService {
	return &checkoutServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		gateway:     gateway,
		keyID:       keyID,
		currency:    currency,
	}
}

// Checkout prices the user's current cart and negotiates a gateway order for
// the total. The cart itself is never mutated here; a failed gateway call
// leaves no partial state behind.
func (s *checkoutServiceImpl) Checkout(ctx context.Context, userID, userName string) (*dto.CheckoutView, error) {
	items, err := s.cartRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	productIDs := make([]uint, len(items))
	quantityMap := make(map[uint]int32, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID
		quantityMap[item.ProductID] = item.Quantity
	}

	products, err := s.productRepo.FindMany(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("load cart products: %w", err)
	}
	// rows whose product left the catalog are skipped, same as the cart view;
	// a cart holding only stale rows has nothing payable in it
	if len(products) == 0 {
		return nil, ErrEmptyCart
	}

	total := s.priceCart(products, quantityMap)

	// gateway wants minor units (paise); shift keeps the arithmetic exact
	minor := total.Shift(2)
	if !minor.IsInteger() {
		return nil, fmt.Errorf("total %s does not convert to whole minor units", total)
	}
	amountMinorUnits := minor.IntPart()

	receiptID := "rcpt_" + uuid.NewString()

	// order creation is not known to be idempotent by receipt, so no retry
	resp, err := s.gateway.CreateOrder(ctx, amountMinorUnits, s.currency, receiptID)
	if err != nil {
		return nil, fmt.Errorf("create gateway order: %w", err)
	}

	return &dto.CheckoutView{
		OrderID:  resp.OrderID,
		Amount:   amountMinorUnits,
		Currency: s.currency,
		KeyID:    s.keyID,
		Name:     userName,
	}, nil
}

func (s *checkoutServiceImpl) priceCart(products []*model.Product, quantityMap map[uint]int32) decimal.Decimal {
	total := decimal.Zero
	for _, product := range products {
		quantity := quantityMap[product.ID]
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(quantity))))
	}
	return total
}
