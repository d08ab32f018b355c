package service

import (
	"context"
	"sync"
	"thriftstore/internal/client"
	"thriftstore/internal/model"

	"gorm.io/gorm"
)

type mockCartRepo struct {
	m     sync.Mutex
	items []*model.CartItem
	err   error
}

func (m *mockCartRepo) Upsert(_ context.Context, item *model.CartItem) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.items {
		if existing.UserID == item.UserID && existing.ProductID == item.ProductID {
			existing.Quantity += item.Quantity
			return nil
		}
	}
	m.items = append(m.items, item)
	return nil
}

func (m *mockCartRepo) List(_ context.Context, userID string) ([]*model.CartItem, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var items []*model.CartItem
	for _, item := range m.items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *mockCartRepo) Remove(_ context.Context, userID string, productID uint) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	for i, item := range m.items {
		if item.UserID == userID && item.ProductID == productID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type mockProductRepo struct {
	products map[uint]*model.Product
	err      error
}

func (m *mockProductRepo) Seed(context.Context) error { return m.err }

func (m *mockProductRepo) FindByID(_ context.Context, productID uint) (*model.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	product, ok := m.products[productID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return product, nil
}

func (m *mockProductRepo) FindMany(_ context.Context, productIDs []uint) ([]*model.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	var products []*model.Product
	for _, id := range productIDs {
		if product, ok := m.products[id]; ok {
			products = append(products, product)
		}
	}
	return products, nil
}

func (m *mockProductRepo) List(context.Context) ([]*model.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	var products []*model.Product
	for _, product := range m.products {
		products = append(products, product)
	}
	return products, nil
}

func (m *mockProductRepo) ByCategory(context.Context, string) ([]*model.Product, error) {
	return nil, m.err
}

func (m *mockProductRepo) Search(context.Context, string) ([]*model.Product, error) {
	return nil, m.err
}

type favoritePair struct {
	userID    string
	productID uint
}

type mockFavoriteRepo struct {
	m     sync.Mutex
	pairs map[favoritePair]bool
	err   error
}

func newMockFavoriteRepo() *mockFavoriteRepo {
	return &mockFavoriteRepo{pairs: map[favoritePair]bool{}}
}

func (m *mockFavoriteRepo) Exists(_ context.Context, userID string, productID uint) (bool, error) {
	m.m.Lock()
	defer m.m.Unlock()
	return m.pairs[favoritePair{userID, productID}], m.err
}

func (m *mockFavoriteRepo) Add(_ context.Context, userID string, productID uint) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	m.pairs[favoritePair{userID, productID}] = true
	return nil
}

func (m *mockFavoriteRepo) Remove(_ context.Context, userID string, productID uint) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	delete(m.pairs, favoritePair{userID, productID})
	return nil
}

func (m *mockFavoriteRepo) ListProductIDs(_ context.Context, userID string) ([]uint, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var ids []uint
	for pair := range m.pairs {
		if pair.userID == userID {
			ids = append(ids, pair.productID)
		}
	}
	return ids, nil
}

type gatewayCall struct {
	AmountMinorUnits int64
	Currency         string
	ReceiptID        string
}

type mockGateway struct {
	m     sync.Mutex
	calls []gatewayCall
	resp  *client.CreateOrderResponse
	err   error
}

func (m *mockGateway) CreateOrder(_ context.Context, amountMinorUnits int64, currency, receiptID string) (*client.CreateOrderResponse, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.calls = append(m.calls, gatewayCall{
		AmountMinorUnits: amountMinorUnits,
		Currency:         currency,
		ReceiptID:        receiptID,
	})
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}
