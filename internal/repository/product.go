package repository

import (
	"context"
	"strings"
	"thriftstore/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Seed(ctx context.Context) error
	FindByID(ctx context.Context, productID uint) (*model.Product, error)
	FindMany(ctx context.Context, productIDs []uint) ([]*model.Product, error)
	List(ctx context.Context) ([]*model.Product, error)
	ByCategory(ctx context.Context, category string) ([]*model.Product, error)
	Search(ctx context.Context, keyword string) ([]*model.Product, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

// Seed rows carry fixed ids so the conflict clause keeps reseeding idempotent
// across restarts.
func (r *productRepoImpl) Seed(ctx context.Context) error {
	products := []model.Product{
		{ID: 1, Name: "Vintage Jacket", Description: "Denim jacket from the 80s", Price: decimal.RequireFromString("19.99"), Category: "clothing"},
		{ID: 2, Name: "Record Player", Description: "Working turntable with new needle", Price: decimal.RequireFromString("89.50"), Category: "electronics"},
		{ID: 3, Name: "Ceramic Vase", Description: "Hand painted, small chip on base", Price: decimal.RequireFromString("12.00"), Category: "home"},
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", productID).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) FindMany(ctx context.Context, productIDs []uint) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Where("id IN ?", productIDs).
		Find(&products).
		Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) List(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&products).
		Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) ByCategory(ctx context.Context, category string) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Find(&products).
		Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) Search(ctx context.Context, keyword string) ([]*model.Product, error) {
	pattern := "%" + strings.ToLower(keyword) + "%"

	var products []*model.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Find(&products).
		Error

	if err != nil {
		return nil, err
	}

	return products, nil
}
