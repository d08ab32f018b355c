package repository

import (
	"context"
	"thriftstore/internal/model"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Exists(ctx context.Context, userID string, productID uint) (bool, error)
	Add(ctx context.Context, userID string, productID uint) error
	Remove(ctx context.Context, userID string, productID uint) error
	ListProductIDs(ctx context.Context, userID string) ([]uint, error)
}

type favoriteRepoImpl struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepoImpl{
		db: db,
	}
}

func (r *favoriteRepoImpl) Exists(ctx context.Context, userID string, productID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error

	return count > 0, err
}

func (r *favoriteRepoImpl) Add(ctx context.Context, userID string, productID uint) error {
	return r.db.WithContext(ctx).Create(&model.Favorite{
		UserID:    userID,
		ProductID: productID,
	}).Error
}

func (r *favoriteRepoImpl) Remove(ctx context.Context, userID string, productID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.Favorite{}).
		Error
}

func (r *favoriteRepoImpl) ListProductIDs(ctx context.Context, userID string) ([]uint, error) {
	var productIDs []uint
	err := r.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("product_id", &productIDs).
		Error

	if err != nil {
		return nil, err
	}

	return productIDs, nil
}
