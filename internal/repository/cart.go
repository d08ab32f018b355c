package repository

import (
	"context"
	"thriftstore/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository interface {
	Upsert(ctx context.Context, item *model.CartItem) error
	List(ctx context.Context, userID string) ([]*model.CartItem, error)
	Remove(ctx context.Context, userID string, productID uint) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

// Upsert merges the given quantity into the (user, product) row in a single
// statement, so concurrent adds for the same pair never lose an increment.
func (r *cartRepoImpl) Upsert(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + ?", item.Quantity),
			"updated_at": time.Now(),
		}),
	}).Create(&item).Error
}

func (r *cartRepoImpl) List(ctx context.Context, userID string) ([]*model.CartItem, error) {
	var items []*model.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&items).
		Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartRepoImpl) Remove(ctx context.Context, userID string, productID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.CartItem{}).
		Error
}
