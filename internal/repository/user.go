package repository

import (
	"context"
	"thriftstore/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Upsert(ctx context.Context, user *model.User) error
	FindByGoogleID(ctx context.Context, googleID string) (*model.User, error)
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepoImpl{
		db: db,
	}
}

// Upsert creates the user on first login and refreshes the display name on
// subsequent logins.
func (r *userRepoImpl) Upsert(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "google_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&user).Error
}

func (r *userRepoImpl) FindByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("google_id = ?", googleID).
		First(&user).Error

	if err != nil {
		return nil, err
	}

	return &user, nil
}
