package repository

import (
	"context"
	"testing"
	"thriftstore/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserUpsertCreatesOnFirstLogin(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &model.User{GoogleID: "g-1", Name: "Ada"}))

	user, err := repo.FindByGoogleID(ctx, "g-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
}

func TestUserUpsertRefreshesNameOnRelogin(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &model.User{GoogleID: "g-1", Name: "Ada"}))
	require.NoError(t, repo.Upsert(ctx, &model.User{GoogleID: "g-1", Name: "Ada L."}))

	user, err := repo.FindByGoogleID(ctx, "g-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", user.Name)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
