package repository

import (
	"context"
	"sync"
	"testing"
	"thriftstore/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartUpsertMergesQuantities(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &model.CartItem{UserID: "u1", ProductID: 7, Quantity: 2}))
	require.NoError(t, repo.Upsert(ctx, &model.CartItem{UserID: "u1", ProductID: 7, Quantity: 3}))

	items, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(7), items[0].ProductID)
	assert.Equal(t, int32(5), items[0].Quantity)
}

func TestCartUpsertKeepsPairsSeparate(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &model.CartItem{UserID: "u1", ProductID: 1, Quantity: 1}))
	require.NoError(t, repo.Upsert(ctx, &model.CartItem{UserID: "u1", ProductID: 2, Quantity: 1}))
	require.NoError(t, repo.Upsert(ctx, &model.CartItem{UserID: "u2", ProductID: 1, Quantity: 4}))

	u1Items, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, u1Items, 2)

	u2Items, err := repo.List(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, u2Items, 1)
	assert.Equal(t, int32(4), u2Items[0].Quantity)
}

func TestCartConcurrentAddsLoseNoIncrement(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Upsert(ctx, &model.CartItem{UserID: "u1", ProductID: 9, Quantity: 1})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	items, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int32(workers), items[0].Quantity)
}

func TestCartListEmptyIsValid(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	items, err := repo.List(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartRemove(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &model.CartItem{UserID: "u1", ProductID: 3, Quantity: 2}))
	require.NoError(t, repo.Remove(ctx, "u1", 3))

	items, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}
