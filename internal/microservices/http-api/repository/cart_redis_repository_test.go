package repository

import (
	"context"
	"testing"
	"time"

	"kushfilms/internal/microservices/http-api/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartRepo(t *testing.T) (CartRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCartRepository(client, time.Hour), mr
}

func rolex(qty int) models.CartItem {
	return models.CartItem{FoodID: "food-1", Name: "Rolex", Price: decimal.NewFromInt(3000), Quantity: qty}
}

func TestCartRepository_AddMergesQuantity(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestCartRepo(t)

	qty, err := repo.AddItem(ctx, "u1", rolex(1))
	require.NoError(t, err)
	assert.Equal(t, 1, qty)

	qty, err = repo.AddItem(ctx, "u1", rolex(1))
	require.NoError(t, err)
	assert.Equal(t, 2, qty)

	items, err := repo.Items(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, decimal.NewFromInt(3000).Equal(items[0].Price))
}

func TestCartRepository_SetQuantityAndRemove(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestCartRepo(t)

	assert.ErrorIs(t, repo.SetQuantity(ctx, "u1", "food-1", 3), ErrNotFound)

	_, err := repo.AddItem(ctx, "u1", rolex(1))
	require.NoError(t, err)
	require.NoError(t, repo.SetQuantity(ctx, "u1", "food-1", 5))

	items, err := repo.Items(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 5, items[0].Quantity)

	require.NoError(t, repo.RemoveItem(ctx, "u1", "food-1"))
	items, err = repo.Items(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartRepository_SetQuantityRefreshesTTL(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestCartRepo(t)

	_, err := repo.AddItem(ctx, "u1", rolex(1))
	require.NoError(t, err)
	mr.FastForward(40 * time.Minute)

	require.NoError(t, repo.SetQuantity(ctx, "u1", "food-1", 4))
	assert.Equal(t, time.Hour, mr.TTL("cart:user:u1:items"))
	assert.Equal(t, time.Hour, mr.TTL("cart:user:u1:qty"))
}

func TestCartRepository_SetQuantityNeedsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestCartRepo(t)

	_, err := repo.AddItem(ctx, "u1", rolex(1))
	require.NoError(t, err)
	mr.HDel("cart:user:u1:items", "food-1")

	assert.ErrorIs(t, repo.SetQuantity(ctx, "u1", "food-1", 2), ErrNotFound)
	assert.Equal(t, "1", mr.HGet("cart:user:u1:qty", "food-1"))
}

func TestCartRepository_ClearAndTTL(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestCartRepo(t)

	_, err := repo.AddItem(ctx, "u1", rolex(2))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, mr.TTL("cart:user:u1:qty"))

	_, err = repo.AddItem(ctx, "u2", rolex(1))
	require.NoError(t, err)

	require.NoError(t, repo.Clear(ctx, "u1"))
	items, err := repo.Items(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)

	other, err := repo.Items(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}
