package service

import (
	"context"
	"testing"

	"kushfilms/internal/cache"
	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCartFixture() (*MockCartRepository, *MockStore, CartService) {
	carts := new(MockCartRepository)
	store := newMockStore()
	orders := NewOrderService(store, cache.Noop{}, nil, zap.NewNop())
	return carts, store, NewCartService(carts, store.foods, orders, zap.NewNop())
}

func TestCartAdd_SnapshotsFood(t *testing.T) {
	carts, store, cartService := newCartFixture()
	ctx := context.Background()
	price := decimal.NewFromInt(7000)

	store.foods.On("FindByID", ctx, "f1").Return(&models.Food{ID: "f1", Name: "Luwombo", Price: price, ImageURL: "http://img", IsAvailable: true}, nil)
	carts.On("AddItem", ctx, "u1", models.CartItem{FoodID: "f1", Name: "Luwombo", Price: price, Quantity: 1, Image: "http://img"}).Return(1, nil)
	carts.On("Items", ctx, "u1").Return([]models.CartItem{{FoodID: "f1", Name: "Luwombo", Price: price, Quantity: 1}}, nil)

	cart, err := cartService.Add(ctx, "u1", "f1", 0)

	require.NoError(t, err)
	assert.Equal(t, 1, cart.TotalItems)
	assert.Equal(t, "7000", cart.Total.String())
	carts.AssertExpectations(t)
}

func TestCartAdd_Unavailable(t *testing.T) {
	_, store, cartService := newCartFixture()
	ctx := context.Background()

	store.foods.On("FindByID", ctx, "f1").Return(&models.Food{ID: "f1", Name: "Matooke", IsAvailable: false}, nil)
	store.foods.On("FindByID", ctx, "f404").Return(nil, repository.ErrNotFound)

	_, err := cartService.Add(ctx, "u1", "f1", 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = cartService.Add(ctx, "u1", "f404", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartUpdate(t *testing.T) {
	carts, _, cartService := newCartFixture()
	ctx := context.Background()

	carts.On("SetQuantity", ctx, "u1", "missing", 2).Return(repository.ErrNotFound)
	carts.On("RemoveItem", ctx, "u1", "f1").Return(nil)
	carts.On("Items", ctx, "u1").Return([]models.CartItem{}, nil)

	_, err := cartService.Update(ctx, "u1", "missing", 2)
	assert.ErrorIs(t, err, ErrNotFound)

	cart, err := cartService.Update(ctx, "u1", "f1", 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	carts.AssertCalled(t, "RemoveItem", ctx, "u1", "f1")
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	req := dto.CheckoutRequest{DeliveryAddress: "Ntinda", Phone: "0700"}

	t.Run("empty cart", func(t *testing.T) {
		carts, _, cartService := newCartFixture()
		carts.On("Items", ctx, "u1").Return([]models.CartItem{}, nil)

		_, err := cartService.Checkout(ctx, "u1", req)
		assert.ErrorIs(t, err, ErrInvalidInput)
		carts.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	})

	t.Run("places order and clears", func(t *testing.T) {
		carts, store, cartService := newCartFixture()
		carts.On("Items", ctx, "u1").Return([]models.CartItem{
			{FoodID: "f1", Name: "Rolex", Price: decimal.NewFromInt(5000), Quantity: 2},
		}, nil)
		carts.On("Clear", ctx, "u1").Return(nil)
		store.foods.On("FindByIDs", ctx, []string{"f1"}).Return([]models.Food{{ID: "f1"}}, nil)
		store.orders.On("Create", ctx, mock.AnythingOfType("*models.Order")).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Order).ID = "o1"
		}).Return(nil)
		store.orders.On("FindByID", ctx, "o1").Return(&models.Order{ID: "o1", Total: decimal.NewFromInt(10000)}, nil)

		order, err := cartService.Checkout(ctx, "u1", req)

		require.NoError(t, err)
		assert.Equal(t, "o1", order.ID)
		carts.AssertCalled(t, "Clear", ctx, "u1")
	})
}
