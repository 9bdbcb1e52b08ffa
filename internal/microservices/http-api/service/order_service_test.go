package service

import (
	"context"
	"testing"

	"kushfilms/internal/cache"
	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type OrderServiceSuite struct {
	suite.Suite
	ctx      context.Context
	store    *MockStore
	notifier *recordingNotifier
	service  OrderService
}

func (s *OrderServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newMockStore()
	s.notifier = &recordingNotifier{}
	s.service = NewOrderService(s.store, cache.Noop{}, s.notifier, zap.NewNop())
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceSuite))
}

func (s *OrderServiceSuite) items() []models.OrderItem {
	return []models.OrderItem{
		{FoodID: "f1", Name: "Rolex", Price: decimal.NewFromInt(5000), Quantity: 2},
		{FoodID: "f2", Name: "Chapati", Price: decimal.NewFromInt(3000), Quantity: 1},
	}
}

func (s *OrderServiceSuite) TestPlace_ComputesTotal() {
	s.store.foods.On("FindByIDs", s.ctx, []string{"f1", "f2"}).Return([]models.Food{{ID: "f1"}, {ID: "f2"}}, nil)
	s.store.orders.On("Create", s.ctx, mock.MatchedBy(func(o *models.Order) bool {
		return o.Total.Equal(decimal.NewFromInt(13000)) && o.Status == models.OrderPending && len(o.Items) == 2
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Order).ID = "o1"
	}).Return(nil)
	s.store.orders.On("FindByID", s.ctx, "o1").Return(&models.Order{
		ID: "o1", UserID: "u1", Total: decimal.NewFromInt(13000), Status: models.OrderPending,
		User: &models.User{ID: "u1", Name: "Ada"},
	}, nil)

	order, err := s.service.Place(s.ctx, "u1", NewOrder{
		Items:           s.items(),
		DeliveryAddress: "Plot 4, Kampala Road",
		Phone:           "+256700000000",
	})

	s.Require().NoError(err)
	s.Equal("13000", order.Total.String())
	s.NotNil(order.User)
	s.Len(s.notifier.orders, 1)
}

func (s *OrderServiceSuite) TestPlace_MergesRepeatedFoods() {
	items := append(s.items(), models.OrderItem{FoodID: "f1", Name: "Rolex", Price: decimal.NewFromInt(5000), Quantity: 3})

	s.store.foods.On("FindByIDs", s.ctx, []string{"f1", "f2"}).Return([]models.Food{{ID: "f1"}, {ID: "f2"}}, nil)
	s.store.orders.On("Create", s.ctx, mock.MatchedBy(func(o *models.Order) bool {
		return len(o.Items) == 2 && o.Items[0].Quantity == 5 && o.Total.Equal(decimal.NewFromInt(28000))
	})).Return(nil)
	s.store.orders.On("FindByID", s.ctx, mock.Anything).Return(&models.Order{ID: "o1"}, nil)

	_, err := s.service.Place(s.ctx, "u1", NewOrder{Items: items, DeliveryAddress: "a", Phone: "p"})
	s.Require().NoError(err)
	s.store.orders.AssertExpectations(s.T())
}

func (s *OrderServiceSuite) TestPlace_InvalidInput() {
	mismatch := decimal.NewFromInt(12000)
	cases := map[string]NewOrder{
		"no items":       {DeliveryAddress: "a", Phone: "p"},
		"no address":     {Items: s.items(), Phone: "p"},
		"zero quantity":  {Items: []models.OrderItem{{FoodID: "f1", Name: "x", Price: decimal.NewFromInt(1)}}, DeliveryAddress: "a", Phone: "p"},
		"negative price": {Items: []models.OrderItem{{FoodID: "f1", Name: "x", Price: decimal.NewFromInt(-1), Quantity: 1}}, DeliveryAddress: "a", Phone: "p"},
		"blank name":     {Items: []models.OrderItem{{FoodID: "f1", Name: " ", Price: decimal.NewFromInt(1), Quantity: 1}}, DeliveryAddress: "a", Phone: "p"},
		"price conflict": {Items: []models.OrderItem{
			{FoodID: "f1", Name: "x", Price: decimal.NewFromInt(1), Quantity: 1},
			{FoodID: "f1", Name: "x", Price: decimal.NewFromInt(2), Quantity: 1},
		}, DeliveryAddress: "a", Phone: "p"},
	}
	for name, input := range cases {
		_, err := s.service.Place(s.ctx, "u1", input)
		s.ErrorIs(err, ErrInvalidInput, name)
	}

	s.store.foods.On("FindByIDs", s.ctx, []string{"f1", "f2"}).Return([]models.Food{{ID: "f1"}, {ID: "f2"}}, nil).Once()
	_, err := s.service.Place(s.ctx, "u1", NewOrder{Items: s.items(), Total: &mismatch, DeliveryAddress: "a", Phone: "p"})
	s.ErrorIs(err, ErrInvalidInput, "total mismatch")

	s.store.foods.On("FindByIDs", s.ctx, []string{"f1", "f2"}).Return([]models.Food{{ID: "f1"}}, nil).Once()
	_, err = s.service.Place(s.ctx, "u1", NewOrder{Items: s.items(), DeliveryAddress: "a", Phone: "p"})
	s.ErrorIs(err, ErrInvalidInput, "unknown food")

	s.store.orders.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *OrderServiceSuite) TestList_ScopedToRequester() {
	s.store.orders.On("List", s.ctx, "u1").Return([]models.Order{{ID: "o1", UserID: "u1"}}, nil)
	s.store.orders.On("List", s.ctx, "").Return([]models.Order{{ID: "o1"}, {ID: "o2"}}, nil)

	mine, err := s.service.List(s.ctx, Requester{UserID: "u1", Role: models.RoleUser})
	s.Require().NoError(err)
	s.Len(mine, 1)

	all, err := s.service.List(s.ctx, Requester{UserID: "admin", Role: models.RoleAdmin})
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *OrderServiceSuite) TestGet_HidesOtherUsersOrders() {
	s.store.orders.On("FindByID", s.ctx, "o1").Return(&models.Order{ID: "o1", UserID: "u1"}, nil)

	_, err := s.service.Get(s.ctx, "o1", Requester{UserID: "u2", Role: models.RoleUser})
	s.ErrorIs(err, ErrNotFound)

	order, err := s.service.Get(s.ctx, "o1", Requester{UserID: "a1", Role: models.RoleAdmin})
	s.Require().NoError(err)
	s.Equal("o1", order.ID)
}

func (s *OrderServiceSuite) TestUpdateStatus_Transitions() {
	admin := Requester{UserID: "a1", Role: models.RoleAdmin}

	s.store.orders.On("FindByID", s.ctx, "cancelled").Return(&models.Order{ID: "cancelled", Status: models.OrderCancelled}, nil)
	_, err := s.service.UpdateStatus(s.ctx, "cancelled", models.OrderDelivered, admin)
	s.ErrorIs(err, ErrInvalidTransition)

	s.store.orders.On("FindByID", s.ctx, "pending").Return(&models.Order{ID: "pending", Status: models.OrderPending}, nil).Once()
	_, err = s.service.UpdateStatus(s.ctx, "pending", models.OrderPending, admin)
	s.ErrorIs(err, ErrInvalidTransition, "same-state update")

	s.store.orders.On("FindByID", s.ctx, "pending").Return(&models.Order{ID: "pending", Status: models.OrderPending}, nil).Once()
	s.store.orders.On("UpdateStatus", s.ctx, "pending", models.OrderPending, models.OrderConfirmed).Return(true, nil).Once()
	s.store.orders.On("FindByID", s.ctx, "pending").Return(&models.Order{ID: "pending", Status: models.OrderConfirmed}, nil).Once()
	order, err := s.service.UpdateStatus(s.ctx, "pending", models.OrderConfirmed, admin)
	s.Require().NoError(err)
	s.Equal(models.OrderConfirmed, order.Status)
	s.Len(s.notifier.orders, 1)

	_, err = s.service.UpdateStatus(s.ctx, "pending", models.OrderConfirmed, Requester{UserID: "u1", Role: models.RoleUser})
	s.ErrorIs(err, ErrForbidden)
}

func (s *OrderServiceSuite) TestUpdateStatus_LostRace() {
	admin := Requester{UserID: "a1", Role: models.RoleAdmin}
	s.store.orders.On("FindByID", s.ctx, "o1").Return(&models.Order{ID: "o1", Status: models.OrderPending}, nil)
	s.store.orders.On("UpdateStatus", s.ctx, "o1", models.OrderPending, models.OrderCancelled).Return(false, nil)

	_, err := s.service.UpdateStatus(s.ctx, "o1", models.OrderCancelled, admin)
	s.ErrorIs(err, ErrInvalidTransition)
}

func (s *OrderServiceSuite) TestGet_Missing() {
	s.store.orders.On("FindByID", s.ctx, "nope").Return(nil, repository.ErrNotFound)

	_, err := s.service.Get(s.ctx, "nope", Requester{UserID: "u1"})
	s.ErrorIs(err, ErrNotFound)
}
