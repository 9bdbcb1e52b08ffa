package service

import (
	"context"

	"kushfilms/internal/microservices/http-api/models"
	"kushfilms/internal/microservices/http-api/repository"

	"github.com/stretchr/testify/mock"
)

// MockStore hands out the repository mocks below; WithinTx runs fn against itself.
type MockStore struct {
	mock.Mock
	users      *MockUserRepository
	movies     *MockMovieRepository
	foods      *MockFoodRepository
	categories *MockCategoryRepository
	ratings    *MockRatingRepository
	comments   *MockCommentRepository
	favorites  *MockFavoriteRepository
	history    *MockWatchHistoryRepository
	orders     *MockOrderRepository
	stats      *MockStatsRepository
}

func newMockStore() *MockStore {
	return &MockStore{
		users:      new(MockUserRepository),
		movies:     new(MockMovieRepository),
		foods:      new(MockFoodRepository),
		categories: new(MockCategoryRepository),
		ratings:    new(MockRatingRepository),
		comments:   new(MockCommentRepository),
		favorites:  new(MockFavoriteRepository),
		history:    new(MockWatchHistoryRepository),
		orders:     new(MockOrderRepository),
		stats:      new(MockStatsRepository),
	}
}

func (m *MockStore) Users() repository.UserRepository { return m.users }
func (m *MockStore) Movies() repository.MovieRepository { return m.movies }
func (m *MockStore) Foods() repository.FoodRepository { return m.foods }
func (m *MockStore) Categories() repository.CategoryRepository { return m.categories }
func (m *MockStore) Ratings() repository.RatingRepository { return m.ratings }
func (m *MockStore) Comments() repository.CommentRepository { return m.comments }
func (m *MockStore) Favorites() repository.FavoriteRepository { return m.favorites }
func (m *MockStore) WatchHistory() repository.WatchHistoryRepository { return m.history }
func (m *MockStore) Orders() repository.OrderRepository { return m.orders }
func (m *MockStore) Stats() repository.StatsRepository { return m.stats }

func (m *MockStore) WithinTx(ctx context.Context, fn func(tx repository.Store) error) error {
	m.Called(ctx)
	return fn(m)
}

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id string, fields map[string]any) (*models.User, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) LockForUpdate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockMovieRepository mocks the MovieRepository interface
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) List(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id string) (*models.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *models.Movie) error {
	return m.Called(ctx, movie).Error(0)
}

func (m *MockMovieRepository) Update(ctx context.Context, id string, fields map[string]any, categories *[]models.Category) (*models.Movie, error) {
	args := m.Called(ctx, id, fields, categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMovieRepository) IncrementViews(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMovieRepository) LockForUpdate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMovieRepository) UpdateRatingStats(ctx context.Context, id string, stats models.RatingStats) error {
	return m.Called(ctx, id, stats).Error(0)
}

// MockFoodRepository mocks the FoodRepository interface
type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) List(ctx context.Context, filter models.FoodFilter) ([]models.Food, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Food), args.Error(1)
}

func (m *MockFoodRepository) FindByID(ctx context.Context, id string) (*models.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Food), args.Error(1)
}

func (m *MockFoodRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Food, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.Food), args.Error(1)
}

func (m *MockFoodRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFoodRepository) Create(ctx context.Context, food *models.Food) error {
	return m.Called(ctx, food).Error(0)
}

func (m *MockFoodRepository) Update(ctx context.Context, id string, fields map[string]any) (*models.Food, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Food), args.Error(1)
}

func (m *MockFoodRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFoodRepository) LockForUpdate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFoodRepository) UpdateRatingStats(ctx context.Context, id string, stats models.RatingStats) error {
	return m.Called(ctx, id, stats).Error(0)
}

// MockCategoryRepository mocks the CategoryRepository interface
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListWithCounts(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Category, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, id string, fields map[string]any) (*models.Category, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockRatingRepository mocks the RatingRepository interface
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Upsert(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	args := m.Called(ctx, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) FindByID(ctx context.Context, id string) (*models.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRatingRepository) ListByUser(ctx context.Context, userID string) ([]models.Rating, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) ValuesForTarget(ctx context.Context, target models.Target) ([]int, error) {
	args := m.Called(ctx, target)
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockRatingRepository) TargetsByUser(ctx context.Context, userID string) ([]models.Target, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Target), args.Error(1)
}

func (m *MockRatingRepository) DeleteByUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// MockCommentRepository mocks the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id string) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByTarget(ctx context.Context, target models.Target, page, pageSize int) ([]models.Comment, int64, error) {
	args := m.Called(ctx, target, page, pageSize)
	return args.Get(0).([]models.Comment), args.Get(1).(int64), args.Error(2)
}

// MockFavoriteRepository mocks the FavoriteRepository interface
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	return m.Called(ctx, favorite).Error(0)
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, userID string, target models.Target) (bool, error) {
	args := m.Called(ctx, userID, target)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) FindByID(ctx context.Context, id string) (*models.Favorite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Favorite), args.Error(1)
}

// MockWatchHistoryRepository mocks the WatchHistoryRepository interface
type MockWatchHistoryRepository struct {
	mock.Mock
}

func (m *MockWatchHistoryRepository) Upsert(ctx context.Context, entry *models.WatchHistory) (*models.WatchHistory, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WatchHistory), args.Error(1)
}

func (m *MockWatchHistoryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.WatchHistory, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]models.WatchHistory), args.Error(1)
}

// MockOrderRepository mocks the OrderRepository interface
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, userID string) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id string, from, to models.OrderStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockStatsRepository mocks the StatsRepository interface
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Collect(ctx context.Context) (*models.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminStats), args.Error(1)
}

// MockCartRepository mocks the CartRepository interface
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) AddItem(ctx context.Context, userID string, item models.CartItem) (int, error) {
	args := m.Called(ctx, userID, item)
	return args.Int(0), args.Error(1)
}

func (m *MockCartRepository) SetQuantity(ctx context.Context, userID, foodID string, quantity int) error {
	return m.Called(ctx, userID, foodID, quantity).Error(0)
}

func (m *MockCartRepository) RemoveItem(ctx context.Context, userID, foodID string) error {
	return m.Called(ctx, userID, foodID).Error(0)
}

func (m *MockCartRepository) Items(ctx context.Context, userID string) ([]models.CartItem, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *MockCartRepository) Clear(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// MockAuthProvider mocks the AuthProvider interface
type MockAuthProvider struct {
	mock.Mock
}

func (m *MockAuthProvider) Sign(userID, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func (m *MockAuthProvider) Verify(token string) (*Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Claims), args.Error(1)
}

// recordingNotifier collects notified orders.
type recordingNotifier struct {
	orders []*models.Order
}

func (n *recordingNotifier) NotifyOrder(order *models.Order) {
	n.orders = append(n.orders, order)
}
