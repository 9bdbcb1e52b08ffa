package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories over one database handle so a service can run
// several of them inside one transaction.
type Store interface {
	Users() UserRepository
	Movies() MovieRepository
	Foods() FoodRepository
	Categories() CategoryRepository
	Ratings() RatingRepository
	Comments() CommentRepository
	Favorites() FavoriteRepository
	WatchHistory() WatchHistoryRepository
	Orders() OrderRepository
	Stats() StatsRepository
	// WithinTx runs fn in a transaction; fn's Store is bound to it.
	WithinTx(ctx context.Context, fn func(tx Store) error) error
}

type store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &store{db: db}
}

func (s *store) Users() UserRepository { return NewUserRepository(s.db) }
func (s *store) Movies() MovieRepository { return NewMovieRepository(s.db) }
func (s *store) Foods() FoodRepository { return NewFoodRepository(s.db) }
func (s *store) Categories() CategoryRepository { return NewCategoryRepository(s.db) }
func (s *store) Ratings() RatingRepository { return NewRatingRepository(s.db) }
func (s *store) Comments() CommentRepository { return NewCommentRepository(s.db) }
func (s *store) Favorites() FavoriteRepository { return NewFavoriteRepository(s.db) }
func (s *store) WatchHistory() WatchHistoryRepository { return NewWatchHistoryRepository(s.db) }
func (s *store) Orders() OrderRepository { return NewOrderRepository(s.db) }
func (s *store) Stats() StatsRepository { return NewStatsRepository(s.db) }

func (s *store) WithinTx(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&store{db: tx})
	})
}
