package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ratings use a single 1..10 scale for movies and foods.
const (
	MinRating = 1
	MaxRating = 10
)

type Rating struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string     `json:"userId" gorm:"type:uuid;not null;index"`
	Type      TargetType `json:"type" gorm:"not null"`
	MovieID   *string    `json:"movieId,omitempty" gorm:"type:uuid"`
	FoodID    *string    `json:"foodId,omitempty" gorm:"type:uuid"`
	Rating    int        `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 10"`
	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`

	// Associations
	Movie *Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID"`
	Food  *Food  `json:"food,omitempty" gorm:"foreignKey:FoodID"`
}

func NewRating(userID string, target Target, value int) *Rating {
	movieID, foodID := target.refs()
	return &Rating{UserID: userID, Type: target.Type, MovieID: movieID, FoodID: foodID, Rating: value}
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

func (r *Rating) Target() Target {
	return targetOf(r.Type, r.MovieID, r.FoodID)
}

func (Rating) TableName() string {
	return "ratings"
}

// RatingStats is the derived average/count pair stored on movies and foods.
type RatingStats struct {
	Average float64 `json:"averageRating"`
	Count   int     `json:"ratingCount"`
}

// ComputeRatingStats returns the arithmetic mean and count of values; no values gives 0/0.
func ComputeRatingStats(values []int) RatingStats {
	if len(values) == 0 {
		return RatingStats{}
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return RatingStats{Average: float64(sum) / float64(len(values)), Count: len(values)}
}
