package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Favorite struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string     `json:"userId" gorm:"type:uuid;not null;index"`
	Type      TargetType `json:"type" gorm:"not null"`
	MovieID   *string    `json:"movieId,omitempty" gorm:"type:uuid"`
	FoodID    *string    `json:"foodId,omitempty" gorm:"type:uuid"`
	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime"`

	// Associations
	Movie *Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID"`
	Food  *Food  `json:"food,omitempty" gorm:"foreignKey:FoodID"`
}

func NewFavorite(userID string, target Target) *Favorite {
	movieID, foodID := target.refs()
	return &Favorite{UserID: userID, Type: target.Type, MovieID: movieID, FoodID: foodID}
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

func (f *Favorite) Target() Target {
	return targetOf(f.Type, f.MovieID, f.FoodID)
}

func (Favorite) TableName() string {
	return "favorites"
}
