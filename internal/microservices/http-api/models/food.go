package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Food struct {
	ID            string          `json:"id" gorm:"primaryKey;type:uuid"`
	Name          string          `json:"name" gorm:"not null"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
	Location      string          `json:"location"`
	ImageURL      string          `json:"imageUrl" gorm:"column:image_url"`
	Ingredients   pq.StringArray  `json:"ingredients" gorm:"type:text[]"`
	IsAvailable   bool            `json:"isAvailable" gorm:"not null;default:true"`
	AverageRating float64         `json:"averageRating"`
	RatingCount   int             `json:"ratingCount"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (f *Food) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

func (Food) TableName() string {
	return "foods"
}

type FoodFilter struct {
	Category  string
	Search    string
	Available *bool
	Limit     int
}
