package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Movie struct {
	ID            string         `json:"id" gorm:"primaryKey;type:uuid"`
	Title         string         `json:"title" gorm:"not null"`
	Description   string         `json:"description"`
	ThumbnailURL  string         `json:"thumbnailUrl" gorm:"column:thumbnail_url"`
	VideoURL      string         `json:"videoUrl" gorm:"column:video_url"`
	Duration      int            `json:"duration"` // seconds
	ReleaseYear   *int           `json:"releaseYear,omitempty"`
	Director      string         `json:"director"`
	Cast          pq.StringArray `json:"cast" gorm:"type:text[]"`
	Language      string         `json:"language"`
	IsFeatured    bool           `json:"isFeatured"`
	ViewCount     int64          `json:"viewCount"`
	AverageRating float64        `json:"averageRating"`
	RatingCount   int            `json:"ratingCount"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`

	// Associations
	Categories []Category `json:"categories,omitempty" gorm:"many2many:movie_categories;"`
	Comments   []Comment  `json:"comments,omitempty" gorm:"foreignKey:MovieID"`
}

func (m *Movie) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

func (Movie) TableName() string {
	return "movies"
}

// MovieFilter narrows ListMovies. Zero values mean "no filter".
type MovieFilter struct {
	CategorySlug string
	Search       string
	Featured     *bool
	Limit        int
}
