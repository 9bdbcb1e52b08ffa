package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WatchHistory holds one row per (user, movie); repeated watches overwrite it.
type WatchHistory struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null"`
	MovieID   string    `json:"movieId" gorm:"type:uuid;not null"`
	Progress  int       `json:"progress"` // seconds
	Completed bool      `json:"completed"`
	WatchedAt time.Time `json:"watchedAt"`

	// Associations
	Movie *Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID"`
}

func (w *WatchHistory) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}

func (WatchHistory) TableName() string {
	return "watch_history"
}
