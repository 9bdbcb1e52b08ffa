package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const MaxCommentLength = 2000

type Comment struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string     `json:"userId" gorm:"type:uuid;not null;index"`
	Type      TargetType `json:"type" gorm:"not null"`
	MovieID   *string    `json:"movieId,omitempty" gorm:"type:uuid"`
	FoodID    *string    `json:"foodId,omitempty" gorm:"type:uuid"`
	Content   string     `json:"content" gorm:"not null;type:text"`
	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime"`

	// Associations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func NewComment(userID string, target Target, content string) *Comment {
	movieID, foodID := target.refs()
	return &Comment{UserID: userID, Type: target.Type, MovieID: movieID, FoodID: foodID, Content: content}
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

func (c *Comment) Target() Target {
	return targetOf(c.Type, c.MovieID, c.FoodID)
}

func (Comment) TableName() string {
	return "comments"
}
