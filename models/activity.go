package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity is a read-only event feed entry (registrations, catalog changes).
type Activity struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Type      string    `json:"type" gorm:"type:varchar(50);not null" example:"user"`
	Content   string    `json:"content" gorm:"type:text;not null" example:"new user \"user123\" registered"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func (Activity) TableName() string {
	return "activities"
}
