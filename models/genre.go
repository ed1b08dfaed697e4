package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Genre classifies movies and series. Name and slug are both unique.
type Genre struct {
	ID   string `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name string `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	Slug string `json:"slug" gorm:"type:varchar(100);uniqueIndex;not null"`
}

// GenreRequest is the genre create/update payload.
type GenreRequest struct {
	Name string `json:"name" binding:"required" example:"Drama"`
	Slug string `json:"slug" binding:"required" example:"drama"`
}

func (g *Genre) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

func (Genre) TableName() string {
	return "genres"
}
