package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Series catalog entry. Seasons defaults to 1.
type Series struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	ReleaseYear int       `json:"release_year" gorm:"not null"`
	Seasons     int       `json:"seasons" gorm:"default:1"`
	IsOngoing   bool      `json:"is_ongoing" gorm:"default:false"`
	Poster      string    `json:"poster" gorm:"type:varchar(255)"`
	Genres      []Genre   `json:"genres" gorm:"many2many:series_genres;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SeriesRequest is the series create/update payload.
type SeriesRequest struct {
	Title       string    `json:"title" example:"True Detective"`
	Description string    `json:"description"`
	ReleaseYear int       `json:"release_year" example:"2014"`
	Seasons     *int      `json:"seasons" example:"4"`
	IsOngoing   *bool     `json:"is_ongoing"`
	Poster      string    `json:"poster"`
	GenresIDs   *[]string `json:"genres_ids"`
}

func (s *Series) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// AfterFind keeps the genre list serializing as [] instead of null.
func (s *Series) AfterFind(tx *gorm.DB) error {
	if s.Genres == nil {
		s.Genres = make([]Genre, 0)
	}
	return nil
}

func (Series) TableName() string {
	return "series"
}
