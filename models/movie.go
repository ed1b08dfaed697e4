package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Movie catalog entry. Genres, directors and actors are expanded on read
// and accepted as id lists on write.
type Movie struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	ReleaseYear int       `json:"release_year" gorm:"not null"`
	Duration    int       `json:"duration" gorm:"not null;comment:duration in minutes"`
	Poster      string    `json:"poster" gorm:"type:varchar(255)"`
	Genres      []Genre   `json:"genres" gorm:"many2many:movie_genres;constraint:OnDelete:CASCADE"`
	Directors   []Person  `json:"directors" gorm:"many2many:movie_directors;constraint:OnDelete:CASCADE"`
	Actors      []Person  `json:"actors" gorm:"many2many:movie_actors;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MovieRequest is the movie create/update payload. Association lists are
// replaced only when the corresponding ids key is present.
type MovieRequest struct {
	Title        string    `json:"title" example:"Pulp Fiction"`
	Description  string    `json:"description"`
	ReleaseYear  int       `json:"release_year" example:"1994"`
	Duration     int       `json:"duration" example:"154"`
	Poster       string    `json:"poster" example:"/uploads/posters/pulp_fiction.jpg"`
	GenresIDs    *[]string `json:"genres_ids"`
	DirectorsIDs *[]string `json:"directors_ids"`
	ActorsIDs    *[]string `json:"actors_ids"`
}

// MovieWithRating is a movie together with its average rating, used by the
// popular and recommendation listings.
type MovieWithRating struct {
	Movie
	AverageRating float64 `json:"average_rating"`
}

func (m *Movie) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// AfterFind keeps association lists serializing as [] instead of null.
func (m *Movie) AfterFind(tx *gorm.DB) error {
	if m.Genres == nil {
		m.Genres = make([]Genre, 0)
	}
	if m.Directors == nil {
		m.Directors = make([]Person, 0)
	}
	if m.Actors == nil {
		m.Actors = make([]Person, 0)
	}
	return nil
}

func (Movie) TableName() string {
	return "movies"
}
