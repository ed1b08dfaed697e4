package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating bounds enforced both here and at the store level.
const (
	RatingMin = 1
	RatingMax = 10
)

// Rating is a 1-10 score for exactly one movie or series. A user keeps at
// most one rating per content item, backed by unique user+movie and
// user+series indexes; re-rating through the API updates the existing row.
type Rating struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID    string    `json:"user" gorm:"type:varchar(36);not null;uniqueIndex:idx_rating_user_movie;uniqueIndex:idx_rating_user_series"`
	MovieID   *string   `json:"movie" gorm:"type:varchar(36);uniqueIndex:idx_rating_user_movie;check:chk_rating_content,movie_id IS NOT NULL OR series_id IS NOT NULL"`
	SeriesID  *string   `json:"series" gorm:"type:varchar(36);uniqueIndex:idx_rating_user_series"`
	Rating    int       `json:"rating" gorm:"not null;check:chk_rating_range,rating >= 1 AND rating <= 10"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User   User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Movie  *Movie  `json:"-" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
	Series *Series `json:"-" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE"`
}

// RatingRequest is the rating create payload.
type RatingRequest struct {
	MovieID  *string `json:"movie"`
	SeriesID *string `json:"series"`
	Rating   int     `json:"rating" example:"8"`
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (Rating) TableName() string {
	return "ratings"
}
