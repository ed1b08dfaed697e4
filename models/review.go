package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a user's text review for exactly one movie or series.
type Review struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID    string    `json:"user" gorm:"type:varchar(36);not null;index"`
	MovieID   *string   `json:"movie" gorm:"type:varchar(36);index;check:chk_review_content,movie_id IS NOT NULL OR series_id IS NOT NULL"`
	SeriesID  *string   `json:"series" gorm:"type:varchar(36);index"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User   User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Movie  *Movie  `json:"-" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
	Series *Series `json:"-" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE"`
}

// ReviewRequest is the review create/update payload. The acting user comes
// from the session, never from the payload.
type ReviewRequest struct {
	MovieID  *string `json:"movie"`
	SeriesID *string `json:"series"`
	Text     string  `json:"text" binding:"required"`
}

// ReviewResponse adds the author's username next to the raw fields.
type ReviewResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user"`
	UserUsername string    `json:"user_username"`
	MovieID      *string   `json:"movie"`
	SeriesID     *string   `json:"series"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Response converts a review (with User preloaded) to its representation.
func (r *Review) Response() ReviewResponse {
	return ReviewResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		UserUsername: r.User.Username,
		MovieID:      r.MovieID,
		SeriesID:     r.SeriesID,
		Text:         r.Text,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (Review) TableName() string {
	return "reviews"
}
