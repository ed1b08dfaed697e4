package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Watch status values.
const (
	StatusPlanned  = "planned"
	StatusWatching = "watching"
	StatusWatched  = "watched"
)

// ValidWatchStatus reports whether s is one of the known status values.
func ValidWatchStatus(s string) bool {
	switch s {
	case StatusPlanned, StatusWatching, StatusWatched:
		return true
	}
	return false
}

// WatchStatus tracks where a user stands with exactly one movie or series.
type WatchStatus struct {
	ID       string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID   string    `json:"user" gorm:"type:varchar(36);not null;index:idx_watch_user"`
	MovieID  *string   `json:"movie" gorm:"type:varchar(36);index;check:chk_watch_content,movie_id IS NOT NULL OR series_id IS NOT NULL"`
	SeriesID *string   `json:"series" gorm:"type:varchar(36);index"`
	Status   string    `json:"status" gorm:"type:varchar(10);not null"`
	AddedAt  time.Time `json:"added_at" gorm:"autoCreateTime"`

	User   User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Movie  *Movie  `json:"-" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
	Series *Series `json:"-" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE"`
}

// WatchStatusRequest is the watch status create payload.
type WatchStatusRequest struct {
	MovieID  *string `json:"movie"`
	SeriesID *string `json:"series"`
	Status   string  `json:"status" example:"watching"`
}

func (w *WatchStatus) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

func (WatchStatus) TableName() string {
	return "watch_statuses"
}
