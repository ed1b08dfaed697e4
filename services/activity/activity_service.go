package activity

import (
	"github.com/Korgin-Artem/filmtracker/models"
	"github.com/Korgin-Artem/filmtracker/utils"

	"gorm.io/gorm"
)

// ActivityService records catalog events into the activity feed.
type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// RecordActivity stores one feed entry. Failures are logged, not fatal.
func (s *ActivityService) RecordActivity(activityType string, content string) error {
	activity := models.Activity{
		Type:    activityType,
		Content: content,
	}

	if err := s.db.Create(&activity).Error; err != nil {
		utils.LogError("failed to record activity", err)
		return err
	}

	return nil
}

// GetRecentActivities returns the newest feed entries.
func (s *ActivityService) GetRecentActivities(limit int) ([]models.Activity, error) {
	var activities []models.Activity

	if err := s.db.Order("created_at DESC").Limit(limit).Find(&activities).Error; err != nil {
		utils.LogError("failed to load recent activities", err)
		return nil, err
	}

	return activities, nil
}
