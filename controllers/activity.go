package controllers

import (
	"net/http"

	"github.com/Korgin-Artem/filmtracker/models"
	"github.com/Korgin-Artem/filmtracker/services/activity"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	activityService *activity.ActivityService
}

func NewActivityController(activityService *activity.ActivityService) *ActivityController {
	return &ActivityController{activityService: activityService}
}

// GetRecentActivities godoc
// @Summary      Recent catalog activity
// @Description  Read-only feed of registrations and catalog changes, newest first
// @Tags         activities
// @Produce      json
// @Param        limit query int false "number of entries, default 20"
// @Success      200  {array}  models.Activity
// @Router       /activities [get]
func (ac *ActivityController) GetRecentActivities(c *gin.Context) {
	limit := parseLimit(c, 20, 100)

	activities, err := ac.activityService.GetRecentActivities(limit)
	if err != nil {
		DatabaseErrorHandler(c, "failed to load activity feed", err)
		return
	}

	if activities == nil {
		activities = make([]models.Activity, 0)
	}
	c.JSON(http.StatusOK, activities)
}
