package controllers

import (
	"net/http"

	"github.com/Korgin-Artem/filmtracker/models"
	"github.com/Korgin-Artem/filmtracker/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WatchStatusController struct {
	DB *gorm.DB
}

func NewWatchStatusController(db *gorm.DB) *WatchStatusController {
	return &WatchStatusController{DB: db}
}

// List godoc
// @Summary      List watch statuses
// @Tags         watch-status
// @Produce      json
// @Param        status query string false "planned, watching or watched"
// @Param        user query string false "filter by user id"
// @Param        movie query string false "filter by movie id"
// @Param        series query string false "filter by series id"
// @Success      200  {array}  models.WatchStatus
// @Router       /watch-status [get]
func (wc *WatchStatusController) List(c *gin.Context) {
	query := wc.DB.Model(&models.WatchStatus{}).Order("added_at DESC")

	if status := c.Query("status"); status != "" {
		if !models.ValidWatchStatus(status) {
			c.JSON(http.StatusBadRequest, Response{
				Errors: gin.H{"status": "must be one of planned, watching, watched"},
			})
			return
		}
		query = query.Where("status = ?", status)
	}
	if userID := c.Query("user"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if movieID := c.Query("movie"); movieID != "" {
		query = query.Where("movie_id = ?", movieID)
	}
	if seriesID := c.Query("series"); seriesID != "" {
		query = query.Where("series_id = ?", seriesID)
	}

	var statuses []models.WatchStatus
	if err := utils.Paginate(c, query).Find(&statuses).Error; err != nil {
		DatabaseErrorHandler(c, "failed to list watch statuses", err)
		return
	}

	if statuses == nil {
		statuses = make([]models.WatchStatus, 0)
	}
	c.JSON(http.StatusOK, statuses)
}

// Create godoc
// @Summary      Track a movie or series
// @Description  The acting user comes from the session; any user field in the payload is ignored
// @Tags         watch-status
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        status body models.WatchStatusRequest true "watch status data"
// @Success      201  {object}  models.WatchStatus
// @Failure      400  {object}  Response
// @Failure      401  {object}  Response
// @Router       /watch-status [post]
func (wc *WatchStatusController) Create(c *gin.Context) {
	userID, err := GetUserID(c)
	if err != nil {
		return
	}

	var req models.WatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Invalid request body"})
		return
	}

	if !models.ValidWatchStatus(req.Status) {
		c.JSON(http.StatusBadRequest, Response{
			Errors: gin.H{"status": "must be one of planned, watching, watched"},
		})
		return
	}

	movieID, seriesID, ok := validateContentRef(c, wc.DB, req.MovieID, req.SeriesID)
	if !ok {
		return
	}

	status := models.WatchStatus{
		UserID:   userID,
		MovieID:  movieID,
		SeriesID: seriesID,
		Status:   req.Status,
	}
	if err := wc.DB.Create(&status).Error; err != nil {
		DatabaseErrorHandler(c, "failed to create watch status", err)
		return
	}

	c.JSON(http.StatusCreated, status)
}
