package controllers

import (
	"math"
	"net/http"

	"github.com/Korgin-Artem/filmtracker/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// UserStats is the personal statistics payload. Every value is computed
// fresh from current rows on each request.
type UserStats struct {
	WatchedMovies int64            `json:"watched_movies"`
	WatchedSeries int64            `json:"watched_series"`
	TotalWatched  int64            `json:"total_watched"`
	AverageRating float64          `json:"average_rating"`
	ReviewsCount  int64            `json:"reviews_count"`
	ByStatus      map[string]int64 `json:"by_status"`
}

// Profile godoc
// @Summary      Current user profile
// @Tags         user
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  models.UserResponse
// @Failure      401  {object}  Response
// @Router       /user/profile [get]
func (uc *UserController) Profile(c *gin.Context) {
	userID, err := GetUserID(c)
	if err != nil {
		return
	}

	var user models.User
	if err := uc.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, Response{Error: "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, user.Response())
}

// Stats godoc
// @Summary      Personal statistics
// @Description  Watched counts, average rating and review count for the current user
// @Tags         user
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  UserStats
// @Failure      401  {object}  Response
// @Router       /user/stats [get]
func (uc *UserController) Stats(c *gin.Context) {
	userID, err := GetUserID(c)
	if err != nil {
		return
	}

	stats := UserStats{
		ByStatus: map[string]int64{
			models.StatusPlanned:  0,
			models.StatusWatching: 0,
			models.StatusWatched:  0,
		},
	}

	err = uc.DB.Model(&models.WatchStatus{}).
		Where("user_id = ? AND status = ? AND movie_id IS NOT NULL", userID, models.StatusWatched).
		Count(&stats.WatchedMovies).Error
	if err != nil {
		DatabaseErrorHandler(c, "failed to count watched movies", err)
		return
	}

	err = uc.DB.Model(&models.WatchStatus{}).
		Where("user_id = ? AND status = ? AND series_id IS NOT NULL", userID, models.StatusWatched).
		Count(&stats.WatchedSeries).Error
	if err != nil {
		DatabaseErrorHandler(c, "failed to count watched series", err)
		return
	}
	stats.TotalWatched = stats.WatchedMovies + stats.WatchedSeries

	var avg *float64
	err = uc.DB.Model(&models.Rating{}).
		Where("user_id = ?", userID).
		Select("AVG(rating)").Scan(&avg).Error
	if err != nil {
		DatabaseErrorHandler(c, "failed to average ratings", err)
		return
	}
	if avg != nil {
		stats.AverageRating = math.Round(*avg*10) / 10
	}

	err = uc.DB.Model(&models.Review{}).
		Where("user_id = ?", userID).
		Count(&stats.ReviewsCount).Error
	if err != nil {
		DatabaseErrorHandler(c, "failed to count reviews", err)
		return
	}

	var byStatus []struct {
		Status string
		Count  int64
	}
	err = uc.DB.Model(&models.WatchStatus{}).
		Where("user_id = ?", userID).
		Select("status, COUNT(*) AS count").
		Group("status").Scan(&byStatus).Error
	if err != nil {
		DatabaseErrorHandler(c, "failed to count watch statuses", err)
		return
	}
	for _, row := range byStatus {
		stats.ByStatus[row.Status] = row.Count
	}

	c.JSON(http.StatusOK, stats)
}
