package controllers

import (
	"errors"
	"net/http"

	"github.com/Korgin-Artem/filmtracker/models"
	"github.com/Korgin-Artem/filmtracker/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RatingController struct {
	DB *gorm.DB
}

func NewRatingController(db *gorm.DB) *RatingController {
	return &RatingController{DB: db}
}

// List godoc
// @Summary      List ratings
// @Tags         ratings
// @Produce      json
// @Param        movie query string false "filter by movie id"
// @Param        series query string false "filter by series id"
// @Param        user query string false "filter by user id"
// @Success      200  {array}  models.Rating
// @Router       /ratings [get]
func (rc *RatingController) List(c *gin.Context) {
	query := rc.DB.Model(&models.Rating{}).Order("created_at DESC")

	if movieID := c.Query("movie"); movieID != "" {
		query = query.Where("movie_id = ?", movieID)
	}
	if seriesID := c.Query("series"); seriesID != "" {
		query = query.Where("series_id = ?", seriesID)
	}
	if userID := c.Query("user"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var ratings []models.Rating
	if err := utils.Paginate(c, query).Find(&ratings).Error; err != nil {
		DatabaseErrorHandler(c, "failed to list ratings", err)
		return
	}

	if ratings == nil {
		ratings = make([]models.Rating, 0)
	}
	c.JSON(http.StatusOK, ratings)
}

// Create godoc
// @Summary      Rate a movie or series
// @Description  Scores run 1-10. Re-rating the same content updates the existing row.
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        rating body models.RatingRequest true "rating data"
// @Success      201  {object}  models.Rating
// @Failure      400  {object}  Response
// @Failure      401  {object}  Response
// @Router       /ratings [post]
func (rc *RatingController) Create(c *gin.Context) {
	userID, err := GetUserID(c)
	if err != nil {
		return
	}

	var req models.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Invalid request body"})
		return
	}

	if req.Rating < models.RatingMin || req.Rating > models.RatingMax {
		c.JSON(http.StatusBadRequest, Response{
			Errors: gin.H{"rating": "must be between 1 and 10"},
		})
		return
	}

	movieID, seriesID, ok := validateContentRef(c, rc.DB, req.MovieID, req.SeriesID)
	if !ok {
		return
	}

	// one rating per user per content item
	existing := rc.DB.Where("user_id = ?", userID)
	if movieID != nil {
		existing = existing.Where("movie_id = ?", *movieID)
	} else {
		existing = existing.Where("series_id = ?", *seriesID)
	}

	var rating models.Rating
	err = existing.First(&rating).Error
	switch {
	case err == nil:
		rating.Rating = req.Rating
		if err := rc.DB.Save(&rating).Error; err != nil {
			DatabaseErrorHandler(c, "failed to update rating", err)
			return
		}
		c.JSON(http.StatusOK, rating)
	case errors.Is(err, gorm.ErrRecordNotFound):
		rating = models.Rating{
			UserID:   userID,
			MovieID:  movieID,
			SeriesID: seriesID,
			Rating:   req.Rating,
		}
		if err := rc.DB.Create(&rating).Error; err != nil {
			DatabaseErrorHandler(c, "failed to create rating", err)
			return
		}
		c.JSON(http.StatusCreated, rating)
	default:
		DatabaseErrorHandler(c, "failed to look up existing rating", err)
	}
}
