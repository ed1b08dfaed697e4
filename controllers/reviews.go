package controllers

import (
	"net/http"

	"github.com/Korgin-Artem/filmtracker/models"
	"github.com/Korgin-Artem/filmtracker/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

// List godoc
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Param        movie query string false "filter by movie id"
// @Param        series query string false "filter by series id"
// @Param        user query string false "filter by author id"
// @Success      200  {array}  models.ReviewResponse
// @Router       /reviews [get]
func (rc *ReviewController) List(c *gin.Context) {
	query := rc.DB.Model(&models.Review{}).Preload("User").Order("created_at DESC")

	if movieID := c.Query("movie"); movieID != "" {
		query = query.Where("movie_id = ?", movieID)
	}
	if seriesID := c.Query("series"); seriesID != "" {
		query = query.Where("series_id = ?", seriesID)
	}
	if userID := c.Query("user"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var reviews []models.Review
	if err := utils.Paginate(c, query).Find(&reviews).Error; err != nil {
		DatabaseErrorHandler(c, "failed to list reviews", err)
		return
	}

	responses := make([]models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, reviews[i].Response())
	}
	c.JSON(http.StatusOK, responses)
}

// Get godoc
// @Summary      Get a review
// @Tags         reviews
// @Produce      json
// @Param        id path string true "review id"
// @Success      200  {object}  models.ReviewResponse
// @Failure      404  {object}  Response
// @Router       /reviews/{id} [get]
func (rc *ReviewController) Get(c *gin.Context) {
	var review models.Review
	err := rc.DB.Preload("User").Where("id = ?", c.Param("id")).First(&review).Error
	if err != nil {
		c.JSON(http.StatusNotFound, Response{Error: "Review not found"})
		return
	}
	c.JSON(http.StatusOK, review.Response())
}

// Create godoc
// @Summary      Create a review
// @Description  The acting user is taken from the session; any user field in the payload is ignored
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        review body models.ReviewRequest true "review data"
// @Success      201  {object}  models.ReviewResponse
// @Failure      400  {object}  Response
// @Failure      401  {object}  Response
// @Router       /reviews [post]
func (rc *ReviewController) Create(c *gin.Context) {
	userID, err := GetUserID(c)
	if err != nil {
		return
	}

	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Invalid request body"})
		return
	}

	movieID, seriesID, ok := validateContentRef(c, rc.DB, req.MovieID, req.SeriesID)
	if !ok {
		return
	}

	review := models.Review{
		UserID:   userID,
		MovieID:  movieID,
		SeriesID: seriesID,
		Text:     req.Text,
	}
	if err := rc.DB.Create(&review).Error; err != nil {
		DatabaseErrorHandler(c, "failed to create review", err)
		return
	}

	if err := rc.DB.Preload("User").Where("id = ?", review.ID).First(&review).Error; err != nil {
		DatabaseErrorHandler(c, "failed to reload review", err)
		return
	}
	c.JSON(http.StatusCreated, review.Response())
}

// Update godoc
// @Summary      Update a review
// @Description  Only the author may edit a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id path string true "review id"
// @Param        review body models.ReviewRequest true "review data"
// @Success      200  {object}  models.ReviewResponse
// @Failure      401  {object}  Response
// @Failure      403  {object}  Response
// @Failure      404  {object}  Response
// @Router       /reviews/{id} [put]
func (rc *ReviewController) Update(c *gin.Context) {
	userID, err := GetUserID(c)
	if err != nil {
		return
	}

	var review models.Review
	if err := rc.DB.Preload("User").Where("id = ?", c.Param("id")).First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, Response{Error: "Review not found"})
		return
	}
	if review.UserID != userID {
		c.JSON(http.StatusForbidden, Response{Error: "Access denied"})
		return
	}

	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Invalid request body"})
		return
	}

	review.Text = req.Text
	if err := rc.DB.Save(&review).Error; err != nil {
		DatabaseErrorHandler(c, "failed to update review", err)
		return
	}

	c.JSON(http.StatusOK, review.Response())
}

// Delete godoc
// @Summary      Delete a review
// @Description  Only the author may delete a review
// @Tags         reviews
// @Produce      json
// @Security     Bearer
// @Param        id path string true "review id"
// @Success      200  {object}  Response
// @Failure      401  {object}  Response
// @Failure      403  {object}  Response
// @Failure      404  {object}  Response
// @Router       /reviews/{id} [delete]
func (rc *ReviewController) Delete(c *gin.Context) {
	userID, err := GetUserID(c)
	if err != nil {
		return
	}

	var review models.Review
	if err := rc.DB.Where("id = ?", c.Param("id")).First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, Response{Error: "Review not found"})
		return
	}
	if review.UserID != userID {
		c.JSON(http.StatusForbidden, Response{Error: "Access denied"})
		return
	}

	if err := rc.DB.Delete(&review).Error; err != nil {
		DatabaseErrorHandler(c, "failed to delete review", err)
		return
	}
	c.JSON(http.StatusOK, Response{Message: "Review deleted"})
}
