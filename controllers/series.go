package controllers

import (
	"fmt"
	"net/http"

	"github.com/Korgin-Artem/filmtracker/models"
	"github.com/Korgin-Artem/filmtracker/services/activity"
	"github.com/Korgin-Artem/filmtracker/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SeriesController struct {
	DB              *gorm.DB
	activityService *activity.ActivityService
}

func NewSeriesController(db *gorm.DB, activityService *activity.ActivityService) *SeriesController {
	return &SeriesController{
		DB:              db,
		activityService: activityService,
	}
}

// SeriesSearchParams are the list filters.
type SeriesSearchParams struct {
	Genre          string `form:"genre"`
	ReleaseYearMin int    `form:"release_year_min"`
	ReleaseYearMax int    `form:"release_year_max"`
	IsOngoing      *bool  `form:"is_ongoing"`
	Search         string `form:"search"`
	Ordering       string `form:"ordering"`
}

var seriesOrderings = map[string]string{
	"title":        "series.title",
	"release_year": "series.release_year",
	"created_at":   "series.created_at",
}

// List godoc
// @Summary      List series
// @Tags         series
// @Produce      json
// @Param        genre query string false "genre name substring"
// @Param        release_year_min query int false "minimum release year"
// @Param        release_year_max query int false "maximum release year"
// @Param        is_ongoing query bool false "ongoing flag"
// @Param        search query string false "title/description substring"
// @Param        ordering query string false "title, release_year or created_at, - prefix for descending"
// @Success      200  {array}  models.Series
// @Router       /series [get]
func (sc *SeriesController) List(c *gin.Context) {
	var params SeriesSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Invalid query parameters"})
		return
	}

	query := sc.DB.Model(&models.Series{}).Distinct("series.*")

	if params.Genre != "" {
		query = query.
			Joins("JOIN series_genres ON series_genres.series_id = series.id").
			Joins("JOIN genres ON genres.id = series_genres.genre_id").
			Where("genres.name LIKE ?", "%"+params.Genre+"%")
	}
	if params.ReleaseYearMin > 0 {
		query = query.Where("series.release_year >= ?", params.ReleaseYearMin)
	}
	if params.ReleaseYearMax > 0 {
		query = query.Where("series.release_year <= ?", params.ReleaseYearMax)
	}
	if params.IsOngoing != nil {
		query = query.Where("series.is_ongoing = ?", *params.IsOngoing)
	}
	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("series.title LIKE ? OR series.description LIKE ?", like, like)
	}

	if clause := orderClause(seriesOrderings, params.Ordering); clause != "" {
		query = query.Order(clause)
	} else {
		query = query.Order("series.created_at DESC")
	}

	var series []models.Series
	if err := utils.Paginate(c, query).Preload("Genres").Find(&series).Error; err != nil {
		DatabaseErrorHandler(c, "failed to list series", err)
		return
	}

	if series == nil {
		series = make([]models.Series, 0)
	}
	c.JSON(http.StatusOK, series)
}

// Get godoc
// @Summary      Get a series
// @Tags         series
// @Produce      json
// @Param        id path string true "series id"
// @Success      200  {object}  models.Series
// @Failure      404  {object}  Response
// @Router       /series/{id} [get]
func (sc *SeriesController) Get(c *gin.Context) {
	var series models.Series
	err := sc.DB.Preload("Genres").Where("id = ?", c.Param("id")).First(&series).Error
	if err != nil {
		c.JSON(http.StatusNotFound, Response{Error: "Series not found"})
		return
	}
	c.JSON(http.StatusOK, series)
}

func (sc *SeriesController) validateWrite(c *gin.Context, req *models.SeriesRequest) bool {
	fieldErrors := gin.H{}
	if req.Title == "" {
		fieldErrors["title"] = "this field is required"
	}
	if req.ReleaseYear == 0 {
		fieldErrors["release_year"] = "this field is required"
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, Response{Errors: fieldErrors})
		return false
	}
	return true
}

// Create godoc
// @Summary      Create a series
// @Tags         series
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        series body models.SeriesRequest true "series data"
// @Success      201  {object}  models.Series
// @Failure      400  {object}  Response
// @Failure      401  {object}  Response
// @Router       /series [post]
func (sc *SeriesController) Create(c *gin.Context) {
	var req models.SeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Invalid request body"})
		return
	}
	if !sc.validateWrite(c, &req) {
		return
	}

	genres := make([]models.Genre, 0)
	var ok bool
	if req.GenresIDs != nil {
		if genres, ok = loadGenresByIDs(c, sc.DB, *req.GenresIDs); !ok {
			return
		}
	}

	series := models.Series{
		Title:       req.Title,
		Description: req.Description,
		ReleaseYear: req.ReleaseYear,
		Seasons:     1,
		Poster:      req.Poster,
		Genres:      genres,
	}
	if req.Seasons != nil {
		series.Seasons = *req.Seasons
	}
	if req.IsOngoing != nil {
		series.IsOngoing = *req.IsOngoing
	}

	if err := sc.DB.Create(&series).Error; err != nil {
		DatabaseErrorHandler(c, "failed to create series", err)
		return
	}

	sc.activityService.RecordActivity("series", fmt.Sprintf("series %q added to the catalog", series.Title))

	c.JSON(http.StatusCreated, series)
}

// Update godoc
// @Summary      Update a series
// @Tags         series
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id path string true "series id"
// @Param        series body models.SeriesRequest true "series data"
// @Success      200  {object}  models.Series
// @Failure      400  {object}  Response
// @Failure      401  {object}  Response
// @Failure      404  {object}  Response
// @Router       /series/{id} [put]
func (sc *SeriesController) Update(c *gin.Context) {
	var series models.Series
	if err := sc.DB.Where("id = ?", c.Param("id")).First(&series).Error; err != nil {
		c.JSON(http.StatusNotFound, Response{Error: "Series not found"})
		return
	}

	var req models.SeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Invalid request body"})
		return
	}
	if !sc.validateWrite(c, &req) {
		return
	}

	series.Title = req.Title
	series.Description = req.Description
	series.ReleaseYear = req.ReleaseYear
	series.Poster = req.Poster
	if req.Seasons != nil {
		series.Seasons = *req.Seasons
	}
	if req.IsOngoing != nil {
		series.IsOngoing = *req.IsOngoing
	}

	if err := sc.DB.Save(&series).Error; err != nil {
		DatabaseErrorHandler(c, "failed to update series", err)
		return
	}

	if req.GenresIDs != nil {
		genres, ok := loadGenresByIDs(c, sc.DB, *req.GenresIDs)
		if !ok {
			return
		}
		if err := sc.DB.Model(&series).Association("Genres").Replace(genres); err != nil {
			DatabaseErrorHandler(c, "failed to update series genres", err)
			return
		}
	}

	var updated models.Series
	err := sc.DB.Preload("Genres").Where("id = ?", series.ID).First(&updated).Error
	if err != nil {
		DatabaseErrorHandler(c, "failed to reload series", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary      Delete a series
// @Tags         series
// @Produce      json
// @Security     Bearer
// @Param        id path string true "series id"
// @Success      200  {object}  Response
// @Failure      401  {object}  Response
// @Failure      404  {object}  Response
// @Router       /series/{id} [delete]
func (sc *SeriesController) Delete(c *gin.Context) {
	var series models.Series
	if err := sc.DB.Where("id = ?", c.Param("id")).First(&series).Error; err != nil {
		c.JSON(http.StatusNotFound, Response{Error: "Series not found"})
		return
	}

	if err := sc.DB.Select("Genres").Delete(&series).Error; err != nil {
		DatabaseErrorHandler(c, "failed to delete series", err)
		return
	}

	sc.activityService.RecordActivity("series", fmt.Sprintf("series %q removed from the catalog", series.Title))

	c.JSON(http.StatusOK, Response{Message: "Series deleted"})
}
