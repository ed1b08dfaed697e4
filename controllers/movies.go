package controllers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/Korgin-Artem/filmtracker/models"
	"github.com/Korgin-Artem/filmtracker/services/activity"
	"github.com/Korgin-Artem/filmtracker/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MovieController struct {
	DB              *gorm.DB
	activityService *activity.ActivityService
}

func NewMovieController(db *gorm.DB, activityService *activity.ActivityService) *MovieController {
	return &MovieController{
		DB:              db,
		activityService: activityService,
	}
}

// MovieSearchParams are the list filters.
type MovieSearchParams struct {
	Genre          string `form:"genre"`            // genre name substring
	ReleaseYearMin int    `form:"release_year_min"` // inclusive lower bound
	ReleaseYearMax int    `form:"release_year_max"` // inclusive upper bound
	Search         string `form:"search"`           // title/description substring
	Ordering       string `form:"ordering"`         // title, release_year, created_at; "-" prefix for desc
}

var movieOrderings = map[string]string{
	"title":        "movies.title",
	"release_year": "movies.release_year",
	"created_at":   "movies.created_at",
}

// orderClause maps an ordering parameter to a SQL clause, or "" when the
// field is not orderable.
func orderClause(orderings map[string]string, param string) string {
	desc := false
	if len(param) > 0 && param[0] == '-' {
		desc = true
		param = param[1:]
	}
	column, ok := orderings[param]
	if !ok {
		return ""
	}
	if desc {
		return column + " DESC"
	}
	return column + " ASC"
}

// List godoc
// @Summary      List movies
// @Description  Lists movies with filtering, search and ordering
// @Tags         movies
// @Produce      json
// @Param        genre query string false "genre name substring"
// @Param        release_year_min query int false "minimum release year"
// @Param        release_year_max query int false "maximum release year"
// @Param        search query string false "title/description substring"
// @Param        ordering query string false "title, release_year or created_at, - prefix for descending"
// @Param        page query int false "page number"
// @Param        page_size query int false "page size"
// @Success      200  {array}  models.Movie
// @Router       /movies [get]
func (mc *MovieController) List(c *gin.Context) {
	var params MovieSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Invalid query parameters"})
		return
	}

	query := mc.DB.Model(&models.Movie{}).Distinct("movies.*")

	if params.Genre != "" {
		query = query.
			Joins("JOIN movie_genres ON movie_genres.movie_id = movies.id").
			Joins("JOIN genres ON genres.id = movie_genres.genre_id").
			Where("genres.name LIKE ?", "%"+params.Genre+"%")
	}
	if params.ReleaseYearMin > 0 {
		query = query.Where("movies.release_year >= ?", params.ReleaseYearMin)
	}
	if params.ReleaseYearMax > 0 {
		query = query.Where("movies.release_year <= ?", params.ReleaseYearMax)
	}
	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("movies.title LIKE ? OR movies.description LIKE ?", like, like)
	}

	if clause := orderClause(movieOrderings, params.Ordering); clause != "" {
		query = query.Order(clause)
	} else {
		query = query.Order("movies.created_at DESC")
	}

	var movies []models.Movie
	err := utils.Paginate(c, query).
		Preload("Genres").Preload("Directors").Preload("Actors").
		Find(&movies).Error
	if err != nil {
		DatabaseErrorHandler(c, "failed to list movies", err)
		return
	}

	if movies == nil {
		movies = make([]models.Movie, 0)
	}
	c.JSON(http.StatusOK, movies)
}

// Get godoc
// @Summary      Get a movie
// @Tags         movies
// @Produce      json
// @Param        id path string true "movie id"
// @Success      200  {object}  models.Movie
// @Failure      404  {object}  Response
// @Router       /movies/{id} [get]
func (mc *MovieController) Get(c *gin.Context) {
	var movie models.Movie
	err := mc.DB.Preload("Genres").Preload("Directors").Preload("Actors").
		Where("id = ?", c.Param("id")).First(&movie).Error
	if err != nil {
		c.JSON(http.StatusNotFound, Response{Error: "Movie not found"})
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (mc *MovieController) validateWrite(c *gin.Context, req *models.MovieRequest) bool {
	fieldErrors := gin.H{}
	if req.Title == "" {
		fieldErrors["title"] = "this field is required"
	}
	if req.ReleaseYear == 0 {
		fieldErrors["release_year"] = "this field is required"
	}
	if req.Duration == 0 {
		fieldErrors["duration"] = "this field is required"
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, Response{Errors: fieldErrors})
		return false
	}
	return true
}

// Create godoc
// @Summary      Create a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        movie body models.MovieRequest true "movie data"
// @Success      201  {object}  models.Movie
// @Failure      400  {object}  Response
// @Failure      401  {object}  Response
// @Router       /movies [post]
func (mc *MovieController) Create(c *gin.Context) {
	var req models.MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Invalid request body"})
		return
	}
	if !mc.validateWrite(c, &req) {
		return
	}

	genres := make([]models.Genre, 0)
	directors := make([]models.Person, 0)
	actors := make([]models.Person, 0)
	var ok bool
	if req.GenresIDs != nil {
		if genres, ok = loadGenresByIDs(c, mc.DB, *req.GenresIDs); !ok {
			return
		}
	}
	if req.DirectorsIDs != nil {
		if directors, ok = loadPersonsByIDs(c, mc.DB, "directors_ids", *req.DirectorsIDs); !ok {
			return
		}
	}
	if req.ActorsIDs != nil {
		if actors, ok = loadPersonsByIDs(c, mc.DB, "actors_ids", *req.ActorsIDs); !ok {
			return
		}
	}

	movie := models.Movie{
		Title:       req.Title,
		Description: req.Description,
		ReleaseYear: req.ReleaseYear,
		Duration:    req.Duration,
		Poster:      req.Poster,
		Genres:      genres,
		Directors:   directors,
		Actors:      actors,
	}

	if err := mc.DB.Create(&movie).Error; err != nil {
		DatabaseErrorHandler(c, "failed to create movie", err)
		return
	}

	mc.activityService.RecordActivity("movie", fmt.Sprintf("movie %q added to the catalog", movie.Title))

	c.JSON(http.StatusCreated, movie)
}

// Update godoc
// @Summary      Update a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id path string true "movie id"
// @Param        movie body models.MovieRequest true "movie data"
// @Success      200  {object}  models.Movie
// @Failure      400  {object}  Response
// @Failure      401  {object}  Response
// @Failure      404  {object}  Response
// @Router       /movies/{id} [put]
func (mc *MovieController) Update(c *gin.Context) {
	var movie models.Movie
	if err := mc.DB.Where("id = ?", c.Param("id")).First(&movie).Error; err != nil {
		c.JSON(http.StatusNotFound, Response{Error: "Movie not found"})
		return
	}

	var req models.MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Invalid request body"})
		return
	}
	if !mc.validateWrite(c, &req) {
		return
	}

	movie.Title = req.Title
	movie.Description = req.Description
	movie.ReleaseYear = req.ReleaseYear
	movie.Duration = req.Duration
	movie.Poster = req.Poster

	if err := mc.DB.Save(&movie).Error; err != nil {
		DatabaseErrorHandler(c, "failed to update movie", err)
		return
	}

	if req.GenresIDs != nil {
		genres, ok := loadGenresByIDs(c, mc.DB, *req.GenresIDs)
		if !ok {
			return
		}
		if err := mc.DB.Model(&movie).Association("Genres").Replace(genres); err != nil {
			DatabaseErrorHandler(c, "failed to update movie genres", err)
			return
		}
	}
	if req.DirectorsIDs != nil {
		directors, ok := loadPersonsByIDs(c, mc.DB, "directors_ids", *req.DirectorsIDs)
		if !ok {
			return
		}
		if err := mc.DB.Model(&movie).Association("Directors").Replace(directors); err != nil {
			DatabaseErrorHandler(c, "failed to update movie directors", err)
			return
		}
	}
	if req.ActorsIDs != nil {
		actors, ok := loadPersonsByIDs(c, mc.DB, "actors_ids", *req.ActorsIDs)
		if !ok {
			return
		}
		if err := mc.DB.Model(&movie).Association("Actors").Replace(actors); err != nil {
			DatabaseErrorHandler(c, "failed to update movie actors", err)
			return
		}
	}

	var updated models.Movie
	err := mc.DB.Preload("Genres").Preload("Directors").Preload("Actors").
		Where("id = ?", movie.ID).First(&updated).Error
	if err != nil {
		DatabaseErrorHandler(c, "failed to reload movie", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary      Delete a movie
// @Tags         movies
// @Produce      json
// @Security     Bearer
// @Param        id path string true "movie id"
// @Success      200  {object}  Response
// @Failure      401  {object}  Response
// @Failure      404  {object}  Response
// @Router       /movies/{id} [delete]
func (mc *MovieController) Delete(c *gin.Context) {
	var movie models.Movie
	if err := mc.DB.Where("id = ?", c.Param("id")).First(&movie).Error; err != nil {
		c.JSON(http.StatusNotFound, Response{Error: "Movie not found"})
		return
	}

	if err := mc.DB.Select("Genres", "Directors", "Actors").Delete(&movie).Error; err != nil {
		DatabaseErrorHandler(c, "failed to delete movie", err)
		return
	}

	mc.activityService.RecordActivity("movie", fmt.Sprintf("movie %q removed from the catalog", movie.Title))

	c.JSON(http.StatusOK, Response{Message: "Movie deleted"})
}

// Popular godoc
// @Summary      Popular movies
// @Description  Top 10 movies by average rating; ties break by id ascending
// @Tags         movies
// @Produce      json
// @Success      200  {array}  models.MovieWithRating
// @Router       /movies/popular [get]
func (mc *MovieController) Popular(c *gin.Context) {
	rows, ok := mc.topRatedMovies(c, 0)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rows)
}

type ratedMovieRow struct {
	ID            string
	AverageRating float64
}

// topRatedMovies returns up to 10 movies having at least one rating, ordered
// by average rating descending with id as the deterministic tie-break.
// minAvg > 0 additionally filters by average rating.
func (mc *MovieController) topRatedMovies(c *gin.Context, minAvg float64) ([]models.MovieWithRating, bool) {
	sql := `SELECT movies.id AS id, AVG(ratings.rating) AS average_rating
		FROM movies
		JOIN ratings ON ratings.movie_id = movies.id
		GROUP BY movies.id`
	args := []interface{}{}
	if minAvg > 0 {
		sql += ` HAVING AVG(ratings.rating) >= ?`
		args = append(args, minAvg)
	}
	sql += ` ORDER BY average_rating DESC, movies.id ASC LIMIT 10`

	var rows []ratedMovieRow
	if err := mc.DB.Raw(sql, args...).Scan(&rows).Error; err != nil {
		DatabaseErrorHandler(c, "failed to aggregate movie ratings", err)
		return nil, false
	}

	result, ok := mc.expandRatedMovies(c, rows)
	if !ok {
		return nil, false
	}
	return result, true
}

// expandRatedMovies loads full movie objects preserving aggregation order.
func (mc *MovieController) expandRatedMovies(c *gin.Context, rows []ratedMovieRow) ([]models.MovieWithRating, bool) {
	result := make([]models.MovieWithRating, 0, len(rows))
	if len(rows) == 0 {
		return result, true
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var movies []models.Movie
	err := mc.DB.Preload("Genres").Preload("Directors").Preload("Actors").
		Where("id IN ?", ids).Find(&movies).Error
	if err != nil {
		DatabaseErrorHandler(c, "failed to load rated movies", err)
		return nil, false
	}

	byID := make(map[string]models.Movie, len(movies))
	for _, m := range movies {
		byID[m.ID] = m
	}
	for _, row := range rows {
		movie, found := byID[row.ID]
		if !found {
			continue
		}
		result = append(result, models.MovieWithRating{
			Movie:         movie,
			AverageRating: math.Round(row.AverageRating*10) / 10,
		})
	}
	return result, true
}

// parseLimit reads a limit query parameter with a default and a cap.
func parseLimit(c *gin.Context, def, max int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(def)))
	if err != nil || limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
