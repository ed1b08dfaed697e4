package controllers

import (
	"net/http"

	"github.com/Korgin-Artem/filmtracker/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Recommendation tuning. Below minGenreMatches the genre tier is discarded
// entirely in favor of the popularity tier; the two are never blended.
const (
	recommendationLimit = 10
	minGenreMatches     = 5
	likedRatingFloor    = 8
	popularAvgFloor     = 7.0
)

type RecommendationController struct {
	DB     *gorm.DB
	movies *MovieController
}

func NewRecommendationController(db *gorm.DB, movies *MovieController) *RecommendationController {
	return &RecommendationController{DB: db, movies: movies}
}

// Recommendations godoc
// @Summary      Personal movie recommendations
// @Description  Movies sharing genres with the user's highly rated movies, falling back to globally popular movies when too few match
// @Tags         recommendations
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  models.Movie
// @Failure      401  {object}  Response
// @Router       /recommendations [get]
func (rc *RecommendationController) Recommendations(c *gin.Context) {
	userID, err := GetUserID(c)
	if err != nil {
		return
	}

	var matched []struct{ ID string }
	err = rc.DB.Raw(`SELECT DISTINCT movies.id AS id
		FROM movies
		JOIN movie_genres ON movie_genres.movie_id = movies.id
		WHERE movie_genres.genre_id IN (
			SELECT DISTINCT mg.genre_id
			FROM movie_genres mg
			JOIN ratings ON ratings.movie_id = mg.movie_id
			WHERE ratings.user_id = ? AND ratings.rating >= ?
		)
		AND movies.id NOT IN (
			SELECT movie_id FROM ratings
			WHERE user_id = ? AND movie_id IS NOT NULL
		)
		ORDER BY movies.id ASC
		LIMIT ?`,
		userID, likedRatingFloor, userID, recommendationLimit).
		Scan(&matched).Error
	if err != nil {
		DatabaseErrorHandler(c, "failed to match genres", err)
		return
	}

	if len(matched) < minGenreMatches {
		// fall back to the popularity tier
		popular, ok := rc.movies.topRatedMovies(c, popularAvgFloor)
		if !ok {
			return
		}
		movies := make([]models.Movie, 0, len(popular))
		for i := range popular {
			movies = append(movies, popular[i].Movie)
		}
		c.JSON(http.StatusOK, movies)
		return
	}

	ids := make([]string, 0, len(matched))
	for _, row := range matched {
		ids = append(ids, row.ID)
	}

	var movies []models.Movie
	err = rc.DB.Preload("Genres").Preload("Directors").Preload("Actors").
		Where("id IN ?", ids).Order("id ASC").Find(&movies).Error
	if err != nil {
		DatabaseErrorHandler(c, "failed to load recommended movies", err)
		return
	}

	if movies == nil {
		movies = make([]models.Movie, 0)
	}
	c.JSON(http.StatusOK, movies)
}
