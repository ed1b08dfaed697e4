package controllers

import (
	"net/http"
	"testing"

	"github.com/Korgin-Artem/filmtracker/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMoviesEmpty(t *testing.T) {
	r, _ := setupTestEnv(t)

	w := performRequest(r, http.MethodGet, "/api/v1/movies", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestListMoviesGenreFilter(t *testing.T) {
	r, db := setupTestEnv(t)
	action := createTestGenre(t, db, "Action", "action")
	drama := createTestGenre(t, db, "Drama", "drama")
	createTestMovie(t, db, "Heat", 1995, action)
	createTestMovie(t, db, "Magnolia", 1999, drama)

	w := performRequest(r, http.MethodGet, "/api/v1/movies?genre=Act", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var movies []models.Movie
	decodeBody(t, w, &movies)
	require.Len(t, movies, 1)
	assert.Equal(t, "Heat", movies[0].Title)
}

func TestListMoviesYearRangeAndSearch(t *testing.T) {
	r, db := setupTestEnv(t)
	createTestMovie(t, db, "Alien", 1979)
	createTestMovie(t, db, "Aliens", 1986)
	createTestMovie(t, db, "Alien 3", 1992)

	w := performRequest(r, http.MethodGet, "/api/v1/movies?release_year_min=1980&release_year_max=1990", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var movies []models.Movie
	decodeBody(t, w, &movies)
	require.Len(t, movies, 1)
	assert.Equal(t, "Aliens", movies[0].Title)

	w = performRequest(r, http.MethodGet, "/api/v1/movies?search=Alien", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &movies)
	assert.Len(t, movies, 3)
}

func TestListMoviesOrdering(t *testing.T) {
	r, db := setupTestEnv(t)
	createTestMovie(t, db, "Zodiac", 2007)
	createTestMovie(t, db, "Amadeus", 1984)

	w := performRequest(r, http.MethodGet, "/api/v1/movies?ordering=title", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var movies []models.Movie
	decodeBody(t, w, &movies)
	require.Len(t, movies, 2)
	assert.Equal(t, "Amadeus", movies[0].Title)

	w = performRequest(r, http.MethodGet, "/api/v1/movies?ordering=-release_year", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &movies)
	require.Len(t, movies, 2)
	assert.Equal(t, "Zodiac", movies[0].Title)
}

func TestListMoviesPagination(t *testing.T) {
	r, db := setupTestEnv(t)
	createTestMovie(t, db, "First", 2000)
	createTestMovie(t, db, "Second", 2001)
	createTestMovie(t, db, "Third", 2002)

	w := performRequest(r, http.MethodGet, "/api/v1/movies?ordering=release_year&page=2&page_size=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var movies []models.Movie
	decodeBody(t, w, &movies)
	require.Len(t, movies, 1)
	assert.Equal(t, "Third", movies[0].Title)
}

func TestGetMovie(t *testing.T) {
	r, db := setupTestEnv(t)
	genre := createTestGenre(t, db, "Thriller", "thriller")
	movie := createTestMovie(t, db, "Se7en", 1995, genre)

	w := performRequest(r, http.MethodGet, "/api/v1/movies/"+movie.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Movie
	decodeBody(t, w, &got)
	assert.Equal(t, movie.ID, got.ID)
	assert.Equal(t, "Se7en", got.Title)
	require.Len(t, got.Genres, 1)
	assert.Equal(t, "Thriller", got.Genres[0].Name)
}

func TestGetMovieNotFound(t *testing.T) {
	r, _ := setupTestEnv(t)

	w := performRequest(r, http.MethodGet, "/api/v1/movies/missing-id", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Movie not found")
}

func TestCreateMovie(t *testing.T) {
	r, db := setupTestEnv(t)
	_, token := createTestUser(t, db, "editor@example.com", "editor")
	genre := createTestGenre(t, db, "Crime", "crime")
	director := createTestPerson(t, db, "Quentin", "Tarantino")
	actor := createTestPerson(t, db, "Samuel", "Jackson")

	w := performRequest(r, http.MethodPost, "/api/v1/movies", token, gin.H{
		"title":         "Pulp Fiction",
		"release_year":  1994,
		"duration":      154,
		"genres_ids":    []string{genre.ID},
		"directors_ids": []string{director.ID},
		"actors_ids":    []string{actor.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var got models.Movie
	decodeBody(t, w, &got)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Pulp Fiction", got.Title)
	require.Len(t, got.Genres, 1)
	require.Len(t, got.Directors, 1)
	require.Len(t, got.Actors, 1)
	assert.Equal(t, "Tarantino", got.Directors[0].LastName)

	// retrieving by the returned id yields the same field values
	w = performRequest(r, http.MethodGet, "/api/v1/movies/"+got.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Movie
	decodeBody(t, w, &fetched)
	assert.Equal(t, got.Title, fetched.Title)
	assert.Equal(t, got.ReleaseYear, fetched.ReleaseYear)
	assert.Equal(t, got.Duration, fetched.Duration)
	require.Len(t, fetched.Genres, 1)
	assert.Equal(t, genre.ID, fetched.Genres[0].ID)
}

func TestCreateMovieRequiresAuth(t *testing.T) {
	r, _ := setupTestEnv(t)

	w := performRequest(r, http.MethodPost, "/api/v1/movies", "", gin.H{
		"title":        "Pulp Fiction",
		"release_year": 1994,
		"duration":     154,
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateMovieValidation(t *testing.T) {
	r, db := setupTestEnv(t)
	_, token := createTestUser(t, db, "editor@example.com", "editor")

	w := performRequest(r, http.MethodPost, "/api/v1/movies", token, gin.H{
		"title": "No Year",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "this field is required", resp.Errors["release_year"])
	assert.Equal(t, "this field is required", resp.Errors["duration"])
}

func TestCreateMovieUnknownGenre(t *testing.T) {
	r, db := setupTestEnv(t)
	_, token := createTestUser(t, db, "editor@example.com", "editor")

	w := performRequest(r, http.MethodPost, "/api/v1/movies", token, gin.H{
		"title":        "Orphan",
		"release_year": 2009,
		"duration":     123,
		"genres_ids":   []string{"no-such-genre"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "genres_ids")
}

func TestUpdateMovie(t *testing.T) {
	r, db := setupTestEnv(t)
	_, token := createTestUser(t, db, "editor@example.com", "editor")
	oldGenre := createTestGenre(t, db, "Horror", "horror")
	newGenre := createTestGenre(t, db, "Comedy", "comedy")
	movie := createTestMovie(t, db, "Working Title", 2001, oldGenre)

	w := performRequest(r, http.MethodPut, "/api/v1/movies/"+movie.ID, token, gin.H{
		"title":        "Final Title",
		"release_year": 2002,
		"duration":     95,
		"genres_ids":   []string{newGenre.ID},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Movie
	decodeBody(t, w, &got)
	assert.Equal(t, "Final Title", got.Title)
	assert.Equal(t, 2002, got.ReleaseYear)
	require.Len(t, got.Genres, 1)
	assert.Equal(t, "Comedy", got.Genres[0].Name)
}

func TestUpdateMovieKeepsAssociationsWhenOmitted(t *testing.T) {
	r, db := setupTestEnv(t)
	_, token := createTestUser(t, db, "editor@example.com", "editor")
	genre := createTestGenre(t, db, "Horror", "horror")
	movie := createTestMovie(t, db, "The Thing", 1982, genre)

	w := performRequest(r, http.MethodPut, "/api/v1/movies/"+movie.ID, token, gin.H{
		"title":        "The Thing",
		"release_year": 1982,
		"duration":     109,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Movie
	decodeBody(t, w, &got)
	require.Len(t, got.Genres, 1)
	assert.Equal(t, "Horror", got.Genres[0].Name)
}

func TestDeleteMovie(t *testing.T) {
	r, db := setupTestEnv(t)
	_, token := createTestUser(t, db, "editor@example.com", "editor")
	movie := createTestMovie(t, db, "Doomed", 2010)

	w := performRequest(r, http.MethodDelete, "/api/v1/movies/"+movie.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, http.MethodGet, "/api/v1/movies/"+movie.ID, "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMovieCascadesDependentRows(t *testing.T) {
	r, db := setupTestEnv(t)
	user, token := createTestUser(t, db, "editor@example.com", "editor")
	movie := createTestMovie(t, db, "Doomed", 2010)

	createTestRating(t, db, user.ID, &movie.ID, nil, 8)
	require.NoError(t, db.Create(&models.Review{
		UserID: user.ID, MovieID: &movie.ID, Text: "Soon gone",
	}).Error)
	require.NoError(t, db.Create(&models.WatchStatus{
		UserID: user.ID, MovieID: &movie.ID, Status: models.StatusWatched,
	}).Error)

	w := performRequest(r, http.MethodDelete, "/api/v1/movies/"+movie.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Rating{}).Where("movie_id = ?", movie.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	require.NoError(t, db.Model(&models.Review{}).Where("movie_id = ?", movie.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	require.NoError(t, db.Model(&models.WatchStatus{}).Where("movie_id = ?", movie.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeleteMovieNotFound(t *testing.T) {
	r, db := setupTestEnv(t)
	_, token := createTestUser(t, db, "editor@example.com", "editor")

	w := performRequest(r, http.MethodDelete, "/api/v1/movies/missing-id", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPopularMovies(t *testing.T) {
	r, db := setupTestEnv(t)
	alice, _ := createTestUser(t, db, "alice@example.com", "alice")
	bob, _ := createTestUser(t, db, "bob@example.com", "bob")

	great := createTestMovie(t, db, "Great", 2000)
	decent := createTestMovie(t, db, "Decent", 2001)
	createTestMovie(t, db, "Unrated", 2002)

	createTestRating(t, db, alice.ID, &great.ID, nil, 9)
	createTestRating(t, db, bob.ID, &great.ID, nil, 10)
	createTestRating(t, db, alice.ID, &decent.ID, nil, 7)

	w := performRequest(r, http.MethodGet, "/api/v1/movies/popular", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var movies []models.MovieWithRating
	decodeBody(t, w, &movies)
	require.Len(t, movies, 2)
	assert.Equal(t, "Great", movies[0].Title)
	assert.Equal(t, 9.5, movies[0].AverageRating)
	assert.Equal(t, "Decent", movies[1].Title)
	assert.Equal(t, 7.0, movies[1].AverageRating)
}
