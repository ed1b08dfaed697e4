package controllers

import (
	"net/http"
	"testing"

	"github.com/Korgin-Artem/filmtracker/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRating(t *testing.T) {
	r, db := setupTestEnv(t)
	user, token := createTestUser(t, db, "alice@example.com", "alice")
	movie := createTestMovie(t, db, "Heat", 1995)

	w := performRequest(r, http.MethodPost, "/api/v1/ratings", token, gin.H{
		"movie":  movie.ID,
		"rating": 9,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var got models.Rating
	decodeBody(t, w, &got)
	assert.Equal(t, user.ID, got.UserID)
	assert.Equal(t, 9, got.Rating)
	require.NotNil(t, got.MovieID)
	assert.Equal(t, movie.ID, *got.MovieID)
}

func TestCreateRatingOutOfRange(t *testing.T) {
	r, db := setupTestEnv(t)
	_, token := createTestUser(t, db, "alice@example.com", "alice")
	movie := createTestMovie(t, db, "Heat", 1995)

	for _, bad := range []int{0, 11, -3} {
		w := performRequest(r, http.MethodPost, "/api/v1/ratings", token, gin.H{
			"movie":  movie.ID,
			"rating": bad,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "must be between 1 and 10")
	}
}

func TestReRatingUpdatesExistingRow(t *testing.T) {
	r, db := setupTestEnv(t)
	user, token := createTestUser(t, db, "alice@example.com", "alice")
	movie := createTestMovie(t, db, "Heat", 1995)

	w := performRequest(r, http.MethodPost, "/api/v1/ratings", token, gin.H{
		"movie":  movie.ID,
		"rating": 6,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var first models.Rating
	decodeBody(t, w, &first)

	w = performRequest(r, http.MethodPost, "/api/v1/ratings", token, gin.H{
		"movie":  movie.ID,
		"rating": 9,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var second models.Rating
	decodeBody(t, w, &second)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 9, second.Rating)

	var count int64
	require.NoError(t, db.Model(&models.Rating{}).
		Where("user_id = ? AND movie_id = ?", user.ID, movie.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRatingMovieAndSeriesAreSeparate(t *testing.T) {
	r, db := setupTestEnv(t)
	_, token := createTestUser(t, db, "alice@example.com", "alice")
	movie := createTestMovie(t, db, "Heat", 1995)
	series := createTestSeries(t, db, "The Wire", 2002)

	w := performRequest(r, http.MethodPost, "/api/v1/ratings", token, gin.H{
		"movie":  movie.ID,
		"rating": 8,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(r, http.MethodPost, "/api/v1/ratings", token, gin.H{
		"series": series.ID,
		"rating": 10,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Rating{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestCreateRatingRequiresExactlyOneTarget(t *testing.T) {
	r, db := setupTestEnv(t)
	_, token := createTestUser(t, db, "alice@example.com", "alice")
	movie := createTestMovie(t, db, "Heat", 1995)
	series := createTestSeries(t, db, "The Wire", 2002)

	w := performRequest(r, http.MethodPost, "/api/v1/ratings", token, gin.H{
		"rating": 5,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(r, http.MethodPost, "/api/v1/ratings", token, gin.H{
		"movie":  movie.ID,
		"series": series.ID,
		"rating": 5,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRatingsFilterByUser(t *testing.T) {
	r, db := setupTestEnv(t)
	alice, _ := createTestUser(t, db, "alice@example.com", "alice")
	bob, _ := createTestUser(t, db, "bob@example.com", "bob")
	movie := createTestMovie(t, db, "Heat", 1995)

	createTestRating(t, db, alice.ID, &movie.ID, nil, 8)
	createTestRating(t, db, bob.ID, &movie.ID, nil, 5)

	w := performRequest(r, http.MethodGet, "/api/v1/ratings?user="+alice.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var ratings []models.Rating
	decodeBody(t, w, &ratings)
	require.Len(t, ratings, 1)
	assert.Equal(t, 8, ratings[0].Rating)
}
