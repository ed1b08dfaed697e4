package controllers

import (
	"net/http"
	"testing"

	"github.com/Korgin-Artem/filmtracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	r, db := setupTestEnv(t)
	user, token := createTestUser(t, db, "alice@example.com", "alice")

	w := performRequest(r, http.MethodGet, "/api/v1/user/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.UserResponse
	decodeBody(t, w, &got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestStatsEmpty(t *testing.T) {
	r, db := setupTestEnv(t)
	_, token := createTestUser(t, db, "alice@example.com", "alice")

	w := performRequest(r, http.MethodGet, "/api/v1/user/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats UserStats
	decodeBody(t, w, &stats)
	assert.EqualValues(t, 0, stats.TotalWatched)
	assert.Equal(t, 0.0, stats.AverageRating)
	assert.EqualValues(t, 0, stats.ReviewsCount)
	assert.EqualValues(t, 0, stats.ByStatus[models.StatusPlanned])
	assert.EqualValues(t, 0, stats.ByStatus[models.StatusWatching])
	assert.EqualValues(t, 0, stats.ByStatus[models.StatusWatched])
}

func TestStats(t *testing.T) {
	r, db := setupTestEnv(t)
	alice, token := createTestUser(t, db, "alice@example.com", "alice")
	bob, _ := createTestUser(t, db, "bob@example.com", "bob")

	heat := createTestMovie(t, db, "Heat", 1995)
	alien := createTestMovie(t, db, "Alien", 1979)
	wire := createTestSeries(t, db, "The Wire", 2002)

	for _, ws := range []models.WatchStatus{
		{UserID: alice.ID, MovieID: &heat.ID, Status: models.StatusWatched},
		{UserID: alice.ID, MovieID: &alien.ID, Status: models.StatusWatched},
		{UserID: alice.ID, SeriesID: &wire.ID, Status: models.StatusWatched},
		{UserID: alice.ID, MovieID: &heat.ID, Status: models.StatusPlanned},
		{UserID: bob.ID, MovieID: &heat.ID, Status: models.StatusWatched},
	} {
		ws := ws
		require.NoError(t, db.Create(&ws).Error)
	}

	createTestRating(t, db, alice.ID, &heat.ID, nil, 6)
	createTestRating(t, db, alice.ID, &alien.ID, nil, 8)
	createTestRating(t, db, bob.ID, &heat.ID, nil, 1)

	require.NoError(t, db.Create(&models.Review{
		UserID: alice.ID, MovieID: &heat.ID, Text: "Great",
	}).Error)

	w := performRequest(r, http.MethodGet, "/api/v1/user/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats UserStats
	decodeBody(t, w, &stats)
	assert.EqualValues(t, 2, stats.WatchedMovies)
	assert.EqualValues(t, 1, stats.WatchedSeries)
	assert.EqualValues(t, 3, stats.TotalWatched)
	assert.Equal(t, 7.0, stats.AverageRating)
	assert.EqualValues(t, 1, stats.ReviewsCount)
	assert.EqualValues(t, 3, stats.ByStatus[models.StatusWatched])
	assert.EqualValues(t, 1, stats.ByStatus[models.StatusPlanned])
	assert.EqualValues(t, 0, stats.ByStatus[models.StatusWatching])
}

func TestStatsAverageRounding(t *testing.T) {
	r, db := setupTestEnv(t)
	alice, token := createTestUser(t, db, "alice@example.com", "alice")

	movies := []models.Movie{}
	for _, title := range []string{"One", "Two", "Three"} {
		movies = append(movies, createTestMovie(t, db, title, 2000))
	}
	for i, value := range []int{7, 8, 10} {
		createTestRating(t, db, alice.ID, &movies[i].ID, nil, value)
	}

	w := performRequest(r, http.MethodGet, "/api/v1/user/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats UserStats
	decodeBody(t, w, &stats)
	// 25/3 = 8.333... rounds to one decimal
	assert.Equal(t, 8.3, stats.AverageRating)
}
