package controllers

import (
	"net/http"
	"testing"

	"github.com/Korgin-Artem/filmtracker/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWatchStatus(t *testing.T) {
	r, db := setupTestEnv(t)
	user, token := createTestUser(t, db, "alice@example.com", "alice")
	movie := createTestMovie(t, db, "Heat", 1995)

	w := performRequest(r, http.MethodPost, "/api/v1/watch-status", token, gin.H{
		"movie":  movie.ID,
		"status": "watching",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var got models.WatchStatus
	decodeBody(t, w, &got)
	assert.Equal(t, user.ID, got.UserID)
	assert.Equal(t, models.StatusWatching, got.Status)
	assert.False(t, got.AddedAt.IsZero())
}

func TestCreateWatchStatusInvalidStatus(t *testing.T) {
	r, db := setupTestEnv(t)
	_, token := createTestUser(t, db, "alice@example.com", "alice")
	movie := createTestMovie(t, db, "Heat", 1995)

	w := performRequest(r, http.MethodPost, "/api/v1/watch-status", token, gin.H{
		"movie":  movie.ID,
		"status": "binged",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must be one of planned, watching, watched")
}

func TestCreateWatchStatusRequiresExactlyOneTarget(t *testing.T) {
	r, db := setupTestEnv(t)
	_, token := createTestUser(t, db, "alice@example.com", "alice")

	w := performRequest(r, http.MethodPost, "/api/v1/watch-status", token, gin.H{
		"status": "planned",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "exactly one of movie or series must be set")
}

func TestListWatchStatusFilters(t *testing.T) {
	r, db := setupTestEnv(t)
	alice, _ := createTestUser(t, db, "alice@example.com", "alice")
	movie := createTestMovie(t, db, "Heat", 1995)
	series := createTestSeries(t, db, "The Wire", 2002)

	require.NoError(t, db.Create(&models.WatchStatus{
		UserID: alice.ID, MovieID: &movie.ID, Status: models.StatusWatched,
	}).Error)
	require.NoError(t, db.Create(&models.WatchStatus{
		UserID: alice.ID, SeriesID: &series.ID, Status: models.StatusPlanned,
	}).Error)

	w := performRequest(r, http.MethodGet, "/api/v1/watch-status?status=watched", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var statuses []models.WatchStatus
	decodeBody(t, w, &statuses)
	require.Len(t, statuses, 1)
	require.NotNil(t, statuses[0].MovieID)
	assert.Equal(t, movie.ID, *statuses[0].MovieID)

	w = performRequest(r, http.MethodGet, "/api/v1/watch-status?user="+alice.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &statuses)
	assert.Len(t, statuses, 2)
}

func TestListWatchStatusRejectsUnknownStatus(t *testing.T) {
	r, _ := setupTestEnv(t)

	w := performRequest(r, http.MethodGet, "/api/v1/watch-status?status=binged", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
