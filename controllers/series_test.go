package controllers

import (
	"net/http"
	"testing"

	"github.com/Korgin-Artem/filmtracker/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSeriesOngoingFilter(t *testing.T) {
	r, db := setupTestEnv(t)

	ongoing := models.Series{Title: "Severance", ReleaseYear: 2022, Seasons: 2, IsOngoing: true}
	require.NoError(t, db.Create(&ongoing).Error)
	finished := models.Series{Title: "The Wire", ReleaseYear: 2002, Seasons: 5}
	require.NoError(t, db.Create(&finished).Error)

	w := performRequest(r, http.MethodGet, "/api/v1/series?is_ongoing=true", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var series []models.Series
	decodeBody(t, w, &series)
	require.Len(t, series, 1)
	assert.Equal(t, "Severance", series[0].Title)

	w = performRequest(r, http.MethodGet, "/api/v1/series?is_ongoing=false", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &series)
	require.Len(t, series, 1)
	assert.Equal(t, "The Wire", series[0].Title)
}

func TestGetSeriesNotFound(t *testing.T) {
	r, _ := setupTestEnv(t)

	w := performRequest(r, http.MethodGet, "/api/v1/series/missing-id", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Series not found")
}

func TestCreateSeriesDefaults(t *testing.T) {
	r, db := setupTestEnv(t)
	_, token := createTestUser(t, db, "editor@example.com", "editor")

	w := performRequest(r, http.MethodPost, "/api/v1/series", token, gin.H{
		"title":        "True Detective",
		"release_year": 2014,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var got models.Series
	decodeBody(t, w, &got)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, 1, got.Seasons)
	assert.False(t, got.IsOngoing)
	assert.NotNil(t, got.Genres)
}

func TestCreateSeriesWithGenres(t *testing.T) {
	r, db := setupTestEnv(t)
	_, token := createTestUser(t, db, "editor@example.com", "editor")
	genre := createTestGenre(t, db, "Sci-Fi", "sci-fi")

	w := performRequest(r, http.MethodPost, "/api/v1/series", token, gin.H{
		"title":        "The Expanse",
		"release_year": 2015,
		"seasons":      6,
		"is_ongoing":   false,
		"genres_ids":   []string{genre.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var got models.Series
	decodeBody(t, w, &got)
	assert.Equal(t, 6, got.Seasons)
	require.Len(t, got.Genres, 1)
	assert.Equal(t, "Sci-Fi", got.Genres[0].Name)
}

func TestUpdateSeries(t *testing.T) {
	r, db := setupTestEnv(t)
	_, token := createTestUser(t, db, "editor@example.com", "editor")
	series := createTestSeries(t, db, "Dark", 2017)

	w := performRequest(r, http.MethodPut, "/api/v1/series/"+series.ID, token, gin.H{
		"title":        "Dark",
		"release_year": 2017,
		"seasons":      3,
		"is_ongoing":   false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Series
	decodeBody(t, w, &got)
	assert.Equal(t, 3, got.Seasons)
}

func TestDeleteSeries(t *testing.T) {
	r, db := setupTestEnv(t)
	_, token := createTestUser(t, db, "editor@example.com", "editor")
	series := createTestSeries(t, db, "Gone", 2019)

	w := performRequest(r, http.MethodDelete, "/api/v1/series/"+series.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, http.MethodGet, "/api/v1/series/"+series.ID, "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
