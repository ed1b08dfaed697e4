package controllers

import (
	"errors"
	"net/http"

	"github.com/Korgin-Artem/filmtracker/models"
	"github.com/Korgin-Artem/filmtracker/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Response is the error/message envelope. Successful reads return plain
// entities or arrays instead.
type Response struct {
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// GetUserID pulls the authenticated user id set by the auth middleware.
// Writes a 401 and returns an error when the request carries no identity.
func GetUserID(c *gin.Context) (string, error) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, Response{Error: "Authentication required"})
		return "", errors.New("unauthenticated")
	}
	userID, ok := v.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, Response{Error: "Authentication required"})
		return "", errors.New("unauthenticated")
	}
	return userID, nil
}

// DatabaseErrorHandler logs the cause and answers with a generic 500.
func DatabaseErrorHandler(c *gin.Context, logMessage string, err error) {
	utils.LogError(logMessage, err)
	c.JSON(http.StatusInternalServerError, Response{Error: "Internal server error"})
}

// normalizeID maps empty-string ids to nil so "" and absent mean the same.
func normalizeID(id *string) *string {
	if id != nil && *id == "" {
		return nil
	}
	return id
}

// validateContentRef enforces the movie-XOR-series rule shared by reviews,
// ratings and watch statuses, and checks the referenced row exists. On
// failure a 400 is written and ok is false.
func validateContentRef(c *gin.Context, db *gorm.DB, movieID, seriesID *string) (m *string, s *string, ok bool) {
	movieID = normalizeID(movieID)
	seriesID = normalizeID(seriesID)

	if (movieID == nil) == (seriesID == nil) {
		c.JSON(http.StatusBadRequest, Response{
			Errors: gin.H{"content": "exactly one of movie or series must be set"},
		})
		return nil, nil, false
	}

	if movieID != nil {
		var count int64
		if err := db.Model(&models.Movie{}).Where("id = ?", *movieID).Count(&count).Error; err != nil {
			DatabaseErrorHandler(c, "failed to check movie reference", err)
			return nil, nil, false
		}
		if count == 0 {
			c.JSON(http.StatusBadRequest, Response{Errors: gin.H{"movie": "unknown movie id"}})
			return nil, nil, false
		}
	} else {
		var count int64
		if err := db.Model(&models.Series{}).Where("id = ?", *seriesID).Count(&count).Error; err != nil {
			DatabaseErrorHandler(c, "failed to check series reference", err)
			return nil, nil, false
		}
		if count == 0 {
			c.JSON(http.StatusBadRequest, Response{Errors: gin.H{"series": "unknown series id"}})
			return nil, nil, false
		}
	}

	return movieID, seriesID, true
}

// loadGenresByIDs resolves a genre id list, failing with a 400 when any id
// is unknown.
func loadGenresByIDs(c *gin.Context, db *gorm.DB, ids []string) ([]models.Genre, bool) {
	genres := make([]models.Genre, 0, len(ids))
	if len(ids) == 0 {
		return genres, true
	}
	if err := db.Where("id IN ?", ids).Find(&genres).Error; err != nil {
		DatabaseErrorHandler(c, "failed to load genres", err)
		return nil, false
	}
	if len(genres) != len(ids) {
		c.JSON(http.StatusBadRequest, Response{Errors: gin.H{"genres_ids": "unknown genre id"}})
		return nil, false
	}
	return genres, true
}

// loadPersonsByIDs resolves a person id list for directors/actors.
func loadPersonsByIDs(c *gin.Context, db *gorm.DB, field string, ids []string) ([]models.Person, bool) {
	persons := make([]models.Person, 0, len(ids))
	if len(ids) == 0 {
		return persons, true
	}
	if err := db.Where("id IN ?", ids).Find(&persons).Error; err != nil {
		DatabaseErrorHandler(c, "failed to load persons", err)
		return nil, false
	}
	if len(persons) != len(ids) {
		c.JSON(http.StatusBadRequest, Response{Errors: gin.H{field: "unknown person id"}})
		return nil, false
	}
	return persons, true
}
