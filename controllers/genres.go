package controllers

import (
	"net/http"

	"github.com/Korgin-Artem/filmtracker/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GenreController struct {
	DB *gorm.DB
}

func NewGenreController(db *gorm.DB) *GenreController {
	return &GenreController{DB: db}
}

// List godoc
// @Summary      List genres
// @Tags         genres
// @Produce      json
// @Success      200  {array}  models.Genre
// @Router       /genres [get]
func (gc *GenreController) List(c *gin.Context) {
	var genres []models.Genre
	if err := gc.DB.Order("name ASC").Find(&genres).Error; err != nil {
		DatabaseErrorHandler(c, "failed to list genres", err)
		return
	}
	if genres == nil {
		genres = make([]models.Genre, 0)
	}
	c.JSON(http.StatusOK, genres)
}

// Get godoc
// @Summary      Get a genre
// @Tags         genres
// @Produce      json
// @Param        id path string true "genre id"
// @Success      200  {object}  models.Genre
// @Failure      404  {object}  Response
// @Router       /genres/{id} [get]
func (gc *GenreController) Get(c *gin.Context) {
	var genre models.Genre
	if err := gc.DB.Where("id = ?", c.Param("id")).First(&genre).Error; err != nil {
		c.JSON(http.StatusNotFound, Response{Error: "Genre not found"})
		return
	}
	c.JSON(http.StatusOK, genre)
}

// Create godoc
// @Summary      Create a genre
// @Tags         genres
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        genre body models.GenreRequest true "genre data"
// @Success      201  {object}  models.Genre
// @Failure      400  {object}  Response
// @Failure      401  {object}  Response
// @Router       /genres [post]
func (gc *GenreController) Create(c *gin.Context) {
	var req models.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Invalid request body"})
		return
	}

	genre := models.Genre{Name: req.Name, Slug: req.Slug}
	if err := gc.DB.Create(&genre).Error; err != nil {
		c.JSON(http.StatusBadRequest, Response{Errors: gin.H{"name": "genre name or slug already exists"}})
		return
	}

	c.JSON(http.StatusCreated, genre)
}

// Update godoc
// @Summary      Update a genre
// @Tags         genres
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id path string true "genre id"
// @Param        genre body models.GenreRequest true "genre data"
// @Success      200  {object}  models.Genre
// @Failure      400  {object}  Response
// @Failure      401  {object}  Response
// @Failure      404  {object}  Response
// @Router       /genres/{id} [put]
func (gc *GenreController) Update(c *gin.Context) {
	var genre models.Genre
	if err := gc.DB.Where("id = ?", c.Param("id")).First(&genre).Error; err != nil {
		c.JSON(http.StatusNotFound, Response{Error: "Genre not found"})
		return
	}

	var req models.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Invalid request body"})
		return
	}

	genre.Name = req.Name
	genre.Slug = req.Slug
	if err := gc.DB.Save(&genre).Error; err != nil {
		c.JSON(http.StatusBadRequest, Response{Errors: gin.H{"name": "genre name or slug already exists"}})
		return
	}

	c.JSON(http.StatusOK, genre)
}

// Delete godoc
// @Summary      Delete a genre
// @Tags         genres
// @Produce      json
// @Security     Bearer
// @Param        id path string true "genre id"
// @Success      200  {object}  Response
// @Failure      401  {object}  Response
// @Failure      404  {object}  Response
// @Router       /genres/{id} [delete]
func (gc *GenreController) Delete(c *gin.Context) {
	result := gc.DB.Delete(&models.Genre{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		DatabaseErrorHandler(c, "failed to delete genre", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, Response{Error: "Genre not found"})
		return
	}
	c.JSON(http.StatusOK, Response{Message: "Genre deleted"})
}
