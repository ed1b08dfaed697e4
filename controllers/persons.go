package controllers

import (
	"net/http"

	"github.com/Korgin-Artem/filmtracker/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PersonController struct {
	DB *gorm.DB
}

func NewPersonController(db *gorm.DB) *PersonController {
	return &PersonController{DB: db}
}

// List godoc
// @Summary      List persons
// @Tags         persons
// @Produce      json
// @Success      200  {array}  models.Person
// @Router       /persons [get]
func (pc *PersonController) List(c *gin.Context) {
	var persons []models.Person
	if err := pc.DB.Order("last_name ASC, first_name ASC").Find(&persons).Error; err != nil {
		DatabaseErrorHandler(c, "failed to list persons", err)
		return
	}
	if persons == nil {
		persons = make([]models.Person, 0)
	}
	c.JSON(http.StatusOK, persons)
}

// Get godoc
// @Summary      Get a person
// @Tags         persons
// @Produce      json
// @Param        id path string true "person id"
// @Success      200  {object}  models.Person
// @Failure      404  {object}  Response
// @Router       /persons/{id} [get]
func (pc *PersonController) Get(c *gin.Context) {
	var person models.Person
	if err := pc.DB.Where("id = ?", c.Param("id")).First(&person).Error; err != nil {
		c.JSON(http.StatusNotFound, Response{Error: "Person not found"})
		return
	}
	c.JSON(http.StatusOK, person)
}

// Create godoc
// @Summary      Create a person
// @Tags         persons
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        person body models.PersonRequest true "person data"
// @Success      201  {object}  models.Person
// @Failure      400  {object}  Response
// @Failure      401  {object}  Response
// @Router       /persons [post]
func (pc *PersonController) Create(c *gin.Context) {
	var req models.PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Invalid request body"})
		return
	}

	person := models.Person{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Photo:     req.Photo,
		Bio:       req.Bio,
	}
	if err := pc.DB.Create(&person).Error; err != nil {
		DatabaseErrorHandler(c, "failed to create person", err)
		return
	}

	c.JSON(http.StatusCreated, person)
}

// Update godoc
// @Summary      Update a person
// @Tags         persons
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id path string true "person id"
// @Param        person body models.PersonRequest true "person data"
// @Success      200  {object}  models.Person
// @Failure      400  {object}  Response
// @Failure      401  {object}  Response
// @Failure      404  {object}  Response
// @Router       /persons/{id} [put]
func (pc *PersonController) Update(c *gin.Context) {
	var person models.Person
	if err := pc.DB.Where("id = ?", c.Param("id")).First(&person).Error; err != nil {
		c.JSON(http.StatusNotFound, Response{Error: "Person not found"})
		return
	}

	var req models.PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Invalid request body"})
		return
	}

	person.FirstName = req.FirstName
	person.LastName = req.LastName
	person.Photo = req.Photo
	person.Bio = req.Bio
	if err := pc.DB.Save(&person).Error; err != nil {
		DatabaseErrorHandler(c, "failed to update person", err)
		return
	}

	c.JSON(http.StatusOK, person)
}

// Delete godoc
// @Summary      Delete a person
// @Tags         persons
// @Produce      json
// @Security     Bearer
// @Param        id path string true "person id"
// @Success      200  {object}  Response
// @Failure      401  {object}  Response
// @Failure      404  {object}  Response
// @Router       /persons/{id} [delete]
func (pc *PersonController) Delete(c *gin.Context) {
	result := pc.DB.Delete(&models.Person{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		DatabaseErrorHandler(c, "failed to delete person", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, Response{Error: "Person not found"})
		return
	}
	c.JSON(http.StatusOK, Response{Message: "Person deleted"})
}
