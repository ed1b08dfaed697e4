package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Korgin-Artem/filmtracker/models"
	"github.com/Korgin-Artem/filmtracker/services/activity"
	"github.com/Korgin-Artem/filmtracker/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	DB              *gorm.DB
	activityService *activity.ActivityService
}

func NewAuthController(db *gorm.DB, activityService *activity.ActivityService) *AuthController {
	return &AuthController{
		DB:              db,
		activityService: activityService,
	}
}

// AuthResponse is returned by register, login and refresh.
type AuthResponse struct {
	User    models.UserResponse `json:"user"`
	Access  string              `json:"access"`
	Refresh string              `json:"refresh"`
}

// RefreshRequest carries the refresh token being exchanged.
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a user account and returns an access/refresh token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register body models.RegisterRequest true "registration data"
// @Success      201  {object}  AuthResponse
// @Failure      400  {object}  Response
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Invalid request body"})
		return
	}

	fieldErrors := gin.H{}
	if req.Email == "" {
		fieldErrors["email"] = "this field is required"
	} else if !strings.Contains(req.Email, "@") {
		fieldErrors["email"] = "enter a valid email address"
	}
	if req.Username == "" {
		fieldErrors["username"] = "this field is required"
	}
	if req.Password == "" {
		fieldErrors["password"] = "this field is required"
	}

	if len(fieldErrors) == 0 {
		var count int64
		if err := ac.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			DatabaseErrorHandler(c, "failed to check email uniqueness", err)
			return
		}
		if count > 0 {
			fieldErrors["email"] = "already taken"
		}
		if err := ac.DB.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
			DatabaseErrorHandler(c, "failed to check username uniqueness", err)
			return
		}
		if count > 0 {
			fieldErrors["username"] = "already taken"
		}
	}

	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, Response{Errors: fieldErrors})
		return
	}

	user := models.User{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Avatar:   req.Avatar,
	}

	if err := user.HashPassword(); err != nil {
		DatabaseErrorHandler(c, "failed to hash password", err)
		return
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		// unique index race: re-check which field collided
		raceErrors := gin.H{}
		var count int64
		if ac.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count); count > 0 {
			raceErrors["email"] = "already taken"
		}
		if ac.DB.Model(&models.User{}).Where("username = ?", req.Username).Count(&count); count > 0 {
			raceErrors["username"] = "already taken"
		}
		if len(raceErrors) == 0 {
			DatabaseErrorHandler(c, "failed to create user", err)
			return
		}
		c.JSON(http.StatusBadRequest, Response{Errors: raceErrors})
		return
	}

	ac.activityService.RecordActivity("user", fmt.Sprintf("new user %q registered", user.Username))

	pair, err := utils.GenerateTokenPair(user.ID)
	if err != nil {
		DatabaseErrorHandler(c, "failed to generate token pair", err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		User:    user.Response(),
		Access:  pair.Access,
		Refresh: pair.Refresh,
	})
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and returns a fresh token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login body models.LoginRequest true "credentials"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  Response
// @Failure      401  {object}  Response
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Invalid request body"})
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, Response{Error: "Invalid credentials"})
		return
	}

	if err := user.ComparePassword(req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, Response{Error: "Invalid credentials"})
		return
	}

	pair, err := utils.GenerateTokenPair(user.ID)
	if err != nil {
		DatabaseErrorHandler(c, "failed to generate token pair", err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		User:    user.Response(),
		Access:  pair.Access,
		Refresh: pair.Refresh,
	})
}

// Refresh godoc
// @Summary      Refresh tokens
// @Description  Exchanges a valid refresh token for a new token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        refresh body RefreshRequest true "refresh token"
// @Success      200  {object}  AuthResponse
// @Failure      401  {object}  Response
// @Router       /auth/refresh [post]
func (ac *AuthController) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Invalid request body"})
		return
	}

	userID, err := utils.ParseRefreshToken(req.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, Response{Error: "Invalid or expired token"})
		return
	}

	var user models.User
	if err := ac.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, Response{Error: "Invalid or expired token"})
		return
	}

	pair, err := utils.GenerateTokenPair(user.ID)
	if err != nil {
		DatabaseErrorHandler(c, "failed to generate token pair", err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		User:    user.Response(),
		Access:  pair.Access,
		Refresh: pair.Refresh,
	})
}
