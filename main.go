package main

import (
	"log"
	"time"

	"github.com/Korgin-Artem/filmtracker/config"
	"github.com/Korgin-Artem/filmtracker/controllers"
	"github.com/Korgin-Artem/filmtracker/middleware"
	"github.com/Korgin-Artem/filmtracker/services/activity"
	"github.com/Korgin-Artem/filmtracker/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title           Filmtracker API
// @version         1.0
// @description     Movie and series cataloging backend: catalog browsing,
// @description     reviews, ratings, watch tracking and recommendations.

// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Error initializing logger:", err)
	}

	if err := godotenv.Load(); err != nil {
		utils.LogInfo("no .env file found, using environment as-is")
	}

	cfg := config.GetConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	utils.SetJWTSecret(cfg.JWTSecret)

	db, err := config.InitDB()
	if err != nil {
		log.Fatal("Error connecting to database:", err)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsConfig))
	r.Use(middleware.RateLimitMiddleware())

	// poster and avatar paths resolve against this static mount
	r.Static("/uploads", "./"+cfg.UploadsDir)

	activityService := activity.NewActivityService(db)
	controllers.RegisterRoutes(r, db, activityService)

	utils.LogInfo("server listening on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed:", err)
	}
}
