package controllers

import (
	"github.com/Korgin-Artem/filmtracker/middleware"
	"github.com/Korgin-Artem/filmtracker/services/activity"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires every API route under /api/v1. Reads are public;
// writes, profile, stats and recommendations sit behind the auth middleware.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, activityService *activity.ActivityService) {
	authController := NewAuthController(db, activityService)
	movieController := NewMovieController(db, activityService)
	seriesController := NewSeriesController(db, activityService)
	genreController := NewGenreController(db)
	personController := NewPersonController(db)
	reviewController := NewReviewController(db)
	ratingController := NewRatingController(db)
	watchStatusController := NewWatchStatusController(db)
	userController := NewUserController(db)
	recommendationController := NewRecommendationController(db, movieController)
	activityController := NewActivityController(activityService)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth/register", authController.Register)
		v1.POST("/auth/login", authController.Login)
		v1.POST("/auth/refresh", authController.Refresh)

		// public reads
		v1.GET("/movies", movieController.List)
		v1.GET("/movies/popular", movieController.Popular)
		v1.GET("/movies/:id", movieController.Get)
		v1.GET("/series", seriesController.List)
		v1.GET("/series/:id", seriesController.Get)
		v1.GET("/genres", genreController.List)
		v1.GET("/genres/:id", genreController.Get)
		v1.GET("/persons", personController.List)
		v1.GET("/persons/:id", personController.Get)
		v1.GET("/reviews", reviewController.List)
		v1.GET("/reviews/:id", reviewController.Get)
		v1.GET("/ratings", ratingController.List)
		v1.GET("/watch-status", watchStatusController.List)
		v1.GET("/activities", activityController.GetRecentActivities)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/movies", movieController.Create)
			protected.PUT("/movies/:id", movieController.Update)
			protected.DELETE("/movies/:id", movieController.Delete)

			protected.POST("/series", seriesController.Create)
			protected.PUT("/series/:id", seriesController.Update)
			protected.DELETE("/series/:id", seriesController.Delete)

			protected.POST("/genres", genreController.Create)
			protected.PUT("/genres/:id", genreController.Update)
			protected.DELETE("/genres/:id", genreController.Delete)

			protected.POST("/persons", personController.Create)
			protected.PUT("/persons/:id", personController.Update)
			protected.DELETE("/persons/:id", personController.Delete)

			protected.POST("/reviews", reviewController.Create)
			protected.PUT("/reviews/:id", reviewController.Update)
			protected.DELETE("/reviews/:id", reviewController.Delete)

			protected.POST("/ratings", ratingController.Create)
			protected.POST("/watch-status", watchStatusController.Create)

			protected.GET("/user/profile", userController.Profile)
			protected.GET("/user/stats", userController.Stats)
			protected.GET("/recommendations", recommendationController.Recommendations)
		}
	}
}
