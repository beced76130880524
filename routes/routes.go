package routes

import (
	"net/http"

	"github.com/KidKyzo/Smart-Fit-sub000/controllers"
	"github.com/KidKyzo/Smart-Fit-sub000/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestID(), middlewares.RequestLogger(), middlewares.Metrics())

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.DELETE("/profile", controllers.DeleteProfile)
		user.GET("/bmi", controllers.GetBMI)
	}

	activities := r.Group("/activities")
	activities.Use(middlewares.AuthMiddleware())
	{
		activities.POST("", controllers.CreateActivity)
		activities.GET("", controllers.ListActivities)
		activities.GET("/:id", controllers.GetActivity)
		activities.PUT("/:id", controllers.UpdateActivity)
		activities.DELETE("/:id", controllers.DeleteActivity)
	}

	intakes := r.Group("/intakes")
	intakes.Use(middlewares.AuthMiddleware())
	{
		intakes.POST("", controllers.LogIntake)
		intakes.GET("", controllers.ListIntakes)
		intakes.GET("/calories", controllers.IntakeCalories)
		intakes.DELETE("/:id", controllers.DeleteIntake)
		intakes.POST("/restore", controllers.RestoreIntake)
	}

	food := r.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.GET("/search", controllers.SearchFoods)
		food.GET("/:id", controllers.GetFood)
	}

	stats := r.Group("/stats")
	stats.Use(middlewares.AuthMiddleware())
	{
		stats.GET("/today", controllers.TodayStats)
		stats.GET("/weekly", controllers.WeeklyStats)
		stats.GET("/history", controllers.StepHistoryStats)
		stats.GET("/day", controllers.DayStats)
	}

	r.GET("/ws", middlewares.AuthMiddleware(), controllers.SummaryWS)

	return r
}
