package routes

import (
	"journal-backend/internal/config"
	"journal-backend/internal/handlers"
	"journal-backend/internal/middleware"
	"journal-backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.LoggerMiddleware())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RateLimitMiddleware(60))

	authService := services.NewAuthService(db)
	tagService := services.NewTagService(db)
	entryService := services.NewEntryService(db, tagService)
	categoryService := services.NewCategoryService(db)
	streakService := services.NewStreakService(db)
	analyticsService := services.NewAnalyticsService(db)

	authHandler := handlers.NewAuthHandler(authService, cfg)
	entryHandler := handlers.NewEntryHandler(entryService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	tagHandler := handlers.NewTagHandler(tagService)
	streakHandler := handlers.NewStreakHandler(streakService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	api := router.Group("/api")

	public := api.Group("")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(db, cfg))
	{
		user := protected.Group("/auth")
		{
			user.GET("/me", authHandler.GetMe)
			user.PUT("/theme", authHandler.UpdateTheme)
			user.POST("/logout", authHandler.Logout)
			user.DELETE("/me", authHandler.DeleteAccount)
		}

		entries := protected.Group("/entries")
		{
			entries.POST("", entryHandler.Upsert)
			entries.POST("/search", entryHandler.Search)
			entries.GET("/by-date/:date", entryHandler.GetEntryByDate)
			entries.GET("/by-date/:date/exists", entryHandler.HasEntryForDate)
			entries.GET("/:id", entryHandler.GetEntry)
			entries.DELETE("/:id", entryHandler.DeleteEntry)
		}

		streaks := protected.Group("/streaks")
		{
			streaks.GET("", streakHandler.GetStreakInfo)
			streaks.GET("/missed", streakHandler.GetMissedDays)
		}

		protected.GET("/calendar/:year/:month", streakHandler.GetCalendar)

		analytics := protected.Group("/analytics")
		{
			analytics.GET("/moods", analyticsHandler.GetMoodDistribution)
			analytics.GET("/tags", analyticsHandler.GetTagUsage)
			analytics.GET("/words", analyticsHandler.GetWordCountTrend)
		}

		categories := protected.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.POST("", categoryHandler.CreateCategory)
			categories.PUT("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		tags := protected.Group("/tags")
		{
			tags.GET("", tagHandler.GetTags)
			tags.GET("/prebuilt", tagHandler.GetPrebuiltTags)
			tags.POST("", tagHandler.CreateTag)
			tags.DELETE("/:id", tagHandler.DeleteTag)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "service healthy",
		})
	})

	return router
}
