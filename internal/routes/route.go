package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/wanderplan/api/internal/container"
	"github.com/wanderplan/api/internal/handlers"
	"github.com/wanderplan/api/internal/middleware"
	"github.com/wanderplan/api/internal/services"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(middleware.BearerIdentity(container.Logger))
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "healthy",
				"timestamp": services.UTCTimestamp(),
			})
		})

		v1.POST("/plan-trip", handlers.PlanTrip(container.PlannerService, container.ArchiveService))

		v1.GET("/search-flights", handlers.SearchFlights(container.SearchService))
		v1.GET("/search-hotels", handlers.SearchHotels(container.SearchService))
		v1.GET("/search-activities", handlers.SearchActivities(container.SearchService))
		v1.GET("/alternatives/:item_type", handlers.GetAlternatives(container.SearchService))

		v1.POST("/create-booking", handlers.CreateBooking(container.BookingService))
		v1.GET("/booking/:id", handlers.GetBooking(container.BookingService))
		v1.POST("/booking/:id/cancel", handlers.CancelBooking(container.BookingService))

		v1.GET("/itinerary/:id", handlers.GetItinerary(container.PlannerService))
		v1.PUT("/itinerary/:id", handlers.UpdateItinerary(container.PlannerService))
		v1.GET("/itinerary/:id/export", handlers.ExportItinerary(container.PlannerService))
		v1.GET("/pricing/:id", handlers.GetPricingBreakdown(container.PlannerService))

		v1.GET("/user-preferences/:user_id", handlers.GetUserPreferences(container.PlannerService))
		v1.PUT("/user-preferences/:user_id", handlers.UpdateUserPreferences(container.PlannerService))
	}

	return r
}
