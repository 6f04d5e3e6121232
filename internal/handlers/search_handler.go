package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderplan/api/internal/models"
	"github.com/wanderplan/api/internal/services"
)

func SearchFlights(search *services.SearchService) gin.HandlerFunc {
	return func(c *gin.Context) {
		from := c.Query("from_location")
		to := c.Query("to_location")
		departureDate := c.Query("departure_date")
		if from == "" || to == "" || departureDate == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("from_location, to_location and departure_date are required"))
			return
		}
		classType := c.DefaultQuery("class_type", "economy")

		flights := search.SearchFlights(departureDate, classType)
		c.JSON(http.StatusOK, gin.H{"flights": flights})
	}
}

func SearchHotels(search *services.SearchService) gin.HandlerFunc {
	return func(c *gin.Context) {
		location := c.Query("location")
		checkIn := c.Query("check_in")
		checkOut := c.Query("check_out")
		if location == "" || checkIn == "" || checkOut == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("location, check_in and check_out are required"))
			return
		}

		hotels := search.SearchHotels(checkIn, checkOut)
		c.JSON(http.StatusOK, gin.H{"hotels": hotels})
	}
}

func SearchActivities(search *services.SearchService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("location") == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("location is required"))
			return
		}

		activities := search.SearchActivities()
		c.JSON(http.StatusOK, gin.H{"activities": activities})
	}
}

// GetAlternatives serves per-category alternative listings. Anything outside
// flights/hotels/activities is a client error, as are missing query params.
func GetAlternatives(search *services.SearchService) gin.HandlerFunc {
	return func(c *gin.Context) {
		location := c.Query("location")
		date := c.Query("date")
		if location == "" || date == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("location and date are required"))
			return
		}

		var alternatives any
		switch c.Param("item_type") {
		case "flights":
			alternatives = search.FlightAlternatives(date)
		case "hotels":
			alternatives = search.HotelAlternatives(date)
		case "activities":
			alternatives = search.ActivityAlternatives()
		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse(models.ErrInvalidItemType.Error()))
			return
		}

		c.JSON(http.StatusOK, gin.H{"alternatives": alternatives})
	}
}
