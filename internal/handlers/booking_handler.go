package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderplan/api/internal/models"
	"github.com/wanderplan/api/internal/services"
)

func CreateBooking(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking := bookings.CreateBooking(req.TripID, req.TravelerDetails, req.PaymentMethod)
		c.JSON(http.StatusCreated, models.SuccessResponse(booking, "Booking created"))
	}
}

func GetBooking(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		booking, err := bookings.GetBooking(c.Param("id"))
		if err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, ""))
	}
}

// CancelBooking answers success for known ids and not-found otherwise; the
// underlying cancel is idempotent.
func CancelBooking(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if !bookings.CancelBooking(id) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("booking not found"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"booking_id": id}, "Booking cancelled successfully"))
	}
}
