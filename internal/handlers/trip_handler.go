package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wanderplan/api/internal/models"
	"github.com/wanderplan/api/internal/services"
)

// PlanTrip validates the trip request, runs the itinerary generator and
// hands the result to the archive worker before responding. Generation
// itself cannot fail from the caller's point of view.
func PlanTrip(planner *services.PlannerService, archive *services.ArchiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.TripRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		if err := models.Validate.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponseWithDetails("invalid trip request", models.ValidationDetail(err)))
			return
		}

		start, err := parseTripDate(req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("start_date is not a valid ISO8601 date"))
			return
		}
		end, err := parseTripDate(req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("end_date is not a valid ISO8601 date"))
			return
		}
		if !start.Before(end) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("end_date must be after start_date"))
			return
		}

		itinerary := planner.CreateItinerary(c.Request.Context(), req, start, end)
		archive.Enqueue(itinerary)

		c.JSON(http.StatusOK, models.SuccessResponse(itinerary, "Itinerary created"))
	}
}

func GetItinerary(planner *services.PlannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		itinerary, err := planner.GetItinerary(c.Param("id"))
		if err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(itinerary, ""))
	}
}

// UpdateItinerary accepts an arbitrary partial document and shallow-merges
// it into the stored record.
func UpdateItinerary(planner *services.PlannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var updates map[string]any
		if err := c.ShouldBindJSON(&updates); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		itinerary, err := planner.UpdateItinerary(c.Param("id"), updates)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(itinerary, "Itinerary updated"))
	}
}

func GetPricingBreakdown(planner *services.PlannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		pricing, err := planner.PricingBreakdown(c.Param("id"))
		if err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(pricing, ""))
	}
}

func ExportItinerary(planner *services.PlannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		format := c.DefaultQuery("format", "pdf")

		payload, err := planner.ExportItinerary(c.Param("id"), format)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(payload, ""))
	}
}

func GetUserPreferences(planner *services.PlannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(planner.UserPreferences(c.Param("user_id")), ""))
	}
}

func UpdateUserPreferences(planner *services.PlannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var preferences map[string]any
		if err := c.ShouldBindJSON(&preferences); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(planner.UpdateUserPreferences(c.Param("user_id"), preferences), "Preferences updated"))
	}
}

// respondStoreError maps store errors onto the response taxonomy: unknown
// ids are 404, unsupported formats and malformed updates are 400. The error
// is also attached to the context so the ErrorHandler middleware logs it
// with the request id.
func respondStoreError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
	}
}

// parseTripDate accepts the ISO8601 variants clients actually send: full
// RFC3339, a zoneless timestamp, or a bare date.
func parseTripDate(value string) (time.Time, error) {
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

	var err error
	for _, layout := range layouts {
		var t time.Time
		t, err = time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
