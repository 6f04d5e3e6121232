package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/api/internal/container"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s stubCompleter) Complete(context.Context, string) (string, error) {
	return s.reply, s.err
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := container.NewContainer(logger, stubCompleter{err: errors.New("provider unavailable")}, nil)
	return SetupRoutes(c)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func planTrip(t *testing.T, r *gin.Engine) map[string]any {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/plan-trip", map[string]any{
		"departure_location":  "New York",
		"destination":         "Tokyo",
		"start_date":          "2024-01-01",
		"end_date":            "2024-01-08",
		"number_of_travelers": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	return data
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	ts, _ := body["timestamp"].(string)
	assert.True(t, strings.HasSuffix(ts, "Z"))
}

func TestPlanTripSucceedsWhenProviderIsDown(t *testing.T) {
	r := newTestRouter(t)

	data := planTrip(t, r)

	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "Tokyo", data["destination"])
	assert.Equal(t, "planned", data["status"])
	assert.Equal(t, float64(7), data["duration"])
	assert.NotEmpty(t, data["flights"])
	assert.NotEmpty(t, data["daily_schedule"])
	assert.NotEmpty(t, data["createdAt"])
}

func TestPlanTripRejectsInvalidTravelerCount(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/plan-trip", map[string]any{
		"departure_location":  "New York",
		"destination":         "Tokyo",
		"start_date":          "2024-01-01",
		"end_date":            "2024-01-08",
		"number_of_travelers": 0,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.NotNil(t, body["details"])
}

func TestPlanTripRejectsInvertedDates(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/plan-trip", map[string]any{
		"departure_location":  "New York",
		"destination":         "Tokyo",
		"start_date":          "2024-01-08",
		"end_date":            "2024-01-01",
		"number_of_travelers": 1,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["error"], "end_date must be after start_date")
}

func TestPlanTripRejectsUnparseableDate(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/plan-trip", map[string]any{
		"departure_location":  "New York",
		"destination":         "Tokyo",
		"start_date":          "next tuesday",
		"end_date":            "2024-01-08",
		"number_of_travelers": 1,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestItineraryLifecycle(t *testing.T) {
	r := newTestRouter(t)
	id, _ := planTrip(t, r)["id"].(string)
	require.NotEmpty(t, id)

	w := doJSON(t, r, http.MethodGet, "/api/v1/itinerary/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/v1/itinerary/"+id, map[string]any{"status": "updated"})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "updated", data["status"])
	assert.NotEmpty(t, data["updated_at"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/pricing/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	pricing := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, id, pricing["itinerary_id"])
	assert.Equal(t, float64(840), pricing["breakdown"].(map[string]any)["food"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/itinerary/"+id+"/export?format=calendar", nil)
	require.Equal(t, http.StatusOK, w.Code)
	export := decodeBody(t, w)["data"].(map[string]any)
	assert.NotEmpty(t, export["events"])
}

func TestItineraryNotFoundIs404(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/itinerary/unknown",
		"/api/v1/pricing/unknown",
		"/api/v1/itinerary/unknown/export",
	} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestExportRejectsUnsupportedFormat(t *testing.T) {
	r := newTestRouter(t)
	id, _ := planTrip(t, r)["id"].(string)

	w := doJSON(t, r, http.MethodGet, "/api/v1/itinerary/"+id+"/export?format=docx", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/create-booking", map[string]any{
		"trip_id":          "trip-1",
		"traveler_details": []map[string]any{{"name": "Ada Lovelace"}},
		"payment_method":   map[string]any{"type": "card"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	booking := decodeBody(t, w)["data"].(map[string]any)
	id, _ := booking["booking_id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "confirmed", booking["status"])
	assert.Len(t, booking["confirmation_numbers"], 3)

	w = doJSON(t, r, http.MethodGet, "/api/v1/booking/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/booking/"+id+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/booking/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cancelled := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "cancelled", cancelled["status"])
}

func TestCancelUnknownBookingIs404(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/booking/unknown/cancel", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBookingRejectsMissingFields(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/create-booking", map[string]any{
		"trip_id": "trip-1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/search-flights?from_location=NYC&to_location=Tokyo&departure_date=2024-05-01&class_type=business", nil)
	require.Equal(t, http.StatusOK, w.Code)
	flights := decodeBody(t, w)["flights"].([]any)
	require.NotEmpty(t, flights)
	assert.Equal(t, "business", flights[0].(map[string]any)["class"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/search-flights?from_location=NYC", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/search-hotels?location=Tokyo&check_in=2024-05-01&check_out=2024-05-08", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["hotels"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/search-activities?location=Tokyo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["activities"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/search-activities", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAlternativesEndpoint(t *testing.T) {
	r := newTestRouter(t)

	for _, itemType := range []string{"flights", "hotels", "activities"} {
		w := doJSON(t, r, http.MethodGet, "/api/v1/alternatives/"+itemType+"?location=Tokyo&date=2024-05-01", nil)
		require.Equal(t, http.StatusOK, w.Code, itemType)
		assert.NotEmpty(t, decodeBody(t, w)["alternatives"], itemType)
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/alternatives/cruises?location=Tokyo&date=2024-05-01", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAlternativesRequiresLocationAndDate(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/alternatives/flights",
		"/api/v1/alternatives/flights?location=Tokyo",
		"/api/v1/alternatives/flights?date=2024-05-01",
	} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestUserPreferencesEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/user-preferences/user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "user-1", data["user_id"])
	prefs := data["preferences"].(map[string]any)
	assert.Equal(t, "economy", prefs["flight_class"])

	w = doJSON(t, r, http.MethodPut, "/api/v1/user-preferences/user-1", map[string]any{"flight_class": "business"})
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "business", data["preferences"].(map[string]any)["flight_class"])
	assert.NotEmpty(t, data["updated_at"])
}

func TestStoreErrorsAreLoggedCentrally(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	c := container.NewContainer(logger, stubCompleter{err: errors.New("provider unavailable")}, nil)
	r := SetupRoutes(c)

	w := doJSON(t, r, http.MethodGet, "/api/v1/itinerary/unknown", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	assert.Contains(t, buf.String(), "Request error")
	assert.Contains(t, buf.String(), "not found")
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/health", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
