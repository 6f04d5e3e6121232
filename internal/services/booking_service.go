package services

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/wanderplan/api/internal/models"
)

// placeholderBookingTotal stands in for a total derived from the referenced
// itinerary. Known simplification; do not derive without a product decision.
const placeholderBookingTotal = 5000.0

// BookingService owns the booking store. Bookings reference an itinerary id
// without validating it, transition confirmed -> cancelled exactly once in
// direction (re-cancelling is idempotent), and are never deleted.
type BookingService struct {
	logger *slog.Logger

	mu       sync.RWMutex
	bookings map[string]*models.Booking
}

func NewBookingService(logger *slog.Logger) *BookingService {
	return &BookingService{
		logger:   logger,
		bookings: make(map[string]*models.Booking),
	}
}

// CreateBooking stores a confirmed booking with one synthesized confirmation
// code per component category.
func (bs *BookingService) CreateBooking(tripID string, travelerDetails []map[string]any, paymentMethod map[string]any) *models.Booking {
	booking := &models.Booking{
		BookingID:       uuid.New().String(),
		TripID:          tripID,
		TravelerDetails: travelerDetails,
		PaymentMethod:   paymentMethod,
		TotalAmount:     placeholderBookingTotal,
		Currency:        "USD",
		Status:          models.BookingConfirmed,
		ConfirmationNumbers: []string{
			confirmationCode("FL"),
			confirmationCode("HT"),
			confirmationCode("AC"),
		},
		CreatedAt: UTCTimestamp(),
	}

	bs.mu.Lock()
	bs.bookings[booking.BookingID] = booking
	bs.mu.Unlock()

	bs.logger.Info("Booking created", "booking_id", booking.BookingID, "trip_id", tripID)
	return booking
}

func (bs *BookingService) GetBooking(id string) (*models.Booking, error) {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	booking, ok := bs.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id, models.ErrNotFound)
	}
	return booking, nil
}

// CancelBooking reports false for unknown ids instead of erroring.
// Cancelling an already-cancelled booking re-applies the transition and
// re-stamps the timestamp.
func (bs *BookingService) CancelBooking(id string) bool {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	booking, ok := bs.bookings[id]
	if !ok {
		return false
	}

	booking.Status = models.BookingCancelled
	booking.CancelledAt = UTCTimestamp()
	return true
}

// confirmationCode builds a category-prefixed short random token, e.g.
// "FL-3F9A1C".
func confirmationCode(prefix string) string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")[:6]
	return prefix + "-" + strings.ToUpper(token)
}
