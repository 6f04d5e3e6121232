package models

// BookingRequest references an itinerary by id. The id is not validated for
// existence; bookings and itineraries are independent stores.
type BookingRequest struct {
	TripID          string           `json:"trip_id" binding:"required"`
	TravelerDetails []map[string]any `json:"traveler_details" binding:"required"`
	PaymentMethod   map[string]any   `json:"payment_method" binding:"required"`
}

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	BookingID           string           `json:"booking_id"`
	TripID              string           `json:"trip_id"`
	TravelerDetails     []map[string]any `json:"traveler_details"`
	PaymentMethod       map[string]any   `json:"payment_method"`
	TotalAmount         float64          `json:"total_amount"`
	Currency            string           `json:"currency"`
	Status              BookingStatus    `json:"status"`
	ConfirmationNumbers []string         `json:"confirmation_numbers"`
	CreatedAt           string           `json:"created_at"`
	CancelledAt         string           `json:"cancelled_at,omitempty"`
}
