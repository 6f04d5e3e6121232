package models

// TripRequest is the plan-trip input. Dates arrive as ISO8601 strings and are
// parsed/validated at the handler boundary before the planner sees them.
type TripRequest struct {
	DepartureLocation string         `json:"departure_location" binding:"required"`
	Destination       string         `json:"destination" binding:"required"`
	StartDate         string         `json:"start_date" binding:"required"`
	EndDate           string         `json:"end_date" binding:"required"`
	NumberOfTravelers int            `json:"number_of_travelers" validate:"gt=0"`
	Budget            *float64       `json:"budget,omitempty" validate:"omitempty,gt=0"`
	Preferences       map[string]any `json:"preferences"`
}

type ItineraryStatus string

const (
	StatusPlanned ItineraryStatus = "planned"
	StatusUpdated ItineraryStatus = "updated"
)

// Itinerary is the stored trip plan. Timestamps are second-precision UTC
// strings with a literal "Z" suffix; nested dates/times stay as the strings
// the model (or the fallback payload) produced.
type Itinerary struct {
	ID                string           `json:"id"`
	DepartureLocation string           `json:"departure_location"`
	Destination       string           `json:"destination"`
	StartDate         string           `json:"start_date"`
	EndDate           string           `json:"end_date"`
	Duration          int              `json:"duration"`
	NumberOfTravelers int              `json:"number_of_travelers"`
	Budget            *float64         `json:"budget,omitempty"`
	Preferences       map[string]any   `json:"preferences"`
	Flights           []Flight         `json:"flights"`
	Hotels            []Hotel          `json:"hotels"`
	Activities        []Activity       `json:"activities"`
	Transportation    []Transportation `json:"transportation"`
	DailySchedule     []DaySchedule    `json:"daily_schedule"`
	TotalCost         float64          `json:"total_cost"`
	Currency          string           `json:"currency"`
	Status            ItineraryStatus  `json:"status"`
	CreatedAt         string           `json:"createdAt"`
	UpdatedAt         string           `json:"updated_at,omitempty"`
}

type Flight struct {
	Airline          string  `json:"airline"`
	FlightNumber     string  `json:"flight_number"`
	DepartureTime    string  `json:"departure_time"`
	ArrivalTime      string  `json:"arrival_time"`
	DepartureAirport string  `json:"departure_airport"`
	ArrivalAirport   string  `json:"arrival_airport"`
	Price            float64 `json:"price"`
	Class            string  `json:"class"`
	// Duration is in minutes
	Duration   int    `json:"duration"`
	Stops      int    `json:"stops"`
	IsSelected bool   `json:"is_selected"`
	Currency   string `json:"currency,omitempty"`
}

type Hotel struct {
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	StarRating    int      `json:"star_rating"`
	PricePerNight float64  `json:"price_per_night"`
	Amenities     []string `json:"amenities"`
	RoomType      string   `json:"room_type"`
	CheckInDate   string   `json:"check_in_date"`
	CheckOutDate  string   `json:"check_out_date"`
	TotalPrice    float64  `json:"total_price"`
	IsSelected    bool     `json:"is_selected"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Currency      string   `json:"currency,omitempty"`
	Images        []string `json:"images,omitempty"`
}

type Activity struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	// Duration is in hours
	Duration    float64  `json:"duration"`
	Location    string   `json:"location"`
	IsSelected  bool     `json:"is_selected"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Currency    string   `json:"currency,omitempty"`
	Images      []string `json:"images,omitempty"`
}

type Transportation struct {
	Type       string  `json:"type"`
	Provider   string  `json:"provider"`
	Price      float64 `json:"price"`
	Duration   int     `json:"duration"`
	IsSelected bool    `json:"is_selected"`
	Currency   string  `json:"currency,omitempty"`
}

// ScheduledActivity wraps an Activity with its slot in the day. Generated
// payloads sometimes flatten the activity fields to the top level instead of
// nesting them; the planner folds that shape into Activity during
// normalization, so Name is only populated transiently.
type ScheduledActivity struct {
	Activity  Activity `json:"activity"`
	Name      string   `json:"name,omitempty"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Location  string   `json:"location"`
}

type Meal struct {
	Type          string  `json:"type"`
	EstimatedCost float64 `json:"estimated_cost"`
	Currency      string  `json:"currency"`
	Time          string  `json:"time"`
}

type DaySchedule struct {
	Date           string              `json:"date"`
	Activities     []ScheduledActivity `json:"activities"`
	Meals          []Meal              `json:"meals"`
	Transportation []Transportation    `json:"transportation"`
}

// PricingBreakdown is derived on read from the selected items; it is never
// stored back into the itinerary.
type PricingBreakdown struct {
	ItineraryID string        `json:"itinerary_id"`
	Breakdown   CostBreakdown `json:"breakdown"`
	TotalCost   float64       `json:"total_cost"`
	Currency    string        `json:"currency"`
}

type CostBreakdown struct {
	Flights        float64 `json:"flights"`
	Hotels         float64 `json:"hotels"`
	Activities     float64 `json:"activities"`
	Transportation float64 `json:"transportation"`
	Food           float64 `json:"food"`
}

// CalendarEvent is one flattened scheduled activity in a calendar export.
// Start and end are built by string concatenation of the day's date and the
// activity's clock times, matching the export contract.
type CalendarEvent struct {
	Title    string `json:"title"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Location string `json:"location"`
}
