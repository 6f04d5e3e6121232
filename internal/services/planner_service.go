package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wanderplan/api/internal/ai"
	"github.com/wanderplan/api/internal/models"
)

const (
	// estimated food spend per person per day, used by the pricing breakdown
	dailyFoodCost = 60.0

	// bound on the completion call so plan-trip always responds even when
	// the provider hangs
	completionTimeout = 45 * time.Second
)

// PlannerService owns the itinerary store and the generation flow: prompt
// construction, completion call, JSON extraction, fallback, normalization.
// Generation failures are never surfaced; every path yields a well-formed
// itinerary.
type PlannerService struct {
	completer ai.Completer
	logger    *slog.Logger

	mu          sync.RWMutex
	itineraries map[string]*models.Itinerary
}

func NewPlannerService(completer ai.Completer, logger *slog.Logger) *PlannerService {
	return &PlannerService{
		completer:   completer,
		logger:      logger,
		itineraries: make(map[string]*models.Itinerary),
	}
}

// itineraryPayload is the JSON shape the prompt asks the model for. The
// fallback payload uses the same shape.
type itineraryPayload struct {
	Flights        []models.Flight         `json:"flights"`
	Hotels         []models.Hotel          `json:"hotels"`
	Activities     []models.Activity       `json:"activities"`
	Transportation []models.Transportation `json:"transportation"`
	DailySchedule  []models.DaySchedule    `json:"daily_schedule"`
	TotalCost      float64                 `json:"total_cost"`
}

// CreateItinerary runs the full generation flow and registers the result in
// the store. The completion call happens before any lock is taken, so a slow
// provider never blocks reads or updates of existing itineraries.
func (ps *PlannerService) CreateItinerary(ctx context.Context, req models.TripRequest, start, end time.Time) *models.Itinerary {
	duration := int(end.Sub(start).Hours() / 24)

	if req.Preferences == nil {
		req.Preferences = map[string]any{}
	}

	prompt := buildPlanningPrompt(req, start, end, duration)
	payload := ps.generate(ctx, prompt)
	normalizePayload(payload)

	itin := &models.Itinerary{
		ID:                uuid.New().String(),
		DepartureLocation: req.DepartureLocation,
		Destination:       req.Destination,
		StartDate:         start.Format(time.RFC3339),
		EndDate:           end.Format(time.RFC3339),
		Duration:          duration,
		NumberOfTravelers: req.NumberOfTravelers,
		Budget:            req.Budget,
		Preferences:       req.Preferences,
		Flights:           payload.Flights,
		Hotels:            payload.Hotels,
		Activities:        payload.Activities,
		Transportation:    payload.Transportation,
		DailySchedule:     payload.DailySchedule,
		TotalCost:         payload.TotalCost,
		Currency:          "USD",
		Status:            models.StatusPlanned,
		CreatedAt:         UTCTimestamp(),
	}

	ps.mu.Lock()
	ps.itineraries[itin.ID] = itin
	ps.mu.Unlock()

	return itin
}

// generate asks the completion service for an itinerary and parses the reply.
// Any failure (provider error, no JSON in the reply, parse error) resolves to
// the deterministic fallback payload.
func (ps *PlannerService) generate(ctx context.Context, prompt string) *itineraryPayload {
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	raw, err := ps.completer.Complete(ctx, prompt)
	if err != nil {
		ps.logger.Warn("Itinerary generation failed, using fallback", "error", err)
		return fallbackItinerary()
	}

	payload, ok := extractItineraryJSON(raw)
	if !ok {
		ps.logger.Warn("Completion reply had no parseable itinerary, using fallback")
		return fallbackItinerary()
	}

	return payload
}

// extractItineraryJSON slices the substring between the first '{' and the
// last '}' of a free-text reply and parses it. Deliberately lenient: the
// model wraps its JSON in prose more often than not.
func extractItineraryJSON(raw string) (*itineraryPayload, bool) {
	begin := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if begin == -1 || end == -1 || end < begin {
		return nil, false
	}

	var payload itineraryPayload
	if err := json.Unmarshal([]byte(raw[begin:end+1]), &payload); err != nil {
		return nil, false
	}

	return &payload, true
}

// normalizePayload repairs the shapes a generated payload commonly gets
// wrong: flights without numbers get a sentinel, flattened schedule entries
// are folded into their nested form, and absent lists become empty ones.
func normalizePayload(p *itineraryPayload) {
	for i := range p.Flights {
		if p.Flights[i].FlightNumber == "" {
			p.Flights[i].FlightNumber = "UNKNOWN"
		}
	}

	for di := range p.DailySchedule {
		day := &p.DailySchedule[di]
		for si := range day.Activities {
			sa := &day.Activities[si]
			if sa.Activity.Name == "" && sa.Name != "" {
				sa.Activity.Name = sa.Name
			}
			sa.Name = ""
			if sa.Location == "" {
				sa.Location = sa.Activity.Location
			}
		}
	}

	if p.Flights == nil {
		p.Flights = []models.Flight{}
	}
	if p.Hotels == nil {
		p.Hotels = []models.Hotel{}
	}
	if p.Activities == nil {
		p.Activities = []models.Activity{}
	}
	if p.Transportation == nil {
		p.Transportation = []models.Transportation{}
	}
	if p.DailySchedule == nil {
		p.DailySchedule = []models.DaySchedule{}
	}
}

func buildPlanningPrompt(req models.TripRequest, start, end time.Time, duration int) string {
	budget := "Flexible"
	if req.Budget != nil {
		budget = strconv.FormatFloat(*req.Budget, 'f', -1, 64)
	}

	prefs, err := json.MarshalIndent(req.Preferences, "", "  ")
	if err != nil {
		prefs = []byte("{}")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Plan a complete %d-day trip from %s to %s for %d traveler(s).\n\n",
		duration, req.DepartureLocation, req.Destination, req.NumberOfTravelers)
	fmt.Fprintf(&b, "Trip Details:\n")
	fmt.Fprintf(&b, "- Departure: %s\n", req.DepartureLocation)
	fmt.Fprintf(&b, "- Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "- Start Date: %s\n", start.Format("2006-01-02"))
	fmt.Fprintf(&b, "- End Date: %s\n", end.Format("2006-01-02"))
	fmt.Fprintf(&b, "- Duration: %d days\n", duration)
	fmt.Fprintf(&b, "- Travelers: %d\n", req.NumberOfTravelers)
	fmt.Fprintf(&b, "- Budget: $%s\n\n", budget)
	fmt.Fprintf(&b, "Preferences: %s\n", prefs)
	b.WriteString(promptInstructions)

	return b.String()
}

const promptInstructions = `
Please create a comprehensive itinerary including:

1. FLIGHTS: 3-5 flight options with realistic prices, airlines, and schedules
2. HOTELS: 3-5 hotel options with amenities, ratings, and prices
3. ACTIVITIES: 8-12 activities covering sightseeing, culture, food, and adventure
4. TRANSPORTATION: Local transportation options
5. DAILY SCHEDULE: Day-by-day schedule with activities, meals, and timing
6. TOTAL COST: Calculate total cost including all components

Return the response as a structured JSON object with the following format:
{
    "flights": [
        {
            "airline": "Airline Name",
            "flight_number": "FL123",
            "departure_time": "2024-01-01T10:00:00",
            "arrival_time": "2024-01-01T14:00:00",
            "departure_airport": "JFK",
            "arrival_airport": "NRT",
            "price": 1200.0,
            "class": "economy",
            "duration": 360,
            "stops": 0,
            "is_selected": true
        }
    ],
    "hotels": [
        {
            "name": "Hotel Name",
            "address": "Hotel Address",
            "star_rating": 4,
            "price_per_night": 250.0,
            "amenities": ["WiFi", "Pool", "Gym"],
            "room_type": "Deluxe Room",
            "check_in_date": "2024-01-01",
            "check_out_date": "2024-01-08",
            "total_price": 1750.0,
            "is_selected": true,
            "rating": 4.5,
            "review_count": 1250
        }
    ],
    "activities": [
        {
            "name": "Activity Name",
            "description": "Activity description",
            "category": "sightseeing",
            "price": 50.0,
            "duration": 3,
            "location": "Activity location",
            "is_selected": true,
            "rating": 4.7,
            "review_count": 450
        }
    ],
    "transportation": [
        {
            "type": "taxi",
            "provider": "Local Taxi Co.",
            "price": 80.0,
            "duration": 60,
            "is_selected": true
        }
    ],
    "daily_schedule": [
        {
            "date": "2024-01-01",
            "activities": [
                {
                    "name": "Activity Name",
                    "start_time": "09:00",
                    "end_time": "12:00",
                    "location": "Activity location"
                }
            ],
            "meals": [
                {
                    "type": "Breakfast",
                    "estimated_cost": 15.0,
                    "currency": "USD",
                    "time": "08:00"
                }
            ],
            "transportation": [
                {
                    "type": "taxi",
                    "provider": "Local Taxi Co.",
                    "price": 20.0
                }
            ]
        }
    ],
    "total_cost": 5000.0
}

Make sure all prices are realistic and the schedule is logical and enjoyable.
`

// GetItinerary returns the stored record for id.
func (ps *PlannerService) GetItinerary(id string) (*models.Itinerary, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	itin, ok := ps.itineraries[id]
	if !ok {
		return nil, fmt.Errorf("itinerary %s: %w", id, models.ErrNotFound)
	}
	return itin, nil
}

// UpdateItinerary shallow-merges the supplied fields into the stored record:
// a supplied key fully replaces the prior value, lists and maps included.
// Fields not present in the update are left untouched. The merge goes
// through the record's JSON document and decodes into a fresh value, so
// replaced list elements carry no residue from the old ones and records
// handed out earlier are never mutated. It runs under the write lock so
// concurrent updates to the same id cannot lose writes.
func (ps *PlannerService) UpdateItinerary(id string, updates map[string]any) (*models.Itinerary, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	itin, ok := ps.itineraries[id]
	if !ok {
		return nil, fmt.Errorf("itinerary %s: %w", id, models.ErrNotFound)
	}

	current, err := json.Marshal(itin)
	if err != nil {
		return nil, fmt.Errorf("encode itinerary: %w", err)
	}
	doc := make(map[string]any)
	if err := json.Unmarshal(current, &doc); err != nil {
		return nil, fmt.Errorf("decode itinerary: %w", err)
	}
	for key, value := range updates {
		doc[key] = value
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode itinerary update: %w", err)
	}
	var updated models.Itinerary
	if err := json.Unmarshal(merged, &updated); err != nil {
		return nil, fmt.Errorf("apply itinerary update: %w", err)
	}
	updated.UpdatedAt = UTCTimestamp()

	ps.itineraries[id] = &updated
	return &updated, nil
}

// PricingBreakdown recomputes the per-category cost of the selected items
// plus a food estimate on every read; nothing is cached or written back.
func (ps *PlannerService) PricingBreakdown(id string) (*models.PricingBreakdown, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	itin, ok := ps.itineraries[id]
	if !ok {
		return nil, fmt.Errorf("itinerary %s: %w", id, models.ErrNotFound)
	}

	var b models.CostBreakdown
	for _, f := range itin.Flights {
		if f.IsSelected {
			b.Flights += f.Price
		}
	}
	for _, h := range itin.Hotels {
		if h.IsSelected {
			b.Hotels += h.TotalPrice
		}
	}
	for _, a := range itin.Activities {
		if a.IsSelected {
			b.Activities += a.Price
		}
	}
	for _, t := range itin.Transportation {
		if t.IsSelected {
			b.Transportation += t.Price
		}
	}
	b.Food = dailyFoodCost * float64(itin.NumberOfTravelers) * float64(itin.Duration)

	return &models.PricingBreakdown{
		ItineraryID: id,
		Breakdown:   b,
		TotalCost:   b.Flights + b.Hotels + b.Activities + b.Transportation + b.Food,
		Currency:    "USD",
	}, nil
}

// ExportItinerary renders the record in the requested format. "json" returns
// the raw record, "calendar" flattens the daily schedule into events, and
// "pdf" answers with a placeholder until a renderer exists.
func (ps *PlannerService) ExportItinerary(id, format string) (any, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	itin, ok := ps.itineraries[id]
	if !ok {
		return nil, fmt.Errorf("itinerary %s: %w", id, models.ErrNotFound)
	}

	switch format {
	case "json":
		return itin, nil
	case "pdf":
		return map[string]any{
			"message":      "PDF export not implemented yet",
			"itinerary_id": id,
		}, nil
	case "calendar":
		events := make([]models.CalendarEvent, 0)
		for _, day := range itin.DailySchedule {
			for _, sa := range day.Activities {
				events = append(events, models.CalendarEvent{
					Title:    sa.Activity.Name,
					Start:    fmt.Sprintf("%sT%s:00", day.Date, sa.StartTime),
					End:      fmt.Sprintf("%sT%s:00", day.Date, sa.EndTime),
					Location: sa.Location,
				})
			}
		}
		return map[string]any{"events": events}, nil
	default:
		return nil, fmt.Errorf("%q: %w", format, models.ErrUnsupportedFormat)
	}
}

// UserPreferences is a stateless passthrough: defaults on read, echo on
// write. Nothing is persisted.
func (ps *PlannerService) UserPreferences(userID string) map[string]any {
	return map[string]any{
		"user_id": userID,
		"preferences": map[string]any{
			"flight_class":           "economy",
			"hotel_star_rating":      3,
			"include_activities":     true,
			"include_transportation": true,
			"preferred_airlines":     []string{},
			"preferred_hotel_chains": []string{},
			"dietary_restrictions":   []string{},
			"accessibility_needs":    []string{},
		},
	}
}

func (ps *PlannerService) UpdateUserPreferences(userID string, preferences map[string]any) map[string]any {
	return map[string]any{
		"user_id":     userID,
		"preferences": preferences,
		"updated_at":  UTCTimestamp(),
	}
}

// UTCTimestamp renders now as second-precision UTC with a literal "Z"
// suffix, never a numeric offset.
func UTCTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
