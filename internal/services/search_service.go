package services

import "github.com/wanderplan/api/internal/models"

// SearchService serves the mock catalogs. Listings are pure functions of
// their inputs: static data templated by the request parameters, always
// non-empty, no state.
type SearchService struct{}

func NewSearchService() *SearchService {
	return &SearchService{}
}

func (ss *SearchService) SearchFlights(departureDate, classType string) []models.Flight {
	return []models.Flight{
		{
			Airline:          "Delta Air Lines",
			FlightNumber:     "DL123",
			DepartureTime:    departureDate + "T10:00:00",
			ArrivalTime:      departureDate + "T14:00:00",
			DepartureAirport: "JFK",
			ArrivalAirport:   "NRT",
			Price:            1200.0,
			Class:            classType,
			Duration:         360,
			Stops:            0,
			IsSelected:       true,
		},
		{
			Airline:          "United Airlines",
			FlightNumber:     "UA456",
			DepartureTime:    departureDate + "T12:00:00",
			ArrivalTime:      departureDate + "T16:00:00",
			DepartureAirport: "JFK",
			ArrivalAirport:   "NRT",
			Price:            1100.0,
			Class:            classType,
			Duration:         360,
			Stops:            1,
			IsSelected:       false,
		},
	}
}

func (ss *SearchService) SearchHotels(checkIn, checkOut string) []models.Hotel {
	return []models.Hotel{
		{
			Name:          "Hilton Tokyo",
			Address:       "6-6-2 Nishi-Shinjuku, Tokyo",
			StarRating:    4,
			PricePerNight: 250.0,
			Amenities:     []string{"WiFi", "Pool", "Gym", "Restaurant"},
			RoomType:      "Deluxe Room",
			CheckInDate:   checkIn,
			CheckOutDate:  checkOut,
			TotalPrice:    1750.0,
			IsSelected:    true,
			Rating:        4.5,
			ReviewCount:   1250,
		},
		{
			Name:          "Marriott Tokyo",
			Address:       "4-3-6 Kita-Aoyama, Tokyo",
			StarRating:    4,
			PricePerNight: 280.0,
			Amenities:     []string{"WiFi", "Spa", "Gym", "Restaurant"},
			RoomType:      "Executive Room",
			CheckInDate:   checkIn,
			CheckOutDate:  checkOut,
			TotalPrice:    1960.0,
			IsSelected:    false,
			Rating:        4.3,
			ReviewCount:   980,
		},
	}
}

func (ss *SearchService) SearchActivities() []models.Activity {
	return []models.Activity{
		{
			Name:        "Tsukiji Market Tour",
			Description: "Explore the famous fish market and try fresh sushi",
			Category:    "food",
			Price:       50.0,
			Duration:    3,
			Location:    "Tsukiji, Tokyo",
			IsSelected:  true,
			Rating:      4.7,
			ReviewCount: 450,
		},
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
		},
		{
			Name:        "Senso-ji Temple Visit",
			Description: "Visit Tokyo's oldest temple and explore Asakusa",
			Category:    "culture",
			Price:       25.0,
			Duration:    2,
			Location:    "Asakusa, Tokyo",
			IsSelected:  false,
			Rating:      4.5,
			ReviewCount: 890,
		},
	}
}

func (ss *SearchService) FlightAlternatives(date string) []models.Flight {
	return []models.Flight{
		{
			Airline:          "American Airlines",
			FlightNumber:     "AA789",
			DepartureTime:    date + "T08:00:00",
			ArrivalTime:      date + "T12:00:00",
			DepartureAirport: "JFK",
			ArrivalAirport:   "NRT",
			Price:            1300.0,
			Class:            "economy",
			Duration:         360,
			Stops:            0,
			IsSelected:       false,
		},
		{
			Airline:          "Japan Airlines",
			FlightNumber:     "JL001",
			DepartureTime:    date + "T14:00:00",
			ArrivalTime:      date + "T18:00:00",
			DepartureAirport: "JFK",
			ArrivalAirport:   "NRT",
			Price:            1400.0,
			Class:            "economy",
			Duration:         360,
			Stops:            0,
			IsSelected:       false,
		},
	}
}

func (ss *SearchService) HotelAlternatives(date string) []models.Hotel {
	return []models.Hotel{
		{
			Name:          "Park Hyatt Tokyo",
			Address:       "3-7-1-2 Nishi-Shinjuku, Tokyo",
			StarRating:    5,
			PricePerNight: 400.0,
			Amenities:     []string{"WiFi", "Spa", "Pool", "Restaurant", "Bar"},
			RoomType:      "Park Suite",
			CheckInDate:   date,
			CheckOutDate:  date,
			TotalPrice:    400.0,
			IsSelected:    false,
			Rating:        4.8,
			ReviewCount:   750,
		},
		{
			Name:          "Tokyo Station Hotel",
			Address:       "1-9-1 Marunouchi, Tokyo",
			StarRating:    4,
			PricePerNight: 200.0,
			Amenities:     []string{"WiFi", "Restaurant", "Bar"},
			RoomType:      "Standard Room",
			CheckInDate:   date,
			CheckOutDate:  date,
			TotalPrice:    200.0,
			IsSelected:    false,
			Rating:        4.2,
			ReviewCount:   1200,
		},
	}
}

func (ss *SearchService) ActivityAlternatives() []models.Activity {
	return []models.Activity{
		{
			Name:        "Tokyo Skytree Observation",
			Description: "Visit the tallest tower in Japan for panoramic views",
			Category:    "sightseeing",
			Price:       35.0,
			Duration:    2,
			Location:    "Sumida, Tokyo",
			IsSelected:  false,
			Rating:      4.6,
			ReviewCount: 1200,
		},
		{
			Name:        "Shibuya Crossing Experience",
			Description: "Experience the world's busiest pedestrian crossing",
			Category:    "sightseeing",
			Price:       15.0,
			Duration:    1,
			Location:    "Shibuya, Tokyo",
			IsSelected:  false,
			Rating:      4.3,
			ReviewCount: 2100,
		},
		{
			Name:        "Traditional Tea Ceremony",
			Description: "Participate in a traditional Japanese tea ceremony",
			Category:    "culture",
			Price:       80.0,
			Duration:    2,
			Location:    "Ginza, Tokyo",
			IsSelected:  false,
			Rating:      4.9,
			ReviewCount: 180,
		},
	}
}
