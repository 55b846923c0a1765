package entities

import "time"

// Flight is a bookable flight. Read-only from this service's point of view.
type Flight struct {
	ID             string     `json:"id" bson:"_id,omitempty"`
	FlightName     string     `json:"flightName" bson:"flightName"`
	From           string     `json:"from" bson:"from"`
	To             string     `json:"to" bson:"to"`
	DepartureTime  *time.Time `json:"departureTime,omitempty" bson:"departureTime,omitempty"`
	ArrivalTime    *time.Time `json:"arrivalTime,omitempty" bson:"arrivalTime,omitempty"`
	Price          float64    `json:"price" bson:"price"`
	AvailableSeats int        `json:"availableSeats" bson:"availableSeats"`
}

type Hotel struct {
	ID             string  `json:"id" bson:"_id,omitempty"`
	HotelName      string  `json:"hotelName" bson:"hotelName"`
	Location       string  `json:"location" bson:"location"`
	PricePerNight  float64 `json:"pricePerNight" bson:"pricePerNight"`
	Amenities      string  `json:"amenities" bson:"amenities"`
	AvailableRooms int     `json:"availableRooms" bson:"availableRooms"`
}
