package gorm

import (
	"time"

	"travelbook/atlas/internal/models/entities"
)

type Flight struct {
	ID             string     `gorm:"column:id;primaryKey;type:varchar(36)"`
	FlightName     string     `gorm:"column:flight_name;index"`
	From           string     `gorm:"column:from_location;index:idx_flights_route"`
	To             string     `gorm:"column:to_location;index:idx_flights_route"`
	DepartureTime  *time.Time `gorm:"column:departure_time"`
	ArrivalTime    *time.Time `gorm:"column:arrival_time"`
	Price          float64    `gorm:"column:price"`
	AvailableSeats int        `gorm:"column:available_seats"`
}

func (Flight) TableName() string {
	return "flights"
}

func (f Flight) ToEntity() entities.Flight {
	return entities.Flight{
		ID:             f.ID,
		FlightName:     f.FlightName,
		From:           f.From,
		To:             f.To,
		DepartureTime:  f.DepartureTime,
		ArrivalTime:    f.ArrivalTime,
		Price:          f.Price,
		AvailableSeats: f.AvailableSeats,
	}
}

func FlightFromEntity(e *entities.Flight) Flight {
	return Flight{
		ID:             e.ID,
		FlightName:     e.FlightName,
		From:           e.From,
		To:             e.To,
		DepartureTime:  e.DepartureTime,
		ArrivalTime:    e.ArrivalTime,
		Price:          e.Price,
		AvailableSeats: e.AvailableSeats,
	}
}

type Hotel struct {
	ID             string  `gorm:"column:id;primaryKey;type:varchar(36)"`
	HotelName      string  `gorm:"column:hotel_name"`
	Location       string  `gorm:"column:location;index"`
	PricePerNight  float64 `gorm:"column:price_per_night"`
	Amenities      string  `gorm:"column:amenities"`
	AvailableRooms int     `gorm:"column:available_rooms"`
}

func (Hotel) TableName() string {
	return "hotels"
}

func (h Hotel) ToEntity() entities.Hotel {
	return entities.Hotel{
		ID:             h.ID,
		HotelName:      h.HotelName,
		Location:       h.Location,
		PricePerNight:  h.PricePerNight,
		Amenities:      h.Amenities,
		AvailableRooms: h.AvailableRooms,
	}
}

func HotelFromEntity(e *entities.Hotel) Hotel {
	return Hotel{
		ID:             e.ID,
		HotelName:      e.HotelName,
		Location:       e.Location,
		PricePerNight:  e.PricePerNight,
		Amenities:      e.Amenities,
		AvailableRooms: e.AvailableRooms,
	}
}
