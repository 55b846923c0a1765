package repositories

import (
	"context"
	"time"

	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/models/entities"
)

// Filter semantics shared by every implementation:
//   - "exact" compares the stored value byte for byte.
//   - "Containing" is a case-insensitive literal substring match; the query
//     is never interpreted as a pattern.
//   - ranges are inclusive on both ends.
//
// Lookups of a single record return (nil, nil) when nothing matches.

type FlightRepository interface {
	FindByID(ctx context.Context, id string) (*entities.Flight, error)
	FindAll(ctx context.Context) ([]entities.Flight, error)
	// FindByRoute matches from and to exactly.
	FindByRoute(ctx context.Context, from, to string) ([]entities.Flight, error)
	// FindByLocationContaining matches either endpoint.
	FindByLocationContaining(ctx context.Context, location string) ([]entities.Flight, error)
	FindByNameContaining(ctx context.Context, name string) ([]entities.Flight, error)
	Save(ctx context.Context, flight *entities.Flight) error
}

type HotelRepository interface {
	FindByID(ctx context.Context, id string) (*entities.Hotel, error)
	FindAll(ctx context.Context) ([]entities.Hotel, error)
	FindByLocationContaining(ctx context.Context, location string) ([]entities.Hotel, error)
	Save(ctx context.Context, hotel *entities.Hotel) error
}

type FlightStatusRepository interface {
	FindAll(ctx context.Context) ([]entities.FlightStatus, error)
	// FindByFlightNumber returns the first record for the number; duplicates
	// are allowed in storage.
	FindByFlightNumber(ctx context.Context, flightNumber string) (*entities.FlightStatus, error)
	FindByAirline(ctx context.Context, airline string) ([]entities.FlightStatus, error)
	FindByRoute(ctx context.Context, origin, destination string) ([]entities.FlightStatus, error)
	FindByFlightNumberContaining(ctx context.Context, query string) ([]entities.FlightStatus, error)
	// FindByLocationContaining matches origin or destination.
	FindByLocationContaining(ctx context.Context, query string) ([]entities.FlightStatus, error)
	Count(ctx context.Context) (int64, error)
	// Save inserts when ID is empty, otherwise replaces the record with that
	// ID, inserting it if it does not exist.
	Save(ctx context.Context, status *entities.FlightStatus) error
	Delete(ctx context.Context, id string) error
}

type TravelPackageRepository interface {
	FindByID(ctx context.Context, id string) (*entities.TravelPackage, error)
	FindActive(ctx context.Context) ([]entities.TravelPackage, error)
	FindByDestinationContaining(ctx context.Context, destination string) ([]entities.TravelPackage, error)
	FindByType(ctx context.Context, packageType constants.PackageType) ([]entities.TravelPackage, error)
	// FindByPriceRange filters on discountedPrice.
	FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]entities.TravelPackage, error)
	FindByDurationRange(ctx context.Context, minDuration, maxDuration int) ([]entities.TravelPackage, error)
	FindByNameContaining(ctx context.Context, name string) ([]entities.TravelPackage, error)
	Count(ctx context.Context) (int64, error)
	// Save has the same insert-or-replace semantics as FlightStatusRepository.Save.
	Save(ctx context.Context, pkg *entities.TravelPackage) error
	Delete(ctx context.Context, id string) error
}

type SearchHistoryRepository interface {
	Save(ctx context.Context, history *entities.SearchHistory) error
	// FindByUser returns the user's records newest first. limit <= 0 means all.
	FindByUser(ctx context.Context, userID string, limit int) ([]entities.SearchHistory, error)
	// FindByUserAndType returns the user's records of one type, newest first.
	FindByUserAndType(ctx context.Context, userID string, searchType constants.SearchType) ([]entities.SearchHistory, error)
	// FindSince returns every record searched at or after since, oldest first.
	FindSince(ctx context.Context, since time.Time) ([]entities.SearchHistory, error)
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}
