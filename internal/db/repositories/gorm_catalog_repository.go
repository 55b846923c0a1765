package repositories

import (
	"context"

	"travelbook/atlas/internal/models/entities"
	"travelbook/atlas/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// GormFlightRepository handles flights table operations
type GormFlightRepository struct {
	db *gormlib.DB
}

func NewGormFlightRepository(db *gormlib.DB) *GormFlightRepository {
	return &GormFlightRepository{db: db}
}

func (r *GormFlightRepository) FindByID(ctx context.Context, id string) (*entities.Flight, error) {
	var row gorm.Flight
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	flight := row.ToEntity()
	return &flight, nil
}

func (r *GormFlightRepository) FindAll(ctx context.Context) ([]entities.Flight, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *GormFlightRepository) FindByRoute(ctx context.Context, from, to string) ([]entities.Flight, error) {
	return r.find(r.db.WithContext(ctx).Where("from_location = ? AND to_location = ?", from, to))
}

func (r *GormFlightRepository) FindByLocationContaining(ctx context.Context, location string) ([]entities.Flight, error) {
	pattern := containsLike(location)
	return r.find(r.db.WithContext(ctx).
		Where(likeClause("from_location"), pattern).
		Or(likeClause("to_location"), pattern))
}

func (r *GormFlightRepository) FindByNameContaining(ctx context.Context, name string) ([]entities.Flight, error) {
	return r.find(r.db.WithContext(ctx).Where(likeClause("flight_name"), containsLike(name)))
}

func (r *GormFlightRepository) Save(ctx context.Context, flight *entities.Flight) error {
	row := gorm.FlightFromEntity(flight)
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return err
	}
	flight.ID = row.ID
	return nil
}

func (r *GormFlightRepository) find(query *gormlib.DB) ([]entities.Flight, error) {
	var rows []gorm.Flight
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	flights := make([]entities.Flight, 0, len(rows))
	for _, row := range rows {
		flights = append(flights, row.ToEntity())
	}
	return flights, nil
}

// GormHotelRepository handles hotels table operations
type GormHotelRepository struct {
	db *gormlib.DB
}

func NewGormHotelRepository(db *gormlib.DB) *GormHotelRepository {
	return &GormHotelRepository{db: db}
}

func (r *GormHotelRepository) FindByID(ctx context.Context, id string) (*entities.Hotel, error) {
	var row gorm.Hotel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	hotel := row.ToEntity()
	return &hotel, nil
}

func (r *GormHotelRepository) FindAll(ctx context.Context) ([]entities.Hotel, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *GormHotelRepository) FindByLocationContaining(ctx context.Context, location string) ([]entities.Hotel, error) {
	return r.find(r.db.WithContext(ctx).Where(likeClause("location"), containsLike(location)))
}

func (r *GormHotelRepository) Save(ctx context.Context, hotel *entities.Hotel) error {
	row := gorm.HotelFromEntity(hotel)
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return err
	}
	hotel.ID = row.ID
	return nil
}

func (r *GormHotelRepository) find(query *gormlib.DB) ([]entities.Hotel, error) {
	var rows []gorm.Hotel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	hotels := make([]entities.Hotel, 0, len(rows))
	for _, row := range rows {
		hotels = append(hotels, row.ToEntity())
	}
	return hotels, nil
}

var (
	_ FlightRepository = (*GormFlightRepository)(nil)
	_ HotelRepository  = (*GormHotelRepository)(nil)
)
