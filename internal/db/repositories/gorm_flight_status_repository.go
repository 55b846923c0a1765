package repositories

import (
	"context"

	"travelbook/atlas/internal/models/entities"
	"travelbook/atlas/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// GormFlightStatusRepository handles flight_status table operations
type GormFlightStatusRepository struct {
	db *gormlib.DB
}

func NewGormFlightStatusRepository(db *gormlib.DB) *GormFlightStatusRepository {
	return &GormFlightStatusRepository{db: db}
}

func (r *GormFlightStatusRepository) FindAll(ctx context.Context) ([]entities.FlightStatus, error) {
	return r.find(r.db.WithContext(ctx))
}

// FindByFlightNumber returns the first matching row, or nil if none
func (r *GormFlightStatusRepository) FindByFlightNumber(ctx context.Context, flightNumber string) (*entities.FlightStatus, error) {
	var row gorm.FlightStatus

	err := r.db.WithContext(ctx).
		Where("flight_number = ?", flightNumber).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, nil
	}

	status := row.ToEntity()
	return &status, nil
}

func (r *GormFlightStatusRepository) FindByAirline(ctx context.Context, airline string) ([]entities.FlightStatus, error) {
	return r.find(r.db.WithContext(ctx).Where("airline = ?", airline))
}

func (r *GormFlightStatusRepository) FindByRoute(ctx context.Context, origin, destination string) ([]entities.FlightStatus, error) {
	return r.find(r.db.WithContext(ctx).Where("origin = ? AND destination = ?", origin, destination))
}

func (r *GormFlightStatusRepository) FindByFlightNumberContaining(ctx context.Context, query string) ([]entities.FlightStatus, error) {
	return r.find(r.db.WithContext(ctx).Where(likeClause("flight_number"), containsLike(query)))
}

func (r *GormFlightStatusRepository) FindByLocationContaining(ctx context.Context, query string) ([]entities.FlightStatus, error) {
	pattern := containsLike(query)
	return r.find(r.db.WithContext(ctx).
		Where(likeClause("origin"), pattern).
		Or(likeClause("destination"), pattern))
}

func (r *GormFlightStatusRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gorm.FlightStatus{}).Count(&count).Error
	return count, err
}

func (r *GormFlightStatusRepository) Save(ctx context.Context, status *entities.FlightStatus) error {
	row := gorm.FlightStatusFromEntity(status)
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return err
	}
	status.ID = row.ID
	return nil
}

func (r *GormFlightStatusRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gorm.FlightStatus{}).Error
}

func (r *GormFlightStatusRepository) find(query *gormlib.DB) ([]entities.FlightStatus, error) {
	var rows []gorm.FlightStatus
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	statuses := make([]entities.FlightStatus, 0, len(rows))
	for _, row := range rows {
		statuses = append(statuses, row.ToEntity())
	}
	return statuses, nil
}

var _ FlightStatusRepository = (*GormFlightStatusRepository)(nil)
