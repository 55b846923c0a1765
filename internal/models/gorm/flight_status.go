package gorm

import (
	"time"

	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/models/entities"
)

// FlightStatus row. flight_number is indexed but deliberately not unique.
type FlightStatus struct {
	ID                 string     `gorm:"column:id;primaryKey;type:varchar(36)"`
	FlightNumber       string     `gorm:"column:flight_number;index"`
	Airline            string     `gorm:"column:airline;index"`
	Origin             string     `gorm:"column:origin"`
	Destination        string     `gorm:"column:destination"`
	ScheduledDeparture *time.Time `gorm:"column:scheduled_departure"`
	ActualDeparture    *time.Time `gorm:"column:actual_departure"`
	ScheduledArrival   *time.Time `gorm:"column:scheduled_arrival"`
	EstimatedArrival   *time.Time `gorm:"column:estimated_arrival"`
	Status             string     `gorm:"column:status;type:varchar(16)"`
	DelayReason        *string    `gorm:"column:delay_reason"`
	DelayMinutes       int        `gorm:"column:delay_minutes;default:0"`
	Gate               string     `gorm:"column:gate"`
	Terminal           string     `gorm:"column:terminal"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (FlightStatus) TableName() string {
	return "flight_status"
}

func (s FlightStatus) ToEntity() entities.FlightStatus {
	return entities.FlightStatus{
		ID:                 s.ID,
		FlightNumber:       s.FlightNumber,
		Airline:            s.Airline,
		Origin:             s.Origin,
		Destination:        s.Destination,
		ScheduledDeparture: s.ScheduledDeparture,
		ActualDeparture:    s.ActualDeparture,
		ScheduledArrival:   s.ScheduledArrival,
		EstimatedArrival:   s.EstimatedArrival,
		Status:             constants.FlightState(s.Status),
		DelayReason:        s.DelayReason,
		DelayMinutes:       s.DelayMinutes,
		Gate:               s.Gate,
		Terminal:           s.Terminal,
	}
}

func FlightStatusFromEntity(e *entities.FlightStatus) FlightStatus {
	return FlightStatus{
		ID:                 e.ID,
		FlightNumber:       e.FlightNumber,
		Airline:            e.Airline,
		Origin:             e.Origin,
		Destination:        e.Destination,
		ScheduledDeparture: e.ScheduledDeparture,
		ActualDeparture:    e.ActualDeparture,
		ScheduledArrival:   e.ScheduledArrival,
		EstimatedArrival:   e.EstimatedArrival,
		Status:             string(e.Status),
		DelayReason:        e.DelayReason,
		DelayMinutes:       e.DelayMinutes,
		Gate:               e.Gate,
		Terminal:           e.Terminal,
	}
}
