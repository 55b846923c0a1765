package entities

import (
	"time"

	"travelbook/atlas/internal/constants"
)

// FlightStatus is the live status record of a single flight number.
// Invariant: Status == ON_TIME implies DelayMinutes == 0 and DelayReason == nil.
type FlightStatus struct {
	ID                 string                `json:"id" bson:"_id,omitempty"`
	FlightNumber       string                `json:"flightNumber" bson:"flightNumber" validate:"required"`
	Airline            string                `json:"airline" bson:"airline"`
	Origin             string                `json:"origin" bson:"origin"`
	Destination        string                `json:"destination" bson:"destination"`
	ScheduledDeparture *time.Time            `json:"scheduledDeparture" bson:"scheduledDeparture,omitempty"`
	ActualDeparture    *time.Time            `json:"actualDeparture" bson:"actualDeparture,omitempty"`
	ScheduledArrival   *time.Time            `json:"scheduledArrival" bson:"scheduledArrival,omitempty"`
	EstimatedArrival   *time.Time            `json:"estimatedArrival" bson:"estimatedArrival,omitempty"`
	Status             constants.FlightState `json:"status" bson:"status" validate:"omitempty,oneof=ON_TIME DELAYED DEPARTED ARRIVED CANCELLED"`
	DelayReason        *string               `json:"delayReason" bson:"delayReason,omitempty"`
	DelayMinutes       int                   `json:"delayMinutes" bson:"delayMinutes" validate:"gte=0"`
	Gate               string                `json:"gate" bson:"gate"`
	Terminal           string                `json:"terminal" bson:"terminal"`
}

// MarkOnTime clears every delay field and realigns the estimate with the schedule.
func (s *FlightStatus) MarkOnTime() {
	s.Status = constants.FlightOnTime
	s.DelayMinutes = 0
	s.DelayReason = nil
	s.EstimatedArrival = s.ScheduledArrival
}

// MarkDelayed records a delay and pushes the estimate when a schedule is known.
func (s *FlightStatus) MarkDelayed(minutes int, reason string) {
	s.Status = constants.FlightDelayed
	s.DelayMinutes = minutes
	s.DelayReason = &reason
	if s.ScheduledArrival != nil {
		eta := s.ScheduledArrival.Add(time.Duration(minutes) * time.Minute)
		s.EstimatedArrival = &eta
	}
}
