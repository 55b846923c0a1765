package services

import (
	"context"
	"fmt"
	"time"

	"travelbook/atlas/internal/common"
	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/db/repositories"
	"travelbook/atlas/internal/logging"
	"travelbook/atlas/internal/metrics"
	"travelbook/atlas/internal/models/entities"
)

type mockFlight struct {
	number, airline, origin, destination string
	departIn, arriveIn                   time.Duration
}

var mockFlights = []mockFlight{
	{"AI101", "Air India", "DEL", "BOM", 2 * time.Hour, 4 * time.Hour},
	{"6E202", "IndiGo", "BOM", "BLR", 1 * time.Hour, 3 * time.Hour},
	{"SG303", "SpiceJet", "BLR", "CCU", 30 * time.Minute, 3 * time.Hour},
	{"UK404", "Vistara", "CCU", "DEL", 3 * time.Hour, 5 * time.Hour},
	{"G8505", "GoAir", "DEL", "GOI", 4 * time.Hour, 6 * time.Hour},
}

// FlightStatusService manages flight status records and the random status
// feed that stands in for a live provider.
type FlightStatusService struct {
	repo    repositories.FlightStatusRepository
	rand    common.RandomSource
	metrics *metrics.MetricsRegistry
	now     func() time.Time
}

func NewFlightStatusService(repo repositories.FlightStatusRepository, rnd common.RandomSource, m *metrics.MetricsRegistry) *FlightStatusService {
	return &FlightStatusService{
		repo:    repo,
		rand:    rnd,
		metrics: m,
		now:     time.Now,
	}
}

func (s *FlightStatusService) List(ctx context.Context) ([]entities.FlightStatus, error) {
	statuses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeError(s.metrics, "list flight status", err)
	}
	return statuses, nil
}

// GetByFlightNumber returns nil when no record exists.
func (s *FlightStatusService) GetByFlightNumber(ctx context.Context, flightNumber string) (*entities.FlightStatus, error) {
	status, err := s.repo.FindByFlightNumber(ctx, flightNumber)
	if err != nil {
		return nil, storeError(s.metrics, "get flight status", err)
	}
	return status, nil
}

func (s *FlightStatusService) ListByAirline(ctx context.Context, airline string) ([]entities.FlightStatus, error) {
	statuses, err := s.repo.FindByAirline(ctx, airline)
	if err != nil {
		return nil, storeError(s.metrics, "flight status by airline", err)
	}
	return statuses, nil
}

func (s *FlightStatusService) ListByRoute(ctx context.Context, origin, destination string) ([]entities.FlightStatus, error) {
	statuses, err := s.repo.FindByRoute(ctx, origin, destination)
	if err != nil {
		return nil, storeError(s.metrics, "flight status by route", err)
	}
	return statuses, nil
}

// Search matches flight numbers first and falls back to origin or
// destination when nothing matched.
func (s *FlightStatusService) Search(ctx context.Context, query string) ([]entities.FlightStatus, error) {
	results, err := s.repo.FindByFlightNumberContaining(ctx, query)
	if err != nil {
		return nil, storeError(s.metrics, "search flight status", err)
	}
	if len(results) > 0 {
		return results, nil
	}

	results, err = s.repo.FindByLocationContaining(ctx, query)
	if err != nil {
		return nil, storeError(s.metrics, "search flight status", err)
	}
	return results, nil
}

// Create always inserts a new record in the ON_TIME state.
func (s *FlightStatusService) Create(ctx context.Context, status *entities.FlightStatus) (*entities.FlightStatus, error) {
	status.ID = ""
	status.Status = constants.FlightOnTime
	status.DelayMinutes = 0
	status.DelayReason = nil

	if err := s.repo.Save(ctx, status); err != nil {
		return nil, storeError(s.metrics, "create flight status", err)
	}
	return status, nil
}

// Update replaces the record with id, creating it if it does not exist.
func (s *FlightStatusService) Update(ctx context.Context, id string, status *entities.FlightStatus) (*entities.FlightStatus, error) {
	status.ID = id
	if status.Status == "" {
		status.Status = constants.FlightOnTime
	}
	if status.Status == constants.FlightOnTime {
		status.DelayMinutes = 0
		status.DelayReason = nil
	}

	if err := s.repo.Save(ctx, status); err != nil {
		return nil, storeError(s.metrics, "update flight status", err)
	}
	return status, nil
}

func (s *FlightStatusService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(s.metrics, "delete flight status", err)
	}
	return nil
}

// SimulateStatusUpdate moves the flight to a random state. It returns nil
// when the flight number is unknown.
func (s *FlightStatusService) SimulateStatusUpdate(ctx context.Context, flightNumber string) (*entities.FlightStatus, error) {
	status, err := s.repo.FindByFlightNumber(ctx, flightNumber)
	if err != nil {
		return nil, storeError(s.metrics, "simulate flight status", err)
	}
	if status == nil {
		return nil, nil
	}

	if err := s.simulate(ctx, status); err != nil {
		return nil, err
	}
	return status, nil
}

// SimulateAll gives every record a 30% chance of a simulated update and
// returns the full refreshed set.
func (s *FlightStatusService) SimulateAll(ctx context.Context) ([]entities.FlightStatus, error) {
	statuses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeError(s.metrics, "simulate all flight status", err)
	}

	for i := range statuses {
		if s.rand.Float64() >= constants.SimulationProbability {
			continue
		}
		if err := s.simulate(ctx, &statuses[i]); err != nil {
			return nil, err
		}
	}

	return s.List(ctx)
}

func (s *FlightStatusService) simulate(ctx context.Context, status *entities.FlightStatus) error {
	next := constants.FlightStates[s.rand.IntN(len(constants.FlightStates))]

	switch next {
	case constants.FlightDelayed:
		minutes := constants.MinDelayMinutes + s.rand.IntN(constants.DelaySpreadMinutes)
		reason := constants.DelayReasons[s.rand.IntN(len(constants.DelayReasons))]
		status.MarkDelayed(minutes, reason)
	case constants.FlightOnTime:
		status.MarkOnTime()
	default:
		status.Status = next
	}

	if err := s.repo.Save(ctx, status); err != nil {
		return storeError(s.metrics, "save simulated flight status", err)
	}
	s.metrics.StatusSimulationsTotal.WithLabelValues(string(next)).Inc()
	return nil
}

// InitializeMockData seeds the fixed demo flights when the store is empty.
func (s *FlightStatusService) InitializeMockData(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return storeError(s.metrics, "count flight status", err)
	}
	if count > 0 {
		return nil
	}

	now := s.now().UTC()
	for _, mf := range mockFlights {
		departure := now.Add(mf.departIn)
		arrival := now.Add(mf.arriveIn)
		status := &entities.FlightStatus{
			FlightNumber:       mf.number,
			Airline:            mf.airline,
			Origin:             mf.origin,
			Destination:        mf.destination,
			ScheduledDeparture: &departure,
			ScheduledArrival:   &arrival,
			EstimatedArrival:   &arrival,
			Status:             constants.FlightOnTime,
			Gate:               fmt.Sprintf("A%d", s.rand.IntN(20)+1),
			Terminal:           fmt.Sprintf("T%d", s.rand.IntN(3)+1),
		}
		if err := s.repo.Save(ctx, status); err != nil {
			return storeError(s.metrics, "seed flight status", err)
		}
	}

	logging.Info("Seeded flight status mock data", "count", len(mockFlights))
	return nil
}
