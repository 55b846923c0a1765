package jobs

import (
	"context"
	"time"

	"travelbook/atlas/internal/logging"
	"travelbook/atlas/internal/metrics"
	"travelbook/atlas/internal/models/entities"
)

// StatusSimulator is the part of the flight status service the job drives.
type StatusSimulator interface {
	SimulateAll(ctx context.Context) ([]entities.FlightStatus, error)
}

// StatusSimulationJob periodically feeds random status changes into the
// store so clients see a moving board without polling the simulate endpoint.
type StatusSimulationJob struct {
	simulator StatusSimulator
	metrics   *metrics.MetricsRegistry
}

func NewStatusSimulationJob(simulator StatusSimulator, m *metrics.MetricsRegistry) *StatusSimulationJob {
	return &StatusSimulationJob{
		simulator: simulator,
		metrics:   m,
	}
}

// Run performs a single simulation pass.
func (j *StatusSimulationJob) Run(ctx context.Context) error {
	start := time.Now()
	defer func() {
		j.metrics.SimulationJobDuration.Observe(time.Since(start).Seconds())
	}()

	statuses, err := j.simulator.SimulateAll(ctx)
	if err != nil {
		return err
	}

	logging.Debug("[StatusSimulationJob] Pass complete",
		"flights", len(statuses),
		"duration", time.Since(start).Truncate(time.Millisecond).String(),
	)
	return nil
}

// RunScheduled runs the job every interval until ctx is cancelled.
func (j *StatusSimulationJob) RunScheduled(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := j.Run(ctx); err != nil {
				logging.Error("[StatusSimulationJob] Error in scheduled run", "error", err)
			}
		case <-ctx.Done():
			logging.Info("[StatusSimulationJob] Shutting down scheduled simulation")
			return
		}
	}
}
