package jobs

import (
	"context"
	"time"

	"travelbook/atlas/internal/logging"
	"travelbook/atlas/internal/metrics"
)

// InitializeJobs starts the background jobs. A zero interval leaves the
// status simulation disabled and returns nil.
func InitializeJobs(
	ctx context.Context,
	simulator StatusSimulator,
	m *metrics.MetricsRegistry,
	simulationInterval time.Duration,
) *StatusSimulationJob {
	if simulationInterval <= 0 {
		logging.Info("Status simulation job disabled")
		return nil
	}

	job := NewStatusSimulationJob(simulator, m)
	go job.RunScheduled(ctx, simulationInterval)

	logging.Info("Status simulation job started", "interval", simulationInterval.String())
	return job
}
