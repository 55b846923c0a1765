package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"travelbook/atlas/internal/metrics"
	"travelbook/atlas/internal/models/entities"
)

type mockSimulator struct {
	calls atomic.Int32
	err   error
}

func (m *mockSimulator) SimulateAll(ctx context.Context) ([]entities.FlightStatus, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	return []entities.FlightStatus{{FlightNumber: "AI101"}}, nil
}

func TestStatusSimulationJob_Run(t *testing.T) {
	sim := &mockSimulator{}
	job := NewStatusSimulationJob(sim, metrics.NewMetricsRegistry())

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sim.calls.Load() != 1 {
		t.Errorf("Expected 1 simulation pass, got %d", sim.calls.Load())
	}

	sim.err = errors.New("store down")
	if err := job.Run(context.Background()); !errors.Is(err, sim.err) {
		t.Errorf("Expected simulator error, got %v", err)
	}
}

func TestInitializeJobs_DisabledWithoutInterval(t *testing.T) {
	if job := InitializeJobs(context.Background(), &mockSimulator{}, metrics.NewMetricsRegistry(), 0); job != nil {
		t.Error("Expected no job for zero interval")
	}
}

func TestInitializeJobs_RunsUntilCancelled(t *testing.T) {
	sim := &mockSimulator{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if job := InitializeJobs(ctx, sim, metrics.NewMetricsRegistry(), 10*time.Millisecond); job == nil {
		t.Fatal("Expected a running job")
	}

	deadline := time.Now().Add(2 * time.Second)
	for sim.calls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if sim.calls.Load() < 2 {
		t.Fatalf("Expected at least 2 scheduled passes, got %d", sim.calls.Load())
	}
}
