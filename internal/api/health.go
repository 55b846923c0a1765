package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"travelbook/atlas/internal/common"
	"travelbook/atlas/internal/models/entities"

	"golang.org/x/sync/errgroup"
)

const healthCheckTimeout = 3 * time.Second

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(checks map[string]HealthCheck, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		var (
			mu       sync.Mutex
			services = make(map[string]entities.ServiceStatus, len(checks))
			g        errgroup.Group
		)

		for name, check := range checks {
			g.Go(func() error {
				status := entities.ServiceStatus{Status: "ok", Details: "Connected"}
				if err := check(ctx); err != nil {
					status = entities.ServiceStatus{Status: "down", Details: err.Error()}
				}
				mu.Lock()
				services[name] = status
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		code := http.StatusOK
		if overallStatus != "ok" {
			code = http.StatusServiceUnavailable
		}

		common.WriteJSON(w, code, entities.HealthCheckResponse{
			Status:   overallStatus,
			Services: services,
			UpSince:  upSince,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
		})
	}
}
