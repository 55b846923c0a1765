package api

import (
	"encoding/json"
	"net/http"
	"time"

	"travelbook/atlas/internal/auth"
	"travelbook/atlas/internal/common"
	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/logging"
	"travelbook/atlas/internal/models/entities"
	"travelbook/atlas/internal/services"

	"github.com/go-chi/chi/v5"
)

// ListFlightStatusHandler handles GET /api/flight-status
func ListFlightStatusHandler(svc *services.FlightStatusService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		statuses, err := svc.List(r.Context())
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, statuses)
	}
}

// GetFlightStatusHandler handles GET /api/flight-status/{flightNumber}
func GetFlightStatusHandler(svc *services.FlightStatusService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		status, err := svc.GetByFlightNumber(r.Context(), chi.URLParam(r, "flightNumber"))
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		if status == nil {
			respondNotFound(w)
			return
		}
		common.WriteJSON(w, http.StatusOK, status)
	}
}

// FlightStatusByAirlineHandler handles GET /api/flight-status/airline/{airline}
func FlightStatusByAirlineHandler(svc *services.FlightStatusService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		statuses, err := svc.ListByAirline(r.Context(), chi.URLParam(r, "airline"))
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, statuses)
	}
}

// FlightStatusByRouteHandler handles GET /api/flight-status/route?origin&destination
func FlightStatusByRouteHandler(svc *services.FlightStatusService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		origin, err := requiredString(r, "origin")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}
		destination, err := requiredString(r, "destination")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		statuses, err := svc.ListByRoute(r.Context(), origin, destination)
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, statuses)
	}
}

// SearchFlightStatusHandler handles GET /api/flight-status/search?query
func SearchFlightStatusHandler(svc *services.FlightStatusService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		query, err := requiredString(r, "query")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		statuses, err := svc.Search(r.Context(), query)
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, statuses)
	}
}

// CreateFlightStatusHandler handles POST /api/flight-status
func CreateFlightStatusHandler(svc *services.FlightStatusService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		status, ok := decodeFlightStatus(w, r, initTime)
		if !ok {
			return
		}

		created, err := svc.Create(r.Context(), status)
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, created)
	}
}

// UpdateFlightStatusHandler handles PUT /api/flight-status/{id}
func UpdateFlightStatusHandler(svc *services.FlightStatusService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		status, ok := decodeFlightStatus(w, r, initTime)
		if !ok {
			return
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "id"), status)
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, updated)
	}
}

// DeleteFlightStatusHandler handles DELETE /api/flight-status/{id}
func DeleteFlightStatusHandler(svc *services.FlightStatusService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// SimulateFlightStatusHandler handles POST /api/flight-status/simulate/{flightNumber}
func SimulateFlightStatusHandler(svc *services.FlightStatusService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		flightNumber := chi.URLParam(r, "flightNumber")
		logging.Info("Simulating flight status", "operator", auth.OperatorSubject(r.Context()), "flight_number", flightNumber)

		status, err := svc.SimulateStatusUpdate(r.Context(), flightNumber)
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		if status == nil {
			respondNotFound(w)
			return
		}
		common.WriteJSON(w, http.StatusOK, status)
	}
}

// SimulateAllFlightStatusHandler handles POST /api/flight-status/simulate-all
func SimulateAllFlightStatusHandler(svc *services.FlightStatusService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		logging.Info("Simulating all flight statuses", "operator", auth.OperatorSubject(r.Context()))

		statuses, err := svc.SimulateAll(r.Context())
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, statuses)
	}
}

// InitializeFlightStatusHandler handles POST /api/flight-status/initialize-mock-data
func InitializeFlightStatusHandler(svc *services.FlightStatusService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		logging.Info("Seeding flight statuses", "operator", auth.OperatorSubject(r.Context()))

		if err := svc.InitializeMockData(r.Context()); err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteText(w, http.StatusOK, constants.MsgFlightStatusSeeded)
	}
}

func decodeFlightStatus(w http.ResponseWriter, r *http.Request, initTime time.Time) (*entities.FlightStatus, bool) {
	var status entities.FlightStatus
	if err := json.NewDecoder(r.Body).Decode(&status); err != nil {
		common.RespondError(w, initTime, nil, constants.MsgInvalidRequestBody, http.StatusBadRequest)
		return nil, false
	}
	if err := validate.Struct(status); err != nil {
		common.RespondError(w, initTime, err, constants.MsgInvalidRequestBody, http.StatusBadRequest)
		return nil, false
	}
	return &status, true
}
