package api

import (
	"encoding/json"
	"net/http"
	"time"

	"travelbook/atlas/internal/auth"
	"travelbook/atlas/internal/common"
	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/logging"
	"travelbook/atlas/internal/models/dtos"
	"travelbook/atlas/internal/models/entities"
	"travelbook/atlas/internal/services"

	"github.com/go-chi/chi/v5"
)

// ListPackagesHandler handles GET /api/packages (active packages only)
func ListPackagesHandler(svc *services.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		pkgs, err := svc.ListActive(r.Context())
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, pkgs)
	}
}

// GetPackageHandler handles GET /api/packages/{id}
func GetPackageHandler(svc *services.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		pkg, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		if pkg == nil {
			respondNotFound(w)
			return
		}
		common.WriteJSON(w, http.StatusOK, pkg)
	}
}

// PackagesByDestinationHandler handles GET /api/packages/destination/{destination}
func PackagesByDestinationHandler(svc *services.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		pkgs, err := svc.ListByDestination(r.Context(), chi.URLParam(r, "destination"))
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, pkgs)
	}
}

// PackagesByTypeHandler handles GET /api/packages/type/{type}
func PackagesByTypeHandler(svc *services.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		pkgs, err := svc.ListByType(r.Context(), constants.PackageType(chi.URLParam(r, "type")))
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, pkgs)
	}
}

// PackagesByPriceRangeHandler handles GET /api/packages/price-range?minPrice&maxPrice
func PackagesByPriceRangeHandler(svc *services.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		minPrice, err := requiredFloat(r, "minPrice")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}
		maxPrice, err := requiredFloat(r, "maxPrice")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		pkgs, err := svc.ListByPriceRange(r.Context(), minPrice, maxPrice)
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, pkgs)
	}
}

// PackagesByDurationHandler handles GET /api/packages/duration?minDuration&maxDuration
func PackagesByDurationHandler(svc *services.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		minDuration, err := requiredInt(r, "minDuration")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}
		maxDuration, err := requiredInt(r, "maxDuration")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		pkgs, err := svc.ListByDuration(r.Context(), minDuration, maxDuration)
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, pkgs)
	}
}

// SearchPackagesHandler handles GET /api/packages/search?query
func SearchPackagesHandler(svc *services.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		query, err := requiredString(r, "query")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		pkgs, err := svc.Search(r.Context(), query)
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, pkgs)
	}
}

// CreatePackageHandler handles POST /api/packages
func CreatePackageHandler(svc *services.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		pkg, ok := decodePackage(w, r, initTime)
		if !ok {
			return
		}

		created, err := svc.Create(r.Context(), pkg)
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, created)
	}
}

// UpdatePackageHandler handles PUT /api/packages/{id}
func UpdatePackageHandler(svc *services.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		pkg, ok := decodePackage(w, r, initTime)
		if !ok {
			return
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "id"), pkg)
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, updated)
	}
}

// DeletePackageHandler handles DELETE /api/packages/{id}
func DeletePackageHandler(svc *services.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// GroupDiscountHandler handles GET /api/packages/{id}/group-discount?groupSize
func GroupDiscountHandler(svc *services.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		groupSize, err := requiredInt(r, "groupSize")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		quote, err := svc.GroupDiscount(r.Context(), chi.URLParam(r, "id"), groupSize)
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		if quote == nil {
			respondNotFound(w)
			return
		}
		common.WriteJSON(w, http.StatusOK, quote)
	}
}

// InitializePackagesHandler handles POST /api/packages/initialize-mock-data
func InitializePackagesHandler(svc *services.PackageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		logging.Info("Seeding travel packages", "operator", auth.OperatorSubject(r.Context()))

		if err := svc.InitializeMockData(r.Context()); err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteText(w, http.StatusOK, constants.MsgTravelPackagesSeeded)
	}
}

func decodePackage(w http.ResponseWriter, r *http.Request, initTime time.Time) (*entities.TravelPackage, bool) {
	var req dtos.TravelPackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, initTime, nil, constants.MsgInvalidRequestBody, http.StatusBadRequest)
		return nil, false
	}
	if err := validate.Struct(req); err != nil {
		common.RespondError(w, initTime, err, constants.MsgInvalidRequestBody, http.StatusBadRequest)
		return nil, false
	}
	return req.ToEntity(), true
}
