package api

import (
	"net/http"
	"time"

	"travelbook/atlas/internal/common"
	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/models/dtos"
	"travelbook/atlas/internal/services"

	"github.com/go-chi/chi/v5"
)

// SearchFlightsHandler handles GET /api/search/flights
func SearchFlightsHandler(svc *services.SearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		filter := services.FlightFilter{
			From:    optionalString(r, "from"),
			To:      optionalString(r, "to"),
			Airline: optionalString(r, "airline"),
		}

		var err error
		if filter.MinPrice, err = optionalFloat(r, "minPrice"); err != nil {
			respondBadRequest(w, initTime, err)
			return
		}
		if filter.MaxPrice, err = optionalFloat(r, "maxPrice"); err != nil {
			respondBadRequest(w, initTime, err)
			return
		}
		if filter.MinSeats, err = optionalInt(r, "minSeats"); err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		flights, err := svc.SearchFlights(r.Context(), filter)
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, flights)
	}
}

// SearchHotelsHandler handles GET /api/search/hotels
func SearchHotelsHandler(svc *services.SearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		filter := services.HotelFilter{
			Location:  optionalString(r, "location"),
			Amenities: optionalString(r, "amenities"),
		}

		var err error
		if filter.MinPrice, err = optionalFloat(r, "minPrice"); err != nil {
			respondBadRequest(w, initTime, err)
			return
		}
		if filter.MaxPrice, err = optionalFloat(r, "maxPrice"); err != nil {
			respondBadRequest(w, initTime, err)
			return
		}
		if filter.MinRooms, err = optionalInt(r, "minRooms"); err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		hotels, err := svc.SearchHotels(r.Context(), filter)
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, hotels)
	}
}

// LocationSuggestionsHandler handles GET /api/search/suggestions/locations
func LocationSuggestionsHandler(svc *services.SearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		query, err := requiredString(r, "query")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		suggestions, err := svc.LocationSuggestions(r.Context(), query)
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, suggestions)
	}
}

// AirlineSuggestionsHandler handles GET /api/search/suggestions/airlines
func AirlineSuggestionsHandler(svc *services.SearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		query, err := requiredString(r, "query")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		suggestions, err := svc.AirlineSuggestions(r.Context(), query)
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, suggestions)
	}
}

// PopularDestinationsHandler handles GET /api/search/popular-destinations
func PopularDestinationsHandler(svc *services.SearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		destinations, err := svc.PopularDestinations(r.Context())
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, destinations)
	}
}

// SaveSearchHistoryHandler handles POST /api/search/history. Parameters
// arrive as query string or form fields.
func SaveSearchHistoryHandler(svc *services.HistoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		passengers, err := optionalInt(r, "passengers")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		req := dtos.SearchHistoryRequest{
			UserID:     r.FormValue("userId"),
			SearchType: r.FormValue("searchType"),
			From:       optionalString(r, "from"),
			To:         optionalString(r, "to"),
			CheckIn:    optionalString(r, "checkIn"),
			CheckOut:   optionalString(r, "checkOut"),
			Passengers: 1,
		}
		if passengers != nil {
			req.Passengers = *passengers
		}

		if err := validate.Struct(req); err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		if _, err := svc.SaveSearch(r.Context(), req); err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteText(w, http.StatusOK, constants.MsgHistorySaved)
	}
}

// RecentSearchesHandler handles GET /api/search/history/{userId}
func RecentSearchesHandler(svc *services.HistoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		history, err := svc.RecentSearches(r.Context(), chi.URLParam(r, "userId"))
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, history)
	}
}

// RecentSearchesByTypeHandler handles GET /api/search/history/{userId}/{searchType}
func RecentSearchesByTypeHandler(svc *services.HistoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		history, err := svc.RecentSearchesByType(r.Context(),
			chi.URLParam(r, "userId"),
			constants.SearchType(chi.URLParam(r, "searchType")),
		)
		if err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteJSON(w, http.StatusOK, history)
	}
}

// ClearSearchHistoryHandler handles DELETE /api/search/history/{userId}
func ClearSearchHistoryHandler(svc *services.HistoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := svc.ClearHistory(r.Context(), chi.URLParam(r, "userId")); err != nil {
			respondStoreFailure(w, r, initTime, err)
			return
		}
		common.WriteText(w, http.StatusOK, constants.MsgHistoryCleared)
	}
}
