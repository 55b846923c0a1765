package routes

import (
	"travelbook/atlas/internal/api"
	"travelbook/atlas/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes mounts every /api endpoint. Seeding and simulation
// endpoints sit behind the operator token when one is configured.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, limiter *middleware.RateLimiter) {
	svc := deps.Services
	adminOnly := middleware.AdminAuthMiddleware(deps.Signer)

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Use(limiter.Middleware)

		apiRouter.Route("/search", func(search chi.Router) {
			search.Get("/flights", api.SearchFlightsHandler(svc.Search))
			search.Get("/hotels", api.SearchHotelsHandler(svc.Search))
			search.Get("/suggestions/locations", api.LocationSuggestionsHandler(svc.Search))
			search.Get("/suggestions/airlines", api.AirlineSuggestionsHandler(svc.Search))
			search.Get("/popular-destinations", api.PopularDestinationsHandler(svc.Search))

			search.Post("/history", api.SaveSearchHistoryHandler(svc.History))
			search.Get("/history/{userId}", api.RecentSearchesHandler(svc.History))
			search.Get("/history/{userId}/{searchType}", api.RecentSearchesByTypeHandler(svc.History))
			search.Delete("/history/{userId}", api.ClearSearchHistoryHandler(svc.History))
		})

		apiRouter.Route("/flight-status", func(fs chi.Router) {
			fs.Get("/", api.ListFlightStatusHandler(svc.FlightStatus))
			fs.Post("/", api.CreateFlightStatusHandler(svc.FlightStatus))
			fs.Get("/airline/{airline}", api.FlightStatusByAirlineHandler(svc.FlightStatus))
			fs.Get("/route", api.FlightStatusByRouteHandler(svc.FlightStatus))
			fs.Get("/search", api.SearchFlightStatusHandler(svc.FlightStatus))
			fs.Get("/{flightNumber}", api.GetFlightStatusHandler(svc.FlightStatus))
			fs.Put("/{id}", api.UpdateFlightStatusHandler(svc.FlightStatus))
			fs.Delete("/{id}", api.DeleteFlightStatusHandler(svc.FlightStatus))

			fs.Group(func(admin chi.Router) {
				admin.Use(adminOnly)
				admin.Post("/simulate/{flightNumber}", api.SimulateFlightStatusHandler(svc.FlightStatus))
				admin.Post("/simulate-all", api.SimulateAllFlightStatusHandler(svc.FlightStatus))
				admin.Post("/initialize-mock-data", api.InitializeFlightStatusHandler(svc.FlightStatus))
			})
		})

		apiRouter.Route("/packages", func(pkgs chi.Router) {
			pkgs.Get("/", api.ListPackagesHandler(svc.Packages))
			pkgs.Post("/", api.CreatePackageHandler(svc.Packages))
			pkgs.Get("/destination/{destination}", api.PackagesByDestinationHandler(svc.Packages))
			pkgs.Get("/type/{type}", api.PackagesByTypeHandler(svc.Packages))
			pkgs.Get("/price-range", api.PackagesByPriceRangeHandler(svc.Packages))
			pkgs.Get("/duration", api.PackagesByDurationHandler(svc.Packages))
			pkgs.Get("/search", api.SearchPackagesHandler(svc.Packages))
			pkgs.Get("/{id}", api.GetPackageHandler(svc.Packages))
			pkgs.Put("/{id}", api.UpdatePackageHandler(svc.Packages))
			pkgs.Delete("/{id}", api.DeletePackageHandler(svc.Packages))
			pkgs.Get("/{id}/group-discount", api.GroupDiscountHandler(svc.Packages))

			pkgs.With(adminOnly).Post("/initialize-mock-data", api.InitializePackagesHandler(svc.Packages))
		})
	})
}
