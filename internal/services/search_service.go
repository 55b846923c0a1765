package services

import (
	"context"
	"sort"
	"time"

	"travelbook/atlas/internal/common"
	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/db/repositories"
	"travelbook/atlas/internal/metrics"
	"travelbook/atlas/internal/models/entities"

	"golang.org/x/sync/errgroup"
)

// FlightFilter holds the optional criteria of a flight search. Nil means unset.
type FlightFilter struct {
	From     *string
	To       *string
	Airline  *string
	MinPrice *float64
	MaxPrice *float64
	MinSeats *int
}

// HotelFilter holds the optional criteria of a hotel search. Nil means unset.
type HotelFilter struct {
	Location  *string
	MinPrice  *float64
	MaxPrice  *float64
	Amenities *string
	MinRooms  *int
}

type SearchService struct {
	flights  repositories.FlightRepository
	hotels   repositories.HotelRepository
	history  repositories.SearchHistoryRepository
	cache    common.CacheInterface
	cacheTTL time.Duration
	metrics  *metrics.MetricsRegistry
	now      func() time.Time
}

func NewSearchService(
	flights repositories.FlightRepository,
	hotels repositories.HotelRepository,
	history repositories.SearchHistoryRepository,
	cache common.CacheInterface,
	cacheTTL time.Duration,
	m *metrics.MetricsRegistry,
) *SearchService {
	return &SearchService{
		flights:  flights,
		hotels:   hotels,
		history:  history,
		cache:    cache,
		cacheTTL: cacheTTL,
		metrics:  m,
		now:      time.Now,
	}
}

// SearchFlights narrows the candidate set chosen by route, then applies the
// airline, price and seat filters in that order.
func (s *SearchService) SearchFlights(ctx context.Context, f FlightFilter) ([]entities.Flight, error) {
	var (
		results []entities.Flight
		err     error
	)

	switch {
	case present(f.From) && present(f.To):
		results, err = s.flights.FindByRoute(ctx, *f.From, *f.To)
	case present(f.From):
		results, err = s.flights.FindByLocationContaining(ctx, *f.From)
	case present(f.To):
		results, err = s.flights.FindByLocationContaining(ctx, *f.To)
	default:
		results, err = s.flights.FindAll(ctx)
	}
	if err != nil {
		return nil, storeError(s.metrics, "search flights", err)
	}

	filtered := make([]entities.Flight, 0, len(results))
	for _, flight := range results {
		if present(f.Airline) && !containsFold(flight.FlightName, *f.Airline) {
			continue
		}
		if f.MinPrice != nil && flight.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && flight.Price > *f.MaxPrice {
			continue
		}
		if f.MinSeats != nil && flight.AvailableSeats < *f.MinSeats {
			continue
		}
		filtered = append(filtered, flight)
	}

	return filtered, nil
}

func (s *SearchService) SearchHotels(ctx context.Context, f HotelFilter) ([]entities.Hotel, error) {
	var (
		results []entities.Hotel
		err     error
	)

	if present(f.Location) {
		results, err = s.hotels.FindByLocationContaining(ctx, *f.Location)
	} else {
		results, err = s.hotels.FindAll(ctx)
	}
	if err != nil {
		return nil, storeError(s.metrics, "search hotels", err)
	}

	filtered := make([]entities.Hotel, 0, len(results))
	for _, hotel := range results {
		if f.MinPrice != nil && hotel.PricePerNight < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && hotel.PricePerNight > *f.MaxPrice {
			continue
		}
		if present(f.Amenities) && (hotel.Amenities == "" || !containsFold(hotel.Amenities, *f.Amenities)) {
			continue
		}
		if f.MinRooms != nil && hotel.AvailableRooms < *f.MinRooms {
			continue
		}
		filtered = append(filtered, hotel)
	}

	return filtered, nil
}

// LocationSuggestions returns up to ten distinct places matching query,
// flight endpoints first, then hotel locations.
func (s *SearchService) LocationSuggestions(ctx context.Context, query string) ([]string, error) {
	var (
		flights []entities.Flight
		hotels  []entities.Hotel
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		flights, err = s.flights.FindByLocationContaining(gctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		hotels, err = s.hotels.FindByLocationContaining(gctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storeError(s.metrics, "location suggestions", err)
	}

	suggestions := newOrderedSet(constants.SuggestionLimit)
	for _, flight := range flights {
		if containsFold(flight.From, query) {
			suggestions.add(flight.From)
		}
		if containsFold(flight.To, query) {
			suggestions.add(flight.To)
		}
	}
	for _, hotel := range hotels {
		suggestions.add(hotel.Location)
	}

	return suggestions.values, nil
}

func (s *SearchService) AirlineSuggestions(ctx context.Context, query string) ([]string, error) {
	flights, err := s.flights.FindByNameContaining(ctx, query)
	if err != nil {
		return nil, storeError(s.metrics, "airline suggestions", err)
	}

	suggestions := newOrderedSet(constants.SuggestionLimit)
	for _, flight := range flights {
		suggestions.add(flight.FlightName)
	}
	return suggestions.values, nil
}

// PopularDestinations ranks destinations searched in the last 30 days by
// count. Equal counts keep the order in which the destination first appeared.
func (s *SearchService) PopularDestinations(ctx context.Context) ([]string, error) {
	key := string(constants.CachePrefixPopularDestinations)
	if cached, ok := s.cache.Get(key); ok {
		if destinations, ok := common.AsStrings(cached); ok {
			s.metrics.CacheHitsTotal.WithLabelValues(key).Inc()
			return destinations, nil
		}
	}
	s.metrics.CacheMissesTotal.WithLabelValues(key).Inc()

	cutoff := s.now().UTC().AddDate(0, 0, -constants.PopularWindowDays)
	recent, err := s.history.FindSince(ctx, cutoff)
	if err != nil {
		return nil, storeError(s.metrics, "popular destinations", err)
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, h := range recent {
		if !present(h.Destination) {
			continue
		}
		if _, seen := counts[*h.Destination]; !seen {
			order = append(order, *h.Destination)
		}
		counts[*h.Destination]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > constants.PopularLimit {
		order = order[:constants.PopularLimit]
	}

	s.cache.Set(key, order, s.cacheTTL)
	return order, nil
}
