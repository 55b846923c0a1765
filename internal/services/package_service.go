package services

import (
	"context"
	"fmt"
	"strconv"

	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/db/repositories"
	"travelbook/atlas/internal/logging"
	"travelbook/atlas/internal/metrics"
	"travelbook/atlas/internal/models/entities"
)

const mockDiscountPercentage = 15.0

type mockPackage struct {
	name, destination string
	packageType       constants.PackageType
	duration          int
	activities        []string
	image             string
}

var mockPackages = []mockPackage{
	{"Goa Beach Paradise", "Goa", constants.PackagePreBuilt, 5,
		[]string{"Beach resort stay", "Water sports", "Sunset cruise", "Local sightseeing"},
		"https://example.com/goa.jpg"},
	{"Kerala Backwaters", "Kerala", constants.PackagePreBuilt, 7,
		[]string{"Houseboat stay", "Spice plantation tour", "Ayurvedic massage", "Cultural show"},
		"https://example.com/kerala.jpg"},
	{"Rajasthan Royal Tour", "Rajasthan", constants.PackagePreBuilt, 10,
		[]string{"Palace visits", "Desert safari", "Camel ride", "Folk dance show", "Heritage walk"},
		"https://example.com/rajasthan.jpg"},
	{"Himachal Adventure", "Himachal Pradesh", constants.PackageCustomizable, 6,
		[]string{"Trekking", "River rafting", "Paragliding", "Mountain biking"},
		"https://example.com/himachal.jpg"},
}

var mockHighlights = []string{
	"All meals included",
	"Professional guide",
	"Transportation included",
	"24/7 support",
}

// PackageService prices and stores travel packages.
type PackageService struct {
	packages repositories.TravelPackageRepository
	flights  repositories.FlightRepository
	hotels   repositories.HotelRepository
	metrics  *metrics.MetricsRegistry
}

func NewPackageService(
	packages repositories.TravelPackageRepository,
	flights repositories.FlightRepository,
	hotels repositories.HotelRepository,
	m *metrics.MetricsRegistry,
) *PackageService {
	return &PackageService{
		packages: packages,
		flights:  flights,
		hotels:   hotels,
		metrics:  m,
	}
}

func (s *PackageService) ListActive(ctx context.Context) ([]entities.TravelPackage, error) {
	return s.list(s.packages.FindActive(ctx))
}

// Get returns nil when no package has the id.
func (s *PackageService) Get(ctx context.Context, id string) (*entities.TravelPackage, error) {
	pkg, err := s.packages.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.metrics, "get package", err)
	}
	return pkg, nil
}

func (s *PackageService) ListByDestination(ctx context.Context, destination string) ([]entities.TravelPackage, error) {
	return s.list(s.packages.FindByDestinationContaining(ctx, destination))
}

func (s *PackageService) ListByType(ctx context.Context, packageType constants.PackageType) ([]entities.TravelPackage, error) {
	return s.list(s.packages.FindByType(ctx, packageType))
}

// ListByPriceRange filters on the discounted price, bounds inclusive.
func (s *PackageService) ListByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]entities.TravelPackage, error) {
	return s.list(s.packages.FindByPriceRange(ctx, minPrice, maxPrice))
}

func (s *PackageService) ListByDuration(ctx context.Context, minDuration, maxDuration int) ([]entities.TravelPackage, error) {
	return s.list(s.packages.FindByDurationRange(ctx, minDuration, maxDuration))
}

// Search matches package names and falls back to destinations.
func (s *PackageService) Search(ctx context.Context, query string) ([]entities.TravelPackage, error) {
	results, err := s.packages.FindByNameContaining(ctx, query)
	if err != nil {
		return nil, storeError(s.metrics, "search packages", err)
	}
	if len(results) > 0 {
		return results, nil
	}
	return s.list(s.packages.FindByDestinationContaining(ctx, query))
}

func (s *PackageService) Create(ctx context.Context, pkg *entities.TravelPackage) (*entities.TravelPackage, error) {
	pkg.ID = ""
	return s.save(ctx, pkg)
}

// Update replaces the package with id, creating it if absent. Prices are
// recomputed from the referenced flights and hotels.
func (s *PackageService) Update(ctx context.Context, id string, pkg *entities.TravelPackage) (*entities.TravelPackage, error) {
	pkg.ID = id
	return s.save(ctx, pkg)
}

func (s *PackageService) Delete(ctx context.Context, id string) error {
	if err := s.packages.Delete(ctx, id); err != nil {
		return storeError(s.metrics, "delete package", err)
	}
	return nil
}

func (s *PackageService) save(ctx context.Context, pkg *entities.TravelPackage) (*entities.TravelPackage, error) {
	if err := s.CalculatePackagePrice(ctx, pkg); err != nil {
		return nil, err
	}
	if err := s.packages.Save(ctx, pkg); err != nil {
		return nil, storeError(s.metrics, "save package", err)
	}
	return pkg, nil
}

// CalculatePackagePrice sets originalPrice to the sum of the referenced
// flight fares, hotel nights and activity fees, then applies the package
// discount. References that no longer resolve are skipped.
func (s *PackageService) CalculatePackagePrice(ctx context.Context, pkg *entities.TravelPackage) error {
	total := 0.0

	for _, id := range pkg.FlightIDs {
		flight, err := s.flights.FindByID(ctx, id)
		if err != nil {
			return storeError(s.metrics, "price package flight", err)
		}
		if flight != nil {
			total += flight.Price
		}
	}

	for _, id := range pkg.HotelIDs {
		hotel, err := s.hotels.FindByID(ctx, id)
		if err != nil {
			return storeError(s.metrics, "price package hotel", err)
		}
		if hotel != nil {
			total += hotel.PricePerNight * float64(pkg.Duration)
		}
	}

	total += float64(len(pkg.TourActivities)) * constants.ActivityFee

	pkg.OriginalPrice = total
	pkg.DiscountedPrice = applyDiscount(total, pkg.DiscountPercentage)
	s.metrics.PackagesPricedTotal.Inc()
	return nil
}

// GroupDiscount quotes the package for a party of groupSize. Parties at or
// above the package minimum get the group discount stacked on top; the
// returned copy is never persisted. Returns nil when the package is unknown.
func (s *PackageService) GroupDiscount(ctx context.Context, id string, groupSize int) (*entities.TravelPackage, error) {
	pkg, err := s.Get(ctx, id)
	if err != nil || pkg == nil {
		return nil, err
	}

	if groupSize < pkg.MinGroupSize {
		s.metrics.GroupDiscountsTotal.WithLabelValues(strconv.FormatBool(false)).Inc()
		return pkg, nil
	}

	quote := pkg.Clone()
	quote.DiscountedPrice = applyDiscount(pkg.DiscountedPrice, pkg.GroupDiscountPercentage)
	quote.DiscountPercentage = pkg.DiscountPercentage + pkg.GroupDiscountPercentage
	s.metrics.GroupDiscountsTotal.WithLabelValues(strconv.FormatBool(true)).Inc()
	return quote, nil
}

// InitializeMockData seeds the demo catalog when no packages exist.
func (s *PackageService) InitializeMockData(ctx context.Context) error {
	count, err := s.packages.Count(ctx)
	if err != nil {
		return storeError(s.metrics, "count packages", err)
	}
	if count > 0 {
		return nil
	}

	for _, mp := range mockPackages {
		base := 200.0*float64(mp.duration) + constants.ActivityFee*float64(len(mp.activities))
		pkg := &entities.TravelPackage{
			PackageName:             mp.name,
			Description:             fmt.Sprintf("Experience the best of %s with our carefully curated package.", mp.destination),
			Destination:             mp.destination,
			Duration:                mp.duration,
			OriginalPrice:           base,
			DiscountedPrice:         applyDiscount(base, mockDiscountPercentage),
			DiscountPercentage:      mockDiscountPercentage,
			FlightIDs:               []string{},
			HotelIDs:                []string{},
			TourActivities:          append([]string(nil), mp.activities...),
			PackageType:             mp.packageType,
			IsActive:                true,
			ImageURL:                mp.image,
			Highlights:              append([]string(nil), mockHighlights...),
			MinGroupSize:            constants.DefaultMinGroupSize,
			GroupDiscountPercentage: constants.DefaultGroupDiscountPercentage,
		}
		if err := s.packages.Save(ctx, pkg); err != nil {
			return storeError(s.metrics, "seed packages", err)
		}
	}

	logging.Info("Seeded travel package mock data", "count", len(mockPackages))
	return nil
}

func (s *PackageService) list(pkgs []entities.TravelPackage, err error) ([]entities.TravelPackage, error) {
	if err != nil {
		return nil, storeError(s.metrics, "list packages", err)
	}
	return pkgs, nil
}

func applyDiscount(price, percentage float64) float64 {
	return price * (1 - percentage/100)
}
