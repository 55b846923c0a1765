package services

import (
	"context"
	"testing"

	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/models/entities"
)

func seedCatalog(t *testing.T, stores *testStores) (flightID, hotelID string) {
	t.Helper()
	ctx := context.Background()

	flight := &entities.Flight{FlightName: "Air India", From: "Delhi", To: "Goa", Price: 300, AvailableSeats: 10}
	if err := stores.flights.Save(ctx, flight); err != nil {
		t.Fatalf("Failed to save flight: %v", err)
	}
	hotel := &entities.Hotel{HotelName: "Sea View", Location: "Goa", PricePerNight: 100, AvailableRooms: 5}
	if err := stores.hotels.Save(ctx, hotel); err != nil {
		t.Fatalf("Failed to save hotel: %v", err)
	}
	return flight.ID, hotel.ID
}

func newClassicPackage(flightID, hotelID string) *entities.TravelPackage {
	return &entities.TravelPackage{
		ID:                      "client-supplied",
		PackageName:             "Goa Classic",
		Destination:             "Goa",
		Duration:                2,
		OriginalPrice:           1,
		DiscountedPrice:         1,
		DiscountPercentage:      10,
		FlightIDs:               []string{flightID},
		HotelIDs:                []string{hotelID},
		TourActivities:          []string{"Beach", "Cruise", "Market"},
		Highlights:              []string{},
		PackageType:             constants.PackagePreBuilt,
		IsActive:                true,
		MinGroupSize:            5,
		GroupDiscountPercentage: 5,
	}
}

func TestPackageService_Create_PricesFromReferences(t *testing.T) {
	stores := setupStores(t)
	flightID, hotelID := seedCatalog(t, stores)
	svc := NewPackageService(stores.packages, stores.flights, stores.hotels, testMetrics)

	created, err := svc.Create(context.Background(), newClassicPackage(flightID, hotelID))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if created.ID == "" || created.ID == "client-supplied" {
		t.Errorf("Expected a generated ID, got %q", created.ID)
	}
	// 300 flight + 2 nights * 100 + 3 activities * 50
	if !almostEqual(created.OriginalPrice, 650) {
		t.Errorf("Expected original price 650, got %v", created.OriginalPrice)
	}
	if !almostEqual(created.DiscountedPrice, 585) {
		t.Errorf("Expected discounted price 585, got %v", created.DiscountedPrice)
	}

	stored, err := svc.Get(context.Background(), created.ID)
	if err != nil || stored == nil {
		t.Fatalf("Expected stored package, got %v (err %v)", stored, err)
	}
	if !almostEqual(stored.DiscountedPrice, stored.OriginalPrice*(1-stored.DiscountPercentage/100)) {
		t.Errorf("Discounted price %v does not follow from original %v", stored.DiscountedPrice, stored.OriginalPrice)
	}
}

func TestPackageService_CalculatePackagePrice_SkipsMissingReferences(t *testing.T) {
	stores := setupStores(t)
	svc := NewPackageService(stores.packages, stores.flights, stores.hotels, testMetrics)

	pkg := newClassicPackage("gone", "also-gone")
	if err := svc.CalculatePackagePrice(context.Background(), pkg); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !almostEqual(pkg.OriginalPrice, 150) {
		t.Errorf("Expected only activity fees (150), got %v", pkg.OriginalPrice)
	}
	if !almostEqual(pkg.DiscountedPrice, 135) {
		t.Errorf("Expected 135 after 10%% discount, got %v", pkg.DiscountedPrice)
	}
}

func TestPackageService_GroupDiscount(t *testing.T) {
	stores := setupStores(t)
	flightID, hotelID := seedCatalog(t, stores)
	svc := NewPackageService(stores.packages, stores.flights, stores.hotels, testMetrics)
	ctx := context.Background()

	created, err := svc.Create(ctx, newClassicPackage(flightID, hotelID))
	if err != nil {
		t.Fatalf("Failed to create package: %v", err)
	}

	below, err := svc.GroupDiscount(ctx, created.ID, 4)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !almostEqual(below.DiscountedPrice, 585) || !almostEqual(below.DiscountPercentage, 10) {
		t.Errorf("Expected unchanged quote below threshold, got %v / %v%%", below.DiscountedPrice, below.DiscountPercentage)
	}

	quote, err := svc.GroupDiscount(ctx, created.ID, 5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !almostEqual(quote.DiscountedPrice, 555.75) {
		t.Errorf("Expected 555.75 at threshold, got %v", quote.DiscountedPrice)
	}
	if !almostEqual(quote.DiscountPercentage, 15) {
		t.Errorf("Expected combined 15%%, got %v", quote.DiscountPercentage)
	}

	stored, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !almostEqual(stored.DiscountedPrice, 585) {
		t.Errorf("Expected stored package untouched by quote, got %v", stored.DiscountedPrice)
	}

	missing, err := svc.GroupDiscount(ctx, "nope", 10)
	if err != nil || missing != nil {
		t.Errorf("Expected nil for unknown package, got %v (err %v)", missing, err)
	}
}

func TestPackageService_Update_UpsertsAndReprices(t *testing.T) {
	stores := setupStores(t)
	flightID, hotelID := seedCatalog(t, stores)
	svc := NewPackageService(stores.packages, stores.flights, stores.hotels, testMetrics)
	ctx := context.Background()

	pkg := newClassicPackage(flightID, hotelID)
	pkg.DiscountPercentage = 0
	updated, err := svc.Update(ctx, "pkg-new", pkg)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.ID != "pkg-new" {
		t.Errorf("Expected path ID to win, got %q", updated.ID)
	}
	if !almostEqual(updated.DiscountedPrice, 650) {
		t.Errorf("Expected undiscounted 650, got %v", updated.DiscountedPrice)
	}

	count, err := stores.packages.Count(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 package, got %d", count)
	}

	if err := svc.Delete(ctx, "pkg-new"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	gone, err := svc.Get(ctx, "pkg-new")
	if err != nil || gone != nil {
		t.Errorf("Expected package deleted, got %v (err %v)", gone, err)
	}
}

func TestPackageService_InitializeMockData_Idempotent(t *testing.T) {
	stores := setupStores(t)
	svc := NewPackageService(stores.packages, stores.flights, stores.hotels, testMetrics)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := svc.InitializeMockData(ctx); err != nil {
			t.Fatalf("Seed run %d failed: %v", i, err)
		}
	}

	active, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(active) != len(mockPackages) {
		t.Fatalf("Expected %d seeded packages, got %d", len(mockPackages), len(active))
	}

	goa, err := svc.ListByDestination(ctx, "goa")
	if err != nil || len(goa) != 1 {
		t.Fatalf("Expected one Goa package, got %d (err %v)", len(goa), err)
	}
	// 5 days * 200 + 4 activities * 50, less 15%
	if !almostEqual(goa[0].OriginalPrice, 1200) || !almostEqual(goa[0].DiscountedPrice, 1020) {
		t.Errorf("Expected 1200/1020, got %v/%v", goa[0].OriginalPrice, goa[0].DiscountedPrice)
	}

	custom, err := svc.ListByType(ctx, constants.PackageCustomizable)
	if err != nil || len(custom) != 1 || custom[0].Destination != "Himachal Pradesh" {
		t.Errorf("Expected Himachal as the only customizable package, got %+v (err %v)", custom, err)
	}
}

func TestPackageService_Search_FallsBackToDestination(t *testing.T) {
	stores := setupStores(t)
	svc := NewPackageService(stores.packages, stores.flights, stores.hotels, testMetrics)
	ctx := context.Background()

	if err := svc.InitializeMockData(ctx); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}

	byName, err := svc.Search(ctx, "royal")
	if err != nil || len(byName) != 1 || byName[0].Destination != "Rajasthan" {
		t.Errorf("Expected name match on Rajasthan Royal Tour, got %+v (err %v)", byName, err)
	}

	byDestination, err := svc.Search(ctx, "pradesh")
	if err != nil || len(byDestination) != 1 {
		t.Errorf("Expected destination fallback match, got %+v (err %v)", byDestination, err)
	}

	none, err := svc.Search(ctx, "antarctica")
	if err != nil || len(none) != 0 {
		t.Errorf("Expected no matches, got %+v (err %v)", none, err)
	}
}

func TestPackageService_CalculatePackagePrice_Scenario(t *testing.T) {
	stores := setupStores(t)
	ctx := context.Background()

	var flightIDs []string
	for _, price := range []float64{120, 180} {
		flight := &entities.Flight{FlightName: "Leg", From: "DEL", To: "GOI", Price: price}
		if err := stores.flights.Save(ctx, flight); err != nil {
			t.Fatalf("Failed to save flight: %v", err)
		}
		flightIDs = append(flightIDs, flight.ID)
	}
	hotel := &entities.Hotel{HotelName: "Palms", Location: "Goa", PricePerNight: 50}
	if err := stores.hotels.Save(ctx, hotel); err != nil {
		t.Fatalf("Failed to save hotel: %v", err)
	}

	svc := NewPackageService(stores.packages, stores.flights, stores.hotels, testMetrics)
	pkg := &entities.TravelPackage{
		Duration:           5,
		DiscountPercentage: 10,
		FlightIDs:          flightIDs,
		HotelIDs:           []string{hotel.ID},
		TourActivities:     []string{"Snorkelling", "Spice farm"},
	}
	if err := svc.CalculatePackagePrice(ctx, pkg); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !almostEqual(pkg.OriginalPrice, 650) || !almostEqual(pkg.DiscountedPrice, 585) {
		t.Errorf("Expected 650/585, got %v/%v", pkg.OriginalPrice, pkg.DiscountedPrice)
	}
}
