package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"travelbook/atlas/internal/api"
	"travelbook/atlas/internal/auth"
	"travelbook/atlas/internal/common"
	"travelbook/atlas/internal/config"
	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/db"
	"travelbook/atlas/internal/logging"
	"travelbook/atlas/internal/models/dtos"
	"travelbook/atlas/internal/models/entities"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupRouter(t *testing.T, cfg *config.Config) (http.Handler, *api.Dependencies) {
	t.Helper()

	conn, err := db.InitSQLiteORM(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	cache := common.NewCacheService(time.Minute, time.Minute)
	deps := api.NewDependencies(api.NewGormRepositories(conn), cache, cfg, common.NewLockedRand(7))
	return RegisterRoutes(deps, cfg, time.Now()), deps
}

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:          "test",
		CORSOrigins:     []string{"*"},
		PopularCacheTTL: time.Minute,
	}
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return v
}

func TestPackages_NotFoundHasEmptyBody(t *testing.T) {
	h, _ := setupRouter(t, testConfig())

	rr := do(t, h, http.MethodGet, "/api/packages/missing", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %q", rr.Body.String())
	}

	rr = do(t, h, http.MethodGet, "/api/packages/missing/group-discount?groupSize=3", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for unknown package quote, got %d", rr.Code)
	}
}

func TestPackages_BadQueryParameters(t *testing.T) {
	h, _ := setupRouter(t, testConfig())

	for _, target := range []string{
		"/api/packages/price-range?minPrice=abc&maxPrice=10",
		"/api/packages/price-range?minPrice=1",
		"/api/packages/duration?minDuration=2&maxDuration=x",
		"/api/packages/search",
		"/api/packages/p1/group-discount",
	} {
		rr := do(t, h, http.MethodGet, target, "")
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", target, rr.Code)
			continue
		}
		resp := decode[dtos.APIResponse](t, rr)
		if resp.Status != string(constants.APIStatusError) {
			t.Errorf("%s: expected error envelope, got %+v", target, resp)
		}
	}
}

func TestPackages_Lifecycle(t *testing.T) {
	h, _ := setupRouter(t, testConfig())

	rr := do(t, h, http.MethodPost, "/api/packages/initialize-mock-data", "")
	if rr.Code != http.StatusOK || rr.Body.String() != constants.MsgTravelPackagesSeeded {
		t.Fatalf("Expected seed confirmation, got %d %q", rr.Code, rr.Body.String())
	}

	rr = do(t, h, http.MethodGet, "/api/packages", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if list := decode[[]entities.TravelPackage](t, rr); len(list) != 4 {
		t.Errorf("Expected 4 seeded packages, got %d", len(list))
	}

	body := `{"packageName":"Goa Classic","destination":"Goa","duration":2,"discountPercentage":10,
		"tourActivities":["Beach","Cruise","Market"],"packageType":"PRE_BUILT","originalPrice":1}`
	rr = do(t, h, http.MethodPost, "/api/packages", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	created := decode[entities.TravelPackage](t, rr)
	if created.OriginalPrice != 150 || created.DiscountedPrice != 135 {
		t.Errorf("Expected server side price 150/135, got %v/%v", created.OriginalPrice, created.DiscountedPrice)
	}
	if created.MinGroupSize != constants.DefaultMinGroupSize || !created.IsActive {
		t.Errorf("Expected catalog defaults, got %+v", created)
	}
	if created.FlightIDs == nil || created.Highlights == nil {
		t.Error("Expected empty lists rather than null")
	}

	rr = do(t, h, http.MethodGet, "/api/packages/price-range?minPrice=135&maxPrice=135", "")
	if list := decode[[]entities.TravelPackage](t, rr); len(list) != 1 || list[0].ID != created.ID {
		t.Errorf("Expected inclusive price match on the new package, got %+v", list)
	}

	rr = do(t, h, http.MethodGet, "/api/packages/"+created.ID+"/group-discount?groupSize=5", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	quote := decode[entities.TravelPackage](t, rr)
	if quote.DiscountPercentage != 15 {
		t.Errorf("Expected stacked 15%% discount, got %v", quote.DiscountPercentage)
	}

	rr = do(t, h, http.MethodPost, "/api/packages", `{"destination":"Goa"}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for invalid body, got %d", rr.Code)
	}

	rr = do(t, h, http.MethodDelete, "/api/packages/"+created.ID, "")
	if rr.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rr.Code)
	}
	rr = do(t, h, http.MethodGet, "/api/packages/"+created.ID, "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 after delete, got %d", rr.Code)
	}
}

func TestSearchHistory_Endpoints(t *testing.T) {
	h, _ := setupRouter(t, testConfig())

	rr := do(t, h, http.MethodPost, "/api/search/history?userId=u1&searchType=FLIGHT&from=Delhi", "")
	if rr.Code != http.StatusOK || rr.Body.String() != constants.MsgHistorySaved {
		t.Fatalf("Expected save confirmation, got %d %q", rr.Code, rr.Body.String())
	}

	rr = do(t, h, http.MethodPost, "/api/search/history?userId=u1&searchType=TRAIN", "")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown search type, got %d", rr.Code)
	}
	rr = do(t, h, http.MethodPost, "/api/search/history?searchType=FLIGHT", "")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 without userId, got %d", rr.Code)
	}

	rr = do(t, h, http.MethodGet, "/api/search/history/u1", "")
	history := decode[[]entities.SearchHistory](t, rr)
	if len(history) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(history))
	}
	if history[0].SearchQuery != "Delhi to null" || history[0].Passengers != 1 {
		t.Errorf("Expected query %q with 1 passenger, got %q/%d", "Delhi to null", history[0].SearchQuery, history[0].Passengers)
	}

	rr = do(t, h, http.MethodGet, "/api/search/history/u1/HOTEL", "")
	if list := decode[[]entities.SearchHistory](t, rr); len(list) != 0 {
		t.Errorf("Expected no hotel searches, got %d", len(list))
	}

	rr = do(t, h, http.MethodGet, "/api/search/popular-destinations", "")
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("Expected no destinations before a destination search, got %q", rr.Body.String())
	}
	rr = do(t, h, http.MethodPost, "/api/search/history?userId=u1&searchType=FLIGHT&to=Goa", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected save, got %d", rr.Code)
	}
	rr = do(t, h, http.MethodGet, "/api/search/popular-destinations", "")
	if popular := decode[[]string](t, rr); len(popular) != 1 || popular[0] != "Goa" {
		t.Errorf("Expected [Goa] right after the save, got %v", popular)
	}

	rr = do(t, h, http.MethodDelete, "/api/search/history/u1", "")
	if rr.Code != http.StatusOK || rr.Body.String() != constants.MsgHistoryCleared {
		t.Errorf("Expected clear confirmation, got %d %q", rr.Code, rr.Body.String())
	}

	rr = do(t, h, http.MethodGet, "/api/search/popular-destinations", "")
	if rr.Code != http.StatusOK || strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Errorf("Expected empty JSON array, got %d %q", rr.Code, rr.Body.String())
	}

	rr = do(t, h, http.MethodGet, "/api/search/suggestions/locations", "")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 without query, got %d", rr.Code)
	}
	rr = do(t, h, http.MethodGet, "/api/search/flights?minSeats=many", "")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for malformed minSeats, got %d", rr.Code)
	}
}

func TestFlightStatus_Endpoints(t *testing.T) {
	h, _ := setupRouter(t, testConfig())

	rr := do(t, h, http.MethodPost, "/api/flight-status/initialize-mock-data", "")
	if rr.Code != http.StatusOK || rr.Body.String() != constants.MsgFlightStatusSeeded {
		t.Fatalf("Expected seed confirmation, got %d %q", rr.Code, rr.Body.String())
	}

	rr = do(t, h, http.MethodGet, "/api/flight-status/AI101", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	status := decode[entities.FlightStatus](t, rr)
	if status.Airline != "Air India" || status.Status != constants.FlightOnTime {
		t.Errorf("Expected Air India ON_TIME, got %+v", status)
	}

	rr = do(t, h, http.MethodGet, "/api/flight-status/XX999", "")
	if rr.Code != http.StatusNotFound || rr.Body.Len() != 0 {
		t.Errorf("Expected empty 404, got %d %q", rr.Code, rr.Body.String())
	}
	rr = do(t, h, http.MethodPost, "/api/flight-status/simulate/XX999", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 simulating unknown flight, got %d", rr.Code)
	}

	rr = do(t, h, http.MethodGet, "/api/flight-status/route?origin=DEL", "")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 without destination, got %d", rr.Code)
	}
	rr = do(t, h, http.MethodGet, "/api/flight-status/route?origin=DEL&destination=BOM", "")
	if list := decode[[]entities.FlightStatus](t, rr); len(list) != 1 {
		t.Errorf("Expected 1 flight DEL-BOM, got %d", len(list))
	}

	rr = do(t, h, http.MethodPost, "/api/flight-status", `{"flightNumber":"QP100","airline":"Akasa","status":"DELAYED","delayMinutes":30}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	created := decode[entities.FlightStatus](t, rr)
	if created.Status != constants.FlightOnTime || created.DelayMinutes != 0 {
		t.Errorf("Expected created record ON_TIME, got %+v", created)
	}

	rr = do(t, h, http.MethodPut, "/api/flight-status/"+created.ID, `{"flightNumber":"QP100","airline":"Akasa","status":"CANCELLED"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if updated := decode[entities.FlightStatus](t, rr); updated.ID != created.ID || updated.Status != constants.FlightCancelled {
		t.Errorf("Expected CANCELLED on the same record, got %+v", updated)
	}

	rr = do(t, h, http.MethodPut, "/api/flight-status/"+created.ID, `{"flightNumber":"QP100","status":"LOST"}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown status, got %d", rr.Code)
	}

	rr = do(t, h, http.MethodDelete, "/api/flight-status/"+created.ID, "")
	if rr.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rr.Code)
	}

	rr = do(t, h, http.MethodPost, "/api/flight-status/simulate-all", "")
	if list := decode[[]entities.FlightStatus](t, rr); len(list) != 5 {
		t.Errorf("Expected 5 flights after bulk simulation, got %d", len(list))
	}
}

func TestAdminRoutes_RequireOperatorToken(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logging.SetLogger(zap.New(core).Sugar())
	t.Cleanup(func() { logging.SetLogger(nil) })

	cfg := testConfig()
	cfg.AdminJWTSecret = "test-secret"
	h, deps := setupRouter(t, cfg)

	rr := do(t, h, http.MethodPost, "/api/flight-status/initialize-mock-data", "")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("Expected status 401 without token, got %d", rr.Code)
	}

	forged, err := auth.NewTokenSigner([]byte("other-secret")).Issue("ops", time.Hour)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/packages/initialize-mock-data", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 for foreign signature, got %d", rr.Code)
	}

	token, err := deps.Signer.Issue("ops", time.Hour)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	req = httptest.NewRequest(http.MethodPost, "/api/packages/initialize-mock-data", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200 with operator token, got %d", rr.Code)
	}
	seeded := logs.FilterMessage("Seeding travel packages").All()
	if len(seeded) != 1 || seeded[0].ContextMap()["operator"] != "ops" {
		t.Errorf("Expected seed logged for operator ops, got %+v", seeded)
	}

	// reads stay public
	rr = do(t, h, http.MethodGet, "/api/packages", "")
	if rr.Code != http.StatusOK {
		t.Errorf("Expected public read, got %d", rr.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	h, _ := setupRouter(t, testConfig())

	rr := do(t, h, http.MethodGet, "/healthCheck", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	resp := decode[entities.HealthCheckResponse](t, rr)
	if resp.Status != "ok" || resp.Services["cache"].Status != "ok" {
		t.Errorf("Expected healthy cache, got %+v", resp)
	}
}
