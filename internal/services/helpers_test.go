package services

import (
	"testing"
	"time"

	"travelbook/atlas/internal/common"
	"travelbook/atlas/internal/db"
	"travelbook/atlas/internal/db/repositories"
	"travelbook/atlas/internal/metrics"

	"gorm.io/gorm"
)

type testStores struct {
	flights  *repositories.GormFlightRepository
	hotels   *repositories.GormHotelRepository
	statuses *repositories.GormFlightStatusRepository
	packages *repositories.GormTravelPackageRepository
	history  *repositories.GormSearchHistoryRepository
}

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
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
	return conn
}

func setupStores(t *testing.T) *testStores {
	conn := setupTestDB(t)
	return &testStores{
		flights:  repositories.NewGormFlightRepository(conn),
		hotels:   repositories.NewGormHotelRepository(conn),
		statuses: repositories.NewGormFlightStatusRepository(conn),
		packages: repositories.NewGormTravelPackageRepository(conn),
		history:  repositories.NewGormSearchHistoryRepository(conn),
	}
}

func newTestCache() *common.CacheService {
	return common.NewCacheService(time.Minute, time.Minute)
}

// scriptedRand replays fixed values, repeating the last one when exhausted.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

var testMetrics = metrics.NewMetricsRegistry()

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

// fixedClock returns a clock that advances by step on every call.
func fixedClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
