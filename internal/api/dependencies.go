package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travelbook/atlas/internal/auth"
	"travelbook/atlas/internal/common"
	"travelbook/atlas/internal/config"
	"travelbook/atlas/internal/db"
	"travelbook/atlas/internal/db/repositories"
	"travelbook/atlas/internal/logging"
	"travelbook/atlas/internal/metrics"
	"travelbook/atlas/internal/services"

	"github.com/jmoiron/sqlx"
	"go.mongodb.org/mongo-driver/mongo"
	gormlib "gorm.io/gorm"
)

// HealthCheck reports whether a backing service is reachable.
type HealthCheck func(ctx context.Context) error

type Repositories struct {
	Flights      repositories.FlightRepository
	Hotels       repositories.HotelRepository
	FlightStatus repositories.FlightStatusRepository
	Packages     repositories.TravelPackageRepository
	History      repositories.SearchHistoryRepository
}

type Services struct {
	Search       *services.SearchService
	History      *services.HistoryService
	FlightStatus *services.FlightStatusService
	Packages     *services.PackageService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Cache    common.CacheInterface
	Metrics  *metrics.MetricsRegistry
	Signer   *auth.TokenSigner
	Checks   map[string]HealthCheck

	closers []func() error
}

func NewMongoRepositories(database *mongo.Database) *Repositories {
	return &Repositories{
		Flights:      repositories.NewMongoFlightRepository(database),
		Hotels:       repositories.NewMongoHotelRepository(database),
		FlightStatus: repositories.NewMongoFlightStatusRepository(database),
		Packages:     repositories.NewMongoTravelPackageRepository(database),
		History:      repositories.NewMongoSearchHistoryRepository(database),
	}
}

func NewGormRepositories(database *gormlib.DB) *Repositories {
	return &Repositories{
		Flights:      repositories.NewGormFlightRepository(database),
		Hotels:       repositories.NewGormHotelRepository(database),
		FlightStatus: repositories.NewGormFlightStatusRepository(database),
		Packages:     repositories.NewGormTravelPackageRepository(database),
		History:      repositories.NewGormSearchHistoryRepository(database),
	}
}

// NewDependencies wires services on top of already opened stores.
func NewDependencies(repos *Repositories, cache common.CacheInterface, cfg *config.Config, rnd common.RandomSource) *Dependencies {
	m := metrics.NewMetricsRegistry()

	deps := &Dependencies{
		Repo: repos,
		Services: &Services{
			Search:       services.NewSearchService(repos.Flights, repos.Hotels, repos.History, cache, cfg.PopularCacheTTL, m),
			History:      services.NewHistoryService(repos.History, cache, m),
			FlightStatus: services.NewFlightStatusService(repos.FlightStatus, rnd, m),
			Packages:     services.NewPackageService(repos.Packages, repos.Flights, repos.Hotels, m),
		},
		Cache:   cache,
		Metrics: m,
		Checks: map[string]HealthCheck{
			"cache": cache.Ping,
		},
	}

	if cfg.AdminJWTSecret != "" {
		deps.Signer = auth.NewTokenSigner([]byte(cfg.AdminJWTSecret))
	}

	return deps
}

// InitDependencies opens the configured store and cache and wires services.
func InitDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	var (
		repos   *Repositories
		checks  = map[string]HealthCheck{}
		closers []func() error
	)

	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, database, err := db.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureIndexes(ctx, database); err != nil {
			logging.Warn("Failed to ensure mongo indexes", "error", err)
		}
		repos = NewMongoRepositories(database)
		checks["mongo"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }
		closers = append(closers, func() error { return client.Disconnect(context.Background()) })

	case config.StorePostgres:
		pool, err := db.InitPostgres(cfg.PostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		orm, err := db.InitPostgresORM(pool)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(orm); err != nil {
			return nil, err
		}
		repos = NewGormRepositories(orm)
		checks["postgres"] = sqlPing(pool)
		closers = append(closers, pool.Close)

	case config.StoreSQLite:
		orm, err := db.InitSQLiteORM(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(orm); err != nil {
			return nil, err
		}
		repos = NewGormRepositories(orm)
		sqlDB, err := orm.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlite handle: %w", err)
		}
		checks["sqlite"] = sqlDB.PingContext
		closers = append(closers, sqlDB.Close)

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}

	var cache common.CacheInterface
	if cfg.CacheDriver == config.CacheRedis {
		redisCache, err := common.NewRedisCacheService(ctx, cfg.RedisAddr(), cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		cache = redisCache
	} else {
		cache = common.NewCacheService(cfg.PopularCacheTTL, 10*time.Minute)
	}
	closers = append(closers, cache.Close)

	deps := NewDependencies(repos, cache, cfg, common.NewLockedRand(uint64(time.Now().UnixNano())))
	for name, check := range checks {
		deps.Checks[name] = check
	}
	deps.closers = closers

	logging.Info("Dependencies initialized", "store", cfg.StoreDriver, "cache", cfg.CacheDriver)
	return deps, nil
}

func sqlPing(pool *sqlx.DB) HealthCheck {
	return func(ctx context.Context) error {
		return pool.PingContext(ctx)
	}
}

// Close releases store and cache connections in reverse order of opening.
func (d *Dependencies) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
