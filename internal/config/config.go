package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"

	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds all configuration for the application
type Config struct {
	AppEnv string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  []string

	// Store
	StoreDriver   string
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string
	PGHost        string
	PGPort        string
	PGUser        string
	PGPassword    string
	PGDatabase    string
	SQLitePath    string

	// Cache
	CacheDriver     string
	RedisHost       string
	RedisPort       string
	RedisPassword   string
	PopularCacheTTL time.Duration

	// Behaviour
	StatusSimulationInterval time.Duration
	SeedOnStart              bool
	RateLimitRPS             float64
	RateLimitBurst           int
	AdminJWTSecret           string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", 30*time.Second),
		WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", 30*time.Second),
		CORSOrigins:  getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),

		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", StoreMongo)),
		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "makemytrip"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),
		PGHost:        getEnv("PG_HOST", "localhost"),
		PGPort:        getEnv("PG_PORT", "5432"),
		PGUser:        getEnv("PG_USER", "atlas"),
		PGPassword:    getEnv("PG_PASSWORD", ""),
		PGDatabase:    getEnv("PG_DB", "atlas"),
		SQLitePath:    getEnv("SQLITE_PATH", "atlas.db"),

		CacheDriver:     strings.ToLower(getEnv("CACHE_DRIVER", CacheMemory)),
		RedisHost:       getEnv("REDIS_HOST", "localhost"),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		PopularCacheTTL: getEnvAsDuration("POPULAR_CACHE_TTL", time.Minute),

		StatusSimulationInterval: getEnvAsDuration("STATUS_SIMULATION_INTERVAL", 0),
		SeedOnStart:              getEnvAsBool("SEED_ON_START", false),
		RateLimitRPS:             getEnvAsFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst:           getEnvAsInt("RATE_LIMIT_BURST", 40),
		AdminJWTSecret:           getEnv("ADMIN_JWT_SECRET", ""),
	}

	switch cfg.StoreDriver {
	case StoreMongo, StorePostgres, StoreSQLite:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}
	switch cfg.CacheDriver {
	case CacheMemory, CacheRedis:
	default:
		return nil, fmt.Errorf("unsupported CACHE_DRIVER %q", cfg.CacheDriver)
	}

	return cfg, nil
}

// PostgresDSN builds a lib/pq compatible connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsDuration accepts Go duration strings ("90s") or bare seconds ("90").
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
