package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Catalog  CatalogConfig
	Scoring  ScoringConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	AllowOrigins   []string
}

type CatalogConfig struct {
	Source           string
	TrainingDataPath string
	CardsPath        string
	OffersPath       string
}

type ScoringConfig struct {
	FeatureSet      string
	OfferTierPolicy string
	RecommendLimit  int
	PersistTraining bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Enabled       bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	recommendLimit, err := getEnvInt("RECOMMEND_LIMIT", 5)
	if err != nil {
		return nil, err
	}
	requestTimeout, err := getEnvDuration("REQUEST_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getEnvDuration("PREDICTION_CACHE_TTL", 10*time.Minute)
	if err != nil {
		return nil, err
	}
	redisEnabled, err := getEnvBool("REDIS_ENABLED", false)
	if err != nil {
		return nil, err
	}
	persistTraining, err := getEnvBool("PERSIST_TRAINING_DATA", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Credit Advisor API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: requestTimeout,
			AllowOrigins:   splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:8080")),
		},
		Catalog: CatalogConfig{
			Source:           strings.ToLower(getEnv("CATALOG_SOURCE", CatalogSourceFile)),
			TrainingDataPath: getEnv("TRAINING_DATA_PATH", "data/training-data.json"),
			CardsPath:        getEnv("CARDS_PATH", "data/credit-cards.json"),
			OffersPath:       getEnv("OFFERS_PATH", "data/offers.json"),
		},
		Scoring: ScoringConfig{
			FeatureSet:      strings.ToLower(getEnv("SCORING_FEATURE_SET", "income")),
			OfferTierPolicy: strings.ToLower(getEnv("OFFER_TIER_POLICY", "legacy")),
			RecommendLimit:  recommendLimit,
			PersistTraining: persistTraining,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "credit_advisor"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Enabled:       redisEnabled,
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			CacheTTL:      cacheTTL,
		},
	}

	switch cfg.Catalog.Source {
	case CatalogSourceFile, CatalogSourcePostgres:
	default:
		return nil, fmt.Errorf("invalid catalog source %q", cfg.Catalog.Source)
	}

	if cfg.Catalog.Source == CatalogSourcePostgres && cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if cfg.Scoring.PersistTraining && cfg.Catalog.Source != CatalogSourcePostgres {
		return nil, errors.New("training data can only be persisted with the postgres catalog source")
	}

	if cfg.Scoring.RecommendLimit <= 0 {
		return nil, errors.New("recommend limit must be greater than 0")
	}

	return cfg, nil
}

// UsesPostgres reports whether any component needs a database connection.
func (c *Config) UsesPostgres() bool {
	return c.Catalog.Source == CatalogSourcePostgres
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
