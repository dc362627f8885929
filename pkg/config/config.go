package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Data     DataConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Auth     AuthConfig
	Chart    ChartConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

// DataConfig selects where the customer/product tables come from.
// Source "csv" (default) reads the two files below; "postgres" reads the
// customers/products tables.
type DataConfig struct {
	Source        string
	CustomersFile string
	ProductsFile  string
	ArtifactFile  string
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
	CacheTTLSecs  int
}

type JWTConfig struct {
	SecretKey string
}

type AuthConfig struct {
	// bcrypt hash of the API key exchanged for a JWT at /auth/token
	APIKeyHash string
}

type ChartConfig struct {
	Normalize bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("invalid redis database")
		}
		redisDB = n
	}

	cacheTTL := 300
	if v := os.Getenv("REDIS_CACHE_TTL_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("invalid redis cache ttl")
		}
		cacheTTL = n
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Insurance Recommender API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Data: DataConfig{
			Source:        getEnv("DATA_SOURCE", "csv"),
			CustomersFile: getEnv("DATA_CUSTOMERS_FILE", "data/customers.csv"),
			ProductsFile:  getEnv("DATA_PRODUCTS_FILE", "data/products.csv"),
			ArtifactFile:  getEnv("DATA_ARTIFACT_FILE", ""),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "insure_advisor"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Enabled:       getEnv("REDIS_ENABLED", "false") == "true",
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			CacheTTLSecs:  cacheTTL,
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Auth: AuthConfig{
			APIKeyHash: getEnv("AUTH_API_KEY_HASH", ""),
		},
		Chart: ChartConfig{
			Normalize: getEnv("CHART_NORMALIZE", "false") == "true",
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Auth.APIKeyHash == "" {
		return nil, errors.New("missing api key hash")
	}

	if cfg.Data.Source != "csv" && cfg.Data.Source != "postgres" {
		return nil, errors.New("invalid data source, must be csv or postgres")
	}

	if cfg.Data.Source == "postgres" && cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
