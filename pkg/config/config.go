package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Artifacts ArtifactsConfig
	Catalog   CatalogConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
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
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type AuthConfig struct {
	JWTSecret string
	// AdminPasswordHash is a bcrypt hash; plaintext credentials never touch
	// the environment.
	AdminUsername     string
	AdminPasswordHash string
}

type ArtifactsConfig struct {
	ModelPath  string
	CodecsPath string
}

type CatalogConfig struct {
	// Source selects the snapshot provider: "postgres" or "csv".
	Source   string
	CSVPath  string
	CacheTTL int // seconds; 0 disables the redis snapshot cache
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	cacheTTL, err := strconv.Atoi(getEnv("CATALOG_CACHE_TTL", "300"))
	if err != nil {
		return nil, errors.New("invalid catalog cache ttl")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "VPN Advisor API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "vpn_advisor"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", ""),
			AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Artifacts: ArtifactsConfig{
			ModelPath:  getEnv("MODEL_PATH", "models/model.gob"),
			CodecsPath: getEnv("CODECS_PATH", "models/codecs.json"),
		},
		Catalog: CatalogConfig{
			Source:   getEnv("CATALOG_SOURCE", "postgres"),
			CSVPath:  getEnv("CATALOG_CSV_PATH", "data/cleaned_vpn_data.csv"),
			CacheTTL: cacheTTL,
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Auth.AdminPasswordHash == "" {
		return nil, errors.New("missing admin password hash")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if cfg.Catalog.Source != "postgres" && cfg.Catalog.Source != "csv" {
		return nil, errors.New("catalog source must be postgres or csv")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
