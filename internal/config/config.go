package config

import (
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Centra CentraConfig
	Cache  CacheConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

// CentraConfig holds the catalog API connection settings and the page sizes
// used by the paginated queries.
type CentraConfig struct {
	Endpoint     string
	Token        string
	ProductLimit int
	VariantLimit int
	OrderLimit   int
	HTTPTimeout  time.Duration
}

type CacheConfig struct {
	Enabled          bool
	RedisURL         string
	RedisHost        string
	RedisPort        string
	RedisPassword    string
	RedisDB          int
	ReportTTLSeconds int
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 120)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("CENTRA_API_ENDPOINT", "")
		viper.SetDefault("CENTRA_API_TOKEN", "")
		viper.SetDefault("CENTRA_PRODUCT_LIMIT", 200)
		viper.SetDefault("CENTRA_VARIANT_LIMIT", 100)
		viper.SetDefault("CENTRA_ORDER_LIMIT", 100)
		viper.SetDefault("CENTRA_HTTP_TIMEOUT_SECONDS", 60)
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_REPORT_TTL_SECONDS", 300)

		// Read from environment variables
		viper.AutomaticEnv()

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Centra: CentraConfig{
				Endpoint:     viper.GetString("CENTRA_API_ENDPOINT"),
				Token:        viper.GetString("CENTRA_API_TOKEN"),
				ProductLimit: viper.GetInt("CENTRA_PRODUCT_LIMIT"),
				VariantLimit: viper.GetInt("CENTRA_VARIANT_LIMIT"),
				OrderLimit:   viper.GetInt("CENTRA_ORDER_LIMIT"),
				HTTPTimeout:  time.Duration(viper.GetInt("CENTRA_HTTP_TIMEOUT_SECONDS")) * time.Second,
			},
			Cache: CacheConfig{
				Enabled:          viper.GetBool("CACHE_ENABLED"),
				RedisURL:         viper.GetString("REDIS_URL"),
				RedisHost:        viper.GetString("REDIS_HOST"),
				RedisPort:        viper.GetString("REDIS_PORT"),
				RedisPassword:    viper.GetString("REDIS_PASSWORD"),
				RedisDB:          viper.GetInt("REDIS_DB"),
				ReportTTLSeconds: viper.GetInt("CACHE_REPORT_TTL_SECONDS"),
			},
		}
	})

	return instance
}
