package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config contiene la configuración de la aplicación
type Config struct {
	DatabaseURL       string        `yaml:"database_url" validate:"required"`
	Port              int           `yaml:"port" validate:"min=1,max=65535"`
	Env               string        `yaml:"env" validate:"oneof=dev prod"`
	LogLevel          string        `yaml:"log_level" validate:"oneof=debug info warn error"`
	MemcachedHost     string        `yaml:"memcached_host"`
	CacheTTL          time.Duration `yaml:"cache_ttl" validate:"gt=0"`
	RabbitMQURL       string        `yaml:"rabbitmq_url"`
	RabbitMQQueue     string        `yaml:"rabbitmq_queue" validate:"required"`
	RateLimitRPS      int           `yaml:"rate_limit_rps" validate:"min=0"`
	RateLimitBurst    int           `yaml:"rate_limit_burst" validate:"min=1"`
	KeepAliveSchedule string        `yaml:"db_keepalive_schedule"`
}

const (
	defaultPort              = 3000
	defaultEnv               = "dev"
	defaultLogLevel          = "info"
	defaultCacheTTL          = 5 * time.Minute
	defaultRabbitMQQueue     = "starwars_events"
	defaultRateLimitBurst    = 20
	defaultKeepAliveSchedule = "@every 5m"
)

var validate = validator.New()

// LoadConfig carga la configuración. Orden: valores por defecto, archivo YAML
// (si CONFIG_FILE está definido), variables de entorno (.env incluido).
func LoadConfig() (*Config, error) {
	// Si no hay .env se usan solo las variables del entorno
	_ = godotenv.Load()

	cfg := &Config{
		Port:              defaultPort,
		Env:               defaultEnv,
		LogLevel:          defaultLogLevel,
		CacheTTL:          defaultCacheTTL,
		RabbitMQQueue:     defaultRabbitMQQueue,
		RateLimitBurst:    defaultRateLimitBurst,
		KeepAliveSchedule: defaultKeepAliveSchedule,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Addr devuelve la dirección donde escucha el servidor
func (c *Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

func (c *Config) IsProduction() bool {
	return c.Env == "prod"
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.DatabaseURL = getEnv("DB_CONNECTION_STRING", cfg.DatabaseURL)
	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.MemcachedHost = getEnv("MEMCACHED_HOST", cfg.MemcachedHost)
	cfg.RabbitMQURL = getEnv("RABBITMQ_URL", cfg.RabbitMQURL)
	cfg.RabbitMQQueue = getEnv("RABBITMQ_QUEUE", cfg.RabbitMQQueue)
	cfg.KeepAliveSchedule = getEnv("DB_KEEPALIVE_SCHEDULE", cfg.KeepAliveSchedule)

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid CACHE_TTL %q: %w", v, err)
		}
		cfg.CacheTTL = ttl
	}

	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_RPS %q: %w", v, err)
		}
		cfg.RateLimitRPS = rps
	}

	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_BURST %q: %w", v, err)
		}
		cfg.RateLimitBurst = burst
	}

	return nil
}

// getEnv obtiene una variable de entorno o retorna un valor por defecto
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
