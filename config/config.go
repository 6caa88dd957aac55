package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"db"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Search SearchConfig `mapstructure:"search"`

	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DBConfig holds PostgreSQL connection settings
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	URL      string `mapstructure:"url"`
}

// AuthConfig holds token validation settings
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

// SearchConfig holds search and suggestion tuning knobs
type SearchConfig struct {
	Timeout  time.Duration `mapstructure:"timeout"`
	Debounce time.Duration `mapstructure:"debounce"`
}

// LoadConfig reads configuration from .env (if present) and the environment.
// Environment variables use the APP_ prefix with underscores, e.g.
// APP_DB_HOST, APP_REDIS_ADDR, APP_AUTH_JWT_SECRET.
func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.name", "forkcast")
	v.SetDefault("db.ssl_mode", "disable")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("search.timeout", 8*time.Second)
	v.SetDefault("search.debounce", 275*time.Millisecond)

	v.SetDefault("log_level", "info")
}

// Validate checks that the configuration is complete enough to start
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.DB.Host == "" || c.DB.Name == "" {
		return fmt.Errorf("database host and name are required")
	}
	if c.Redis.Addr == "" && c.Redis.URL == "" {
		return fmt.Errorf("redis address is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("jwt secret is required")
	}
	if c.Search.Timeout <= 0 {
		return fmt.Errorf("search timeout must be positive")
	}
	if c.Search.Debounce <= 0 {
		return fmt.Errorf("search debounce must be positive")
	}
	return nil
}

// DSN builds the PostgreSQL connection string
func (c *DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}
