package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	apperrors "token-auth-backend/internal/errors"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Port        string `mapstructure:"port"`
	Environment string `mapstructure:"environment"`

	DatabaseURL     string        `mapstructure:"database_url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	DatabaseLog     string        `mapstructure:"database_log_level"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	TokenAuth TokenAuthConfig `mapstructure:"token_auth"`

	UsersSeedFile string `mapstructure:"users_seed_file"`
}

// TokenAuthConfig controls token issuance
type TokenAuthConfig struct {
	// OnePerUserDefault is applied when an issuance request omits one_per_user
	OnePerUserDefault bool `mapstructure:"one_per_user_default"`
	// AtomicOnePerUser runs the existence check and the insert in one
	// transaction holding a lock on the user row
	AtomicOnePerUser bool `mapstructure:"atomic_one_per_user"`
	// MaxGenerateAttempts bounds retries when a generated token collides
	MaxGenerateAttempts int `mapstructure:"max_generate_attempts"`
}

// Load reads configuration from an optional config file, a .env file and the
// environment. Environment variables win over the file, the file over defaults.
func Load(configPath string) (*Config, error) {
	// .env is optional; a missing file is not an error
	_ = godotenv.Load()

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// An explicit path that does not exist is still a missing file
			if configPath == "" || !os.IsNotExist(err) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix("TOKEN_AUTH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Conventional variables used by container platforms
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.DatabaseURL = dsn
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks required values and fills in fallbacks for programmatic construction
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return apperrors.ErrDatabaseURLMissing
	}
	if c.TokenAuth.MaxGenerateAttempts < 0 {
		return apperrors.ErrInvalidGenerateTries
	}
	if c.TokenAuth.MaxGenerateAttempts == 0 {
		c.TokenAuth.MaxGenerateAttempts = 3
	}
	if c.Port == "" {
		c.Port = "8080"
	}
	return nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("environment", "development")
	v.SetDefault("database_url", "")
	v.SetDefault("max_open_conns", 20)
	v.SetDefault("max_idle_conns", 10)
	v.SetDefault("conn_max_lifetime", 30*time.Minute)
	v.SetDefault("database_log_level", "error")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("token_auth.one_per_user_default", true)
	v.SetDefault("token_auth.atomic_one_per_user", true)
	v.SetDefault("token_auth.max_generate_attempts", 3)
	v.SetDefault("users_seed_file", "")
}
