// Package command provides CLI command definitions for the token-auth binary.
//
// It uses urfave/cli/v2; every command loads configuration through
// internal/config and logs through internal/logger.
package command

import (
	"fmt"

	"token-auth-backend/internal/config"
	"token-auth-backend/internal/database"
	"token-auth-backend/internal/logger"

	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

// Build information, set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

// openDatabase is swapped out in tests
var openDatabase = func(cfg *config.Config, migrate bool) (*gorm.DB, error) {
	return database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel:        database.ParseLogLevel(cfg.DatabaseLog),
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		SkipMigrate:     !migrate,
	})
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "token-auth",
		Usage:   "Issue and validate opaque bearer tokens",
		Version: fmt.Sprintf("%s (commit: %s)", Version, Commit),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ServeCommand(),
			MigrateCommand(),
			SeedCommand(),
			TokenCommand(),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML config file",
			EnvVars: []string{"TOKEN_AUTH_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Override the configured log level",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Override the configured log format: text, json",
		},
	}
}

// loadConfig reads configuration and applies it to the shared logger
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if format := c.String("log-format"); format != "" {
		cfg.LogFormat = format
	}
	if err := logger.Configure(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: c.App.ErrWriter}); err != nil {
		return nil, fmt.Errorf("configure logger: %w", err)
	}
	return cfg, nil
}
