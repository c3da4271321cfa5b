// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Addr defines the server's listening address (ip:port).
	Addr string `json:"addr"`

	// DatabaseDSN holds the database connection string for the application.
	DatabaseDSN string `json:"database_dsn"`

	// JWTSecret signs session tokens. The server refuses to start without it.
	JWTSecret string `json:"-"`

	// TokenTTL is the session token lifetime.
	TokenTTL time.Duration `json:"-"`

	// DayBoundaryOffset shifts the calendar-day boundary used for daily
	// calorie aggregation away from UTC midnight. The deployed system has
	// always run with +2h.
	DayBoundaryOffset time.Duration `json:"-"`

	// CORSOrigin is the allowed origin of the dashboard SPA.
	CORSOrigin string `json:"cors_origin"`

	// Config is the path to the Config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Addr, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct containing
// the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Load a local .env if present so development secrets need no export.
	_ = godotenv.Load()

	options.TokenTTL = 24 * time.Hour
	options.DayBoundaryOffset = 2 * time.Hour
	options.CORSOrigin = "*"

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Addr = serverAddress
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		options.JWTSecret = secret
	}
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			options.TokenTTL = d
		}
	}
	if offset := os.Getenv("DAY_BOUNDARY_OFFSET"); offset != "" {
		if d, err := time.ParseDuration(offset); err == nil {
			options.DayBoundaryOffset = d
		}
	}
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		options.CORSOrigin = origin
	}

	return options
}
