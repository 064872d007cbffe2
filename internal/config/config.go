// Package config reads the backend configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gigbook/backend/internal/forecast"
)

// Config holds the application configuration.
type Config struct {
	APIURL    *url.URL // Public base URL of the API, used for links
	Port      string
	DataDir   string // Directory for the SQLite database
	Database  Database
	JWTSecret []byte
	Forecast  Forecast
}

// Database configures a PostgreSQL connection. If Host is empty,
// SQLite is used.
type Database struct {
	Host     string
	User     string
	Password string
	Name     string
}

// DSN returns the PostgreSQL connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s", d.Host, d.User, d.Password, d.Name)
}

// Postgres reports whether a PostgreSQL database is configured.
func (d Database) Postgres() bool {
	return d.Host != ""
}

// Forecast holds the tunables of the forecast generator.
type Forecast struct {
	DefaultMonths          int
	MaxMonths              int
	LookbackMonths         int
	BaselineMonths         int
	IgnoredCategories      []string
	MembershipProductTypes []string
}

// DefaultForecast returns the forecast configuration used when no
// environment variables are set.
func DefaultForecast() Forecast {
	o := forecast.DefaultOptions(time.Time{})
	return Forecast{
		DefaultMonths:          o.Months,
		MaxMonths:              o.MaxMonths,
		LookbackMonths:         o.LookbackMonths,
		BaselineMonths:         o.BaselineMonths,
		IgnoredCategories:      o.IgnoredCategories,
		MembershipProductTypes: o.MembershipProductTypes,
	}
}

// Options returns the options for a forecast run. If months is nil,
// DefaultMonths is used.
func (f Forecast) Options(now time.Time, months *int) forecast.Options {
	opts := forecast.Options{
		Now:                    now,
		Months:                 f.DefaultMonths,
		MaxMonths:              f.MaxMonths,
		LookbackMonths:         f.LookbackMonths,
		BaselineMonths:         f.BaselineMonths,
		IgnoredCategories:      f.IgnoredCategories,
		MembershipProductTypes: f.MembershipProductTypes,
	}

	if months != nil {
		opts.Months = *months
	}

	return opts
}

var (
	ErrAPIURLMissing    = errors.New("environment variable API_URL must be set")
	ErrJWTSecretMissing = errors.New("environment variable JWT_SECRET must be set")
)

// New loads the configuration from environment variables.
func New() (Config, error) {
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		return Config{}, ErrAPIURLMissing
	}

	baseURL, err := url.Parse(apiURL)
	if err != nil {
		return Config{}, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	secret := getEnv("JWT_SECRET", "")
	if secret == "" {
		return Config{}, ErrJWTSecretMissing
	}

	f := DefaultForecast()
	ints := []struct {
		key    string
		target *int
	}{
		{"FORECAST_DEFAULT_MONTHS", &f.DefaultMonths},
		{"FORECAST_MAX_MONTHS", &f.MaxMonths},
		{"FORECAST_LOOKBACK_MONTHS", &f.LookbackMonths},
		{"FORECAST_BASELINE_MONTHS", &f.BaselineMonths},
	}

	for _, i := range ints {
		if err := intEnv(i.key, i.target); err != nil {
			return Config{}, err
		}
	}

	if v, ok := os.LookupEnv("FORECAST_IGNORED_CATEGORIES"); ok {
		f.IgnoredCategories = strings.Fields(v)
	}

	if v, ok := os.LookupEnv("FORECAST_MEMBERSHIP_PRODUCT_TYPES"); ok {
		f.MembershipProductTypes = strings.Fields(v)
	}

	if f.DefaultMonths < 1 || f.DefaultMonths > f.MaxMonths {
		return Config{}, fmt.Errorf("FORECAST_DEFAULT_MONTHS must be between 1 and FORECAST_MAX_MONTHS (%d)", f.MaxMonths)
	}

	if f.LookbackMonths < 0 {
		return Config{}, fmt.Errorf("FORECAST_LOOKBACK_MONTHS must not be negative")
	}

	// Baseline months must have been read
	if f.BaselineMonths < 0 || f.BaselineMonths > f.LookbackMonths {
		return Config{}, fmt.Errorf("FORECAST_BASELINE_MONTHS must be between 0 and FORECAST_LOOKBACK_MONTHS (%d)", f.LookbackMonths)
	}

	return Config{
		APIURL:  baseURL,
		Port:    getEnv("PORT", "8080"),
		DataDir: getEnv("DATA_DIR", "data"),
		Database: Database{
			Host:     getEnv("DB_HOST", ""),
			User:     getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", ""),
		},
		JWTSecret: []byte(secret),
		Forecast:  f,
	}, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func intEnv(key string, target *int) error {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}

	*target = i
	return nil
}
