package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	SeatMap  SeatMapConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type SeatMapConfig struct {
	PricePerSeat  int
	DefaultLayout string
	LayoutFile    string
	SessionTTL    time.Duration
	SweepInterval time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// Enabled reports whether a layout database has been configured.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads config from an env file, then applies environment
// overrides. A missing file is not an error.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "seat-map")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("SEAT_PRICE", 10)
	v.SetDefault("DEFAULT_LAYOUT", "default")
	v.SetDefault("LAYOUT_FILE", "")
	v.SetDefault("SESSION_TTL", "30m")
	v.SetDefault("SESSION_SWEEP_INTERVAL", "1m")
	v.SetDefault("DB_HOST", "")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		SeatMap: SeatMapConfig{
			PricePerSeat:  v.GetInt("SEAT_PRICE"),
			DefaultLayout: v.GetString("DEFAULT_LAYOUT"),
			LayoutFile:    v.GetString("LAYOUT_FILE"),
			SessionTTL:    v.GetDuration("SESSION_TTL"),
			SweepInterval: v.GetDuration("SESSION_SWEEP_INTERVAL"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
	}

	return config, nil
}
