package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks the environment variables read by Load,
// e.g. AAQ_DATABASE_DRIVER -> database.driver.
const EnvPrefix = "AAQ_"

// AppConfig holds file and environment driven configuration values.
type AppConfig struct {
	Database DatabaseConfig `koanf:"database"`
	Log      LogConfig      `koanf:"log"`
	Report   ReportConfig   `koanf:"report"`
}

// DatabaseConfig selects the store and tunes its connection pool.
// DSN, when set, wins over the individual connection fields.
type DatabaseConfig struct {
	Driver             string `koanf:"driver" validate:"required,oneof=mysql sqlite postgres"`
	DSN                string `koanf:"dsn"`
	Host               string `koanf:"host"`
	Port               int    `koanf:"port" validate:"gte=0,lte=65535"`
	User               string `koanf:"user"`
	Password           string `koanf:"password"`
	Name               string `koanf:"name"`
	Path               string `koanf:"path"`
	MaxOpenConns       int    `koanf:"max_open_conns" validate:"gte=1"`
	MaxIdleConns       int    `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetimeMin int    `koanf:"conn_max_lifetime_min" validate:"gte=0"`
	ConnMaxIdleTimeMin int    `koanf:"conn_max_idle_time_min" validate:"gte=0"`
}

// LogConfig drives the zap logger and its rolling file sink.
type LogConfig struct {
	Level      string `koanf:"level" validate:"oneof=debug info warn error dpanic panic fatal silent"`
	Path       string `koanf:"path"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

// ReportConfig controls the rankings printed at startup.
type ReportConfig struct {
	Top int `koanf:"top" validate:"gte=1"`
}

var cfg AppConfig
var loaded bool

// Load loads the application configuration. It should be called once during boot.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	c, err := LoadFrom(filepath.Join("config", "config.json"))
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	cfg = c
	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

// LoadFrom builds a configuration from the JSON file at path (ignored when
// missing), then AAQ_* environment overrides, then defaults for zero values.
func LoadFrom(path string) (AppConfig, error) {
	k := koanf.New(".")

	switch _, err := os.Stat(path); {
	case err == nil:
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return AppConfig{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// no file: env and defaults only
	default:
		return AppConfig{}, fmt.Errorf("config: stat %s: %w", path, err)
	}

	// Only the first underscore after the prefix separates the section:
	// AAQ_DATABASE_MAX_OPEN_CONNS -> database.max_open_conns
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return AppConfig{}, err
	}

	var out AppConfig
	if err := k.Unmarshal("", &out); err != nil {
		return AppConfig{}, err
	}

	applyDefaults(&out)

	if err := validator.New().Struct(out); err != nil {
		return AppConfig{}, err
	}
	return out, nil
}

// applyDefaults sets sane defaults for zero-value fields.
func applyDefaults(c *AppConfig) {
	db := &c.Database
	if db.Driver == "" {
		db.Driver = "sqlite"
	}
	if db.Path == "" {
		db.Path = "questions.db"
	}
	if db.Host == "" {
		db.Host = "127.0.0.1"
	}
	if db.Port == 0 {
		switch db.Driver {
		case "postgres":
			db.Port = 5432
		case "mysql":
			db.Port = 3306
		}
	}
	if db.User == "" {
		db.User = "root"
	}
	if db.Name == "" {
		db.Name = "questions"
	}
	if db.MaxOpenConns == 0 {
		db.MaxOpenConns = 20
	}
	if db.MaxIdleConns == 0 {
		db.MaxIdleConns = 5
	}
	if db.ConnMaxLifetimeMin == 0 {
		db.ConnMaxLifetimeMin = 30
	}
	if db.ConnMaxIdleTimeMin == 0 {
		db.ConnMaxIdleTimeMin = 10
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 100
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 3
	}
	if c.Log.MaxAgeDays == 0 {
		c.Log.MaxAgeDays = 7
	}

	if c.Report.Top == 0 {
		c.Report.Top = 3
	}
}
