package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDatabase opens the process-wide database once and creates any missing
// tables for modelDefs. Later calls return the same instance.
func InitDatabase(c DatabaseConfig, logLevel string, w logger.Writer, modelDefs ...interface{}) (*gorm.DB, error) {
	if db != nil {
		return db, nil
	}

	opened, err := OpenDatabase(c, logLevel, w)
	if err != nil {
		return nil, err
	}
	if err := MigrateMissing(opened, modelDefs...); err != nil {
		return nil, err
	}

	db = opened
	return db, nil
}

// OpenDatabase connects to the configured store, tunes the pool and pings it.
func OpenDatabase(c DatabaseConfig, logLevel string, w logger.Writer) (*gorm.DB, error) {
	dialector, err := dialectorFor(c)
	if err != nil {
		return nil, err
	}

	// Derive level from app LogLevel and raise slow-sql threshold to reduce noise
	gLogger := logger.New(w, logger.Config{
		SlowThreshold:             2 * time.Second,
		LogLevel:                  toGormLogLevel(logLevel),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})

	opened, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   gLogger,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := opened.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if c.Driver == "sqlite" {
		// One connection: a shared in-memory database only lives on the
		// connection that created it, and SQLite allows a single writer anyway.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(c.MaxOpenConns)
		sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Duration(c.ConnMaxLifetimeMin) * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Duration(c.ConnMaxIdleTimeMin) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return opened, nil
}

// MigrateMissing creates the tables that do not exist yet. Existing tables are
// left untouched.
func MigrateMissing(d *gorm.DB, modelDefs ...interface{}) error {
	for _, model := range modelDefs {
		if d.Migrator().HasTable(model) {
			continue
		}
		if err := d.AutoMigrate(model); err != nil {
			return fmt.Errorf("auto migration failed for %T: %w", model, err)
		}
	}
	return nil
}

func dialectorFor(c DatabaseConfig) (gorm.Dialector, error) {
	switch c.Driver {
	case "sqlite":
		dsn := c.DSN
		if dsn == "" {
			dsn = c.Path
		}
		return sqlite.Open(dsn), nil
	case "mysql":
		dsn := c.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				c.User,
				c.Password,
				net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
				c.Name,
			)
		}
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := c.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
				c.User,
				url.QueryEscape(c.Password),
				net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
				c.Name,
			)
		}
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

// toGormLogLevel maps application LogLevel to GORM's logger level.
func toGormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		// GORM 'Info' shows SQL; use with caution
		return logger.Info
	case "info", "", "warn":
		// Suppress per-statement logs; keep warnings (including slow SQL)
		return logger.Warn
	case "error":
		return logger.Error
	case "silent":
		return logger.Silent
	default:
		return logger.Warn
	}
}
