package config

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func TestDialectorFor(t *testing.T) {
	for _, driver := range []string{"sqlite", "mysql", "postgres"} {
		d, err := dialectorFor(DatabaseConfig{Driver: driver, Host: "127.0.0.1", Port: 1, Path: "x.db"})
		require.NoError(t, err)
		require.Equal(t, driver, d.Name())
	}

	_, err := dialectorFor(DatabaseConfig{Driver: "oracle"})
	require.Error(t, err)
}

func TestToGormLogLevel(t *testing.T) {
	require.Equal(t, logger.Info, toGormLogLevel("debug"))
	require.Equal(t, logger.Warn, toGormLogLevel("info"))
	require.Equal(t, logger.Error, toGormLogLevel("error"))
	require.Equal(t, logger.Silent, toGormLogLevel("silent"))
	require.Equal(t, logger.Warn, toGormLogLevel("verbose"))
}

func TestInitDatabaseIsIdempotent(t *testing.T) {
	c := DatabaseConfig{Driver: "sqlite", DSN: "file:init_idempotent?mode=memory&cache=shared"}
	w := log.New(io.Discard, "", 0)

	first, err := InitDatabase(c, "silent", w, &widget{})
	require.NoError(t, err)
	require.True(t, first.Migrator().HasTable(&widget{}))

	second, err := InitDatabase(DatabaseConfig{Driver: "oracle"}, "silent", w)
	require.NoError(t, err)
	require.Same(t, first, second)

	// existing tables are left alone
	require.NoError(t, first.Create(&widget{Name: "kept"}).Error)
	require.NoError(t, MigrateMissing(first, &widget{}))
	var n int64
	require.NoError(t, first.Model(&widget{}).Count(&n).Error)
	require.Equal(t, int64(1), n)
}
