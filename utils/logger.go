package utils

import (
	"os"
	"path/filepath"

	"github.com/cppla/aaquestions/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/gorm/logger"
)

// ServiceName names the root logger; every entry carries it under "logger".
const ServiceName = "aaquestions"

var (
	// Logger is the global structured logger
	Logger *zap.Logger
	// Sugar is a sugared logger for convenience
	Sugar *zap.SugaredLogger
)

// InitLogger builds the service logger: JSON entries on stdout and, when
// cfg.Path is set, in a lumberjack rolling file. Level "silent" discards
// everything.
func InitLogger(cfg config.LogConfig) error {
	if cfg.Level == "silent" {
		Logger = zap.NewNop()
		Sugar = Logger.Sugar()
		return nil
	}

	sinks := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if cfg.Path != "" {
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		sinks = append(sinks, zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    orDefault(cfg.MaxSizeMB, 100),
			MaxBackups: orDefault(cfg.MaxBackups, 3),
			MaxAge:     orDefault(cfg.MaxAgeDays, 7),
			Compress:   cfg.Compress,
		}))
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig()),
		zapcore.NewMultiWriteSyncer(sinks...),
		zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
	)

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Level == "debug" {
		opts = append(opts, zap.Development())
	}
	Logger = zap.New(core, opts...).Named(ServiceName)
	Sugar = Logger.Sugar()
	return nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000"),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func parseLevel(s string) zapcore.Level {
	if s == "" {
		return zapcore.InfoLevel
	}
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// sqlWriter routes gorm's statement log into the "sql" child logger.
type sqlWriter struct {
	sugar *zap.SugaredLogger
}

func (w sqlWriter) Printf(format string, args ...interface{}) {
	w.sugar.Infof(format, args...)
}

// SQLWriter returns the logger.Writer handed to the gorm logger. gorm filters
// by its own level first, so everything reaching it is written at info.
func SQLWriter() logger.Writer {
	return sqlWriter{sugar: Logger.Named("sql").WithOptions(zap.WithCaller(false)).Sugar()}
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
