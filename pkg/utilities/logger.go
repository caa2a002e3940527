package utilities

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidLogFile is returned by Init when the rotating log file cannot be set up.
var ErrInvalidLogFile = errors.New("invalid log file")

const (
	defaultMaxAge       = 7 * 24 * time.Hour
	defaultRotationTime = 24 * time.Hour
)

type Config struct {
	Level string
	Dev   bool
	// File is the base path of the rotating log file; empty disables it.
	File         string
	MaxAge       time.Duration
	RotationTime time.Duration
}

// ConfigFromEnv reads logger config from env vars.
func ConfigFromEnv() Config {
	dev := os.Getenv("LOG_DEV") == "1"
	lvl := os.Getenv("LOG_LEVEL")
	if lvl == "" {
		if dev {
			lvl = "debug"
		} else {
			lvl = "info"
		}
	}
	return Config{
		Level:        lvl,
		Dev:          dev,
		File:         os.Getenv("LOG_FILE"),
		MaxAge:       hoursFromEnv("LOG_MAX_AGE_HOURS", defaultMaxAge),
		RotationTime: hoursFromEnv("LOG_ROTATION_HOURS", defaultRotationTime),
	}
}

// hoursFromEnv parses a positive whole number of hours, falling back to def.
// Values too large for a time.Duration also fall back to def.
func hoursFromEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 || int64(n) > math.MaxInt64/int64(time.Hour) {
		return def
	}
	return time.Duration(n) * time.Hour
}

func levelFromString(l string) zapcore.Level {
	switch l {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Init initializes and returns a *zap.Logger. Console output goes to stderr so
// stdout stays reserved for program output. The returned close func releases
// the rotating log file, if any; call it after the final Sync.
func Init(cfg Config) (*zap.Logger, func() error, error) {
	lvl := levelFromString(cfg.Level)

	var fileCore zapcore.Core
	closeFn := func() error { return nil }
	if cfg.File != "" {
		c, w, err := newFileCore(cfg, lvl)
		if err != nil {
			return nil, nil, err
		}
		fileCore = c
		closeFn = w.Close
	}

	if cfg.Dev {
		c := zap.NewDevelopmentConfig()
		c.Level = zap.NewAtomicLevelAt(lvl)
		var opts []zap.Option
		if fileCore != nil {
			opts = append(opts, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
				return zapcore.NewTee(core, fileCore)
			}))
		}
		lg, err := c.Build(opts...)
		if err != nil {
			_ = closeFn()
			return nil, nil, err
		}
		return lg, closeFn, nil
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(jsonEncoderConfig()), zapcore.Lock(os.Stderr), lvl)
	if fileCore != nil {
		core = zapcore.NewTee(core, fileCore)
	}
	opts := []zap.Option{zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)}
	return zap.New(core, opts...), closeFn, nil
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return encoderCfg
}

// newFileCore writes JSON lines to <File>.<YYYYmmddHH>, rotated every
// RotationTime and pruned after MaxAge. File itself is kept as a symlink to
// the current segment.
func newFileCore(cfg Config, lvl zapcore.Level) (zapcore.Core, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidLogFile, err)
	}
	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = defaultMaxAge
	}
	rotation := cfg.RotationTime
	if rotation <= 0 {
		rotation = defaultRotationTime
	}
	w, err := rotatelogs.New(
		cfg.File+".%Y%m%d%H",
		rotatelogs.WithLinkName(cfg.File),
		rotatelogs.WithMaxAge(maxAge),
		rotatelogs.WithRotationTime(rotation),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidLogFile, err)
	}
	return zapcore.NewCore(zapcore.NewJSONEncoder(jsonEncoderConfig()), zapcore.AddSync(w), lvl), w, nil
}
