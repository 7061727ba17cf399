package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	"github.com/go-chi/httplog/v3"
)

const (
	appName    = "attendance-cmlabs"
	appVersion = "v1.0.0"
)

// New builds the process logger. Attributes follow the ECS schema so request
// logs from httplog and application logs share field names.
func New(cfg config.AppConfig, w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	logFormat := httplog.SchemaECS.Concise(false)
	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.LogFormat) {
	case "", "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("unsupported LOG_FORMAT %q", cfg.LogFormat)
	}

	return slog.New(handler).With(
		slog.String("app", appName),
		slog.String("version", appVersion),
		slog.String("env", cfg.Env),
	), nil
}

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}
