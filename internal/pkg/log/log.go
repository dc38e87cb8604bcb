package log

import (
	"context"
	"fmt"
	"os"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...any)
	Warn(ctx context.Context, msg string, fields ...any)
	Error(ctx context.Context, msg string, fields ...any)
}

type logger struct {
	log *otelzap.Logger
}

var global *otelzap.Logger

// SetupLogger builds the process zap logger. LOG_LEVEL=debug switches to the
// development encoder.
func SetupLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if os.Getenv("LOG_LEVEL") == "debug" {
		cfg = zap.NewDevelopmentConfig()
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewExample()
	}
	return l
}

// Init installs l as the global otelzap logger.
func Init(l *zap.Logger) {
	global = otelzap.New(l, otelzap.WithMinLevel(zapcore.InfoLevel))
	otelzap.ReplaceGlobals(global)
}

func GetLogger() Logger {
	if global == nil {
		Init(SetupLogger())
	}
	return &logger{log: global}
}

// Setup returns the raw otelzap logger used by handlers and middleware.
func Setup() *otelzap.Logger {
	if global == nil {
		Init(SetupLogger())
	}
	return global
}

func (l *logger) Info(ctx context.Context, msg string, fields ...any) {
	l.log.Ctx(ctx).Info(msg, toFields(fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...any) {
	l.log.Ctx(ctx).Warn(msg, toFields(fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...any) {
	l.log.Ctx(ctx).Error(msg, toFields(fields)...)
}

func toFields(args []any) []zap.Field {
	fields := make([]zap.Field, 0, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case zap.Field:
			fields = append(fields, v)
		case error:
			fields = append(fields, zap.Error(v))
		default:
			fields = append(fields, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}
	return fields
}
