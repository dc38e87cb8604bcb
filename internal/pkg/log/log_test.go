package log

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestToFields(t *testing.T) {
	fields := toFields([]any{zap.String("booking_id", "b-1"), fmt.Errorf("boom"), 42})

	assert.Len(t, fields, 3)
	assert.Equal(t, "booking_id", fields[0].Key)
	assert.Equal(t, "error", fields[1].Key)
	assert.Equal(t, "arg2", fields[2].Key)
}

func TestLoggerWritesFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := &logger{log: otelzap.New(zap.New(core))}

	l.Error(context.Background(), "seat release exceeded total", zap.String("trip_date_id", "d-1"))
	l.Info(context.Background(), "booking confirmed")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "seat release exceeded total", entries[0].Message)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
		assert.Equal(t, "d-1", entries[0].ContextMap()["trip_date_id"])
	}
}
