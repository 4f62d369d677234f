package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogUseCaseObserver(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	obs := NewLogUseCaseObserver(zap.New(core))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "record-artifact",
		Duration: 12 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"framework": "naming"},
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "record-kit",
		Err:  errors.New("disk full"),
	})

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "service", entries[0].LoggerName)
	fields := entries[0].ContextMap()
	assert.Equal(t, "record-artifact", fields["use_case"])
	assert.Equal(t, int64(12), fields["duration_ms"])
	assert.Equal(t, "naming", fields["framework"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "disk full", entries[1].ContextMap()["error"])
}

func TestNewLogUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
