package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogObserver_SuccessAtInfo(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := NewLogObserver(zap.New(core))

	obs.OnCallComplete(LLMCallEvent{Task: TaskSprint, Model: "llama3.2", LatencyMs: 42, Success: true})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	assert.Equal(t, "llm_call", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "sprint", fields["task"])
	assert.Equal(t, int64(42), fields["latency_ms"])
	assert.Equal(t, "ok", fields["status"])
}

func TestLogObserver_FailureAtWarn(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := NewLogObserver(zap.New(core))

	obs.OnCallComplete(LLMCallEvent{Task: TaskNaming, Model: "llama3.2", ErrorCode: "TIMEOUT"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "TIMEOUT", entry.ContextMap()["error_code"])
}
