package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_EveryTaskHasSettings(t *testing.T) {
	cfg := DefaultConfig()
	for _, task := range AllTasks() {
		tc, ok := cfg.Tasks[task]
		assert.True(t, ok, "task %s missing", task)
		assert.Greater(t, tc.MaxTokens, 0, "task %s", task)
	}
	assert.False(t, cfg.Enabled)
	assert.Equal(t, ProviderOllama, cfg.Provider)
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutMs = 4321
	cfg.Tasks = map[TaskType]TaskConfig{TaskNaming: {TimeoutMs: 0}}

	assert.Equal(t, 4321, cfg.TaskTimeout(TaskNaming))
	assert.Equal(t, 4321, cfg.TaskTimeout(TaskSprint))
}

func TestWithTaskTimeout_DoesNotAliasOriginal(t *testing.T) {
	cfg := DefaultConfig()
	updated := cfg.WithTaskTimeout(TaskSprint, 1234)

	assert.Equal(t, 1234, updated.TaskTimeout(TaskSprint))
	assert.Equal(t, 30000, cfg.TaskTimeout(TaskSprint))
}

func TestWithTaskTimeout_IgnoresNonPositive(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, cfg.TaskTimeout(TaskNaming), cfg.WithTaskTimeout(TaskNaming, -5).TaskTimeout(TaskNaming))
}
