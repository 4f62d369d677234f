package llm

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskSprint        TaskType = "sprint"
	TaskStoryBrand    TaskType = "storybrand"
	TaskLeanCanvas    TaskType = "lean_canvas"
	TaskLandingPage   TaskType = "landing_page"
	TaskStartupSchool TaskType = "startup_school"
	TaskNaming        TaskType = "naming"
)

// AllTasks lists every task type in a stable order.
func AllTasks() []TaskType {
	return []TaskType{
		TaskSprint, TaskStoryBrand, TaskLeanCanvas,
		TaskLandingPage, TaskStartupSchool, TaskNaming,
	}
}

// Provider selects the backend that serves completions.
type Provider string

const (
	ProviderOllama Provider = "ollama"
	ProviderGemini Provider = "gemini"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Provider   Provider
	Endpoint   string
	Model      string
	APIKey     string
	TimeoutMs  int
	MaxRetries int
	CacheSize  int // 0 disables response caching
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// LLM is disabled by default.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    false,
		LogCalls:   false,
		Provider:   ProviderOllama,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  10000,
		MaxRetries: 1,
		CacheSize:  64,
		Tasks: map[TaskType]TaskConfig{
			TaskSprint:        {Temperature: 0.4, MaxTokens: 2048, TimeoutMs: 30000},
			TaskStoryBrand:    {Temperature: 0.5, MaxTokens: 2048, TimeoutMs: 30000},
			TaskLeanCanvas:    {Temperature: 0.3, MaxTokens: 2048, TimeoutMs: 30000},
			TaskLandingPage:   {Temperature: 0.6, MaxTokens: 1536, TimeoutMs: 20000},
			TaskStartupSchool: {Temperature: 0.2, MaxTokens: 1024, TimeoutMs: 15000},
			TaskNaming:        {Temperature: 0.9, MaxTokens: 1024, TimeoutMs: 15000},
		},
	}
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

// WithTaskTimeout returns a copy of c with the timeout for task replaced.
// Non-positive values are ignored.
func (c LLMConfig) WithTaskTimeout(task TaskType, timeoutMs int) LLMConfig {
	if timeoutMs <= 0 {
		return c
	}
	tasks := make(map[TaskType]TaskConfig, len(c.Tasks))
	for k, v := range c.Tasks {
		tasks[k] = v
	}
	tc := tasks[task]
	tc.TimeoutMs = timeoutMs
	tasks[task] = tc
	c.Tasks = tasks
	return c
}
