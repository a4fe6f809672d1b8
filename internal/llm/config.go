package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	// TaskPlanDraft drafts a learning plan from user inputs.
	TaskPlanDraft TaskType = "plan_draft"
	// TaskPlanFix regenerates a plan with validation feedback attached.
	TaskPlanFix TaskType = "plan_fix"
)

// TaskConfig holds per-task model parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides the global timeout if > 0
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. The LLM path is
// disabled by default; the deterministic generator is always available.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  15000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskPlanDraft: {Temperature: 0.3, MaxTokens: 4096, TimeoutMs: 30000},
			TaskPlanFix:   {Temperature: 0.2, MaxTokens: 4096, TimeoutMs: 30000},
		},
	}
}

// LoadConfig reads LLM configuration from PATHWISE_* environment variables,
// falling back to defaults for anything unset.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PATHWISE_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PATHWISE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PATHWISE_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("PATHWISE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("PATHWISE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("PATHWISE_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskPlanDraft, "PATHWISE_LLM_DRAFT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskPlanFix, "PATHWISE_LLM_FIX_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a task: the task-specific
// value if set, otherwise the global one.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
