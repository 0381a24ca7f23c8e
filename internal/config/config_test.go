package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Advisor: AdvisorConfig{
			Model:      "claude-3-5-haiku-latest",
			MaxTokens:  256,
			Timeout:    30 * time.Second,
			MaxRetries: 3,
		},
		Engine: EngineConfig{
			ActionWaitInterval: 100 * time.Millisecond,
			ActionWaitMax:      5 * time.Second,
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
advisor:
  model: claude-sonnet-4-5
  max_tokens: 512
  timeout: 45s
  max_retries: 5
engine:
  action_wait_interval: 250ms
  action_wait_max: 10s
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "claude-sonnet-4-5", cfg.Advisor.Model)
	assert.Equal(t, int64(512), cfg.Advisor.MaxTokens)
	assert.Equal(t, 45*time.Second, cfg.Advisor.Timeout)
	assert.Equal(t, 5, cfg.Advisor.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.Engine.ActionWaitInterval)
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 3, cfg.Advisor.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.Advisor.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Engine.ActionWaitMax)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateAdvisorModelEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Advisor.Model = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateAdvisorMaxTokens(t *testing.T) {
	cfg := validConfig()
	cfg.Advisor.MaxTokens = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateAdvisorTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.Advisor.Timeout = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Advisor.Timeout = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestValidateAdvisorMaxRetries(t *testing.T) {
	cfg := validConfig()
	cfg.Advisor.MaxRetries = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateEngineWaitIntervalExceedsMax(t *testing.T) {
	cfg := validConfig()
	cfg.Engine.ActionWaitInterval = 10 * time.Second
	cfg.Engine.ActionWaitMax = time.Second
	assert.Error(t, cfg.Validate())
}

// Property-based tests

func TestPropertyValidRetryBudget(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		retries := rapid.IntRange(1, 100).Draw(t, "retries")
		cfg := validConfig()
		cfg.Advisor.MaxRetries = retries
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid retry budget %d rejected: %v", retries, err)
		}
	})
}

func TestPropertyInvalidRetryBudget(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		retries := rapid.IntRange(-1000, 0).Draw(t, "retries")
		cfg := validConfig()
		cfg.Advisor.MaxRetries = retries
		if err := cfg.Validate(); err == nil {
			t.Fatalf("invalid retry budget %d accepted", retries)
		}
	})
}

func TestPropertyWaitIntervalNeverExceedsMax(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		max := rapid.Int64Range(1, int64(time.Minute)).Draw(t, "max")
		interval := rapid.Int64Range(max+1, max+int64(time.Minute)).Draw(t, "interval")
		cfg := validConfig()
		cfg.Engine.ActionWaitInterval = time.Duration(interval)
		cfg.Engine.ActionWaitMax = time.Duration(max)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("interval=%d > max=%d accepted", interval, max)
		}
	})
}
