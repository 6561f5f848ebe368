package suggest_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/qit/internal/suggest"
)

var testEnv = &suggest.Env{
	Enabled:  "TEST_SUGGEST_ENABLED",
	Endpoint: "TEST_SUGGEST_ENDPOINT",
	Timeout:  "TEST_SUGGEST_TIMEOUT",
	Language: "TEST_SUGGEST_LANGUAGE",
}

func TestConfigDefaults(t *testing.T) {
	cfg := &suggest.Config{}
	require.NoError(t, cfg.Finalize(nil))

	assert.True(t, cfg.IsEnabled())
	assert.Equal(t, "https://suggestqueries.google.com/complete/search", cfg.Endpoint)
	assert.Equal(t, "firefox", cfg.Client)
	assert.Equal(t, "ar", cfg.Language)
	assert.Equal(t, "eg", cfg.Region)
	assert.Equal(t, 5*time.Second, cfg.TimeoutDuration())
	assert.Equal(t, int64(1<<20), cfg.MaxBodySize.Int64())
}

func TestConfigEnvOverrides(t *testing.T) {
	t.Setenv("TEST_SUGGEST_ENABLED", "false")
	t.Setenv("TEST_SUGGEST_ENDPOINT", "http://localhost:9999/suggest")
	t.Setenv("TEST_SUGGEST_TIMEOUT", "750ms")
	t.Setenv("TEST_SUGGEST_LANGUAGE", "en")

	cfg := &suggest.Config{}
	require.NoError(t, cfg.Finalize(testEnv))

	assert.False(t, cfg.IsEnabled())
	assert.Equal(t, "http://localhost:9999/suggest", cfg.Endpoint)
	assert.Equal(t, 750*time.Millisecond, cfg.TimeoutDuration())
	assert.Equal(t, "en", cfg.Language)
}

func TestConfigMerge(t *testing.T) {
	disabled := false
	cfg := &suggest.Config{Endpoint: "https://a.example/search", Timeout: "1s"}
	cfg.Merge(&suggest.Config{Enabled: &disabled, Timeout: "3s"})

	assert.False(t, cfg.IsEnabled())
	assert.Equal(t, "https://a.example/search", cfg.Endpoint)
	assert.Equal(t, "3s", cfg.Timeout)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  suggest.Config
	}{
		{name: "bad scheme", cfg: suggest.Config{Endpoint: "ftp://example.com"}},
		{name: "bad timeout", cfg: suggest.Config{Timeout: "soon"}},
		{name: "negative timeout", cfg: suggest.Config{Timeout: "-1s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Finalize(nil))
		})
	}
}

func TestNewSelectsProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	enabled := &suggest.Config{}
	require.NoError(t, enabled.Finalize(nil))
	assert.IsType(t, &suggest.Google{}, suggest.New(enabled, nil, logger))

	off := false
	disabled := &suggest.Config{Enabled: &off}
	require.NoError(t, disabled.Finalize(nil))
	assert.IsType(t, suggest.Disabled{}, suggest.New(disabled, nil, logger))
}
