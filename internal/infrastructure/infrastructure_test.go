package infrastructure_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/qit/internal/config"
	"github.com/JaimeStill/qit/internal/infrastructure"
)

func finalized(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	require.NoError(t, cfg.Finalize())
	return cfg
}

func TestNew(t *testing.T) {
	cfg := finalized(t)
	infra := infrastructure.New(cfg, &bytes.Buffer{})

	require.NotNil(t, infra.Lifecycle)
	require.NotNil(t, infra.Logger)
	require.NotNil(t, infra.HTTPClient)
	assert.Equal(t, cfg.Suggest.TimeoutDuration(), infra.HTTPClient.Timeout)
}

func TestLoggerFollowsConfig(t *testing.T) {
	cfg := finalized(t)
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	infra := infrastructure.New(cfg, &buf)

	infra.Logger.Info("quiet")
	infra.Logger.Warn("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), `"msg":"loud"`)
}

func TestStartRegistersShutdown(t *testing.T) {
	var buf bytes.Buffer
	infra := infrastructure.New(finalized(t), &buf)

	require.NoError(t, infra.Start())
	infra.Lifecycle.WaitForStartup()
	require.NoError(t, infra.Lifecycle.Shutdown(time.Second))

	assert.Contains(t, buf.String(), "outbound connections closed")
}
