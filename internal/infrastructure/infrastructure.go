// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies every domain system shares: lifecycle
// coordination, logging and the outbound HTTP client.
package infrastructure

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/JaimeStill/qit/internal/config"
	"github.com/JaimeStill/qit/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle  *lifecycle.Coordinator
	Logger     *slog.Logger
	HTTPClient *http.Client
}

// New creates an Infrastructure from the application configuration, logging
// to w. It initializes all systems but does not start them; call Start
// separately.
func New(cfg *config.Config, w io.Writer) *Infrastructure {
	return &Infrastructure{
		Lifecycle:  lifecycle.New(),
		Logger:     cfg.Log.NewLogger(w),
		HTTPClient: newHTTPClient(cfg.Suggest.TimeoutDuration()),
	}
}

// Start registers infrastructure hooks with the lifecycle coordinator. Idle
// outbound connections are closed on shutdown.
func (i *Infrastructure) Start() error {
	i.Lifecycle.OnShutdown(func(context.Context) {
		i.HTTPClient.CloseIdleConnections()
		i.Logger.Info("outbound connections closed")
	})
	return nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
	}
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}
