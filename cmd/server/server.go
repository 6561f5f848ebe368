package main

import (
	"io"
	"os"
	"time"

	"github.com/JaimeStill/qit/internal/config"
	"github.com/JaimeStill/qit/internal/infrastructure"
	"github.com/JaimeStill/qit/pkg/formatting"
)

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("QIT_CONFIG"); path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

type Server struct {
	infra   *infrastructure.Infrastructure
	modules *Modules
	http    *httpServer
}

func NewServer(cfg *config.Config, logOutput io.Writer) (*Server, error) {
	infra := infrastructure.New(cfg, logOutput)

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	modules.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"env", cfg.Env(),
		"base_path", cfg.API.BasePath,
		"max_body_size", formatting.FormatBytes(cfg.API.MaxBodySizeBytes(), 1),
		"suggestions", cfg.Suggest.IsEnabled(),
		"locale", cfg.Pipeline.Locale().String(),
	)

	return &Server{
		infra:   infra,
		modules: modules,
		http:    newHTTPServer(&cfg.Server, router.Handler(), infra.Logger),
	}, nil
}

func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	if err := s.infra.Lifecycle.Shutdown(timeout); err != nil {
		return err
	}
	s.infra.Logger.Info("qit stopped")
	return nil
}
