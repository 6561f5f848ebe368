package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/qit/internal/config"
	"github.com/JaimeStill/qit/pkg/openapi"
	"github.com/JaimeStill/qit/pkg/routes"
)

// SpecPath is the path, relative to the API base path, serving the
// generated OpenAPI document.
const SpecPath = "/openapi.json"

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) error {
	groups := []routes.Group{
		domain.Queries.Handler(cfg.API.MaxBodySizeBytes()).Routes(),
	}

	routes.Register(mux, groups...)

	specBytes, err := buildSpec(cfg, groups)
	if err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	mux.HandleFunc("GET "+SpecPath, openapi.ServeSpec(specBytes))

	for _, pattern := range routes.Patterns(groups...) {
		runtime.Logger.Debug("route registered", "pattern", pattern, "base_path", cfg.API.BasePath)
	}
	return nil
}

func buildSpec(cfg *config.Config, groups []routes.Group) ([]byte, error) {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	for _, url := range cfg.API.OpenAPI.ServerURLs(cfg.API.BasePath) {
		spec.AddServer(url)
	}

	routes.Describe(spec, groups...)

	return openapi.MarshalJSON(spec)
}
