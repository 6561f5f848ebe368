// Package routes declares HTTP routes as data and registers them on a mux.
package routes

import (
	"net/http"

	"github.com/JaimeStill/qit/pkg/openapi"
)

// Group organizes routes under a common prefix. Children inherit the prefix.
// Schemas are the component schemas its route operations reference.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
	Schemas  map[string]*openapi.Schema
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		group.walk("", func(method, path string, route Route) {
			mux.HandleFunc(method+" "+path, route.Handler)
		})
	}
}

// Patterns returns the ServeMux patterns of every route in the groups, in
// declaration order with children after their parent's routes.
func Patterns(groups ...Group) []string {
	var patterns []string
	for _, group := range groups {
		group.walk("", func(method, path string, _ Route) {
			patterns = append(patterns, method+" "+path)
		})
	}
	return patterns
}

// Describe adds every documented route and group schema to spec. Routes
// without an OpenAPI operation are left out.
func Describe(spec *openapi.Spec, groups ...Group) {
	for _, group := range groups {
		group.schemas(spec.Components)
		group.walk("", func(method, path string, route Route) {
			if route.OpenAPI != nil {
				spec.AddOperation(method, path, route.OpenAPI)
			}
		})
	}
}

func (g Group) schemas(c *openapi.Components) {
	if len(g.Schemas) > 0 {
		c.AddSchemas(g.Schemas)
	}
	for _, child := range g.Children {
		child.schemas(c)
	}
}

func (g Group) walk(parentPrefix string, fn func(method, path string, route Route)) {
	fullPrefix := parentPrefix + g.Prefix
	for _, route := range g.Routes {
		fn(route.Method, fullPrefix+route.Pattern, route)
	}
	for _, child := range g.Children {
		child.walk(fullPrefix, fn)
	}
}
