package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JaimeStill/qit/pkg/module"
)

func TestNewValidPrefix(t *testing.T) {
	for _, prefix := range []string{"/api", "/v1", "/docs"} {
		m := module.New(prefix, http.NewServeMux())
		assert.Equal(t, prefix, m.Prefix())
	}
}

func TestNewInvalidPrefixPanics(t *testing.T) {
	for _, prefix := range []string{"", "api", "/api/v1"} {
		assert.Panics(t, func() { module.New(prefix, http.NewServeMux()) }, "prefix %q", prefix)
	}
}

func TestServePrefixStripping(t *testing.T) {
	mux := http.NewServeMux()

	var receivedPath string
	mux.HandleFunc("POST /queries/export", func(w http.ResponseWriter, r *http.Request) {
		receivedPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	m := module.New("/api", mux)

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest("POST", "/api/queries/export", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/queries/export", receivedPath)
}

func TestServeRootPath(t *testing.T) {
	mux := http.NewServeMux()

	var receivedPath string
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		receivedPath = r.URL.Path
	})

	m := module.New("/api", mux)
	m.Serve(httptest.NewRecorder(), httptest.NewRequest("GET", "/api", nil))

	assert.Equal(t, "/", receivedPath)
}

func TestModuleMiddleware(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {})

	m := module.New("/api", mux)

	calls := 0
	m.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			next.ServeHTTP(w, r)
		})
	})

	for range 2 {
		m.Serve(httptest.NewRecorder(), httptest.NewRequest("GET", "/api", nil))
	}
	assert.Equal(t, 2, calls)
}

func TestRouterDispatch(t *testing.T) {
	apiMux := http.NewServeMux()
	apiMux.HandleFunc("GET /queries/rules", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("api"))
	})

	v1Mux := http.NewServeMux()
	v1Mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("v1"))
	})

	router := module.NewRouter()
	router.Mount(module.New("/api", apiMux))
	router.Mount(module.New("/v1", v1Mux))

	assert.Equal(t, []string{"/api", "/v1"}, router.Prefixes())

	tests := []struct {
		path     string
		wantBody string
	}{
		{"/api/queries/rules", "api"},
		{"/v1", "v1"},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, tt.path)
		assert.Equal(t, tt.wantBody, rec.Body.String(), tt.path)
	}
}

func TestRouterNativeFallback(t *testing.T) {
	router := module.NewRouter()
	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouterMiddlewareWrapsAllRoutes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /queries/rules", func(w http.ResponseWriter, r *http.Request) {})

	router := module.NewRouter()
	router.Mount(module.New("/api", mux))
	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {})
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Wrapped", "yes")
			next.ServeHTTP(w, r)
		})
	})

	handler := router.Handler()
	for _, path := range []string{"/api/queries/rules", "/healthz"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, "yes", rec.Header().Get("X-Wrapped"), path)
	}
}

func TestRouterTrailingSlashNormalization(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /queries/rules", func(w http.ResponseWriter, r *http.Request) {})

	router := module.NewRouter()
	router.Mount(module.New("/api", mux))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/queries/rules/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
