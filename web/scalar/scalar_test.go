package scalar_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/qit/pkg/module"
	"github.com/JaimeStill/qit/web/scalar"
)

func TestNewModule(t *testing.T) {
	m, err := scalar.NewModule("/scalar", "qit API", "/api/openapi.json")
	require.NoError(t, err)
	assert.Equal(t, "/scalar", m.Prefix())

	router := module.NewRouter()
	router.Mount(m)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/scalar", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `data-url="/api/openapi.json"`)
	assert.Contains(t, rec.Body.String(), "<title>qit API</title>")
}

func TestNewModuleUnknownPath(t *testing.T) {
	m, err := scalar.NewModule("/scalar", "qit API", "/api/openapi.json")
	require.NoError(t, err)

	router := module.NewRouter()
	router.Mount(m)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/scalar/missing.js", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
