package router_test

import (
	"net/http"
	"net/url"
	"os"
	"testing"

	"github.com/gigbook/backend/internal/config"
	"github.com/gigbook/backend/internal/models"
	"github.com/gigbook/backend/internal/router"
	"github.com/gigbook/backend/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routerConfig(t *testing.T) config.Config {
	t.Setenv("API_URL", "http://example.com")
	return test.Config(t)
}

func TestGinMode(t *testing.T) {
	os.Setenv("GIN_MODE", "debug")
	url, _ := url.Parse("http://example.com")

	r, teardown, err := router.Config(url)
	defer teardown()

	assert.Nil(t, err, "Error on router initialization")

	router.AttachRoutes(r.Group("/"), routerConfig(t))

	assert.True(t, gin.IsDebugging())

	os.Unsetenv("GIN_MODE")
}

func TestPprofOn(t *testing.T) {
	t.Setenv("ENABLE_PPROF", "true")
	url, _ := url.Parse("http://example.com")

	r, teardown, err := router.Config(url)
	defer teardown()
	assert.Nil(t, err, "Error on router initialization")

	router.AttachRoutes(r.Group("/"), routerConfig(t))

	var routes []string
	for _, r := range r.Routes() {
		routes = append(routes, r.Path)
	}
	assert.Contains(t, routes, "/debug/pprof/")
}

func TestPprofOff(t *testing.T) {
	url, _ := url.Parse("http://example.com")

	r, teardown, err := router.Config(url)
	defer teardown()
	assert.Nil(t, err, "Error on router initialization")

	router.AttachRoutes(r.Group("/"), routerConfig(t))

	for _, r := range r.Routes() {
		assert.NotContains(t, r.Path, "pprof", "pprof routes are registered erroneously! Route: %s", r)
	}
}

// TestCorsSetting checks that setting of CORS works.
// It does not check the actual headers as this is already done in testing of the module.
func TestCorsSetting(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000 https://example.com")
	url, _ := url.Parse("http://example.com")

	_, teardown, err := router.Config(url)
	defer teardown()

	assert.Nil(t, err)
}

func TestRoutes(t *testing.T) {
	require.Nil(t, models.Connect(test.TmpFile(t)))
	t.Setenv("API_URL", "http://example.com/api")

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "http://example.com/", http.StatusOK},
		{http.MethodGet, "http://example.com/healthz", http.StatusNoContent},
		{http.MethodGet, "http://example.com/version", http.StatusOK},
		{http.MethodGet, "http://example.com/metrics", http.StatusOK},
		{http.MethodGet, "http://example.com/docs/index.html", http.StatusOK},
		{http.MethodPatch, "http://example.com/version", http.StatusMethodNotAllowed},
		{http.MethodGet, "http://example.com/v1", http.StatusUnauthorized},
		{http.MethodPost, "http://example.com/v1/forecasts", http.StatusUnauthorized},
		{http.MethodGet, "http://example.com/v1/forecast-settings", http.StatusUnauthorized},
		{http.MethodGet, "http://example.com/v1/forecast-overrides", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			r := test.Request(t, tt.method, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func TestRootLinks(t *testing.T) {
	require.Nil(t, models.Connect(test.TmpFile(t)))
	t.Setenv("API_URL", "https://books.example.com/api")

	r := test.Request(t, http.MethodGet, "https://books.example.com/", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response struct {
		Links map[string]string `json:"links"`
	}
	test.DecodeResponse(t, &r, &response)

	assert.Equal(t, "https://books.example.com/api/v1", response.Links["v1"])
	assert.Equal(t, "https://books.example.com/api/metrics", response.Links["metrics"])
}

func TestV1Links(t *testing.T) {
	require.Nil(t, models.Connect(test.TmpFile(t)))
	t.Setenv("API_URL", "http://example.com")

	r := test.Request(t, http.MethodGet, "http://example.com/v1", "", test.Admin(t))
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response struct {
		Links map[string]string `json:"links"`
	}
	test.DecodeResponse(t, &r, &response)
	assert.Equal(t, "http://example.com/v1/forecasts", response.Links["forecasts"])
}
