package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitconv-cli/unitconv/internal/api"
)

func newTestServer(t *testing.T) (*api.Server, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return api.NewServer(":0", reg, reg), reg
}

func get(srv http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestConvertReturnsResult(t *testing.T) {
	srv, reg := newTestServer(t)

	rec := get(srv, "/convert?category=length&value=1&from=Kilometer&to=Meter")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Length", body["category"])
	assert.Equal(t, 1000.0, body["result"])
	assert.Equal(t, "1000.0000", body["formatted"])
	assert.Equal(t, "1 Kilometer = 1000.0000 Meter", body["text"])

	count, err := testutil.GatherAndCount(reg, "unitconv_conversions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestConvertTemperature(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(srv, "/convert?category=Temperature&value=100&from=Celsius&to=Fahrenheit")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 212.0, body["result"])
}

func TestConvertDefaultsValueToZero(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(srv, "/convert?category=Temperature&from=Celsius&to=Kelvin")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 273.15, body["result"])
}

func TestConvertInvalidUnitSuggests(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(srv, "/convert?category=Length&value=1&from=Meter&to=Furlong")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "Furlong")
	assert.NotEmpty(t, body.Suggestion)
}

func TestConvertRejectsBadInput(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, target := range []string{
		"/convert?category=Volume&value=1&from=Liter&to=Gallon",
		"/convert?category=Length&value=abc&from=Meter&to=Foot",
	} {
		rec := get(srv, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestConvertRejectsNonFiniteValues(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, value := range []string{"NaN", "Inf", "-Inf"} {
		rec := get(srv, "/convert?category=Length&value="+value+"&from=Meter&to=Kilometer")

		require.Equal(t, http.StatusBadRequest, rec.Code, value)
		var body api.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), value)
		assert.Contains(t, body.Error, "finite", value)
	}
}

func TestConvertReportsOverflow(t *testing.T) {
	srv, reg := newTestServer(t)

	rec := get(srv, "/convert?category=Length&value=1e308&from=Kilometer&to=Millimeter")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "overflows")

	count, err := testutil.GatherAndCount(reg, "unitconv_conversions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUnitsListsEveryCategory(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(srv, "/units")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 4)
	assert.Equal(t, []string{"Celsius", "Fahrenheit", "Kelvin"}, body["Temperature"])
}

func TestHealthzReturns200(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(srv, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestMetricsExposed(t *testing.T) {
	srv, _ := newTestServer(t)
	get(srv, "/convert?category=Time&value=1&from=Week&to=Second")

	rec := get(srv, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `unitconv_conversions_total{category="Time",outcome="success"} 1`))
}
