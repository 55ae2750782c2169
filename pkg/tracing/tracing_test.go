package tracing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/trace"

	"github.com/Notifuse/designer/config"
)

func TestInitTracing_Disabled(t *testing.T) {
	assert.NoError(t, InitTracing(&config.TracingConfig{Enabled: false}))
}

func TestInitTracing_Enabled(t *testing.T) {
	err := InitTracing(&config.TracingConfig{Enabled: true, ServiceName: "test", SamplingProbability: 1})
	assert.NoError(t, err)
}

func TestInitTracing_Exporters(t *testing.T) {
	t.Run("unknown trace exporter", func(t *testing.T) {
		err := InitTracing(&config.TracingConfig{Enabled: true, SamplingProbability: 1, TraceExporter: "carrier-pigeon"})
		assert.ErrorContains(t, err, "unsupported trace exporter")
	})

	t.Run("jaeger without endpoint", func(t *testing.T) {
		err := InitTracing(&config.TracingConfig{Enabled: true, SamplingProbability: 1, TraceExporter: "jaeger"})
		assert.ErrorContains(t, err, "Jaeger endpoint is required")
	})

	t.Run("zipkin", func(t *testing.T) {
		err := InitTracing(&config.TracingConfig{
			Enabled:             true,
			SamplingProbability: 1,
			TraceExporter:       "zipkin",
			ZipkinEndpoint:      "http://127.0.0.1:9411/api/v2/spans",
		})
		assert.NoError(t, err)
	})

	t.Run("stackdriver without project id", func(t *testing.T) {
		err := InitTracing(&config.TracingConfig{Enabled: true, SamplingProbability: 1, TraceExporter: "stackdriver"})
		assert.ErrorContains(t, err, "Stackdriver project ID is required")
	})

	t.Run("datadog without agent address", func(t *testing.T) {
		err := InitTracing(&config.TracingConfig{Enabled: true, SamplingProbability: 1, TraceExporter: "datadog"})
		assert.ErrorContains(t, err, "Datadog agent address is required")
	})

	t.Run("xray without region", func(t *testing.T) {
		err := InitTracing(&config.TracingConfig{Enabled: true, SamplingProbability: 1, TraceExporter: "xray"})
		assert.ErrorContains(t, err, "AWS region is required")
	})

	t.Run("stackdriver metrics without project id", func(t *testing.T) {
		err := InitTracing(&config.TracingConfig{Enabled: true, SamplingProbability: 1, MetricsExporter: "stackdriver"})
		assert.ErrorContains(t, err, "Stackdriver project ID is required")
	})

	t.Run("datadog metrics without agent address", func(t *testing.T) {
		err := InitTracing(&config.TracingConfig{Enabled: true, SamplingProbability: 1, MetricsExporter: "datadog"})
		assert.ErrorContains(t, err, "Datadog agent address is required")
	})

	t.Run("unknown metrics exporter", func(t *testing.T) {
		err := InitTracing(&config.TracingConfig{Enabled: true, SamplingProbability: 1, MetricsExporter: "graphite"})
		assert.ErrorContains(t, err, "unsupported metrics exporter")
	})

	t.Run("prometheus exposes a scrape handler", func(t *testing.T) {
		err := InitTracing(&config.TracingConfig{
			Enabled:             true,
			ServiceName:         "email-designer",
			SamplingProbability: 1,
			MetricsExporter:     "prometheus",
		})
		require.NoError(t, err)
		handler := MetricsHandler()
		require.NotNil(t, handler)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestServiceSpan(t *testing.T) {
	ctx, span := StartServiceSpan(context.Background(), "TemplateStoreClient", "FetchTemplate")
	require.NotNil(t, span)
	assert.Equal(t, span, trace.FromContext(ctx))

	AddAttribute(ctx, "template_id", "7")
	AddAttribute(ctx, "status", 200)
	AddAttribute(ctx, "count", int64(2))
	AddAttribute(ctx, "new", true)
	AddAttribute(ctx, "other", 1.5)
	EndSpan(span, errors.New("boom"))

	// no span in context is a no-op
	AddAttribute(context.Background(), "k", "v")
}

func TestWrapHTTPClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := WrapHTTPClient(nil, 5*time.Second)
	assert.Equal(t, 5*time.Second, client.Timeout)
	_, ok := client.Transport.(*ochttp.Transport)
	assert.True(t, ok)

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	existing := &http.Client{Timeout: time.Second}
	assert.Equal(t, time.Second, WrapHTTPClient(existing, time.Minute).Timeout)
}

func TestWrapHandler(t *testing.T) {
	h := WrapHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/p/config", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRegisterSQLDriver(t *testing.T) {
	name := RegisterSQLDriver("postgres-test", &pq.Driver{})
	assert.Equal(t, "postgres-test-ocsql", name)
	// second registration returns the same name without panicking
	assert.Equal(t, name, RegisterSQLDriver("postgres-test", &pq.Driver{}))
}
