package tracing

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"contrib.go.opencensus.io/exporter/aws"
	"contrib.go.opencensus.io/exporter/jaeger"
	"contrib.go.opencensus.io/exporter/prometheus"
	"contrib.go.opencensus.io/exporter/stackdriver"
	"contrib.go.opencensus.io/exporter/zipkin"
	"contrib.go.opencensus.io/integrations/ocsql"
	datadog "github.com/DataDog/opencensus-go-exporter-datadog"
	zipkinhttp "github.com/openzipkin/zipkin-go/reporter/http"
	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/trace"

	"github.com/Notifuse/designer/config"
)

var (
	metricsMu      sync.RWMutex
	metricsHandler http.Handler
)

// InitTracing applies the sampler, registers the HTTP and database views and
// the configured exporters. With exporters set to "none" spans stay in-process.
func InitTracing(tracingConfig *config.TracingConfig) error {
	if !tracingConfig.Enabled {
		return nil
	}

	trace.ApplyConfig(trace.Config{
		DefaultSampler: trace.ProbabilitySampler(tracingConfig.SamplingProbability),
	})

	if err := view.Register(ochttp.DefaultServerViews...); err != nil {
		return fmt.Errorf("failed to register HTTP server views: %w", err)
	}
	if err := view.Register(ochttp.DefaultClientViews...); err != nil {
		return fmt.Errorf("failed to register HTTP client views: %w", err)
	}
	if err := view.Register(ocsql.DefaultViews...); err != nil {
		return fmt.Errorf("failed to register database views: %w", err)
	}

	if err := initTraceExporter(tracingConfig); err != nil {
		return err
	}
	return initMetricsExporter(tracingConfig)
}

func initTraceExporter(cfg *config.TracingConfig) error {
	switch strings.ToLower(cfg.TraceExporter) {
	case "jaeger":
		if cfg.JaegerEndpoint == "" {
			return fmt.Errorf("Jaeger endpoint is required for Jaeger exporter")
		}
		je, err := jaeger.NewExporter(jaeger.Options{
			CollectorEndpoint: cfg.JaegerEndpoint,
			Process:           jaeger.Process{ServiceName: cfg.ServiceName},
		})
		if err != nil {
			return fmt.Errorf("failed to create Jaeger exporter: %w", err)
		}
		trace.RegisterExporter(je)
		return nil
	case "zipkin":
		if cfg.ZipkinEndpoint == "" {
			return fmt.Errorf("Zipkin endpoint is required for Zipkin exporter")
		}
		trace.RegisterExporter(zipkin.NewExporter(zipkinhttp.NewReporter(cfg.ZipkinEndpoint), nil))
		return nil
	case "stackdriver":
		se, err := newStackdriverExporter(cfg)
		if err != nil {
			return err
		}
		trace.RegisterExporter(se)
		return nil
	case "datadog":
		de, err := newDatadogExporter(cfg)
		if err != nil {
			return err
		}
		trace.RegisterExporter(de)
		return nil
	case "xray":
		if cfg.XRayRegion == "" {
			return fmt.Errorf("AWS region is required for X-Ray exporter")
		}
		xe, err := aws.NewExporter(aws.WithRegion(cfg.XRayRegion), aws.WithVersion("latest"))
		if err != nil {
			return fmt.Errorf("failed to create AWS X-Ray exporter: %w", err)
		}
		trace.RegisterExporter(xe)
		return nil
	case "none", "":
		return nil
	default:
		return fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}
}

func initMetricsExporter(cfg *config.TracingConfig) error {
	switch strings.ToLower(cfg.MetricsExporter) {
	case "prometheus":
		pe, err := prometheus.NewExporter(prometheus.Options{
			Namespace: strings.ReplaceAll(cfg.ServiceName, "-", "_"),
		})
		if err != nil {
			return fmt.Errorf("failed to create Prometheus exporter: %w", err)
		}
		view.RegisterExporter(pe)
		metricsMu.Lock()
		metricsHandler = pe
		metricsMu.Unlock()
		return nil
	case "stackdriver":
		se, err := newStackdriverExporter(cfg)
		if err != nil {
			return err
		}
		view.RegisterExporter(se)
		return nil
	case "datadog":
		de, err := newDatadogExporter(cfg)
		if err != nil {
			return err
		}
		view.RegisterExporter(de)
		return nil
	case "none", "":
		return nil
	default:
		return fmt.Errorf("unsupported metrics exporter: %s", cfg.MetricsExporter)
	}
}

func newStackdriverExporter(cfg *config.TracingConfig) (*stackdriver.Exporter, error) {
	if cfg.StackdriverProjectID == "" {
		return nil, fmt.Errorf("Stackdriver project ID is required for Stackdriver exporter")
	}
	se, err := stackdriver.NewExporter(stackdriver.Options{
		ProjectID:    cfg.StackdriverProjectID,
		MetricPrefix: cfg.ServiceName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Stackdriver exporter: %w", err)
	}
	return se, nil
}

// newDatadogExporter builds one exporter for both traces and stats; the
// agent receives them on the same address
func newDatadogExporter(cfg *config.TracingConfig) (*datadog.Exporter, error) {
	if cfg.DatadogAgentAddress == "" {
		return nil, fmt.Errorf("Datadog agent address is required for Datadog exporter")
	}
	options := datadog.Options{
		Service:   cfg.ServiceName,
		TraceAddr: cfg.DatadogAgentAddress,
		StatsAddr: cfg.DatadogAgentAddress,
	}
	if cfg.DatadogAPIKey != "" {
		options.GlobalTags = map[string]interface{}{"api_key": cfg.DatadogAPIKey}
	}
	de, err := datadog.NewExporter(options)
	if err != nil {
		return nil, fmt.Errorf("failed to create Datadog exporter: %w", err)
	}
	return de, nil
}

// MetricsHandler serves the Prometheus scrape endpoint, or nil when no
// Prometheus exporter was initialized
func MetricsHandler() http.Handler {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	return metricsHandler
}

// RegisterSQLDriver wraps a database driver with ocsql and registers it under
// a derived name, which is returned for use with sql.Open. Registering the
// same driver twice returns the existing name.
func RegisterSQLDriver(driverName string, d driver.Driver) string {
	name := driverName + "-ocsql"
	for _, registered := range sql.Drivers() {
		if registered == name {
			return name
		}
	}
	sql.Register(name, ocsql.Wrap(d,
		ocsql.WithQuery(true),
		ocsql.WithRowsNext(false),
		ocsql.WithAllowRoot(false),
	))
	return name
}

// GetHTTPOptions returns options for HTTP client tracing
func GetHTTPOptions() ochttp.Transport {
	return ochttp.Transport{
		FormatSpanName: func(req *http.Request) string {
			return fmt.Sprintf("%s %s", req.Method, req.URL.Path)
		},
	}
}

// WrapHandler instruments an HTTP server handler
func WrapHandler(h http.Handler) http.Handler {
	return &ochttp.Handler{
		Handler: h,
		FormatSpanName: func(req *http.Request) string {
			return fmt.Sprintf("%s %s", req.Method, req.URL.Path)
		},
	}
}

// StartSpan starts a new span with the given name and returns a context with the span
func StartSpan(ctx context.Context, name string) (context.Context, *trace.Span) {
	return trace.StartSpan(ctx, name)
}
