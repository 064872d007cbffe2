// Package metrics holds the Prometheus collectors of the backend.
package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gigbook/backend/internal/forecast"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Results of a forecast run.
const (
	ResultSuccess     = "success"
	ResultInvalid     = "invalid"
	ResultDataAccess  = "data_access_error"
	ResultUnavailable = "error"
)

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

var forecastRuns = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "forecast_runs_total",
		Help: "How many forecasts were generated, partitioned by result.",
	},
	[]string{"result"},
)

var forecastDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "forecast_duration_seconds",
		Help:    "Time taken to read all inputs and compute a forecast.",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
	},
)

var skippedRecords = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "forecast_skipped_records_total",
		Help: "Records excluded from forecasts, partitioned by reason.",
	},
	[]string{"reason"},
)

var collectors = []prometheus.Collector{
	requestCount,
	requestDuration,
	forecastRuns,
	forecastDuration,
	skippedRecords,
}

// Register registers all collectors with the default registry.
func Register() error {
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return nil
}

// Unregister unregisters all collectors.
//
// This is needed to cleanly exit.
func Unregister() bool {
	ok := true
	for _, c := range collectors {
		if !prometheus.Unregister(c) {
			ok = false
		}
	}

	return ok
}

// Handler serves the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// Middleware updates the request metrics.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// Replace all URL parameters with their name to reduce cardinality
		// https://prometheus.io/docs/practices/naming/#labels
		url := c.Request.URL.Path
		for _, p := range c.Params {
			url = strings.Replace(url, p.Value, fmt.Sprintf(":%s", p.Key), 1)
		}

		requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}

// ObserveForecast records a finished forecast run.
func ObserveForecast(result string, elapsed time.Duration, skipped forecast.Skipped) {
	forecastRuns.WithLabelValues(result).Inc()
	forecastDuration.Observe(elapsed.Seconds())

	for reason, count := range skipped.Reasons() {
		if count > 0 {
			skippedRecords.WithLabelValues(reason).Add(float64(count))
		}
	}
}

// Result maps the error of a forecast run to its result label.
func Result(err error) string {
	var dataErr *forecast.DataAccessError

	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, forecast.ErrInvalidHorizon):
		return ResultInvalid
	case errors.As(err, &dataErr):
		return ResultDataAccess
	default:
		return ResultUnavailable
	}
}
