// Package metrics exposes Prometheus collectors for the tracker API.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "exercise_tracker"

var (
	UsersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users registered.",
	})
	ExercisesLogged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exercises_logged_total",
		Help:      "Total number of exercises stored.",
	})
	LogEntriesReturned = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "log_entries_returned",
		Help:      "Number of entries returned per exercise log query.",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 500},
	})

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(UsersCreated, ExercisesLogged, LogEntriesReturned, httpRequests, httpDuration)
}

// Middleware records the count and latency of every request. Routes are
// labelled by their pattern, not the concrete path.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}
		route := c.Route().Path
		method := c.Method()

		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler serves the default Prometheus registry.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
