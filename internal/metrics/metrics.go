package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "users_http_requests_total",
			Help: "Total number of users service HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "users_http_requests_in_flight",
			Help: "Number of users service HTTP requests currently being processed",
		},
	)

	RequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "users_http_request_duration_seconds",
			Help:    "Duration of users service HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	UsersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "users_created_total",
			Help: "Total number of users created",
		},
	)

	DuplicateEmailTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "users_duplicate_email_total",
			Help: "Total number of create requests rejected because the email already exists",
		},
	)
)

// StatusRecorder запоминает код ответа, записанный обработчиком.
type StatusRecorder struct {
	http.ResponseWriter
	Status int
}

func NewStatusRecorder(w http.ResponseWriter) *StatusRecorder {
	return &StatusRecorder{ResponseWriter: w, Status: http.StatusOK}
}

func (r *StatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

// Wrap instruments next under a fixed route label so path parameters
// do not blow up label cardinality. A panicking handler is counted as 5xx
// and the panic is passed on to the recovery middleware.
func Wrap(route string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		RequestsInFlight.Inc()
		defer RequestsInFlight.Dec()

		rec := NewStatusRecorder(w)
		panicked := true
		defer func() {
			status := rec.Status
			if panicked {
				status = http.StatusInternalServerError
			}
			statusClass := fmt.Sprintf("%dxx", status/100)
			RequestsTotal.WithLabelValues(r.Method, route, statusClass).Inc()
			RequestDurationSeconds.WithLabelValues(r.Method, route, statusClass).Observe(time.Since(start).Seconds())
		}()

		next.ServeHTTP(rec, r)
		panicked = false
	})
}
