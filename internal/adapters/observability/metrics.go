package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ReviewsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "skyfeedback", Name: "reviews_generated_total", Help: "Synthetic reviews generated."},
	)
	ReviewRatings = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "skyfeedback", Name: "review_ratings_total", Help: "Generated ratings by airline."},
		[]string{"airline", "rating"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "skyfeedback", Name: "http_requests_total", Help: "Ops endpoint requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "skyfeedback", Name: "http_request_duration_seconds",
			Help:    "Ops endpoint request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(ReviewsGenerated, ReviewRatings, HTTPRequests, HTTPLatency)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveReview(airline string, rating int) {
	ReviewsGenerated.Inc()
	ReviewRatings.WithLabelValues(airline, strconv.Itoa(rating)).Inc()
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}
