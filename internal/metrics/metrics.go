package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MLR-5819/FSND-Fyyur/internal/models"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fyyur_http_requests_total",
			Help: "Total HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fyyur_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	notices = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fyyur_notices_total",
			Help: "Flash notices shown to users by category",
		},
		[]string{"category"},
	)

	catalogRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fyyur_catalog_records",
			Help: "Current number of catalog records",
		},
		[]string{"kind"},
	)

	consumedEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fyyur_consumed_events_total",
			Help: "Domain events handled by the consumers process",
		},
		[]string{"subject", "status"},
	)
)

// TrackRequest records one served request. An empty route means no route matched.
func TrackRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func TrackNotice(category string) {
	notices.WithLabelValues(category).Inc()
}

func TrackConsumedEvent(subject string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	consumedEvents.WithLabelValues(subject, status).Inc()
}

// SetCatalogStats publishes the latest catalog counts.
func SetCatalogStats(s *models.CatalogStats) {
	catalogRecords.WithLabelValues("venues").Set(float64(s.Venues))
	catalogRecords.WithLabelValues("artists").Set(float64(s.Artists))
	catalogRecords.WithLabelValues("upcoming_shows").Set(float64(s.UpcomingShows))
	catalogRecords.WithLabelValues("past_shows").Set(float64(s.PastShows))
}
