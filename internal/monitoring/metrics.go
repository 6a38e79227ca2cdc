package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ticketsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickets_sold_total",
			Help: "Tickets sold per event",
		},
		[]string{"event_id", "category"},
	)

	ticketsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tickets_cancelled_total",
			Help: "Total cancelled tickets",
		},
	)

	ticketsValidated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickets_validated_total",
			Help: "Gate validations by outcome",
		},
		[]string{"status"},
	)
)

// TrackTicketSale records sold ticket units for an event category.
func TrackTicketSale(eventID, category string, quantity int) {
	ticketsSold.WithLabelValues(eventID, category).Add(float64(quantity))
}

// TrackTicketCancellation records one cancelled ticket.
func TrackTicketCancellation() {
	ticketsCancelled.Inc()
}

// TrackValidation records a gate scan outcome, "accepted" or "rejected".
func TrackValidation(status string) {
	ticketsValidated.WithLabelValues(status).Inc()
}

// Middleware records request counts and latency per route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
