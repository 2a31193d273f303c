package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ImportRecords counts importer outcomes. outcome: inserted, duplicate, error, skipped.
	ImportRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_import_records_total",
		Help: "Records processed by the importer, by kind and outcome",
	}, []string{"kind", "outcome"})

	// ImportDuration observes whole import runs.
	ImportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "inventory_import_duration_seconds",
		Help:    "Duration of import runs",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	})

	// AssetDeletions counts lifecycle deletions. trigger: remove, replace, key, url.
	AssetDeletions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_asset_deletions_total",
		Help: "Object deletions issued by the asset lifecycle manager",
	}, []string{"trigger", "outcome"})

	// OrphanObjects is the orphan count of the latest reconciliation scan per prefix.
	OrphanObjects = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "inventory_orphan_objects",
		Help: "Objects in storage not referenced by any entity, as of the last scan",
	}, []string{"prefix"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_http_requests_total",
		Help: "HTTP requests served",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inventory_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// HTTPMiddleware records request counts and latency labelled by route pattern
// (e.g. /api/images/:key) so path parameters do not explode cardinality.
func HTTPMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		path := c.Route().Path

		httpRequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}
