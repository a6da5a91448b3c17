package observability

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler exposes the Prometheus scrape endpoint through Fiber. Both
// metric families are forced into the registry first so the endpoint never
// scrapes empty before the first request or login.
func MetricsHandler() fiber.Handler {
	RegisterMetrics()
	LoginFailures()

	scrape := promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{})
	return adaptor.HTTPHandler(scrape)
}
