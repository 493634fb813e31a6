// Package metrics defines and registers all custom Prometheus metrics for the
// portal. It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// UpstreamRequestsTotal counts calls to the catalog backend.
// Labels:
//   - endpoint: the backend path, e.g. "/auth/me"
//   - status: HTTP status code, or "error" when the transport failed
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests issued to the catalog backend.",
	},
	[]string{"endpoint", "status"},
)

// AuthChecksTotal counts session validation attempts.
// Label:
//   - result: "valid", "invalid", "timeout", "skipped", "no_token"
var AuthChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_checks_total",
		Help:      "Total number of session validation attempts, by result.",
	},
	[]string{"result"},
)

// SessionAuthenticated reports whether the portal currently holds an
// authenticated backend session (1) or not (0).
var SessionAuthenticated = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "session_authenticated",
		Help:      "Whether the portal session is currently authenticated.",
	},
)

// QuoteLinksTotal counts WhatsApp quote links built for products.
var QuoteLinksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quote_links_total",
		Help:      "Total number of WhatsApp quote links generated.",
	},
)
