package router

import (
	"net/http"

	"supermarket/internal/handler"
	"supermarket/internal/metrics"
	"supermarket/internal/middleware"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Product  *handler.ProductHandler
	Offer    *handler.OfferHandler
	Checkout *handler.CheckoutHandler
	Receipt  *handler.ReceiptHandler
}

// New creates a new HTTP router with all routes and middleware configured.
// gatherer backs the /metrics endpoint; nil means the default registry.
func New(
	h Handlers,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", h.Product.GetAll)
	mux.HandleFunc("/api/products/", h.Product.GetAll)

	mux.Handle("/api/offers", h.Offer)
	mux.Handle("/api/offers/", h.Offer)

	mux.HandleFunc("/api/checkout", h.Checkout.Create)
	mux.HandleFunc("/api/checkout/", h.Checkout.Create)

	mux.HandleFunc("/api/receipts/", h.Receipt.GetByID)

	// Apply middleware in order: Recovery -> Logging -> Metrics -> CORS -> APIKeyAuth
	var handler http.Handler = mux
	handler = middleware.APIKeyAuth(apiKey, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Metrics(m)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
