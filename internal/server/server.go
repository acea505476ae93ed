// Package server exposes the purchase calculator as a JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/happyhipo/propcost/internal/history"
	"github.com/happyhipo/propcost/internal/metrics"
	"github.com/happyhipo/propcost/internal/purchase"
	"github.com/happyhipo/propcost/internal/tracing"
	"github.com/happyhipo/propcost/pkg/constants"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	store       history.Store
	cache       history.Cache
}

// NewHandler constructs the HTTP handler that serves the quote API. A nil
// limiter disables rate limiting; nil store/cache disable history recording
// and response caching.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string, store history.Store, cache history.Cache, limiter *RateLimiter) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
		store:       store,
		cache:       cache,
	}

	limited := func(next http.HandlerFunc) http.Handler {
		if limiter == nil {
			return next
		}
		return RateLimitMiddleware(limiter, next)
	}

	mux := http.NewServeMux()

	// Full quote: breakdown + scenarios + amortization
	mux.Handle("/api/quote", limited(h.handleQuote))

	// Amortization summary for arbitrary loan terms
	mux.Handle("/api/payment", limited(h.handlePayment))

	// Metadata and operational endpoints
	mux.HandleFunc("/api/version", h.handleVersion)
	mux.HandleFunc("/healthz", h.handleHealthz)
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

// quoteRequest is the JSON payload for /api/quote. Loan terms are optional;
// without them the amortization summary is zero.
type quoteRequest struct {
	PropertyPrice        float64 `json:"propertyPrice"`
	CommissionPercentage float64 `json:"commissionPercentage"`
	DownPayment          float64 `json:"downPayment"`
	AnnualRatePercent    float64 `json:"annualRatePercent"`
	TermYears            float64 `json:"termYears"`
}

type quoteResponse struct {
	purchase.Quote
	Cached   bool   `json:"cached,omitempty"`
	Duration string `json:"duration"`
}

func (h *handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleQuote"

	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.QuoteRequests.WithLabelValues("quote", "error").Inc()
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	// The calculator requires a positive price before computing; the core
	// enforces this too, but the boundary rejects early with the same check
	// the interactive form applied.
	if req.PropertyPrice <= 0 {
		metrics.QuoteRequests.WithLabelValues("quote", "error").Inc()
		metrics.CalculationErrors.WithLabelValues("quote", "zero_property_price").Inc()
		h.respondError(w, http.StatusBadRequest, "property price must be greater than zero", op)
		return
	}

	in := purchase.Input{
		PropertyPrice:        req.PropertyPrice,
		CommissionPercentage: req.CommissionPercentage,
		DownPayment:          req.DownPayment,
	}

	if quote, ok := h.cachedQuote(in, req.AnnualRatePercent, req.TermYears); ok {
		metrics.QuoteRequests.WithLabelValues("quote", "ok").Inc()
		h.writeJSON(w, http.StatusOK, quoteResponse{
			Quote:    quote,
			Cached:   true,
			Duration: time.Since(start).String(),
		})
		return
	}

	quote, err := h.computeQuote(r, in, req.AnnualRatePercent, req.TermYears)
	if err != nil {
		metrics.QuoteRequests.WithLabelValues("quote", "error").Inc()
		metrics.CalculationErrors.WithLabelValues("quote", errorType(err)).Inc()
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.recordQuote(in, req.AnnualRatePercent, req.TermYears, quote, op)

	elapsed := time.Since(start)
	h.logger.Info("quote computed",
		zap.String("op", op),
		zap.Float64("propertyPrice", req.PropertyPrice),
		zap.Float64("mortgagePercentage", quote.Breakdown.MortgagePercentage),
		zap.Duration("duration", elapsed),
	)

	metrics.QuoteRequests.WithLabelValues("quote", "ok").Inc()
	h.writeJSON(w, http.StatusOK, quoteResponse{
		Quote:    quote,
		Duration: elapsed.String(),
	})
}

func (h *handler) computeQuote(r *http.Request, in purchase.Input, rate, years float64) (purchase.Quote, error) {
	if tracing.Tracer != nil {
		_, span := tracing.Tracer.Start(r.Context(), "purchase.ComputeQuote")
		defer span.End()
	}
	return purchase.ComputeQuote(in, rate, years)
}

// cachedQuote returns a previously computed quote for identical inputs.
func (h *handler) cachedQuote(in purchase.Input, rate, years float64) (purchase.Quote, bool) {
	if h.cache == nil {
		return purchase.Quote{}, false
	}

	raw, ok := h.cache.Get(history.QuoteKey(in, rate, years))
	if !ok {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return purchase.Quote{}, false
	}

	var quote purchase.Quote
	if err := json.Unmarshal([]byte(raw), &quote); err != nil {
		h.logger.Warn("failed to decode cached quote",
			zap.String("op", "server.cachedQuote"),
			zap.Error(err),
		)
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return purchase.Quote{}, false
	}

	metrics.CacheLookups.WithLabelValues("hit").Inc()
	return quote, true
}

// recordQuote persists the quote to the history store and cache. Failures
// are logged and do not fail the request.
func (h *handler) recordQuote(in purchase.Input, rate, years float64, quote purchase.Quote, op string) {
	if h.store != nil {
		if err := h.store.Save(in, quote); err != nil {
			h.logger.Warn("failed to save quote history",
				zap.String("op", op),
				zap.Error(err),
			)
		}
	}

	if h.cache != nil {
		raw, err := json.Marshal(quote)
		if err == nil {
			err = h.cache.Set(history.QuoteKey(in, rate, years), string(raw))
		}
		if err != nil {
			h.logger.Warn("failed to cache quote",
				zap.String("op", op),
				zap.Error(err),
			)
		}
	}
}

func (h *handler) handlePayment(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePayment"

	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var terms purchase.Terms
	if err := json.NewDecoder(r.Body).Decode(&terms); err != nil {
		metrics.QuoteRequests.WithLabelValues("payment", "error").Inc()
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	// Degenerate terms yield a zero summary by contract, not an error.
	summary := purchase.Summarize(terms)

	metrics.QuoteRequests.WithLabelValues("payment", "ok").Inc()
	h.writeJSON(w, http.StatusOK, summary)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func errorType(err error) string {
	switch {
	case errors.Is(err, purchase.ErrZeroPropertyPrice):
		return "zero_property_price"
	case errors.Is(err, purchase.ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
