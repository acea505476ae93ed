package server

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/happyhipo/propcost/internal/history"
	"github.com/happyhipo/propcost/internal/purchase"
)

func newTestHandler() http.Handler {
	return NewHandler(zap.NewNop(), 0, "test", history.NewMemoryStore(), history.NewMemoryCache(), nil)
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const referenceQuoteBody = `{
	"propertyPrice": 200000,
	"commissionPercentage": 3.5,
	"downPayment": 42000,
	"annualRatePercent": 2.5,
	"termYears": 30
}`

func TestHandleQuote(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h, "/api/quote", referenceQuoteBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /api/quote status = %d, expected 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp quoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if math.Abs(resp.Breakdown.TotalCost-221770) > 1e-9 {
		t.Errorf("totalCost = %v, expected 221770", resp.Breakdown.TotalCost)
	}
	if len(resp.Scenarios) != 4 || resp.Scenarios[0].Percentage != 95 {
		t.Errorf("scenarios = %+v, expected 4 tiers starting at 95", resp.Scenarios)
	}
	if math.Abs(resp.Amortization.MonthlyPayment-710.31) > 0.01 {
		t.Errorf("monthlyPayment = %.2f, expected 710.31", resp.Amortization.MonthlyPayment)
	}
	if resp.Risk != purchase.RiskHigh {
		t.Errorf("risk = %q, expected high", resp.Risk)
	}
	if resp.Cached {
		t.Error("first request reported cached = true")
	}
	if resp.Duration == "" {
		t.Error("duration missing from response")
	}
}

func TestHandleQuoteCacheHit(t *testing.T) {
	h := newTestHandler()

	if rec := postJSON(t, h, "/api/quote", referenceQuoteBody); rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d, expected 200", rec.Code)
	}

	rec := postJSON(t, h, "/api/quote", referenceQuoteBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("second request status = %d, expected 200", rec.Code)
	}

	var resp quoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Cached {
		t.Error("identical repeat request was not served from cache")
	}
	if math.Abs(resp.Breakdown.TotalCost-221770) > 1e-9 {
		t.Errorf("cached totalCost = %v, expected 221770", resp.Breakdown.TotalCost)
	}
}

func TestHandleQuoteErrors(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{name: "Zero property price", body: `{"propertyPrice": 0}`, expectedStatus: http.StatusBadRequest},
		{name: "Negative property price", body: `{"propertyPrice": -5}`, expectedStatus: http.StatusBadRequest},
		{name: "Commission above 100", body: `{"propertyPrice": 200000, "commissionPercentage": 101}`, expectedStatus: http.StatusBadRequest},
		{name: "Negative down payment", body: `{"propertyPrice": 200000, "downPayment": -1}`, expectedStatus: http.StatusBadRequest},
		{name: "Malformed JSON", body: `{`, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h, "/api/quote", tt.body)
			if rec.Code != tt.expectedStatus {
				t.Errorf("status = %d, expected %d; body: %s", rec.Code, tt.expectedStatus, rec.Body.String())
			}

			var payload map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
				t.Fatalf("failed to decode error envelope: %v", err)
			}
			if payload["error"] == "" {
				t.Error("error envelope missing error message")
			}
		})
	}
}

func TestHandleQuoteMethodNotAllowed(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/quote", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /api/quote status = %d, expected 405", rec.Code)
	}
}

func TestHandleQuoteBodyTooLarge(t *testing.T) {
	h := NewHandler(zap.NewNop(), 16, "test", nil, nil, nil)

	rec := postJSON(t, h, "/api/quote", referenceQuoteBody)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("oversized body status = %d, expected 400", rec.Code)
	}
}

func TestHandlePayment(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h, "/api/payment", `{"financedAmount": 179770, "annualRatePercent": 2.5, "termYears": 30}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /api/payment status = %d, expected 200", rec.Code)
	}

	var summary purchase.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if math.Abs(summary.MonthlyPayment-710.31) > 0.01 {
		t.Errorf("monthlyPayment = %.2f, expected 710.31", summary.MonthlyPayment)
	}
	if summary.NumberOfPayments != 360 {
		t.Errorf("numberOfPayments = %d, expected 360", summary.NumberOfPayments)
	}
}

func TestHandlePaymentDegenerateLoan(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h, "/api/payment", `{"financedAmount": 0, "annualRatePercent": 2.5, "termYears": 30}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("degenerate loan status = %d, expected 200 (not an error by contract)", rec.Code)
	}

	var summary purchase.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if summary.MonthlyPayment != 0 || summary.TotalPaid != 0 {
		t.Errorf("summary = %+v, expected zero values", summary)
	}
}

func TestHandleVersion(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/version status = %d, expected 200", rec.Code)
	}

	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload["version"] != "test" {
		t.Errorf("version = %q, expected %q", payload["version"], "test")
	}
}

func TestHandleHealthz(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("GET /healthz status = %d, expected 200", rec.Code)
	}
}

func TestHandleQuoteSavesHistory(t *testing.T) {
	store := history.NewMemoryStore()
	h := NewHandler(zap.NewNop(), 0, "test", store, nil, nil)

	if rec := postJSON(t, h, "/api/quote", referenceQuoteBody); rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	recent := store.Recent(1)
	if len(recent) != 1 {
		t.Fatalf("store has %d entries, expected 1", len(recent))
	}
	if recent[0].Input.PropertyPrice != 200000 {
		t.Errorf("stored input price = %v, expected 200000", recent[0].Input.PropertyPrice)
	}
}
