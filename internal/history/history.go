// Package history provides storage for computed quotes and a response cache
// shared across server replicas.
package history

import (
	"fmt"

	"github.com/happyhipo/propcost/internal/purchase"
)

// Store records computed quotes.
type Store interface {
	Save(in purchase.Input, quote purchase.Quote) error
}

// Cache is a key/value cache for serialized quote responses.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// QuoteKey builds the canonical cache key for a purchase input and loan
// terms. Identical inputs always map to the same key, so cached entries are
// safe to serve in place of recomputation.
func QuoteKey(in purchase.Input, annualRatePercent, termYears float64) string {
	return fmt.Sprintf("quote:%.2f:%.2f:%.2f:%.2f:%.2f",
		in.PropertyPrice, in.CommissionPercentage, in.DownPayment, annualRatePercent, termYears)
}
