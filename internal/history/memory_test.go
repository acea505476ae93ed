package history

import (
	"testing"

	"github.com/happyhipo/propcost/internal/purchase"
)

func TestMemoryStoreRecent(t *testing.T) {
	store := NewMemoryStore()

	inputs := []purchase.Input{
		{PropertyPrice: 100000, CommissionPercentage: 3, DownPayment: 20000},
		{PropertyPrice: 200000, CommissionPercentage: 3.5, DownPayment: 42000},
		{PropertyPrice: 300000, CommissionPercentage: 4, DownPayment: 60000},
	}
	for _, in := range inputs {
		quote, err := purchase.ComputeQuote(in, 2.5, 30)
		if err != nil {
			t.Fatalf("ComputeQuote() unexpected error: %v", err)
		}
		if err := store.Save(in, quote); err != nil {
			t.Fatalf("Save() unexpected error: %v", err)
		}
	}

	recent := store.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("Recent(2) returned %d entries, expected 2", len(recent))
	}
	if recent[0].Input.PropertyPrice != 300000 {
		t.Errorf("Recent(2)[0].PropertyPrice = %v, expected newest entry 300000", recent[0].Input.PropertyPrice)
	}
	if recent[1].Input.PropertyPrice != 200000 {
		t.Errorf("Recent(2)[1].PropertyPrice = %v, expected 200000", recent[1].Input.PropertyPrice)
	}

	if got := store.Recent(10); len(got) != 3 {
		t.Errorf("Recent(10) returned %d entries, expected all 3", len(got))
	}
	if got := store.Recent(0); got != nil {
		t.Errorf("Recent(0) = %v, expected nil", got)
	}
}

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache()

	if _, ok := cache.Get("missing"); ok {
		t.Error("Get() on empty cache reported a hit")
	}
	if err := cache.Set("k", "v"); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}
	val, ok := cache.Get("k")
	if !ok || val != "v" {
		t.Errorf("Get(k) = (%q, %v), expected (v, true)", val, ok)
	}
}

func TestQuoteKey(t *testing.T) {
	in := purchase.Input{PropertyPrice: 200000, CommissionPercentage: 3.5, DownPayment: 42000}

	first := QuoteKey(in, 2.5, 30)
	second := QuoteKey(in, 2.5, 30)
	if first != second {
		t.Errorf("QuoteKey() not deterministic: %q vs %q", first, second)
	}

	other := QuoteKey(in, 3.0, 30)
	if first == other {
		t.Errorf("QuoteKey() collided for different rates: %q", first)
	}
}
