package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Already two decimals", input: 1234.56, expected: 1234.56},
		{name: "Round up", input: 710.4649, expected: 710.46},
		{name: "Round half away from zero", input: 0.005, expected: 0.01},
		{name: "Negative value", input: -12.345, expected: -12.35},
		{name: "Zero", input: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCalculatePercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		total    float64
		expected float64
	}{
		{name: "Financed share of price", value: 179770, total: 200000, expected: 89.885},
		{name: "Full financing", value: 200000, total: 200000, expected: 100},
		{name: "Zero total", value: 100, total: 0, expected: 0},
		{name: "Zero value", value: 0, total: 200000, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculatePercentage(tt.value, tt.total)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("CalculatePercentage(%v, %v) = %v, expected %v",
					tt.value, tt.total, result, tt.expected)
			}
		})
	}
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		percentage float64
		expected   float64
	}{
		{name: "Commission", value: 200000, percentage: 3.5, expected: 7000},
		{name: "Full tier", value: 200000, percentage: 95, expected: 190000},
		{name: "Zero percent", value: 200000, percentage: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ApplyPercentage(tt.value, tt.percentage)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("ApplyPercentage(%v, %v) = %v, expected %v",
					tt.value, tt.percentage, result, tt.expected)
			}
		})
	}
}

func TestTolerances(t *testing.T) {
	if !IsZero(0.005) {
		t.Error("IsZero(0.005) = false, expected true within currency tolerance")
	}
	if IsZero(0.02) {
		t.Error("IsZero(0.02) = true, expected false")
	}
	if !IsPositive(1.00) {
		t.Error("IsPositive(1.00) = false, expected true")
	}
	if IsPositive(0.005) {
		t.Error("IsPositive(0.005) = true, expected false within currency tolerance")
	}
	if !WithinTolerance(710.46, 710.47, 0.02) {
		t.Error("WithinTolerance(710.46, 710.47, 0.02) = false, expected true")
	}
	if WithinTolerance(710.46, 711.00, 0.02) {
		t.Error("WithinTolerance(710.46, 711.00, 0.02) = true, expected false")
	}
}
