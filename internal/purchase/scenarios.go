package purchase

import (
	"github.com/happyhipo/propcost/pkg/constants"
	"github.com/happyhipo/propcost/pkg/mathutil"
)

// Scenario describes the down payment required when a given percentage of
// the property price is financed by mortgage.
type Scenario struct {
	Percentage          float64 `json:"percentage"`
	MortgageAmount      float64 `json:"mortgageAmount"`
	RequiredDownPayment float64 `json:"requiredDownPayment"`
}

// GenerateScenarios calculates the down payment needed for each fixed
// financing tier, in descending tier order. The order is part of the
// contract; consumers display the rows without re-sorting.
func GenerateScenarios(propertyPrice, additionalCosts float64) []Scenario {
	scenarios := make([]Scenario, 0, len(constants.FinancingTiers))
	for _, tier := range constants.FinancingTiers {
		mortgageAmount := mathutil.ApplyPercentage(propertyPrice, tier)
		scenarios = append(scenarios, Scenario{
			Percentage:          tier,
			MortgageAmount:      mortgageAmount,
			RequiredDownPayment: propertyPrice + additionalCosts - mortgageAmount,
		})
	}
	return scenarios
}
