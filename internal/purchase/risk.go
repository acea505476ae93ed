package purchase

import "github.com/happyhipo/propcost/pkg/constants"

// RiskLevel classifies a mortgage percentage as a lending-risk indicator.
type RiskLevel string

const (
	// RiskHigh means most lenders will not grant a mortgage above 80% of
	// the property value.
	RiskHigh RiskLevel = "high"

	// RiskCaution means the percentage is between 70% and 80%; some
	// lenders may require additional conditions.
	RiskCaution RiskLevel = "caution"

	// RiskFavorable means the percentage is at or below 70%.
	RiskFavorable RiskLevel = "favorable"
)

// RiskBand classifies the given mortgage percentage over property price.
func RiskBand(mortgagePercentage float64) RiskLevel {
	switch {
	case mortgagePercentage > constants.MortgageHighRiskThreshold:
		return RiskHigh
	case mortgagePercentage > constants.MortgageCautionThreshold:
		return RiskCaution
	default:
		return RiskFavorable
	}
}
