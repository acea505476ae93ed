// Package purchase implements the property purchase cost calculations:
// acquisition cost breakdown, financing scenarios, and loan amortization.
// All functions are pure; callers hold any state.
package purchase

import (
	"fmt"

	"github.com/happyhipo/propcost/pkg/constants"
	"github.com/happyhipo/propcost/pkg/mathutil"
)

// Input holds the parameters of a property purchase.
type Input struct {
	PropertyPrice        float64 `json:"propertyPrice" yaml:"propertyPrice"`
	CommissionPercentage float64 `json:"commissionPercentage" yaml:"commissionPercentage"`
	DownPayment          float64 `json:"downPayment" yaml:"downPayment"`
}

// Breakdown holds the full acquisition cost breakdown for a purchase.
// All amounts are raw currency values; rounding happens at display boundaries.
type Breakdown struct {
	PropertyPrice      float64 `json:"propertyPrice"`
	CommissionBase     float64 `json:"commissionBase"`
	CommissionVAT      float64 `json:"commissionVat"`
	CommissionTotal    float64 `json:"commissionTotal"`
	TransferTax        float64 `json:"transferTax"`
	FixedCosts         float64 `json:"fixedCosts"`
	AdditionalCosts    float64 `json:"additionalCosts"`
	TotalCost          float64 `json:"totalCost"`
	DownPayment        float64 `json:"downPayment"`
	FinancedAmount     float64 `json:"financedAmount"`
	MortgagePercentage float64 `json:"mortgagePercentage"`
}

// Validate checks the purchase input against the caller contract. Negative
// amounts and commission percentages outside [0,100] are rejected before any
// computation.
func (in Input) Validate() error {
	if in.PropertyPrice < 0 {
		return fmt.Errorf("%w: property price %.2f is negative", ErrInvalidInput, in.PropertyPrice)
	}
	if in.CommissionPercentage < 0 || in.CommissionPercentage > 100 {
		return fmt.Errorf("%w: commission percentage %.2f outside [0,100]", ErrInvalidInput, in.CommissionPercentage)
	}
	if in.DownPayment < 0 {
		return fmt.Errorf("%w: down payment %.2f is negative", ErrInvalidInput, in.DownPayment)
	}
	return nil
}

// ComputeCosts calculates all costs associated with purchasing a property:
// brokerage commission with VAT, transfer tax (ITP), fixed closing costs, and
// the derived totals. The mortgage percentage is undefined for a zero price,
// so that case returns ErrZeroPropertyPrice rather than a NaN/Inf value.
func ComputeCosts(propertyPrice, commissionPercentage, downPayment float64) (Breakdown, error) {
	in := Input{
		PropertyPrice:        propertyPrice,
		CommissionPercentage: commissionPercentage,
		DownPayment:          downPayment,
	}
	if err := in.Validate(); err != nil {
		return Breakdown{}, err
	}
	if propertyPrice == 0 {
		return Breakdown{}, ErrZeroPropertyPrice
	}

	commissionBase := mathutil.ApplyPercentage(propertyPrice, commissionPercentage)
	commissionVAT := commissionBase * constants.CommissionVATRate
	commissionTotal := commissionBase + commissionVAT

	transferTax := propertyPrice * constants.TransferTaxRate

	additionalCosts := commissionTotal + transferTax + constants.FixedClosingCosts
	totalCost := propertyPrice + additionalCosts
	financedAmount := totalCost - downPayment

	return Breakdown{
		PropertyPrice:      propertyPrice,
		CommissionBase:     commissionBase,
		CommissionVAT:      commissionVAT,
		CommissionTotal:    commissionTotal,
		TransferTax:        transferTax,
		FixedCosts:         constants.FixedClosingCosts,
		AdditionalCosts:    additionalCosts,
		TotalCost:          totalCost,
		DownPayment:        downPayment,
		FinancedAmount:     financedAmount,
		MortgagePercentage: mathutil.CalculatePercentage(financedAmount, propertyPrice),
	}, nil
}

// AdditionalCostsShare returns the additional costs as a percentage of the
// property price.
func (b Breakdown) AdditionalCostsShare() float64 {
	return mathutil.CalculatePercentage(b.AdditionalCosts, b.PropertyPrice)
}
