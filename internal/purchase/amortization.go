package purchase

import (
	"math"

	"github.com/happyhipo/propcost/pkg/constants"
)

// Terms holds the parameters of a fixed-rate loan.
type Terms struct {
	FinancedAmount    float64 `json:"financedAmount" yaml:"financedAmount"`
	AnnualRatePercent float64 `json:"annualRatePercent" yaml:"annualRatePercent"`
	TermYears         float64 `json:"termYears" yaml:"termYears"`
}

// Summary holds the amortization results for a loan.
type Summary struct {
	MonthlyPayment           float64 `json:"monthlyPayment"`
	TotalPaid                float64 `json:"totalPaid"`
	TotalInterest            float64 `json:"totalInterest"`
	NumberOfPayments         int     `json:"numberOfPayments"`
	RecommendedMonthlyIncome float64 `json:"recommendedMonthlyIncome"`
}

// MonthlyPayment calculates the monthly payment for a fixed-rate loan using
// the standard amortization formula. A non-positive loan amount, rate, or
// term is the "no loan" case and returns 0 rather than an error, keeping
// callers resilient to transient invalid states. The guard also keeps a zero
// monthly rate from reaching the formula, whose denominator would vanish.
func MonthlyPayment(loanAmount, annualRatePercent, years float64) float64 {
	if loanAmount <= 0 || annualRatePercent <= 0 || years <= 0 {
		return 0
	}

	monthlyRate := annualRatePercent / constants.PercentageMultiplier / constants.MonthsPerYear
	numPayments := years * constants.MonthsPerYear

	power := math.Pow(1.0+monthlyRate, numPayments)
	return loanAmount * monthlyRate * power / (power - 1.0)
}

// Summarize calculates the monthly payment for the given terms along with
// the derived totals: total paid over the term, total interest, payment
// count, and the monthly income recommended by the debt-to-income ceiling.
func Summarize(terms Terms) Summary {
	payment := MonthlyPayment(terms.FinancedAmount, terms.AnnualRatePercent, terms.TermYears)
	if payment == 0 {
		return Summary{}
	}

	numPayments := terms.TermYears * constants.MonthsPerYear
	totalPaid := payment * numPayments

	return Summary{
		MonthlyPayment:           payment,
		TotalPaid:                totalPaid,
		TotalInterest:            totalPaid - terms.FinancedAmount,
		NumberOfPayments:         int(numPayments),
		RecommendedMonthlyIncome: payment / constants.IncomeRatioCeiling,
	}
}
