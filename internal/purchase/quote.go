package purchase

// Quote aggregates the full calculation pipeline for one purchase: the cost
// breakdown, the financing scenario table, the amortization summary for the
// financed amount, and the risk band of the resulting mortgage percentage.
type Quote struct {
	Breakdown    Breakdown  `json:"breakdown"`
	Scenarios    []Scenario `json:"scenarios"`
	Amortization Summary    `json:"amortization"`
	Risk         RiskLevel  `json:"risk"`
}

// ComputeQuote runs the one-way pipeline: costs feed both the scenario table
// and the amortization of the financed amount. Each call recomputes from
// scratch; nothing is cached or mutated.
func ComputeQuote(in Input, annualRatePercent, termYears float64) (Quote, error) {
	breakdown, err := ComputeCosts(in.PropertyPrice, in.CommissionPercentage, in.DownPayment)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		Breakdown: breakdown,
		Scenarios: GenerateScenarios(breakdown.PropertyPrice, breakdown.AdditionalCosts),
		Amortization: Summarize(Terms{
			FinancedAmount:    breakdown.FinancedAmount,
			AnnualRatePercent: annualRatePercent,
			TermYears:         termYears,
		}),
		Risk: RiskBand(breakdown.MortgagePercentage),
	}, nil
}
