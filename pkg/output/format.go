// Package output provides utilities for formatting and displaying purchase quotes.
package output

import (
	"fmt"
	"strings"

	"github.com/happyhipo/propcost/internal/purchase"
	"github.com/happyhipo/propcost/pkg/format"
)

// PrettyFormat outputs a human-readable rendering of the quote.
func PrettyFormat(quote purchase.Quote) {
	fmt.Print(PrettyString(quote))
}

// PrettyString returns the human-readable rendering of the quote.
func PrettyString(quote purchase.Quote) string {
	var b strings.Builder
	bd := quote.Breakdown

	b.WriteString("--- Cost breakdown ---\n")
	fmt.Fprintf(&b, "Property price      | %s\n", format.Euro(bd.PropertyPrice))
	fmt.Fprintf(&b, "Commission base     | %s\n", format.Euro(bd.CommissionBase))
	fmt.Fprintf(&b, "Commission VAT      | %s\n", format.Euro(bd.CommissionVAT))
	fmt.Fprintf(&b, "Commission total    | %s\n", format.Euro(bd.CommissionTotal))
	fmt.Fprintf(&b, "Transfer tax (ITP)  | %s\n", format.Euro(bd.TransferTax))
	fmt.Fprintf(&b, "Appraisal + notary  | %s\n", format.Euro(bd.FixedCosts))
	fmt.Fprintf(&b, "Additional costs    | %s (%s of price)\n",
		format.Euro(bd.AdditionalCosts), format.Percent(bd.AdditionalCostsShare()))
	fmt.Fprintf(&b, "TOTAL COST          | %s\n", format.Euro(bd.TotalCost))
	fmt.Fprintf(&b, "Down payment        | %s\n", format.Euro(bd.DownPayment))
	fmt.Fprintf(&b, "Financed amount     | %s\n", format.Euro(bd.FinancedAmount))
	fmt.Fprintf(&b, "Mortgage percentage | %s (risk: %s)\n",
		format.Percent(bd.MortgagePercentage), quote.Risk)

	b.WriteString("\n--- Financing scenarios ---\n")
	b.WriteString("Financing | Mortgage      | Down payment needed\n")
	b.WriteString("_________ | _____________ | ___________________\n")
	for _, s := range quote.Scenarios {
		fmt.Fprintf(&b, "%-9s | %-13s | %s\n",
			format.Percent(s.Percentage), format.Euro(s.MortgageAmount), format.Euro(s.RequiredDownPayment))
	}

	if quote.Amortization.MonthlyPayment > 0 {
		a := quote.Amortization
		b.WriteString("\n--- Monthly payment ---\n")
		fmt.Fprintf(&b, "Monthly payment     | %s\n", format.Euro(a.MonthlyPayment))
		fmt.Fprintf(&b, "Number of payments  | %d\n", a.NumberOfPayments)
		fmt.Fprintf(&b, "Total paid          | %s\n", format.Euro(a.TotalPaid))
		fmt.Fprintf(&b, "Total interest      | %s\n", format.Euro(a.TotalInterest))
		fmt.Fprintf(&b, "Recommended income  | %s/month\n", format.Euro(a.RecommendedMonthlyIncome))
	}

	return b.String()
}

// CsvFormat outputs the quote in comma-separated value format.
func CsvFormat(quote purchase.Quote) {
	fmt.Print(CsvString(quote))
}

// CsvString returns the quote in comma-separated value format: one section
// of key/value rows for the breakdown and amortization, then one row per
// financing scenario.
func CsvString(quote purchase.Quote) string {
	var b strings.Builder
	bd := quote.Breakdown

	b.WriteString("\"field\",\"value\"\n")
	rows := []struct {
		field string
		value float64
	}{
		{"propertyPrice", bd.PropertyPrice},
		{"commissionBase", bd.CommissionBase},
		{"commissionVat", bd.CommissionVAT},
		{"commissionTotal", bd.CommissionTotal},
		{"transferTax", bd.TransferTax},
		{"fixedCosts", bd.FixedCosts},
		{"additionalCosts", bd.AdditionalCosts},
		{"totalCost", bd.TotalCost},
		{"downPayment", bd.DownPayment},
		{"financedAmount", bd.FinancedAmount},
		{"mortgagePercentage", bd.MortgagePercentage},
		{"monthlyPayment", quote.Amortization.MonthlyPayment},
		{"totalPaid", quote.Amortization.TotalPaid},
		{"totalInterest", quote.Amortization.TotalInterest},
		{"recommendedMonthlyIncome", quote.Amortization.RecommendedMonthlyIncome},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "\"%s\",\"%.2f\"\n", row.field, row.value)
	}

	b.WriteString("\"financingPercentage\",\"mortgageAmount\",\"requiredDownPayment\"\n")
	for _, s := range quote.Scenarios {
		fmt.Fprintf(&b, "\"%.0f\",\"%.2f\",\"%.2f\"\n", s.Percentage, s.MortgageAmount, s.RequiredDownPayment)
	}

	return b.String()
}
