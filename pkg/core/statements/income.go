// Package statements combines the projected series into the three yearly
// financial statements: income statement, cash flow and balance sheet.
// Builders are pure functions over the upstream series; each statement is
// produced once per evaluation and read-only afterwards.
package statements

import (
	"bess_economics/pkg/core/params"
	"bess_economics/pkg/core/projection"
)

// IncomeYear is one operation year of the P&L.
type IncomeYear struct {
	Year         int     `json:"year"`
	Revenue      float64 `json:"revenue"`
	Opex         float64 `json:"opex"`
	GrossProfit  float64 `json:"gross_profit"`
	EBITDA       float64 `json:"ebitda"`
	Depreciation float64 `json:"depreciation"` // incl. amortization
	EBIT         float64 `json:"ebit"`
	Interest     float64 `json:"interest"`
	EBT          float64 `json:"ebt"`
	Tax          float64 `json:"tax"`
	NetProfit    float64 `json:"net_profit"`
}

// BuildIncomeStatement derives the yearly P&L.
//
// FORMULA: EBITDA = revenue − opex
//          EBIT   = EBITDA − depreciation & amortization
//          EBT    = EBIT − interest
//          tax    = max(0, EBT × effective rate)
//
// Losses do not generate a refund: tax is floored at zero rather than
// carrying losses forward.
func BuildIncomeStatement(p params.ParameterSet, revenue []projection.RevenueYear,
	opex []projection.OpexYear, depreciation []projection.DepreciationYear,
	loan []projection.LoanYear) []IncomeYear {

	taxRate := p.EffectiveTaxRate()
	series := make([]IncomeYear, 0, p.OperationYears)

	for i := 0; i < p.OperationYears; i++ {
		rev := revenue[i].Total
		cost := opex[i].Total
		da := depreciation[i].Total
		interest := loan[i].Interest

		ebitda := rev - cost
		ebit := ebitda - da
		ebt := ebit - interest
		tax := ebt * taxRate
		if tax < 0 {
			tax = 0
		}

		series = append(series, IncomeYear{
			Year:         i + 1,
			Revenue:      rev,
			Opex:         cost,
			GrossProfit:  ebitda,
			EBITDA:       ebitda,
			Depreciation: da,
			EBIT:         ebit,
			Interest:     interest,
			EBT:          ebt,
			Tax:          tax,
			NetProfit:    ebt - tax,
		})
	}

	return series
}
