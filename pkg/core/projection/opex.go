// Package projection derives the yearly operating series of the model:
// operating cost, revenue, depreciation/amortization and the loan
// repayment schedule. Every function is pure; series are built once per
// evaluation and consumed read-only downstream. Index i of each series is
// operation year i+1.
package projection

import (
	"math"

	"bess_economics/pkg/core/capex"
	"bess_economics/pkg/core/params"
)

// costUnit converts EUR parameter bases to the model unit of 10^4 EUR.
const costUnit = 10000.0

// OpexYear is one operation year of operating cost, by category.
type OpexYear struct {
	Year            int     `json:"year"`
	Technical       float64 `json:"technical"`
	Insurance       float64 `json:"insurance"`
	Grid            float64 `json:"grid"`
	Land            float64 `json:"land"`
	Commercial      float64 `json:"commercial"`
	Other           float64 `json:"other"`
	Decommissioning float64 `json:"decommissioning"`
	Total           float64 `json:"total"`
}

// ProjectOpex builds the yearly operating cost series.
//
// Each category escalates independently on top of general inflation:
//
// FORMULA: cost(y) = base × (1 + esc)^(y−1) × (1 + inflation)^(y−1)
//
// Insurance is proportional to the static investment rather than a fixed
// base; the decommissioning reserve accrues evenly across the operating
// life and is inflated like any other category.
func ProjectOpex(p params.ParameterSet, cx *capex.Breakdown) []OpexYear {
	series := make([]OpexYear, 0, p.OperationYears)

	annualDecommissioning := 0.0
	if p.DecommissioningTotal > 0 {
		annualDecommissioning = p.DecommissioningTotal / float64(p.OperationYears) / costUnit
	}

	for year := 1; year <= p.OperationYears; year++ {
		n := float64(year - 1)
		inflation := math.Pow(1+p.InflationRate, n)
		esc := func(rate float64) float64 { return math.Pow(1+rate, n) * inflation }

		y := OpexYear{
			Year:            year,
			Technical:       p.OpexTechnical * p.PowerMW * 1000 * esc(p.OpexTechnicalEsc) / costUnit,
			Insurance:       cx.Total * p.OpexInsurancePct * esc(p.OpexInsuranceEsc),
			Grid:            p.OpexGrid * p.PowerMW * esc(p.OpexGridEsc) / costUnit,
			Land:            p.OpexLand * esc(p.OpexLandEsc) / costUnit,
			Commercial:      p.OpexCommercial * p.PowerMW * esc(p.OpexCommercialEsc) / costUnit,
			Other:           p.OpexOther * p.PowerMW * esc(p.OpexOtherEsc) / costUnit,
			Decommissioning: annualDecommissioning * inflation,
		}
		y.Total = y.Technical + y.Insurance + y.Grid + y.Land + y.Commercial + y.Other + y.Decommissioning
		series = append(series, y)
	}

	return series
}
