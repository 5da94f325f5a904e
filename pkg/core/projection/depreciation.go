package projection

import (
	"bess_economics/pkg/core/capex"
	"bess_economics/pkg/core/params"
)

// DepreciationYear is one operation year of fixed-asset depreciation and
// intangible amortization.
type DepreciationYear struct {
	Year         int     `json:"year"`
	Depreciation float64 `json:"depreciation"`
	Amortization float64 `json:"amortization"`
	Total        float64 `json:"total"`
}

// ScheduleDepreciation builds the yearly depreciation/amortization series.
//
// The fixed-asset base is the dynamic investment less intangibles
// (development costs + land); the depreciable amount excludes the salvage
// share. Charges stop after the depreciation horizon. Intangibles amortize
// straight-line over their own horizon regardless of the method chosen for
// fixed assets.
func ScheduleDepreciation(p params.ParameterSet, cx *capex.Breakdown) []DepreciationYear {
	series := make([]DepreciationYear, 0, p.OperationYears)

	intangibles := cx.IntangibleAssets()
	fixedAssetBase := cx.FixedAssetBase()
	depreciableAmount := fixedAssetBase * (1 - p.SalvageRate)
	salvageFloor := fixedAssetBase * p.SalvageRate

	// Double-declining balance carries the book value forward year to
	// year; the charge is capped so the book value never breaches the
	// salvage floor.
	ddbRate := 2 / float64(p.DepreciationYears)
	bookValue := fixedAssetBase

	sumYears := float64(p.DepreciationYears*(p.DepreciationYears+1)) / 2

	for year := 1; year <= p.OperationYears; year++ {
		depreciation := 0.0
		if year <= p.DepreciationYears {
			switch p.DepreciationMethod {
			case params.DepDoubleDeclining:
				charge := bookValue * ddbRate
				if max := bookValue - salvageFloor; charge > max {
					charge = max
				}
				if charge < 0 {
					charge = 0
				}
				depreciation = charge
				bookValue -= charge
			case params.DepSumOfYears:
				remaining := float64(p.DepreciationYears - year + 1)
				depreciation = depreciableAmount * remaining / sumYears
			default: // straight line
				depreciation = depreciableAmount / float64(p.DepreciationYears)
			}
		}

		amortization := 0.0
		if year <= p.AmortizationYears {
			amortization = intangibles / float64(p.AmortizationYears)
		}

		series = append(series, DepreciationYear{
			Year:         year,
			Depreciation: depreciation,
			Amortization: amortization,
			Total:        depreciation + amortization,
		})
	}

	return series
}
