package projection

import (
	"math"

	"bess_economics/pkg/core/params"
)

// RevenueYear is one operation year of revenue, split into the contracted
// tolling stream and the merchant spot stream.
type RevenueYear struct {
	Year           int     `json:"year"`
	CapacityFactor float64 `json:"capacity_factor"` // remaining usable capacity fraction
	Tolling        float64 `json:"tolling"`
	Spot           float64 `json:"spot"`
	Total          float64 `json:"total"`
}

// ProjectRevenue builds the yearly revenue series from the tolling contract
// and the supplied spot price series (already resolved to full length).
//
// Within the tolling horizon the contracted share of power earns the
// escalated tolling price (EUR/kW/yr); the remaining share sells into the
// spot market (EUR/MW/yr) scaled by the degradation-adjusted capacity
// factor. Beyond the horizon the full power is merchant.
func ProjectRevenue(p params.ParameterSet, prices params.SpotPriceSeries) []RevenueYear {
	series := make([]RevenueYear, 0, p.OperationYears)
	model := NewDegradationModel(p)

	for year := 1; year <= p.OperationYears; year++ {
		factor := model.CapacityFactor(year)

		tolling := 0.0
		spotRatio := 1.0
		if year <= p.TollingYears {
			tollingPrice := p.TollingPrice * math.Pow(1+p.TollingEscalation, float64(year-1))
			tolling = tollingPrice * p.PowerMW * 1000 * p.TollingRatio / costUnit
			spotRatio = 1 - p.TollingRatio
		}

		spot := prices[year-1] * p.PowerMW * spotRatio * factor / costUnit

		series = append(series, RevenueYear{
			Year:           year,
			CapacityFactor: factor,
			Tolling:        tolling,
			Spot:           spot,
			Total:          tolling + spot,
		})
	}

	return series
}
