package params

import "math"

// SpotPriceSeries is the externally supplied market price forecast in
// EUR/MW/yr, one entry per operation year. Index i is operation year i+1;
// the order carries meaning and must be preserved.
type SpotPriceSeries []float64

// DefaultSpotPrices builds the documented fallback series: the German 2025
// arbitrage expectation of 35 kEUR/MW/yr escalated at 1.5 %/yr, rounded to
// whole euros like the source table.
func DefaultSpotPrices(p ParameterSet) SpotPriceSeries {
	return FillSpotPrices(p.OperationYears, p.SpotBasePrice, p.SpotEscalation)
}

// FillSpotPrices generates a series of length years from a base price and a
// fixed annual escalation.
func FillSpotPrices(years int, base, escalation float64) SpotPriceSeries {
	s := make(SpotPriceSeries, years)
	for y := 1; y <= years; y++ {
		s[y-1] = math.Round(base * math.Pow(1+escalation, float64(y-1)))
	}
	return s
}

// Resolved returns a copy stretched or truncated to exactly years entries.
// Missing entries (short series, zero or negative values) fall back to the
// parameter set's documented base price with its escalation.
func (s SpotPriceSeries) Resolved(p ParameterSet) SpotPriceSeries {
	years := p.OperationYears
	out := make(SpotPriceSeries, years)
	for y := 1; y <= years; y++ {
		if y-1 < len(s) && s[y-1] > 0 {
			out[y-1] = s[y-1]
			continue
		}
		out[y-1] = math.Round(p.SpotBasePrice * math.Pow(1+p.SpotEscalation, float64(y-1)))
	}
	return out
}

// Scaled returns a copy with every entry multiplied by 1+shock. Used by the
// sensitivity engine; the receiver is untouched.
func (s SpotPriceSeries) Scaled(shock float64) SpotPriceSeries {
	out := make(SpotPriceSeries, len(s))
	for i, v := range s {
		out[i] = v * (1 + shock)
	}
	return out
}
