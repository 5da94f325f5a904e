package projection

import (
	"math"

	"bess_economics/pkg/core/params"
)

// DegradationModel maps an operation year (1-indexed) to the remaining
// usable capacity fraction, including the initial capacity of the plant.
type DegradationModel interface {
	CapacityFactor(year int) float64
}

// LinearDegradation fades capacity by a constant fraction per year:
//
// FORMULA: factor(y) = initial × (1 − rate)^(y−1)
type LinearDegradation struct {
	Initial float64
	Rate    float64
}

func (m LinearDegradation) CapacityFactor(year int) float64 {
	return m.Initial * math.Pow(1-m.Rate, float64(year-1))
}

// NonlinearDegradation starts with a higher first-year fade that steps down
// by a fixed amount each year until it floors at zero, matching vendor
// warranty curves that front-load capacity loss.
type NonlinearDegradation struct {
	Initial        float64
	FirstYearRate  float64
	AnnualDecrease float64
}

func (m NonlinearDegradation) CapacityFactor(year int) float64 {
	factor := m.Initial
	for y := 2; y <= year; y++ {
		rate := m.FirstYearRate - float64(y-2)*m.AnnualDecrease
		if rate < 0 {
			rate = 0
		}
		factor *= 1 - rate
	}
	return factor
}

// CycleBasedDegradation derives the annual fade from throughput: a loss
// fraction per 1000 equivalent full cycles times the cycles run per year.
type CycleBasedDegradation struct {
	Initial           float64
	LossPerThousand   float64
	CyclesPerYear     int
}

func (m CycleBasedDegradation) CapacityFactor(year int) float64 {
	annualLoss := m.LossPerThousand * float64(m.CyclesPerYear) / 1000
	return m.Initial * math.Pow(1-annualLoss, float64(year-1))
}

// NewDegradationModel selects the configured model from the parameter set.
// Unknown modes were already resolved to linear during sanitization.
func NewDegradationModel(p params.ParameterSet) DegradationModel {
	switch p.DegradationMode {
	case params.DegradationNonlinear:
		return NonlinearDegradation{
			Initial:        p.InitialCapacity,
			FirstYearRate:  p.DegradationFirstYear,
			AnnualDecrease: p.DegradationAnnualDecrease,
		}
	case params.DegradationCycleBased:
		return CycleBasedDegradation{
			Initial:         p.InitialCapacity,
			LossPerThousand: p.CyclesPerDegradation,
			CyclesPerYear:   p.AnnualCycles,
		}
	default:
		return LinearDegradation{Initial: p.InitialCapacity, Rate: p.DegradationRate}
	}
}
