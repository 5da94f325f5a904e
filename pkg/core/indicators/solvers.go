// Package indicators computes the scalar investment metrics of an
// evaluation: IRR, NPV, payback periods, debt service coverage and
// levelized cost. Numerically undefined results are reported as NaN
// sentinels, never as errors; callers and serializers map NaN to an
// "undefined" presentation.
package indicators

import "math"

// DefaultDiscountRate is used for NPV and the discounted paybacks unless
// the caller configures otherwise.
const DefaultDiscountRate = 0.08

const (
	irrMaxIterations = 1000
	irrTolerance     = 1e-5
	irrInitialGuess  = 0.10
)

// IRR finds the internal rate of return of a cash flow sequence (period 0
// first) by Newton-Raphson on the NPV function.
//
// Starting at 10 %, the iteration stops when the rate moves by less than
// 1e-5. Divergence — a rate below −99 %, above 1000 %, or a non-finite
// step — yields NaN rather than an error; so does a sequence too short to
// have a rate.
func IRR(cashFlows []float64) float64 {
	if len(cashFlows) < 2 {
		return math.NaN()
	}

	rate := irrInitialGuess
	for i := 0; i < irrMaxIterations; i++ {
		var npv, dnpv float64
		for t, cf := range cashFlows {
			npv += cf / math.Pow(1+rate, float64(t))
			dnpv -= float64(t) * cf / math.Pow(1+rate, float64(t+1))
		}
		if dnpv == 0 {
			return math.NaN()
		}

		next := rate - npv/dnpv
		if math.Abs(next-rate) < irrTolerance {
			return next
		}
		rate = next

		if rate < -0.99 || rate > 10 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			return math.NaN()
		}
	}
	return rate
}

// NPV discounts a cash flow sequence at the given annual rate, with t
// starting at 0.
//
// FORMULA: NPV = Σ CF[t] / (1+r)^t
func NPV(cashFlows []float64, rate float64) float64 {
	var npv float64
	for t, cf := range cashFlows {
		npv += cf / math.Pow(1+rate, float64(t))
	}
	return npv
}

// StaticPayback returns the payback period in years: the point where the
// cumulative undiscounted cash flow turns non-negative, interpolated
// linearly within the crossing year from the prior deficit and that year's
// flow. A sequence that never recovers reports its full length; an empty
// sequence is undefined.
func StaticPayback(cashFlows []float64) float64 {
	if len(cashFlows) == 0 {
		return math.NaN()
	}

	var cumulative float64
	for i, cf := range cashFlows {
		cumulative += cf
		if cumulative >= 0 {
			if i == 0 {
				return 0
			}
			prior := cumulative - cf
			return float64(i-1) + math.Abs(prior)/cf
		}
	}
	return float64(len(cashFlows))
}

// DiscountedPayback applies the same interpolation to the discounted cash
// flow sequence.
func DiscountedPayback(cashFlows []float64, rate float64) float64 {
	if len(cashFlows) == 0 {
		return math.NaN()
	}

	var cumulative float64
	for i, cf := range cashFlows {
		discounted := cf / math.Pow(1+rate, float64(i))
		cumulative += discounted
		if cumulative >= 0 {
			if i == 0 {
				return 0
			}
			prior := cumulative - discounted
			return float64(i-1) + math.Abs(prior)/discounted
		}
	}
	return float64(len(cashFlows))
}
