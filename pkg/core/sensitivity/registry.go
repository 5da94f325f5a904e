// Package sensitivity re-runs the full evaluation pipeline under
// proportional parameter shocks and collects a target indicator over a 1-
// or 2-variable sweep.
package sensitivity

import (
	"fmt"
	"math"

	"bess_economics/pkg/core/pipeline"
)

// Variable is a named shock group: a pure transformation that scales the
// concrete fields it governs by 1+shock on a copy of the input. The base
// input is never touched.
type Variable struct {
	ID    string
	Label string
	Apply func(in pipeline.Input, shock float64) pipeline.Input
}

// The registry maps shock-variable identifiers to explicit transformation
// functions. Parameter sets are plain values, so the assignment inside
// each Apply already is the perturbed copy.
var registry = []Variable{
	{
		ID:    "capex",
		Label: "Investment cost",
		Apply: func(in pipeline.Input, shock float64) pipeline.Input {
			f := 1 + shock
			in.Params.BatteryUnitPrice *= f
			in.Params.PCSUnitPrice *= f
			in.Params.MVTransformerPrice *= f
			in.Params.HVTransformerPrice *= f
			return in
		},
	},
	{
		ID:    "tolling_price",
		Label: "Tolling price",
		Apply: func(in pipeline.Input, shock float64) pipeline.Input {
			in.Params.TollingPrice *= 1 + shock
			return in
		},
	},
	{
		ID:    "spot_price",
		Label: "Spot price",
		Apply: func(in pipeline.Input, shock float64) pipeline.Input {
			in.SpotPrices = in.SpotPrices.Resolved(in.Params.Sanitized()).Scaled(shock)
			return in
		},
	},
	{
		ID:    "opex",
		Label: "Operating cost",
		Apply: func(in pipeline.Input, shock float64) pipeline.Input {
			f := 1 + shock
			in.Params.OpexTechnical *= f
			in.Params.OpexInsurancePct *= f
			in.Params.OpexGrid *= f
			in.Params.OpexLand *= f
			in.Params.OpexCommercial *= f
			in.Params.OpexOther *= f
			return in
		},
	},
	{
		ID:    "loan_rate",
		Label: "Loan interest rate",
		Apply: func(in pipeline.Input, shock float64) pipeline.Input {
			in.Params.LoanRate *= 1 + shock
			return in
		},
	},
	{
		ID:    "degradation",
		Label: "Degradation rate",
		Apply: func(in pipeline.Input, shock float64) pipeline.Input {
			in.Params.DegradationRate *= 1 + shock
			return in
		},
	},
}

// Variables lists the registered shock variables in registry order.
func Variables() []Variable {
	out := make([]Variable, len(registry))
	copy(out, registry)
	return out
}

// Lookup resolves a shock-variable identifier.
func Lookup(id string) (Variable, error) {
	for _, v := range registry {
		if v.ID == id {
			return v, nil
		}
	}
	return Variable{}, fmt.Errorf("unknown sensitivity variable %q", id)
}

// Target indicators the sweep can collect.
const (
	TargetProjectIRR = "project_irr"
	TargetEquityIRR  = "equity_irr"
	TargetNPV        = "npv"
	TargetPayback    = "payback"
)

type targetFunc func(r *pipeline.Result) float64

func targetFor(name string) (targetFunc, error) {
	switch name {
	case TargetProjectIRR:
		return func(r *pipeline.Result) float64 { return r.Indicators.ProjectIRR }, nil
	case TargetEquityIRR:
		return func(r *pipeline.Result) float64 { return r.Indicators.EquityIRR }, nil
	case TargetNPV:
		return func(r *pipeline.Result) float64 { return r.Indicators.ProjectNPV }, nil
	case TargetPayback:
		return func(r *pipeline.Result) float64 { return r.Indicators.StaticPayback }, nil
	default:
		return nil, fmt.Errorf("unknown sensitivity target %q", name)
	}
}

// Shocks expands a [min, max] range with the given step into the ordered
// shock values of a sweep, rounded to whole percent steps so float drift
// cannot add or drop an endpoint.
func Shocks(min, max, step float64) []float64 {
	if step <= 0 || max < min {
		return nil
	}
	var out []float64
	for c := min; c <= max+step/1000; c += step {
		out = append(out, math.Round(c*100)/100)
	}
	return out
}
