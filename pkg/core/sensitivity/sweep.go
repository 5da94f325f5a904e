package sensitivity

import (
	"encoding/json"
	"fmt"
	"math"
	"sync"

	"bess_economics/pkg/core/pipeline"
)

// Request describes one sweep. Variable2 empty means a 1-D sweep. Min,
// Max and Step are shock fractions (−0.3 … +0.3 in 0.1 steps, say).
type Request struct {
	Variable1 string  `json:"variable1"`
	Variable2 string  `json:"variable2,omitempty"`
	Target    string  `json:"target"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Step      float64 `json:"step"`
}

// Value is a collected indicator sample. Undefined samples (NaN, e.g. a
// diverged IRR) marshal as JSON null.
type Value float64

func (v Value) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(v))
}

// Point is one 1-D sweep sample.
type Point struct {
	Shock float64 `json:"shock"`
	Value Value   `json:"value"`
}

// Result is either an ordered 1-D sequence of points or a 2-D grid indexed
// [shock1][shock2], together with the shock axis it was sampled on.
type Result struct {
	Target string    `json:"target"`
	Shocks []float64 `json:"shocks"`
	Points []Point   `json:"points,omitempty"`
	Grid   [][]Value `json:"grid,omitempty"`
}

// Analyzer wraps the evaluation pipeline as a black box, evaluated once
// per shock combination.
type Analyzer struct {
	eval *pipeline.Evaluator
}

// NewAnalyzer builds an analyzer over the given evaluator.
func NewAnalyzer(eval *pipeline.Evaluator) *Analyzer {
	return &Analyzer{eval: eval}
}

// Run executes the sweep. Every shock combination owns its own perturbed
// copy of the input and evaluation result, so the combinations fan out to
// goroutines with nothing shared but the preallocated result slots.
func (a *Analyzer) Run(base pipeline.Input, req Request) (*Result, error) {
	v1, err := Lookup(req.Variable1)
	if err != nil {
		return nil, err
	}
	target, err := targetFor(req.Target)
	if err != nil {
		return nil, err
	}
	shocks := Shocks(req.Min, req.Max, req.Step)
	if len(shocks) == 0 {
		return nil, fmt.Errorf("empty shock range [%g, %g] step %g", req.Min, req.Max, req.Step)
	}

	if req.Variable2 == "" {
		return a.runSingle(base, v1, target, req.Target, shocks)
	}

	v2, err := Lookup(req.Variable2)
	if err != nil {
		return nil, err
	}
	return a.runDouble(base, v1, v2, target, req.Target, shocks)
}

func (a *Analyzer) runSingle(base pipeline.Input, v Variable, target targetFunc,
	targetName string, shocks []float64) (*Result, error) {

	points := make([]Point, len(shocks))
	errs := make([]error, len(shocks))

	var wg sync.WaitGroup
	for i, shock := range shocks {
		wg.Add(1)
		go func(i int, shock float64) {
			defer wg.Done()
			res, err := a.eval.Evaluate(v.Apply(base, shock))
			if err != nil {
				errs[i] = err
				return
			}
			points[i] = Point{Shock: shock, Value: Value(target(res))}
		}(i, shock)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &Result{Target: targetName, Shocks: shocks, Points: points}, nil
}

func (a *Analyzer) runDouble(base pipeline.Input, v1, v2 Variable, target targetFunc,
	targetName string, shocks []float64) (*Result, error) {

	grid := make([][]Value, len(shocks))
	errs := make([]error, len(shocks)*len(shocks))

	var wg sync.WaitGroup
	for i, s1 := range shocks {
		grid[i] = make([]Value, len(shocks))
		for j, s2 := range shocks {
			wg.Add(1)
			go func(i, j int, s1, s2 float64) {
				defer wg.Done()
				res, err := a.eval.Evaluate(v2.Apply(v1.Apply(base, s1), s2))
				if err != nil {
					errs[i*len(shocks)+j] = err
					return
				}
				grid[i][j] = Value(target(res))
			}(i, j, s1, s2)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &Result{Target: targetName, Shocks: shocks, Grid: grid}, nil
}
