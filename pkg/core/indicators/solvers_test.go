package indicators

import (
	"math"
	"testing"
)

func TestIRR_RootOfNPV(t *testing.T) {
	flows := []float64{-1000, 200, 300, 400, 500, 600}

	irr := IRR(flows)
	if math.IsNaN(irr) {
		t.Fatalf("IRR diverged on a well-behaved sequence")
	}
	if irr <= 0 || irr >= 1 {
		t.Errorf("IRR expected in (0, 1), got %f", irr)
	}
	if npv := NPV(flows, irr); math.Abs(npv) > 1e-3 {
		t.Errorf("NPV at the IRR expected ~0, got %f", npv)
	}
}

func TestIRR_Undefined(t *testing.T) {
	if !math.IsNaN(IRR(nil)) {
		t.Errorf("empty sequence must be undefined")
	}
	if !math.IsNaN(IRR([]float64{-100})) {
		t.Errorf("single-entry sequence must be undefined")
	}
	// All-negative flows have no rate; the iteration must diverge, not spin.
	if !math.IsNaN(IRR([]float64{-100, -50, -50})) {
		t.Errorf("all-negative sequence must be undefined")
	}
}

func TestNPV(t *testing.T) {
	flows := []float64{-100, 110}
	if math.Abs(NPV(flows, 0.10)) > 1e-9 {
		t.Errorf("NPV at 10%% expected 0, got %f", NPV(flows, 0.10))
	}
	if math.Abs(NPV(flows, 0)-10) > 1e-9 {
		t.Errorf("undiscounted NPV expected 10, got %f", NPV(flows, 0))
	}
}

func TestStaticPayback_Interpolation(t *testing.T) {
	flows := []float64{-1000, 200, 300, 400, 500, 600}

	// Cumulative crosses zero in period 4 with a prior deficit of 100,
	// giving 3 + 100/500.
	want := 3.2
	if got := StaticPayback(flows); math.Abs(got-want) > 1e-9 {
		t.Errorf("payback expected %f, got %f", want, got)
	}
}

func TestStaticPayback_EdgeCases(t *testing.T) {
	if got := StaticPayback([]float64{100, 50}); got != 0 {
		t.Errorf("immediately positive sequence pays back at 0, got %f", got)
	}
	flows := []float64{-1000, 100, 100}
	if got := StaticPayback(flows); got != 3 {
		t.Errorf("never-recovered sequence reports its length, got %f", got)
	}
	if !math.IsNaN(StaticPayback(nil)) {
		t.Errorf("empty sequence must be undefined")
	}
}

func TestDiscountedPayback_LagsStatic(t *testing.T) {
	flows := []float64{-1000, 200, 300, 400, 500, 600}

	static := StaticPayback(flows)
	discounted := DiscountedPayback(flows, DefaultDiscountRate)
	if discounted <= static {
		t.Errorf("discounting must delay payback: %f vs static %f", discounted, static)
	}
	if got := DiscountedPayback(flows, 0); math.Abs(got-static) > 1e-9 {
		t.Errorf("zero-rate discounted payback must equal static: %f vs %f", got, static)
	}
}
