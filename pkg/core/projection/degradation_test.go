package projection

import (
	"math"
	"testing"

	"bess_economics/pkg/core/params"
)

func TestLinearDegradation(t *testing.T) {
	m := LinearDegradation{Initial: 1.0, Rate: 0.025}

	if m.CapacityFactor(1) != 1.0 {
		t.Errorf("year 1 expected initial capacity, got %f", m.CapacityFactor(1))
	}
	if math.Abs(m.CapacityFactor(2)-0.975) > 1e-9 {
		t.Errorf("year 2 expected 0.975, got %f", m.CapacityFactor(2))
	}
	if math.Abs(m.CapacityFactor(11)-math.Pow(0.975, 10)) > 1e-9 {
		t.Errorf("year 11 expected %f, got %f", math.Pow(0.975, 10), m.CapacityFactor(11))
	}
}

func TestNonlinearDegradation_FadeStepsDown(t *testing.T) {
	m := NonlinearDegradation{Initial: 1.0, FirstYearRate: 0.03, AnnualDecrease: 0.001}

	if m.CapacityFactor(1) != 1.0 {
		t.Errorf("year 1 expected 1.0, got %f", m.CapacityFactor(1))
	}
	// Year 2 applies the full first-year fade, year 3 one step less.
	if math.Abs(m.CapacityFactor(2)-0.97) > 1e-9 {
		t.Errorf("year 2 expected 0.97, got %f", m.CapacityFactor(2))
	}
	want := 0.97 * (1 - 0.029)
	if math.Abs(m.CapacityFactor(3)-want) > 1e-9 {
		t.Errorf("year 3 expected %f, got %f", want, m.CapacityFactor(3))
	}
}

func TestCycleBasedDegradation(t *testing.T) {
	m := CycleBasedDegradation{Initial: 1.0, LossPerThousand: 0.018, CyclesPerYear: 365}

	annualLoss := 0.018 * 365 / 1000
	if math.Abs(m.CapacityFactor(2)-(1-annualLoss)) > 1e-9 {
		t.Errorf("year 2 expected %f, got %f", 1-annualLoss, m.CapacityFactor(2))
	}
}

func TestDegradation_MonotoneDecrease(t *testing.T) {
	p := params.Defaults().Sanitized()
	for _, mode := range []string{params.DegradationLinear, params.DegradationNonlinear, params.DegradationCycleBased} {
		p.DegradationMode = mode
		m := NewDegradationModel(p)
		prev := m.CapacityFactor(1)
		for y := 2; y <= p.OperationYears; y++ {
			cur := m.CapacityFactor(y)
			if cur > prev {
				t.Errorf("%s: capacity rose from %f to %f at year %d", mode, prev, cur, y)
			}
			prev = cur
		}
	}
}

func TestNewDegradationModel_Selection(t *testing.T) {
	p := params.Defaults().Sanitized()

	if _, ok := NewDegradationModel(p).(LinearDegradation); !ok {
		t.Errorf("default mode should select the linear model")
	}
	p.DegradationMode = params.DegradationNonlinear
	if _, ok := NewDegradationModel(p).(NonlinearDegradation); !ok {
		t.Errorf("nonlinear mode should select the nonlinear model")
	}
	p.DegradationMode = params.DegradationCycleBased
	if _, ok := NewDegradationModel(p).(CycleBasedDegradation); !ok {
		t.Errorf("cycle_based mode should select the cycle model")
	}
}
