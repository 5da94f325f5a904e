package projection

import (
	"math"
	"testing"

	"bess_economics/pkg/core/capex"
	"bess_economics/pkg/core/params"
)

func TestProjectOpex_YearOneBases(t *testing.T) {
	p := params.Defaults().Sanitized()
	cx := capex.Calculate(p)
	series := ProjectOpex(p, cx)

	if len(series) != p.OperationYears {
		t.Fatalf("expected %d years, got %d", p.OperationYears, len(series))
	}

	y1 := series[0]
	// 6 EUR/kW × 100,000 kW = 600,000 EUR = 60 model units
	if math.Abs(y1.Technical-60) > 1e-9 {
		t.Errorf("year 1 technical expected 60, got %f", y1.Technical)
	}
	if math.Abs(y1.Insurance-cx.Total*p.OpexInsurancePct) > 1e-9 {
		t.Errorf("year 1 insurance expected %f, got %f", cx.Total*p.OpexInsurancePct, y1.Insurance)
	}
	// 12,000 EUR/MW × 100 MW = 1,200,000 EUR = 120 model units
	if math.Abs(y1.Grid-120) > 1e-9 {
		t.Errorf("year 1 grid expected 120, got %f", y1.Grid)
	}
	// 500,000 EUR over 20 years = 25,000 EUR/yr = 2.5 model units
	if math.Abs(y1.Decommissioning-2.5) > 1e-9 {
		t.Errorf("year 1 decommissioning expected 2.5, got %f", y1.Decommissioning)
	}

	sum := y1.Technical + y1.Insurance + y1.Grid + y1.Land + y1.Commercial + y1.Other + y1.Decommissioning
	if math.Abs(y1.Total-sum) > 1e-12 {
		t.Errorf("year 1 total %f does not match category sum %f", y1.Total, sum)
	}
}

func TestProjectOpex_EscalationCompounds(t *testing.T) {
	p := params.Defaults().Sanitized()
	cx := capex.Calculate(p)
	series := ProjectOpex(p, cx)

	// Technical escalation 2% on top of 2% inflation.
	want := series[0].Technical * math.Pow(1.02, 5) * math.Pow(1.02, 5)
	if math.Abs(series[5].Technical-want) > 1e-6 {
		t.Errorf("year 6 technical expected %f, got %f", want, series[5].Technical)
	}

	for i := 1; i < len(series); i++ {
		if series[i].Total <= series[i-1].Total {
			t.Errorf("opex should rise year over year: year %d %f after %f",
				i+1, series[i].Total, series[i-1].Total)
		}
	}
}

func TestProjectRevenue_TollingHorizon(t *testing.T) {
	p := params.Defaults().Sanitized()
	prices := params.DefaultSpotPrices(p)
	series := ProjectRevenue(p, prices)

	if len(series) != p.OperationYears {
		t.Fatalf("expected %d years, got %d", p.OperationYears, len(series))
	}

	// Year 1: 95 EUR/kW × 100,000 kW × 0.8 = 7,600,000 EUR = 760 model units
	if math.Abs(series[0].Tolling-760) > 1e-9 {
		t.Errorf("year 1 tolling expected 760, got %f", series[0].Tolling)
	}
	// Year 1 spot: 35,000 EUR/MW × 100 MW × 0.2 × 1.0 = 700,000 EUR = 70 units
	if math.Abs(series[0].Spot-70) > 1e-9 {
		t.Errorf("year 1 spot expected 70, got %f", series[0].Spot)
	}

	// Inside the horizon tolling escalates.
	want := 760 * math.Pow(1+p.TollingEscalation, 4)
	if math.Abs(series[4].Tolling-want) > 1e-6 {
		t.Errorf("year 5 tolling expected %f, got %f", want, series[4].Tolling)
	}

	// Beyond the horizon the plant is fully merchant.
	post := series[p.TollingYears]
	if post.Tolling != 0 {
		t.Errorf("year %d should have no tolling revenue, got %f", p.TollingYears+1, post.Tolling)
	}
	wantSpot := prices[p.TollingYears] * p.PowerMW * post.CapacityFactor / 10000
	if math.Abs(post.Spot-wantSpot) > 1e-9 {
		t.Errorf("year %d spot expected full power %f, got %f", p.TollingYears+1, wantSpot, post.Spot)
	}
}

func TestProjectRevenue_SpotTracksDegradation(t *testing.T) {
	p := params.Defaults().Sanitized()
	p.TollingYears = 0 // fully merchant
	prices := params.FillSpotPrices(p.OperationYears, 35000, 0) // flat prices
	series := ProjectRevenue(p, prices)

	for i := 1; i < len(series); i++ {
		if series[i].Spot >= series[i-1].Spot {
			t.Errorf("flat-price merchant revenue must fall with degradation: year %d %f after %f",
				i+1, series[i].Spot, series[i-1].Spot)
		}
		if series[i].CapacityFactor >= series[i-1].CapacityFactor {
			t.Errorf("capacity factor must fall: year %d", i+1)
		}
	}
}
