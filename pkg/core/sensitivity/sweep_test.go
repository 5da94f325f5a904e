package sensitivity

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"bess_economics/pkg/core/pipeline"
)

func TestShocks_RangeExpansion(t *testing.T) {
	shocks := Shocks(-0.3, 0.3, 0.1)
	if len(shocks) != 7 {
		t.Fatalf("expected 7 shocks, got %d: %v", len(shocks), shocks)
	}
	if shocks[0] != -0.3 || shocks[3] != 0 || shocks[6] != 0.3 {
		t.Errorf("shock axis malformed: %v", shocks)
	}

	if Shocks(0.3, -0.3, 0.1) != nil {
		t.Errorf("inverted range must yield no shocks")
	}
	if Shocks(-0.1, 0.1, 0) != nil {
		t.Errorf("zero step must yield no shocks")
	}
}

func TestLookup(t *testing.T) {
	for _, id := range []string{"capex", "tolling_price", "spot_price", "opex", "loan_rate", "degradation"} {
		if _, err := Lookup(id); err != nil {
			t.Errorf("registered variable %q not found: %v", id, err)
		}
	}
	if _, err := Lookup("weather"); err == nil {
		t.Errorf("unknown variable must be rejected")
	}
	if len(Variables()) < 6 {
		t.Errorf("registry lost variables: %d", len(Variables()))
	}
}

func TestRun_SingleSweep(t *testing.T) {
	a := NewAnalyzer(pipeline.New())

	res, err := a.Run(pipeline.Input{}, Request{
		Variable1: "capex",
		Target:    TargetProjectIRR,
		Min:       -0.2,
		Max:       0.2,
		Step:      0.1,
	})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(res.Points) != 5 || len(res.Shocks) != 5 {
		t.Fatalf("expected 5 points, got %d", len(res.Points))
	}
	if res.Grid != nil {
		t.Errorf("1-D sweep must not produce a grid")
	}

	// A higher investment cost strictly lowers the project return.
	for i := 1; i < len(res.Points); i++ {
		cur, prev := float64(res.Points[i].Value), float64(res.Points[i-1].Value)
		if math.IsNaN(cur) || math.IsNaN(prev) {
			t.Fatalf("base-case sweep values must be defined")
		}
		if cur >= prev {
			t.Errorf("project IRR must fall with capex shock: %f at %+.1f after %f",
				cur, res.Points[i].Shock, prev)
		}
	}
}

func TestRun_RevenueShockRaisesNPV(t *testing.T) {
	a := NewAnalyzer(pipeline.New())

	res, err := a.Run(pipeline.Input{}, Request{
		Variable1: "tolling_price",
		Target:    TargetNPV,
		Min:       -0.1,
		Max:       0.1,
		Step:      0.1,
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(res.Points); i++ {
		if res.Points[i].Value <= res.Points[i-1].Value {
			t.Errorf("NPV must rise with the tolling price: %v", res.Points)
		}
	}
}

func TestRun_DoubleSweep(t *testing.T) {
	a := NewAnalyzer(pipeline.New())

	res, err := a.Run(pipeline.Input{}, Request{
		Variable1: "capex",
		Variable2: "spot_price",
		Target:    TargetEquityIRR,
		Min:       -0.1,
		Max:       0.1,
		Step:      0.1,
	})
	if err != nil {
		t.Fatalf("2-D sweep failed: %v", err)
	}

	if len(res.Grid) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(res.Grid))
	}
	for i, row := range res.Grid {
		if len(row) != 3 {
			t.Fatalf("row %d expected 3 columns, got %d", i, len(row))
		}
	}
	if res.Points != nil {
		t.Errorf("2-D sweep must not produce points")
	}

	// Along each capex row, a higher spot price improves the return.
	for i, row := range res.Grid {
		for j := 1; j < len(row); j++ {
			if row[j] <= row[j-1] {
				t.Errorf("row %d: equity IRR must rise with the spot price", i)
			}
		}
	}
}

func TestRun_RejectsUnknownRequest(t *testing.T) {
	a := NewAnalyzer(pipeline.New())

	if _, err := a.Run(pipeline.Input{}, Request{Variable1: "weather", Target: TargetNPV, Min: -0.1, Max: 0.1, Step: 0.1}); err == nil {
		t.Errorf("unknown variable must be rejected")
	}
	if _, err := a.Run(pipeline.Input{}, Request{Variable1: "capex", Target: "vibes", Min: -0.1, Max: 0.1, Step: 0.1}); err == nil {
		t.Errorf("unknown target must be rejected")
	}
	if _, err := a.Run(pipeline.Input{}, Request{Variable1: "capex", Target: TargetNPV, Min: 0.1, Max: -0.1, Step: 0.1}); err == nil {
		t.Errorf("empty shock range must be rejected")
	}
}

func TestRun_LeavesBaseInputUntouched(t *testing.T) {
	a := NewAnalyzer(pipeline.New())

	base := pipeline.Input{}
	base.Params.TollingPrice = 95

	if _, err := a.Run(base, Request{Variable1: "tolling_price", Target: TargetNPV, Min: -0.3, Max: 0.3, Step: 0.1}); err != nil {
		t.Fatal(err)
	}
	if base.Params.TollingPrice != 95 {
		t.Errorf("sweep mutated the base input: %f", base.Params.TollingPrice)
	}
}

func TestValue_NaNMarshalsAsNull(t *testing.T) {
	data, err := json.Marshal(Point{Shock: 0.1, Value: Value(math.NaN())})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"value":null`) {
		t.Errorf("NaN sample must serialize as null, got %s", data)
	}
}
