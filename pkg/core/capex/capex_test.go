package capex

import (
	"math"
	"testing"

	"bess_economics/pkg/core/params"
)

func TestCalculate_MainEquipment(t *testing.T) {
	p := params.Defaults().Sanitized()
	b := Calculate(p)

	// 200 MWh × 1000 kWh/MWh × 75 EUR/kWh = 15,000,000 EUR = 1500 model units
	if math.Abs(b.Battery-1500) > 1e-9 {
		t.Errorf("battery expected 1500, got %f", b.Battery)
	}
	// 100 MW × 1000 kW/MW × 28 EUR/kW = 2,800,000 EUR = 280 model units
	if math.Abs(b.PCS-280) > 1e-9 {
		t.Errorf("pcs expected 280, got %f", b.PCS)
	}
	// 19 × 35,000 EUR = 66.5 model units
	if math.Abs(b.MVTransformer-66.5) > 1e-9 {
		t.Errorf("mv transformer expected 66.5, got %f", b.MVTransformer)
	}
	if math.Abs(b.HVTransformer-75) > 1e-9 {
		t.Errorf("hv transformer expected 75, got %f", b.HVTransformer)
	}
}

func TestCalculate_SubtotalsAddUp(t *testing.T) {
	p := params.Defaults().Sanitized()
	b := Calculate(p)

	equipment := b.Battery + b.PCS + b.MVTransformer + b.HVTransformer +
		b.EMS + b.SCADA + b.Switchgear + b.CollectorLine + b.Thermal + b.FireProtection
	if math.Abs(b.EquipmentSubtotal-equipment) > 1e-9 {
		t.Errorf("equipment subtotal mismatch: %f vs %f", b.EquipmentSubtotal, equipment)
	}

	preMgmt := b.EquipmentSubtotal + b.GridConnectionSubtotal + b.CivilSubtotal +
		b.InstallationSubtotal + b.InsuranceSubtotal +
		b.SPVAcquisition + b.Permit + b.Environmental + b.Legal + b.Engineering

	if math.Abs(b.ProjectMgmt-preMgmt*p.ProjectMgmtPct) > 1e-9 {
		t.Errorf("project mgmt expected %f, got %f", preMgmt*p.ProjectMgmtPct, b.ProjectMgmt)
	}
	if math.Abs(b.Contingency-(preMgmt+b.ProjectMgmt)*p.ContingencyPct) > 1e-9 {
		t.Errorf("contingency expected on subtotal incl. project mgmt, got %f", b.Contingency)
	}
	if math.Abs(b.Total-(preMgmt+b.ProjectMgmt+b.Contingency)) > 1e-9 {
		t.Errorf("total mismatch: %f", b.Total)
	}
}

func TestCalculate_ConstructionInterest(t *testing.T) {
	p := params.Defaults().Sanitized()
	b := Calculate(p)

	want := b.Total * (1 - p.EquityRatio) * p.LoanRate * p.ConstructionPeriod * p.ConstructionFundUsage
	if math.Abs(b.ConstructionInterest-want) > 1e-9 {
		t.Errorf("construction interest expected %f, got %f", want, b.ConstructionInterest)
	}
	if b.DynamicTotal <= b.Total {
		t.Errorf("dynamic total %f must exceed static total %f", b.DynamicTotal, b.Total)
	}
	if math.Abs(b.DynamicTotal-(b.Total+b.ConstructionInterest)) > 1e-9 {
		t.Errorf("dynamic total mismatch: %f", b.DynamicTotal)
	}
}

func TestBreakdown_FinancingSplit(t *testing.T) {
	p := params.Defaults().Sanitized()
	b := Calculate(p)

	if math.Abs(b.LoanAmount(p)+b.Equity(p)-b.DynamicTotal) > 1e-9 {
		t.Errorf("loan + equity must equal dynamic total: %f + %f vs %f",
			b.LoanAmount(p), b.Equity(p), b.DynamicTotal)
	}
	if math.Abs(b.Equity(p)-b.DynamicTotal*0.25) > 1e-9 {
		t.Errorf("equity expected 25%% of dynamic total, got %f", b.Equity(p))
	}
}

func TestBreakdown_AssetSplit(t *testing.T) {
	p := params.Defaults().Sanitized()
	b := Calculate(p)

	if math.Abs(b.IntangibleAssets()-(b.DevSubtotal+b.LandAcquisition)) > 1e-9 {
		t.Errorf("intangibles expected dev subtotal + land, got %f", b.IntangibleAssets())
	}
	if math.Abs(b.FixedAssetBase()+b.IntangibleAssets()-b.DynamicTotal) > 1e-9 {
		t.Errorf("fixed asset base + intangibles must equal dynamic total")
	}
	if b.FixedAssetBase() <= 0 {
		t.Errorf("fixed asset base must be positive, got %f", b.FixedAssetBase())
	}
}

func TestCalculate_ScalesWithUnitPrice(t *testing.T) {
	p := params.Defaults().Sanitized()
	base := Calculate(p)

	p.BatteryUnitPrice *= 1.2
	shocked := Calculate(p)

	if shocked.Battery <= base.Battery {
		t.Errorf("battery cost must rise with unit price: %f vs %f", shocked.Battery, base.Battery)
	}
	if shocked.Total <= base.Total || shocked.DynamicTotal <= base.DynamicTotal {
		t.Errorf("totals must rise with the battery price")
	}
}
