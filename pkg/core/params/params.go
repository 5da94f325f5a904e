// Package params defines the fully-defaulted input record for a storage
// project evaluation. A ParameterSet is a plain value: copying it by
// assignment yields an independent set, which is what the sensitivity
// engine relies on for perturbed copies.
package params

// Repayment methods for the project loan.
const (
	RepayEqualPrincipal = "equal_principal"
	RepayAnnuity        = "equal_installment"
)

// Depreciation methods for the fixed-asset base.
const (
	DepStraightLine    = "straight_line"
	DepDoubleDeclining = "double_declining"
	DepSumOfYears      = "sum_of_years"
)

// Degradation modes for battery capacity fade.
const (
	DegradationLinear     = "linear"
	DegradationNonlinear  = "nonlinear"
	DegradationCycleBased = "cycle_based"
)

// ParameterSet holds every input of the financial model. All ratio fields
// are canonical fractions (0.25, not 25); presentation scaling is a report
// concern. Monetary unit prices are EUR unless the field comment says
// otherwise; model-level amounts downstream are in 10^4 EUR.
//
// Zero or out-of-range fields are resolved to the documented defaults by
// Sanitized; the calculation pipeline itself never validates.
type ParameterSet struct {
	// Plant
	PowerMW         float64 `json:"power_mw"`          // nameplate power, default 100
	CapacityMWh     float64 `json:"capacity_mwh"`      // energy capacity, default 200
	OperationYears  int     `json:"operation_years"`   // default 20
	InitialCapacity float64 `json:"initial_capacity"`  // usable fraction at COD, default 1.0

	// Financing
	EquityRatio     float64 `json:"equity_ratio"`     // default 0.25
	LoanYears       int     `json:"loan_years"`       // default 12
	LoanRate        float64 `json:"loan_rate"`        // default 0.045
	GracePeriod     int     `json:"grace_period"`     // interest-only years, default 1
	RepaymentMethod string  `json:"repayment_method"` // default equal_principal

	// Construction period and inflation
	ConstructionPeriod    float64 `json:"construction_period"`     // years, default 1
	ConstructionFundUsage float64 `json:"construction_fund_usage"` // average draw fraction, default 0.5
	InflationRate         float64 `json:"inflation_rate"`          // default 0.02

	// Depreciation and amortization
	DepreciationYears  int     `json:"depreciation_years"`  // default 15
	SalvageRate        float64 `json:"salvage_rate"`        // default 0.05
	DepreciationMethod string  `json:"depreciation_method"` // default straight_line
	AmortizationYears  int     `json:"amortization_years"`  // intangibles, default 20

	// Efficiency and degradation
	ChargeEfficiency    float64 `json:"charge_efficiency"`    // default 0.95
	DischargeEfficiency float64 `json:"discharge_efficiency"` // default 0.95
	AnnualCycles        int     `json:"annual_cycles"`        // default 365

	DegradationMode           string  `json:"degradation_mode"`            // default linear
	DegradationRate           float64 `json:"degradation_rate"`            // linear fade per year, default 0.025
	DegradationFirstYear      float64 `json:"degradation_first_year"`      // nonlinear: year-1 fade, default 0.03
	DegradationAnnualDecrease float64 `json:"degradation_annual_decrease"` // nonlinear: fade step-down per year, default 0.001
	CyclesPerDegradation      float64 `json:"cycles_per_degradation"`      // cycle_based: fade per 1000 cycles, default 0.018
	CapacityThreshold         float64 `json:"capacity_threshold"`          // usable-life floor, default 0.80

	// Taxes (German regime)
	CorporateTaxRate  float64 `json:"corporate_tax_rate"` // default 0.15
	SolidarityTaxRate float64 `json:"solidarity_tax_rate"`// surcharge on corporate tax, default 0.055
	TradeTaxRate      float64 `json:"trade_tax_rate"`     // default 0.14
	VATRate           float64 `json:"vat_rate"`           // default 0.19
	OtherTaxRate      float64 `json:"other_tax_rate"`     // default 0

	// Tolling contract
	TollingYears      int     `json:"tolling_years"`      // contracted horizon, default 10
	TollingRatio      float64 `json:"tolling_ratio"`      // contracted capacity share, default 0.8
	TollingPrice      float64 `json:"tolling_price"`      // EUR/kW/yr, default 95
	TollingEscalation float64 `json:"tolling_escalation"` // default 0.02

	// Main equipment
	BatteryCabinetCapacity float64 `json:"battery_cabinet_capacity"` // MWh per cabinet, default 5.0
	BatteryCabinetCount    int     `json:"battery_cabinet_count"`    // default 40
	BatteryUnitPrice       float64 `json:"battery_unit_price"`       // EUR/kWh, default 75
	PCSPower               float64 `json:"pcs_power"`                // MW per unit, default 5.5
	PCSCount               int     `json:"pcs_count"`                // default 19
	PCSUnitPrice           float64 `json:"pcs_unit_price"`           // EUR/kW, default 28
	MVTransformerCapacity  float64 `json:"mv_transformer_capacity"`  // kVA, default 6300
	MVTransformerCount     int     `json:"mv_transformer_count"`     // default 19
	MVTransformerPrice     float64 `json:"mv_transformer_price"`     // EUR/unit, default 35000
	HVTransformerCapacity  float64 `json:"hv_transformer_capacity"`  // MVA, default 120
	HVTransformerCount     int     `json:"hv_transformer_count"`     // default 1
	HVTransformerPrice     float64 `json:"hv_transformer_price"`     // EUR/unit, default 750000

	// Auxiliary equipment
	EMSCost           float64 `json:"ems_cost"`            // EUR, default 200000
	SCADACost         float64 `json:"scada_cost"`          // EUR, default 120000
	SwitchgearPrice   float64 `json:"switchgear_price"`    // EUR/panel, default 18000
	SwitchgearCount   int     `json:"switchgear_count"`    // default 25
	CollectorLineCost float64 `json:"collector_line_cost"` // EUR, default 250000
	ThermalCost       float64 `json:"thermal_cost"`        // EUR/kWh, default 20
	FireProtectionCost float64 `json:"fire_protection_cost"` // EUR/kWh, default 12

	// Grid connection (110 kV)
	SubstationCost float64 `json:"substation_cost"` // EUR, default 800000
	GridLineCost   float64 `json:"grid_line_cost"`  // EUR, default 500000
	GridStudyCost  float64 `json:"grid_study_cost"` // EUR, default 80000
	MeteringCost   float64 `json:"metering_cost"`   // EUR, default 100000

	// Land and civil works
	LandAcquisitionCost float64 `json:"land_acquisition_cost"` // EUR/kW, default 50
	ConcreteCost        float64 `json:"concrete_cost"`         // EUR/kW, default 25
	FenceCost           float64 `json:"fence_cost"`            // EUR, default 80000
	RoadCost            float64 `json:"road_cost"`             // EUR, default 120000
	DrainageCost        float64 `json:"drainage_cost"`         // EUR, default 50000

	// Installation and construction
	InstallationPct     float64 `json:"installation_cost_pct"` // of equipment subtotal, default 0.06
	ConstructionMgmtPct float64 `json:"construction_mgmt_pct"` // of equipment subtotal, default 0.025
	CommissioningCost   float64 `json:"commissioning_cost"`    // EUR, default 150000

	// Construction-phase insurance
	CARInsurancePct   float64 `json:"car_insurance_pct"`   // of equipment subtotal, default 0.003
	EARInsurancePct   float64 `json:"ear_insurance_pct"`   // of equipment subtotal, default 0.002
	CargoInsurancePct float64 `json:"cargo_insurance_pct"` // of equipment subtotal, default 0.0015
	LiabilityInsurance float64 `json:"liability_insurance"` // EUR, default 50000

	// Development and owner's costs
	SPVAcquisitionCost float64 `json:"spv_acquisition_cost"` // EUR, default 50000
	PermitCost         float64 `json:"permit_cost"`          // EUR, default 180000
	EnvironmentalCost  float64 `json:"environmental_cost"`   // EUR, default 60000
	ProjectMgmtPct     float64 `json:"project_mgmt_pct"`     // of pre-management subtotal, default 0.02
	LegalCost          float64 `json:"legal_cost"`           // EUR, default 100000
	EngineeringPct     float64 `json:"engineering_pct"`      // of equipment subtotal, default 0.025
	ContingencyPct     float64 `json:"contingency_pct"`      // of subtotal incl. project mgmt, default 0.05

	// Decommissioning reserve, accrued evenly over the operating life
	DecommissioningTotal float64 `json:"decommissioning_total"` // EUR, default 500000

	// OPEX bases and per-category escalation
	OpexTechnical    float64 `json:"opex_technical"`     // EUR/kW/yr, default 6
	OpexTechnicalEsc float64 `json:"opex_technical_esc"` // default 0.02
	OpexInsurancePct float64 `json:"opex_insurance"`     // of static CAPEX per year, default 0.004
	OpexInsuranceEsc float64 `json:"opex_insurance_esc"` // default 0.015
	OpexGrid         float64 `json:"opex_grid"`          // EUR/MW/yr, default 12000
	OpexGridEsc      float64 `json:"opex_grid_esc"`      // default 0.02
	OpexLand         float64 `json:"opex_land"`          // EUR/yr, default 60000
	OpexLandEsc      float64 `json:"opex_land_esc"`      // default 0.02
	OpexCommercial   float64 `json:"opex_commercial"`    // EUR/MW/yr, default 4000
	OpexCommercialEsc float64 `json:"opex_commercial_esc"` // default 0.02
	OpexOther        float64 `json:"opex_other"`         // EUR/MW/yr, default 1500
	OpexOtherEsc     float64 `json:"opex_other_esc"`     // default 0.02

	// Spot market fallback (used when the price series has gaps)
	SpotBasePrice  float64 `json:"spot_base_price"` // EUR/MW/yr, default 35000
	SpotEscalation float64 `json:"spot_escalation"` // default 0.015
}

// Defaults returns the documented base case: a 100 MW / 200 MWh (2h)
// independent storage project under 2025 German market conditions.
func Defaults() ParameterSet {
	return ParameterSet{
		PowerMW:         100,
		CapacityMWh:     200,
		OperationYears:  20,
		InitialCapacity: 1.0,

		EquityRatio:     0.25,
		LoanYears:       12,
		LoanRate:        0.045,
		GracePeriod:     1,
		RepaymentMethod: RepayEqualPrincipal,

		ConstructionPeriod:    1,
		ConstructionFundUsage: 0.5,
		InflationRate:         0.02,

		DepreciationYears:  15,
		SalvageRate:        0.05,
		DepreciationMethod: DepStraightLine,
		AmortizationYears:  20,

		ChargeEfficiency:    0.95,
		DischargeEfficiency: 0.95,
		AnnualCycles:        365,

		DegradationMode:           DegradationLinear,
		DegradationRate:           0.025,
		DegradationFirstYear:      0.03,
		DegradationAnnualDecrease: 0.001,
		CyclesPerDegradation:      0.018,
		CapacityThreshold:         0.80,

		CorporateTaxRate:  0.15,
		SolidarityTaxRate: 0.055,
		TradeTaxRate:      0.14,
		VATRate:           0.19,
		OtherTaxRate:      0,

		TollingYears:      10,
		TollingRatio:      0.8,
		TollingPrice:      95,
		TollingEscalation: 0.02,

		BatteryCabinetCapacity: 5.0,
		BatteryCabinetCount:    40,
		BatteryUnitPrice:       75,
		PCSPower:               5.5,
		PCSCount:               19,
		PCSUnitPrice:           28,
		MVTransformerCapacity:  6300,
		MVTransformerCount:     19,
		MVTransformerPrice:     35000,
		HVTransformerCapacity:  120,
		HVTransformerCount:     1,
		HVTransformerPrice:     750000,

		EMSCost:            200000,
		SCADACost:          120000,
		SwitchgearPrice:    18000,
		SwitchgearCount:    25,
		CollectorLineCost:  250000,
		ThermalCost:        20,
		FireProtectionCost: 12,

		SubstationCost: 800000,
		GridLineCost:   500000,
		GridStudyCost:  80000,
		MeteringCost:   100000,

		LandAcquisitionCost: 50,
		ConcreteCost:        25,
		FenceCost:           80000,
		RoadCost:            120000,
		DrainageCost:        50000,

		InstallationPct:     0.06,
		ConstructionMgmtPct: 0.025,
		CommissioningCost:   150000,

		CARInsurancePct:    0.003,
		EARInsurancePct:    0.002,
		CargoInsurancePct:  0.0015,
		LiabilityInsurance: 50000,

		SPVAcquisitionCost: 50000,
		PermitCost:         180000,
		EnvironmentalCost:  60000,
		ProjectMgmtPct:     0.02,
		LegalCost:          100000,
		EngineeringPct:     0.025,
		ContingencyPct:     0.05,

		DecommissioningTotal: 500000,

		OpexTechnical:     6,
		OpexTechnicalEsc:  0.02,
		OpexInsurancePct:  0.004,
		OpexInsuranceEsc:  0.015,
		OpexGrid:          12000,
		OpexGridEsc:       0.02,
		OpexLand:          60000,
		OpexLandEsc:       0.02,
		OpexCommercial:    4000,
		OpexCommercialEsc: 0.02,
		OpexOther:         1500,
		OpexOtherEsc:      0.02,

		SpotBasePrice:  35000,
		SpotEscalation: 0.015,
	}
}

// Sanitized resolves missing or out-of-range fields to the documented
// defaults and returns the result as a new value. The receiver is not
// modified. Downstream components assume a sanitized set and perform no
// validation of their own.
func (p ParameterSet) Sanitized() ParameterSet {
	d := Defaults()

	fallbackPos := func(v, def float64) float64 {
		if v <= 0 {
			return def
		}
		return v
	}
	fallbackFrac := func(v, def float64) float64 {
		if v <= 0 || v > 1 {
			return def
		}
		return v
	}
	// Escalations and tax-style rates may legitimately be zero; only
	// negative or absurd values fall back.
	fallbackRate := func(v, def float64) float64 {
		if v < 0 || v > 1 {
			return def
		}
		return v
	}
	fallbackYears := func(v, def int) int {
		if v <= 0 {
			return def
		}
		return v
	}
	fallbackCount := func(v, def int) int {
		if v <= 0 {
			return def
		}
		return v
	}

	p.PowerMW = fallbackPos(p.PowerMW, d.PowerMW)
	p.CapacityMWh = fallbackPos(p.CapacityMWh, d.CapacityMWh)
	p.OperationYears = fallbackYears(p.OperationYears, d.OperationYears)
	p.InitialCapacity = fallbackFrac(p.InitialCapacity, d.InitialCapacity)

	p.EquityRatio = fallbackFrac(p.EquityRatio, d.EquityRatio)
	p.LoanYears = fallbackYears(p.LoanYears, d.LoanYears)
	p.LoanRate = fallbackRate(p.LoanRate, d.LoanRate)
	if p.GracePeriod < 0 || p.GracePeriod >= p.LoanYears {
		p.GracePeriod = d.GracePeriod
	}
	switch p.RepaymentMethod {
	case RepayEqualPrincipal, RepayAnnuity:
	default:
		p.RepaymentMethod = d.RepaymentMethod
	}

	p.ConstructionPeriod = fallbackPos(p.ConstructionPeriod, d.ConstructionPeriod)
	p.ConstructionFundUsage = fallbackFrac(p.ConstructionFundUsage, d.ConstructionFundUsage)
	p.InflationRate = fallbackRate(p.InflationRate, d.InflationRate)

	p.DepreciationYears = fallbackYears(p.DepreciationYears, d.DepreciationYears)
	p.SalvageRate = fallbackRate(p.SalvageRate, d.SalvageRate)
	switch p.DepreciationMethod {
	case DepStraightLine, DepDoubleDeclining, DepSumOfYears:
	default:
		p.DepreciationMethod = d.DepreciationMethod
	}
	p.AmortizationYears = fallbackYears(p.AmortizationYears, d.AmortizationYears)

	p.ChargeEfficiency = fallbackFrac(p.ChargeEfficiency, d.ChargeEfficiency)
	p.DischargeEfficiency = fallbackFrac(p.DischargeEfficiency, d.DischargeEfficiency)
	p.AnnualCycles = fallbackCount(p.AnnualCycles, d.AnnualCycles)

	switch p.DegradationMode {
	case DegradationLinear, DegradationNonlinear, DegradationCycleBased:
	default:
		p.DegradationMode = d.DegradationMode
	}
	p.DegradationRate = fallbackRate(p.DegradationRate, d.DegradationRate)
	p.DegradationFirstYear = fallbackRate(p.DegradationFirstYear, d.DegradationFirstYear)
	if p.DegradationAnnualDecrease < 0 {
		p.DegradationAnnualDecrease = d.DegradationAnnualDecrease
	}
	p.CyclesPerDegradation = fallbackRate(p.CyclesPerDegradation, d.CyclesPerDegradation)
	p.CapacityThreshold = fallbackFrac(p.CapacityThreshold, d.CapacityThreshold)

	p.CorporateTaxRate = fallbackRate(p.CorporateTaxRate, d.CorporateTaxRate)
	p.SolidarityTaxRate = fallbackRate(p.SolidarityTaxRate, d.SolidarityTaxRate)
	p.TradeTaxRate = fallbackRate(p.TradeTaxRate, d.TradeTaxRate)
	p.VATRate = fallbackRate(p.VATRate, d.VATRate)
	p.OtherTaxRate = fallbackRate(p.OtherTaxRate, d.OtherTaxRate)

	if p.TollingYears < 0 {
		p.TollingYears = d.TollingYears
	}
	p.TollingRatio = fallbackFrac(p.TollingRatio, d.TollingRatio)
	p.TollingPrice = fallbackPos(p.TollingPrice, d.TollingPrice)
	p.TollingEscalation = fallbackRate(p.TollingEscalation, d.TollingEscalation)

	p.BatteryCabinetCapacity = fallbackPos(p.BatteryCabinetCapacity, d.BatteryCabinetCapacity)
	p.BatteryCabinetCount = fallbackCount(p.BatteryCabinetCount, d.BatteryCabinetCount)
	p.BatteryUnitPrice = fallbackPos(p.BatteryUnitPrice, d.BatteryUnitPrice)
	p.PCSPower = fallbackPos(p.PCSPower, d.PCSPower)
	p.PCSCount = fallbackCount(p.PCSCount, d.PCSCount)
	p.PCSUnitPrice = fallbackPos(p.PCSUnitPrice, d.PCSUnitPrice)
	p.MVTransformerCapacity = fallbackPos(p.MVTransformerCapacity, d.MVTransformerCapacity)
	p.MVTransformerCount = fallbackCount(p.MVTransformerCount, d.MVTransformerCount)
	p.MVTransformerPrice = fallbackPos(p.MVTransformerPrice, d.MVTransformerPrice)
	p.HVTransformerCapacity = fallbackPos(p.HVTransformerCapacity, d.HVTransformerCapacity)
	p.HVTransformerCount = fallbackCount(p.HVTransformerCount, d.HVTransformerCount)
	p.HVTransformerPrice = fallbackPos(p.HVTransformerPrice, d.HVTransformerPrice)

	p.EMSCost = fallbackPos(p.EMSCost, d.EMSCost)
	p.SCADACost = fallbackPos(p.SCADACost, d.SCADACost)
	p.SwitchgearPrice = fallbackPos(p.SwitchgearPrice, d.SwitchgearPrice)
	p.SwitchgearCount = fallbackCount(p.SwitchgearCount, d.SwitchgearCount)
	p.CollectorLineCost = fallbackPos(p.CollectorLineCost, d.CollectorLineCost)
	p.ThermalCost = fallbackPos(p.ThermalCost, d.ThermalCost)
	p.FireProtectionCost = fallbackPos(p.FireProtectionCost, d.FireProtectionCost)

	p.SubstationCost = fallbackPos(p.SubstationCost, d.SubstationCost)
	p.GridLineCost = fallbackPos(p.GridLineCost, d.GridLineCost)
	p.GridStudyCost = fallbackPos(p.GridStudyCost, d.GridStudyCost)
	p.MeteringCost = fallbackPos(p.MeteringCost, d.MeteringCost)

	p.LandAcquisitionCost = fallbackPos(p.LandAcquisitionCost, d.LandAcquisitionCost)
	p.ConcreteCost = fallbackPos(p.ConcreteCost, d.ConcreteCost)
	p.FenceCost = fallbackPos(p.FenceCost, d.FenceCost)
	p.RoadCost = fallbackPos(p.RoadCost, d.RoadCost)
	p.DrainageCost = fallbackPos(p.DrainageCost, d.DrainageCost)

	p.InstallationPct = fallbackRate(p.InstallationPct, d.InstallationPct)
	p.ConstructionMgmtPct = fallbackRate(p.ConstructionMgmtPct, d.ConstructionMgmtPct)
	p.CommissioningCost = fallbackPos(p.CommissioningCost, d.CommissioningCost)

	p.CARInsurancePct = fallbackRate(p.CARInsurancePct, d.CARInsurancePct)
	p.EARInsurancePct = fallbackRate(p.EARInsurancePct, d.EARInsurancePct)
	p.CargoInsurancePct = fallbackRate(p.CargoInsurancePct, d.CargoInsurancePct)
	p.LiabilityInsurance = fallbackPos(p.LiabilityInsurance, d.LiabilityInsurance)

	p.SPVAcquisitionCost = fallbackPos(p.SPVAcquisitionCost, d.SPVAcquisitionCost)
	p.PermitCost = fallbackPos(p.PermitCost, d.PermitCost)
	p.EnvironmentalCost = fallbackPos(p.EnvironmentalCost, d.EnvironmentalCost)
	p.ProjectMgmtPct = fallbackRate(p.ProjectMgmtPct, d.ProjectMgmtPct)
	p.LegalCost = fallbackPos(p.LegalCost, d.LegalCost)
	p.EngineeringPct = fallbackRate(p.EngineeringPct, d.EngineeringPct)
	p.ContingencyPct = fallbackRate(p.ContingencyPct, d.ContingencyPct)

	if p.DecommissioningTotal < 0 {
		p.DecommissioningTotal = d.DecommissioningTotal
	}

	p.OpexTechnical = fallbackPos(p.OpexTechnical, d.OpexTechnical)
	p.OpexTechnicalEsc = fallbackRate(p.OpexTechnicalEsc, d.OpexTechnicalEsc)
	p.OpexInsurancePct = fallbackRate(p.OpexInsurancePct, d.OpexInsurancePct)
	p.OpexInsuranceEsc = fallbackRate(p.OpexInsuranceEsc, d.OpexInsuranceEsc)
	p.OpexGrid = fallbackPos(p.OpexGrid, d.OpexGrid)
	p.OpexGridEsc = fallbackRate(p.OpexGridEsc, d.OpexGridEsc)
	p.OpexLand = fallbackPos(p.OpexLand, d.OpexLand)
	p.OpexLandEsc = fallbackRate(p.OpexLandEsc, d.OpexLandEsc)
	p.OpexCommercial = fallbackPos(p.OpexCommercial, d.OpexCommercial)
	p.OpexCommercialEsc = fallbackRate(p.OpexCommercialEsc, d.OpexCommercialEsc)
	p.OpexOther = fallbackPos(p.OpexOther, d.OpexOther)
	p.OpexOtherEsc = fallbackRate(p.OpexOtherEsc, d.OpexOtherEsc)

	p.SpotBasePrice = fallbackPos(p.SpotBasePrice, d.SpotBasePrice)
	p.SpotEscalation = fallbackRate(p.SpotEscalation, d.SpotEscalation)

	return p
}

// DurationHours returns the storage duration (capacity / power).
func (p ParameterSet) DurationHours() float64 {
	if p.PowerMW == 0 {
		return 0
	}
	return p.CapacityMWh / p.PowerMW
}

// RoundTripEfficiency is the product of charge and discharge efficiency.
func (p ParameterSet) RoundTripEfficiency() float64 {
	return p.ChargeEfficiency * p.DischargeEfficiency
}

// EffectiveTaxRate combines the German tax components:
// corporate tax grossed up by the solidarity surcharge, plus trade tax and
// any other levies.
func (p ParameterSet) EffectiveTaxRate() float64 {
	return p.CorporateTaxRate*(1+p.SolidarityTaxRate) + p.TradeTaxRate + p.OtherTaxRate
}
