// Package capex derives the one-time construction cost build-up of the
// plant from a sanitized parameter set.
//
// All amounts in the breakdown are expressed in 10^4 EUR, the model-wide
// monetary unit; unit prices on the parameter set stay in plain EUR.
package capex

import "bess_economics/pkg/core/params"

// costUnit converts EUR amounts to the model unit of 10^4 EUR.
const costUnit = 10000.0

// Breakdown is the itemized construction cost of the plant. Created once
// per evaluation and treated as read-only by every downstream component.
type Breakdown struct {
	// Main equipment
	Battery       float64 `json:"battery"`
	PCS           float64 `json:"pcs"`
	MVTransformer float64 `json:"mv_transformer"`
	HVTransformer float64 `json:"hv_transformer"`

	// Auxiliary equipment
	EMS            float64 `json:"ems"`
	SCADA          float64 `json:"scada"`
	Switchgear     float64 `json:"switchgear"`
	CollectorLine  float64 `json:"collector_line"`
	Thermal        float64 `json:"thermal"`
	FireProtection float64 `json:"fire_protection"`

	EquipmentSubtotal float64 `json:"equipment_subtotal"`

	// Grid connection
	Substation float64 `json:"substation"`
	GridLine   float64 `json:"grid_line"`
	GridStudy  float64 `json:"grid_study"`
	Metering   float64 `json:"metering"`

	GridConnectionSubtotal float64 `json:"grid_connection_subtotal"`

	// Land and civil works
	LandAcquisition float64 `json:"land_acquisition"`
	Concrete        float64 `json:"concrete"`
	Fence           float64 `json:"fence"`
	Road            float64 `json:"road"`
	Drainage        float64 `json:"drainage"`

	CivilSubtotal float64 `json:"civil_subtotal"`

	// Installation and construction
	Installation     float64 `json:"installation"`
	ConstructionMgmt float64 `json:"construction_mgmt"`
	Commissioning    float64 `json:"commissioning"`

	InstallationSubtotal float64 `json:"installation_subtotal"`

	// Construction-phase insurance
	CARInsurance       float64 `json:"car_insurance"`
	EARInsurance       float64 `json:"ear_insurance"`
	CargoInsurance     float64 `json:"cargo_insurance"`
	LiabilityInsurance float64 `json:"liability_insurance"`

	InsuranceSubtotal float64 `json:"insurance_subtotal"`

	// Development and owner's costs
	SPVAcquisition float64 `json:"spv_acquisition"`
	Permit         float64 `json:"permit"`
	Environmental  float64 `json:"environmental"`
	Legal          float64 `json:"legal"`
	Engineering    float64 `json:"engineering"`
	ProjectMgmt    float64 `json:"project_mgmt"`

	DevSubtotal float64 `json:"dev_subtotal"`

	Contingency float64 `json:"contingency"`

	// Total is the static investment; DynamicTotal adds capitalized
	// construction-period interest.
	Total                float64 `json:"total"`
	ConstructionInterest float64 `json:"construction_interest"`
	DynamicTotal         float64 `json:"dynamic_total"`
}

// IntangibleAssets is the part of the investment amortized rather than
// depreciated: development-phase costs plus land acquisition.
func (b *Breakdown) IntangibleAssets() float64 {
	return b.DevSubtotal + b.LandAcquisition
}

// FixedAssetBase is the depreciable original value. Construction-period
// interest is capitalized into it.
func (b *Breakdown) FixedAssetBase() float64 {
	return b.DynamicTotal - b.IntangibleAssets()
}

// LoanAmount is the debt share of the dynamic investment.
func (b *Breakdown) LoanAmount(p params.ParameterSet) float64 {
	return b.DynamicTotal * (1 - p.EquityRatio)
}

// Equity is the paid-in capital share of the dynamic investment.
func (b *Breakdown) Equity(p params.ParameterSet) float64 {
	return b.DynamicTotal * p.EquityRatio
}

// Calculate builds the cost breakdown from a sanitized parameter set.
//
// Unit conventions follow the input sheet: battery and thermal/fire systems
// are priced per kWh of capacity, PCS and civil works per kW of power,
// transformers and switchgear per unit, everything else as lump sums.
// Percentage items apply to the equipment subtotal except project
// management (percentage of the full pre-management subtotal) and
// contingency (percentage of the subtotal including project management).
func Calculate(p params.ParameterSet) *Breakdown {
	b := &Breakdown{}

	// Main equipment
	b.Battery = p.CapacityMWh * 1000 * p.BatteryUnitPrice / costUnit
	b.PCS = p.PowerMW * 1000 * p.PCSUnitPrice / costUnit
	b.MVTransformer = float64(p.MVTransformerCount) * p.MVTransformerPrice / costUnit
	b.HVTransformer = float64(p.HVTransformerCount) * p.HVTransformerPrice / costUnit

	// Auxiliary equipment
	b.EMS = p.EMSCost / costUnit
	b.SCADA = p.SCADACost / costUnit
	b.Switchgear = float64(p.SwitchgearCount) * p.SwitchgearPrice / costUnit
	b.CollectorLine = p.CollectorLineCost / costUnit
	b.Thermal = p.CapacityMWh * 1000 * p.ThermalCost / costUnit
	b.FireProtection = p.CapacityMWh * 1000 * p.FireProtectionCost / costUnit

	b.EquipmentSubtotal = b.Battery + b.PCS + b.MVTransformer + b.HVTransformer +
		b.EMS + b.SCADA + b.Switchgear + b.CollectorLine + b.Thermal + b.FireProtection

	// Grid connection
	b.Substation = p.SubstationCost / costUnit
	b.GridLine = p.GridLineCost / costUnit
	b.GridStudy = p.GridStudyCost / costUnit
	b.Metering = p.MeteringCost / costUnit
	b.GridConnectionSubtotal = b.Substation + b.GridLine + b.GridStudy + b.Metering

	// Land and civil works
	b.LandAcquisition = p.PowerMW * 1000 * p.LandAcquisitionCost / costUnit
	b.Concrete = p.PowerMW * 1000 * p.ConcreteCost / costUnit
	b.Fence = p.FenceCost / costUnit
	b.Road = p.RoadCost / costUnit
	b.Drainage = p.DrainageCost / costUnit
	b.CivilSubtotal = b.LandAcquisition + b.Concrete + b.Fence + b.Road + b.Drainage

	// Installation and construction
	b.Installation = b.EquipmentSubtotal * p.InstallationPct
	b.ConstructionMgmt = b.EquipmentSubtotal * p.ConstructionMgmtPct
	b.Commissioning = p.CommissioningCost / costUnit
	b.InstallationSubtotal = b.Installation + b.ConstructionMgmt + b.Commissioning

	// Construction-phase insurance
	b.CARInsurance = b.EquipmentSubtotal * p.CARInsurancePct
	b.EARInsurance = b.EquipmentSubtotal * p.EARInsurancePct
	b.CargoInsurance = b.EquipmentSubtotal * p.CargoInsurancePct
	b.LiabilityInsurance = p.LiabilityInsurance / costUnit
	b.InsuranceSubtotal = b.CARInsurance + b.EARInsurance + b.CargoInsurance + b.LiabilityInsurance

	// Development and owner's costs
	b.SPVAcquisition = p.SPVAcquisitionCost / costUnit
	b.Permit = p.PermitCost / costUnit
	b.Environmental = p.EnvironmentalCost / costUnit
	b.Legal = p.LegalCost / costUnit
	b.Engineering = b.EquipmentSubtotal * p.EngineeringPct

	subtotalBeforeMgmt := b.EquipmentSubtotal + b.GridConnectionSubtotal +
		b.CivilSubtotal + b.InstallationSubtotal + b.InsuranceSubtotal +
		b.SPVAcquisition + b.Permit + b.Environmental + b.Legal + b.Engineering

	b.ProjectMgmt = subtotalBeforeMgmt * p.ProjectMgmtPct
	b.DevSubtotal = b.SPVAcquisition + b.Permit + b.Environmental + b.Legal + b.Engineering + b.ProjectMgmt

	subtotalBeforeContingency := subtotalBeforeMgmt + b.ProjectMgmt
	b.Contingency = subtotalBeforeContingency * p.ContingencyPct

	// The decommissioning reserve accrues through OPEX, not CAPEX.
	b.Total = subtotalBeforeContingency + b.Contingency

	// FORMULA: interest = loan × rate × construction period × avg fund usage
	// The loan share here is taken from the static total; the capitalized
	// interest then rolls into the dynamic total.
	loanAmount := b.Total * (1 - p.EquityRatio)
	b.ConstructionInterest = loanAmount * p.LoanRate * p.ConstructionPeriod * p.ConstructionFundUsage
	b.DynamicTotal = b.Total + b.ConstructionInterest

	return b
}
