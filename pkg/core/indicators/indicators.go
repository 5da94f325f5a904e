package indicators

import (
	"math"

	"bess_economics/pkg/core/capex"
	"bess_economics/pkg/core/params"
	"bess_economics/pkg/core/projection"
	"bess_economics/pkg/core/statements"
)

// Indicators is the flat record of scalar outputs of an evaluation. Rates
// are canonical fractions, paybacks are years, monetary totals are in
// 10^4 EUR, LCOE is EUR/MWh. NaN marks a numerically undefined value.
type Indicators struct {
	StaticInvestment  float64 `json:"static_investment"`
	DynamicInvestment float64 `json:"dynamic_investment"`

	TotalRevenue     float64 `json:"total_revenue"`
	AvgRevenue       float64 `json:"avg_revenue"`
	First3Revenue    float64 `json:"first3_revenue"`
	TotalProfit      float64 `json:"total_profit"` // pre-tax
	AvgProfit        float64 `json:"avg_profit"`
	First3Profit     float64 `json:"first3_profit"`
	TotalNetProfit   float64 `json:"total_net_profit"`
	AvgNetProfit     float64 `json:"avg_net_profit"`
	First3NetProfit  float64 `json:"first3_net_profit"`

	ProjectIRR float64 `json:"project_irr"`
	EquityIRR  float64 `json:"equity_irr"`
	ProjectNPV float64 `json:"project_npv"`

	StaticPayback        float64 `json:"static_payback"`
	EquityPayback        float64 `json:"equity_payback"`
	DynamicPayback       float64 `json:"dynamic_payback"`
	EquityDynamicPayback float64 `json:"equity_dynamic_payback"`

	ROEYear3     float64 `json:"roe_year3"`
	ROI          float64 `json:"roi"`
	EBITDAReturn float64 `json:"ebitda_return"`

	DSCR    float64 `json:"dscr"`     // average over debt service years
	MinDSCR float64 `json:"min_dscr"` // worst single year during the loan term

	LCOE float64 `json:"lcoe"`
}

// Compute derives the full indicator set from the statement chain.
// discountRate feeds NPV and the discounted paybacks; pass
// DefaultDiscountRate for the standard configuration.
func Compute(p params.ParameterSet, cx *capex.Breakdown,
	revenue []projection.RevenueYear, income []statements.IncomeYear,
	cashFlow []statements.CashFlowYear, balance []statements.BalanceYear,
	loan []projection.LoanYear, discountRate float64) *Indicators {

	projectFlows := statements.ProjectFlows(cashFlow)
	equityFlows := statements.EquityFlows(cashFlow)
	years := float64(p.OperationYears)

	ind := &Indicators{
		StaticInvestment:  cx.Total,
		DynamicInvestment: cx.DynamicTotal,
	}

	for i, r := range revenue {
		ind.TotalRevenue += r.Total
		if i < 3 {
			ind.First3Revenue += r.Total
		}
	}
	ind.AvgRevenue = ind.TotalRevenue / years

	var totalEBITDA float64
	for i, y := range income {
		ind.TotalProfit += y.EBT
		ind.TotalNetProfit += y.NetProfit
		totalEBITDA += y.EBITDA
		if i < 3 {
			ind.First3Profit += y.EBT
			ind.First3NetProfit += y.NetProfit
		}
	}
	ind.AvgProfit = ind.TotalProfit / years
	ind.AvgNetProfit = ind.TotalNetProfit / years

	ind.ProjectIRR = IRR(projectFlows)
	ind.EquityIRR = IRR(equityFlows)
	ind.ProjectNPV = NPV(projectFlows, discountRate)

	ind.StaticPayback = StaticPayback(projectFlows)
	ind.EquityPayback = StaticPayback(equityFlows)
	ind.DynamicPayback = DiscountedPayback(projectFlows, discountRate)
	ind.EquityDynamicPayback = DiscountedPayback(equityFlows, discountRate)

	// ROE measured in year 3 once operations have settled; balance index 3
	// is the year-3 closing sheet.
	if len(income) >= 3 && len(balance) >= 4 && balance[3].TotalEquity > 0 {
		ind.ROEYear3 = income[2].NetProfit / balance[3].TotalEquity
	}
	ind.ROI = ind.AvgNetProfit / cx.DynamicTotal
	ind.EBITDAReturn = totalEBITDA / years / cx.DynamicTotal

	ind.DSCR, ind.MinDSCR = debtServiceCoverage(p, income, loan)
	ind.LCOE = levelizedCost(p, cx, revenue, income)

	return ind
}

// debtServiceCoverage averages the per-year EBITDA / debt service ratio
// over the years with debt service due, and tracks the worst single year
// as a covenant-risk signal. No debt service at all is undefined.
func debtServiceCoverage(p params.ParameterSet, income []statements.IncomeYear,
	loan []projection.LoanYear) (avg, min float64) {

	var sum float64
	var count int
	min = math.NaN()

	for i := 0; i < p.LoanYears && i < len(income); i++ {
		service := loan[i].Payment
		if service <= 0 {
			continue
		}
		ratio := income[i].EBITDA / service
		sum += ratio
		count++
		if math.IsNaN(min) || ratio < min {
			min = ratio
		}
	}

	if count == 0 {
		return math.NaN(), math.NaN()
	}
	return sum / float64(count), min
}

// levelizedCost is lifetime cost per MWh of discharged energy.
//
// FORMULA: LCOE = (dynamic total + Σ opex) / Σ annual throughput
//
// Annual throughput degrades with the capacity factor and loses the
// round-trip efficiency:
// energy(y) = capacity × factor(y) × cycles × η_charge × η_discharge.
// The numerator converts from the model unit back to EUR so the result is
// EUR/MWh.
func levelizedCost(p params.ParameterSet, cx *capex.Breakdown,
	revenue []projection.RevenueYear, income []statements.IncomeYear) float64 {

	var totalOpex float64
	for _, y := range income {
		totalOpex += y.Opex
	}
	totalCostEUR := (cx.DynamicTotal + totalOpex) * 10000

	var totalEnergyMWh float64
	for _, r := range revenue {
		totalEnergyMWh += p.CapacityMWh * r.CapacityFactor * float64(p.AnnualCycles) *
			p.ChargeEfficiency * p.DischargeEfficiency
	}

	if totalEnergyMWh <= 0 {
		return math.NaN()
	}
	return totalCostEUR / totalEnergyMWh
}
