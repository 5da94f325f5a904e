package statements

import (
	"bess_economics/pkg/core/capex"
	"bess_economics/pkg/core/params"
	"bess_economics/pkg/core/projection"
)

// CashFlowYear is one period of the cash flow statement. Year 0 is the
// construction period; the series therefore has operation_years+1 entries.
type CashFlowYear struct {
	Year int `json:"year"`

	// Operating
	NetProfit     float64 `json:"net_profit"`
	Depreciation  float64 `json:"depreciation"`
	OperatingFlow float64 `json:"operating_flow"`

	// Investing (construction outlay, terminal salvage recovery)
	Capex         float64 `json:"capex"`
	InvestingFlow float64 `json:"investing_flow"`

	// Financing
	EquityInflow  float64 `json:"equity_inflow"`
	LoanInflow    float64 `json:"loan_inflow"`
	LoanRepayment float64 `json:"loan_repayment"`
	FinancingFlow float64 `json:"financing_flow"`

	NetCashFlow float64 `json:"net_cash_flow"`

	// ProjectFlow is the debt-structure-independent flow (EBITDA − tax)
	// used for project IRR; EquityFlow is the net flow to equity holders
	// after debt service, used for equity IRR. Year 0 carries the
	// respective initial outlays.
	ProjectFlow float64 `json:"project_flow"`
	EquityFlow  float64 `json:"equity_flow"`
}

// BuildCashFlow derives the cash flow statement from the income statement
// and the investment/financing structure. The final operation year adds the
// salvage value of the fixed assets to investing cash flow.
func BuildCashFlow(p params.ParameterSet, cx *capex.Breakdown, income []IncomeYear,
	depreciation []projection.DepreciationYear, loan []projection.LoanYear) []CashFlowYear {

	series := make([]CashFlowYear, 0, p.OperationYears+1)

	equity := cx.Equity(p)
	loanAmount := cx.LoanAmount(p)

	// Year 0: construction. The full dynamic investment flows out; equity
	// and debt flow in.
	series = append(series, CashFlowYear{
		Year:          0,
		Capex:         -cx.DynamicTotal,
		InvestingFlow: -cx.DynamicTotal,
		EquityInflow:  equity,
		LoanInflow:    loanAmount,
		FinancingFlow: equity + loanAmount,
		ProjectFlow:   -cx.DynamicTotal,
		EquityFlow:    -equity,
	})

	for i := 0; i < p.OperationYears; i++ {
		inc := income[i]
		da := depreciation[i].Total
		principal := loan[i].Principal

		operating := inc.NetProfit + da
		financing := -principal
		net := operating + financing

		series = append(series, CashFlowYear{
			Year:          i + 1,
			NetProfit:     inc.NetProfit,
			Depreciation:  da,
			OperatingFlow: operating,
			LoanRepayment: -principal,
			FinancingFlow: financing,
			NetCashFlow:   net,
			ProjectFlow:   inc.EBITDA - inc.Tax,
			EquityFlow:    net,
		})
	}

	// Terminal salvage: the asset disposal recovers the salvage share of
	// the fixed-asset base in the last operating year.
	salvage := cx.FixedAssetBase() * p.SalvageRate
	last := &series[p.OperationYears]
	last.InvestingFlow += salvage
	last.NetCashFlow += salvage
	last.ProjectFlow += salvage
	last.EquityFlow += salvage

	return series
}

// ProjectFlows extracts the project cash flow sequence (year 0 first).
func ProjectFlows(series []CashFlowYear) []float64 {
	out := make([]float64, len(series))
	for i, y := range series {
		out[i] = y.ProjectFlow
	}
	return out
}

// EquityFlows extracts the equity cash flow sequence (year 0 first).
func EquityFlows(series []CashFlowYear) []float64 {
	out := make([]float64, len(series))
	for i, y := range series {
		out[i] = y.EquityFlow
	}
	return out
}
