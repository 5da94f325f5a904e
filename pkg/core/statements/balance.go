package statements

import (
	"math"

	"bess_economics/pkg/core/capex"
	"bess_economics/pkg/core/params"
	"bess_economics/pkg/core/projection"
)

// BalanceYear is one period-end balance sheet. Year 0 is the completed
// construction balance.
type BalanceYear struct {
	Year int `json:"year"`

	// Assets
	Cash                    float64 `json:"cash"`
	FixedAssetOriginal      float64 `json:"fixed_asset_original"`
	AccumulatedDepreciation float64 `json:"accumulated_depreciation"`
	FixedAssetNet           float64 `json:"fixed_asset_net"`
	IntangibleAssets        float64 `json:"intangible_assets"`
	TotalAssets             float64 `json:"total_assets"`

	// Liabilities
	LongTermLoan     float64 `json:"long_term_loan"`
	TotalLiabilities float64 `json:"total_liabilities"`

	// Equity
	PaidInCapital    float64 `json:"paid_in_capital"`
	RetainedEarnings float64 `json:"retained_earnings"`
	TotalEquity      float64 `json:"total_equity"`

	TotalLiabilitiesAndEquity float64 `json:"total_liabilities_and_equity"`
}

// BuildBalanceSheet rolls the statements forward into period-end balance
// sheets: cash accumulates net cash flow, accumulated depreciation and
// amortization reduce book values, the loan column tracks the ending
// balance, and equity is paid-in capital plus cumulative retained earnings.
// In the terminal year the salvage share leaves the books against the
// cash received from the disposal; an accelerated method can leave a
// residue above the salvage value, which stays on the books until final
// liquidation.
func BuildBalanceSheet(p params.ParameterSet, cx *capex.Breakdown, income []IncomeYear,
	depreciation []projection.DepreciationYear, loan []projection.LoanYear,
	cashFlow []CashFlowYear) []BalanceYear {

	series := make([]BalanceYear, 0, p.OperationYears+1)

	equity := cx.Equity(p)
	loanAmount := cx.LoanAmount(p)
	intangiblesOriginal := cx.IntangibleAssets()
	fixedAssetOriginal := cx.FixedAssetBase()

	series = append(series, BalanceYear{
		Year:                      0,
		FixedAssetOriginal:        fixedAssetOriginal,
		FixedAssetNet:             fixedAssetOriginal,
		IntangibleAssets:          intangiblesOriginal,
		TotalAssets:               cx.DynamicTotal,
		LongTermLoan:              loanAmount,
		TotalLiabilities:          loanAmount,
		PaidInCapital:             equity,
		TotalEquity:               equity,
		TotalLiabilitiesAndEquity: loanAmount + equity,
	})

	var accumDepreciation, accumAmortization, retainedEarnings, cash float64
	salvage := fixedAssetOriginal * p.SalvageRate

	for i := 0; i < p.OperationYears; i++ {
		accumDepreciation += depreciation[i].Depreciation
		accumAmortization += depreciation[i].Amortization
		retainedEarnings += income[i].NetProfit
		cash += cashFlow[i+1].NetCashFlow

		fixedAssetNet := fixedAssetOriginal - accumDepreciation
		intangibles := math.Max(0, intangiblesOriginal-accumAmortization)
		if i == p.OperationYears-1 {
			fixedAssetNet = math.Max(0, fixedAssetNet-salvage)
		}

		totalEquity := equity + retainedEarnings
		series = append(series, BalanceYear{
			Year:                      i + 1,
			Cash:                      cash,
			FixedAssetOriginal:        fixedAssetOriginal,
			AccumulatedDepreciation:   accumDepreciation,
			FixedAssetNet:             fixedAssetNet,
			IntangibleAssets:          intangibles,
			TotalAssets:               cash + fixedAssetNet + intangibles,
			LongTermLoan:              loan[i].EndBalance,
			TotalLiabilities:          loan[i].EndBalance,
			PaidInCapital:             equity,
			RetainedEarnings:          retainedEarnings,
			TotalEquity:               totalEquity,
			TotalLiabilitiesAndEquity: loan[i].EndBalance + totalEquity,
		})
	}

	return series
}

// MaxBalanceGap returns the largest absolute difference between total
// assets and total liabilities plus equity across the series. A gap above
// the pipeline tolerance indicates a defect in the statement chain, not a
// recoverable input condition.
func MaxBalanceGap(series []BalanceYear) float64 {
	var worst float64
	for _, y := range series {
		gap := math.Abs(y.TotalAssets - y.TotalLiabilitiesAndEquity)
		if gap > worst {
			worst = gap
		}
	}
	return worst
}
