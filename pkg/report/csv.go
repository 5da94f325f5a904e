package report

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"bess_economics/pkg/core/pipeline"
)

func cell(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// WriteIncomeCSV writes the yearly income statement, one row per year.
func WriteIncomeCSV(w io.Writer, res *pipeline.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"year", "revenue", "opex", "ebitda", "depreciation", "ebit", "interest", "ebt", "tax", "net_profit"}); err != nil {
		return err
	}
	for _, y := range res.Income {
		row := []string{
			strconv.Itoa(y.Year), cell(y.Revenue), cell(y.Opex), cell(y.EBITDA),
			cell(y.Depreciation), cell(y.EBIT), cell(y.Interest), cell(y.EBT),
			cell(y.Tax), cell(y.NetProfit),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCashFlowCSV writes the cash flow statement including year 0.
func WriteCashFlowCSV(w io.Writer, res *pipeline.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"year", "operating_flow", "investing_flow", "financing_flow", "net_cash_flow", "project_flow", "equity_flow"}); err != nil {
		return err
	}
	for _, y := range res.CashFlow {
		row := []string{
			strconv.Itoa(y.Year), cell(y.OperatingFlow), cell(y.InvestingFlow),
			cell(y.FinancingFlow), cell(y.NetCashFlow), cell(y.ProjectFlow), cell(y.EquityFlow),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteBalanceCSV writes the period-end balance sheets including year 0.
func WriteBalanceCSV(w io.Writer, res *pipeline.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"year", "cash", "fixed_asset_net", "intangible_assets", "total_assets", "long_term_loan", "total_equity", "total_liabilities_and_equity"}); err != nil {
		return err
	}
	for _, y := range res.Balance {
		row := []string{
			strconv.Itoa(y.Year), cell(y.Cash), cell(y.FixedAssetNet),
			cell(y.IntangibleAssets), cell(y.TotalAssets), cell(y.LongTermLoan),
			cell(y.TotalEquity), cell(y.TotalLiabilitiesAndEquity),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
