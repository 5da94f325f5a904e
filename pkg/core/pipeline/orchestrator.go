// Package pipeline chains the calculation stages into a single evaluation:
// parameters → capex → {opex, revenue, depreciation, loan} → income →
// cash flow → balance sheet → indicators. The chain is a pure function of
// its input; evaluating the same input twice yields identical results.
package pipeline

import (
	"fmt"

	"bess_economics/pkg/core/capex"
	"bess_economics/pkg/core/indicators"
	"bess_economics/pkg/core/params"
	"bess_economics/pkg/core/projection"
	"bess_economics/pkg/core/statements"
)

// Input is the full input of one evaluation: a parameter set (sanitized on
// entry) and an optional spot price series. A short or empty series is
// filled from the parameter set's documented base price.
type Input struct {
	Params     params.ParameterSet    `json:"params"`
	SpotPrices params.SpotPriceSeries `json:"spot_prices,omitempty"`
}

// Result is the immutable output bundle of one evaluation. Surrounding
// collaborators (reports, export, API) consume it read-only.
type Result struct {
	Params       params.ParameterSet           `json:"params"`
	SpotPrices   params.SpotPriceSeries        `json:"spot_prices"`
	Capex        *capex.Breakdown              `json:"capex"`
	Opex         []projection.OpexYear         `json:"opex"`
	Revenue      []projection.RevenueYear      `json:"revenue"`
	Depreciation []projection.DepreciationYear `json:"depreciation"`
	Loan         []projection.LoanYear         `json:"loan"`
	Income       []statements.IncomeYear       `json:"income"`
	CashFlow     []statements.CashFlowYear     `json:"cash_flow"`
	Balance      []statements.BalanceYear      `json:"balance"`
	Indicators   *indicators.Indicators        `json:"indicators"`

	// BalanceGap is the worst assets vs. liabilities+equity residual
	// observed across the balance sheet, recorded for diagnostics.
	BalanceGap float64 `json:"balance_gap"`
}

// ValidationConfig controls the balance-identity check at the end of the
// chain. A gap above the tolerance is a defect in the statement chain;
// strict mode turns it into an error, otherwise it is only recorded on
// the result.
type ValidationConfig struct {
	Strict           bool
	BalanceTolerance float64
}

// Evaluator runs the full calculation chain.
type Evaluator struct {
	DiscountRate float64
	Validation   ValidationConfig
}

// New returns an evaluator with the standard configuration: 8 % discount
// rate, lenient balance check at 1e-6 model units.
func New() *Evaluator {
	return &Evaluator{
		DiscountRate: indicators.DefaultDiscountRate,
		Validation: ValidationConfig{
			Strict:           false,
			BalanceTolerance: 1e-6,
		},
	}
}

// Evaluate runs the pipeline once. Stage order follows the data
// dependencies; no stage mutates another stage's output.
func (e *Evaluator) Evaluate(in Input) (*Result, error) {
	p := in.Params.Sanitized()
	prices := in.SpotPrices.Resolved(p)

	cx := capex.Calculate(p)
	opex := projection.ProjectOpex(p, cx)
	revenue := projection.ProjectRevenue(p, prices)
	depreciation := projection.ScheduleDepreciation(p, cx)
	loan := projection.AmortizeLoan(p, cx)

	income := statements.BuildIncomeStatement(p, revenue, opex, depreciation, loan)
	cashFlow := statements.BuildCashFlow(p, cx, income, depreciation, loan)
	balance := statements.BuildBalanceSheet(p, cx, income, depreciation, loan, cashFlow)

	ind := indicators.Compute(p, cx, revenue, income, cashFlow, balance, loan, e.DiscountRate)

	gap := statements.MaxBalanceGap(balance)
	if e.Validation.Strict && gap > e.Validation.BalanceTolerance {
		return nil, fmt.Errorf("balance sheet out of balance by %g (tolerance %g)",
			gap, e.Validation.BalanceTolerance)
	}

	return &Result{
		Params:       p,
		SpotPrices:   prices,
		Capex:        cx,
		Opex:         opex,
		Revenue:      revenue,
		Depreciation: depreciation,
		Loan:         loan,
		Income:       income,
		CashFlow:     cashFlow,
		Balance:      balance,
		Indicators:   ind,
		BalanceGap:   gap,
	}, nil
}
