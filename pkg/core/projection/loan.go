package projection

import (
	"math"

	"bess_economics/pkg/core/capex"
	"bess_economics/pkg/core/params"
)

// LoanYear is one year of the debt service schedule.
type LoanYear struct {
	Year         int     `json:"year"`
	BeginBalance float64 `json:"begin_balance"`
	Interest     float64 `json:"interest"`
	Principal    float64 `json:"principal"`
	Payment      float64 `json:"payment"`
	EndBalance   float64 `json:"end_balance"`
}

// AmortizeLoan builds the debt service schedule over the full operating
// life. The principal is the debt share of the dynamic investment. During
// the grace period only interest is due; afterwards the configured method
// applies:
//
//   - equal principal: principal = loan / (loan years − grace)
//   - annuity: level payment from the standard annuity formula over the
//     repayment term; principal = payment − interest. A zero rate
//     degenerates to equal principal.
//
// Years past the loan term report zero activity. The end balance is
// clamped at zero so rounding in the final annuity year cannot leave a
// negative residue.
func AmortizeLoan(p params.ParameterSet, cx *capex.Breakdown) []LoanYear {
	series := make([]LoanYear, 0, p.OperationYears)

	loanAmount := cx.LoanAmount(p)
	balance := loanAmount
	repaymentYears := p.LoanYears - p.GracePeriod
	if repaymentYears < 0 {
		repaymentYears = 0
	}

	for year := 1; year <= p.LoanYears && year <= p.OperationYears; year++ {
		interest := balance * p.LoanRate

		principal := 0.0
		if year > p.GracePeriod && repaymentYears > 0 {
			if p.RepaymentMethod == params.RepayAnnuity && p.LoanRate > 0 {
				n := float64(repaymentYears)
				r := p.LoanRate
				payment := loanAmount * r * math.Pow(1+r, n) / (math.Pow(1+r, n) - 1)
				principal = payment - interest
			} else {
				principal = loanAmount / float64(repaymentYears)
			}
		}

		endBalance := balance - principal
		if endBalance < 0 {
			endBalance = 0
		}

		series = append(series, LoanYear{
			Year:         year,
			BeginBalance: balance,
			Interest:     interest,
			Principal:    principal,
			Payment:      interest + principal,
			EndBalance:   endBalance,
		})
		balance = endBalance
	}

	for year := len(series) + 1; year <= p.OperationYears; year++ {
		series = append(series, LoanYear{Year: year})
	}

	return series
}
