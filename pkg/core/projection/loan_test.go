package projection

import (
	"math"
	"testing"

	"bess_economics/pkg/core/capex"
	"bess_economics/pkg/core/params"
)

func TestAmortizeLoan_EqualPrincipal(t *testing.T) {
	p := params.Defaults().Sanitized()
	cx := capex.Calculate(p)
	series := AmortizeLoan(p, cx)

	if len(series) != p.OperationYears {
		t.Fatalf("expected %d entries, got %d", p.OperationYears, len(series))
	}

	loanAmount := cx.LoanAmount(p)

	// Grace year: interest only, balance unchanged.
	if series[0].Principal != 0 {
		t.Errorf("grace year must carry no principal, got %f", series[0].Principal)
	}
	if math.Abs(series[0].Interest-loanAmount*p.LoanRate) > 1e-9 {
		t.Errorf("grace year interest expected %f, got %f", loanAmount*p.LoanRate, series[0].Interest)
	}
	if math.Abs(series[0].EndBalance-loanAmount) > 1e-9 {
		t.Errorf("grace year must not amortize, end balance %f", series[0].EndBalance)
	}

	// Constant principal over the repayment term.
	wantPrincipal := loanAmount / float64(p.LoanYears-p.GracePeriod)
	for i := p.GracePeriod; i < p.LoanYears; i++ {
		if math.Abs(series[i].Principal-wantPrincipal) > 1e-9 {
			t.Errorf("year %d principal expected %f, got %f", i+1, wantPrincipal, series[i].Principal)
		}
	}

	// Fully repaid at the end of the loan term, zero activity after.
	if math.Abs(series[p.LoanYears-1].EndBalance) > 1e-6 {
		t.Errorf("end balance after loan term expected 0, got %f", series[p.LoanYears-1].EndBalance)
	}
	for i := p.LoanYears; i < p.OperationYears; i++ {
		if series[i].Interest != 0 || series[i].Principal != 0 || series[i].EndBalance != 0 {
			t.Errorf("year %d should carry no loan activity", i+1)
		}
	}
}

func TestAmortizeLoan_Annuity(t *testing.T) {
	p := params.Defaults().Sanitized()
	p.RepaymentMethod = params.RepayAnnuity
	cx := capex.Calculate(p)
	series := AmortizeLoan(p, cx)

	// Level payment across the repayment term.
	first := series[p.GracePeriod].Payment
	for i := p.GracePeriod + 1; i < p.LoanYears; i++ {
		if math.Abs(series[i].Payment-first) > 1e-6 {
			t.Errorf("annuity payment not level: year %d pays %f vs %f", i+1, series[i].Payment, first)
		}
	}

	// Principal share grows as interest falls.
	for i := p.GracePeriod + 1; i < p.LoanYears; i++ {
		if series[i].Principal <= series[i-1].Principal {
			t.Errorf("annuity principal should grow: year %d %f after %f",
				i+1, series[i].Principal, series[i-1].Principal)
		}
	}

	if math.Abs(series[p.LoanYears-1].EndBalance) > 1e-6 {
		t.Errorf("annuity end balance expected 0, got %f", series[p.LoanYears-1].EndBalance)
	}
}

func TestAmortizeLoan_BalanceContinuity(t *testing.T) {
	p := params.Defaults().Sanitized()
	cx := capex.Calculate(p)
	series := AmortizeLoan(p, cx)

	for i := 1; i < p.LoanYears; i++ {
		if math.Abs(series[i].BeginBalance-series[i-1].EndBalance) > 1e-9 {
			t.Errorf("year %d begin balance %f does not match prior end balance %f",
				i+1, series[i].BeginBalance, series[i-1].EndBalance)
		}
	}
}
