// Package report renders an evaluation result as Markdown, HTML and CSV.
// Every renderer is a pure function of the result bundle and never reaches
// back into the calculation packages.
package report

import (
	"fmt"
	"math"
	"strings"

	"bess_economics/pkg/core/pipeline"
)

// undefined replaces NaN sentinels in rendered output.
const undefined = "n/a"

func pct(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return undefined
	}
	return fmt.Sprintf("%.2f%%", v*100)
}

func num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return undefined
	}
	return fmt.Sprintf("%.1f", v)
}

func years(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return undefined
	}
	return fmt.Sprintf("%.1f yr", v)
}

// Markdown renders the full report: project header, indicator summary and
// the capex breakdown. Monetary amounts are in 10^4 EUR, matching the
// model unit of the result bundle.
func Markdown(res *pipeline.Result) string {
	var b strings.Builder
	p := res.Params

	fmt.Fprintf(&b, "# Storage Project Evaluation\n\n")
	fmt.Fprintf(&b, "%.0f MW / %.0f MWh (%.1f h), %d operating years, equity %.0f%%\n\n",
		p.PowerMW, p.CapacityMWh, p.DurationHours(), p.OperationYears, p.EquityRatio*100)

	b.WriteString(indicatorSection(res))
	b.WriteString(capexSection(res))
	return b.String()
}

func indicatorSection(res *pipeline.Result) string {
	ind := res.Indicators
	var b strings.Builder

	b.WriteString("## Indicators\n\n")
	b.WriteString("| Indicator | Value |\n|---|---|\n")
	rows := []struct {
		label, value string
	}{
		{"Static investment", num(ind.StaticInvestment)},
		{"Dynamic investment", num(ind.DynamicInvestment)},
		{"Total revenue", num(ind.TotalRevenue)},
		{"Average revenue", num(ind.AvgRevenue)},
		{"Total net profit", num(ind.TotalNetProfit)},
		{"Project IRR", pct(ind.ProjectIRR)},
		{"Equity IRR", pct(ind.EquityIRR)},
		{"Project NPV", num(ind.ProjectNPV)},
		{"Static payback", years(ind.StaticPayback)},
		{"Discounted payback", years(ind.DynamicPayback)},
		{"ROE (year 3)", pct(ind.ROEYear3)},
		{"ROI", pct(ind.ROI)},
		{"DSCR (avg / min)", fmt.Sprintf("%s / %s", num(ind.DSCR), num(ind.MinDSCR))},
		{"LCOE", lcoe(ind.LCOE)},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n", r.label, r.value)
	}
	b.WriteString("\n")
	return b.String()
}

func lcoe(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return undefined
	}
	return fmt.Sprintf("%.2f EUR/MWh", v)
}

func capexSection(res *pipeline.Result) string {
	cx := res.Capex
	var b strings.Builder

	b.WriteString("## Investment breakdown\n\n")
	b.WriteString("| Item | Amount |\n|---|---|\n")
	rows := []struct {
		label string
		value float64
	}{
		{"Battery system", cx.Battery},
		{"PCS", cx.PCS},
		{"Transformers", cx.MVTransformer + cx.HVTransformer},
		{"Other equipment", cx.EquipmentSubtotal - cx.Battery - cx.PCS - cx.MVTransformer - cx.HVTransformer},
		{"Grid connection", cx.GridConnectionSubtotal},
		{"Land and civil works", cx.CivilSubtotal},
		{"Installation", cx.InstallationSubtotal},
		{"Insurance", cx.InsuranceSubtotal},
		{"Development", cx.DevSubtotal},
		{"Contingency", cx.Contingency},
		{"Static total", cx.Total},
		{"Construction interest", cx.ConstructionInterest},
		{"Dynamic total", cx.DynamicTotal},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n", r.label, num(r.value))
	}
	b.WriteString("\n")
	return b.String()
}
