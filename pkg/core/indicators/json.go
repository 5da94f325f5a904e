package indicators

import (
	"encoding/json"
	"math"
)

// nullable maps NaN to JSON null so that undefined indicators serialize as
// a well-typed sentinel instead of breaking encoding/json.
func nullable(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func (ind Indicators) MarshalJSON() ([]byte, error) {
	out := map[string]*float64{
		"static_investment":  nullable(ind.StaticInvestment),
		"dynamic_investment": nullable(ind.DynamicInvestment),

		"total_revenue":      nullable(ind.TotalRevenue),
		"avg_revenue":        nullable(ind.AvgRevenue),
		"first3_revenue":     nullable(ind.First3Revenue),
		"total_profit":       nullable(ind.TotalProfit),
		"avg_profit":         nullable(ind.AvgProfit),
		"first3_profit":      nullable(ind.First3Profit),
		"total_net_profit":   nullable(ind.TotalNetProfit),
		"avg_net_profit":     nullable(ind.AvgNetProfit),
		"first3_net_profit":  nullable(ind.First3NetProfit),

		"project_irr": nullable(ind.ProjectIRR),
		"equity_irr":  nullable(ind.EquityIRR),
		"project_npv": nullable(ind.ProjectNPV),

		"static_payback":         nullable(ind.StaticPayback),
		"equity_payback":         nullable(ind.EquityPayback),
		"dynamic_payback":        nullable(ind.DynamicPayback),
		"equity_dynamic_payback": nullable(ind.EquityDynamicPayback),

		"roe_year3":     nullable(ind.ROEYear3),
		"roi":           nullable(ind.ROI),
		"ebitda_return": nullable(ind.EBITDAReturn),

		"dscr":     nullable(ind.DSCR),
		"min_dscr": nullable(ind.MinDSCR),

		"lcoe": nullable(ind.LCOE),
	}
	return json.Marshal(out)
}

func (ind *Indicators) UnmarshalJSON(data []byte) error {
	var raw map[string]*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	get := func(key string) float64 {
		if v, ok := raw[key]; ok && v != nil {
			return *v
		}
		return math.NaN()
	}

	ind.StaticInvestment = get("static_investment")
	ind.DynamicInvestment = get("dynamic_investment")
	ind.TotalRevenue = get("total_revenue")
	ind.AvgRevenue = get("avg_revenue")
	ind.First3Revenue = get("first3_revenue")
	ind.TotalProfit = get("total_profit")
	ind.AvgProfit = get("avg_profit")
	ind.First3Profit = get("first3_profit")
	ind.TotalNetProfit = get("total_net_profit")
	ind.AvgNetProfit = get("avg_net_profit")
	ind.First3NetProfit = get("first3_net_profit")
	ind.ProjectIRR = get("project_irr")
	ind.EquityIRR = get("equity_irr")
	ind.ProjectNPV = get("project_npv")
	ind.StaticPayback = get("static_payback")
	ind.EquityPayback = get("equity_payback")
	ind.DynamicPayback = get("dynamic_payback")
	ind.EquityDynamicPayback = get("equity_dynamic_payback")
	ind.ROEYear3 = get("roe_year3")
	ind.ROI = get("roi")
	ind.EBITDAReturn = get("ebitda_return")
	ind.DSCR = get("dscr")
	ind.MinDSCR = get("min_dscr")
	ind.LCOE = get("lcoe")
	return nil
}
