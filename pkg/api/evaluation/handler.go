// Package evaluation exposes the calculation pipeline over HTTP.
package evaluation

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"bess_economics/pkg/api/gate"
	"bess_economics/pkg/core/params"
	"bess_economics/pkg/core/pipeline"
	"bess_economics/pkg/core/sensitivity"
)

var (
	evaluator  *pipeline.Evaluator
	analyzer   *sensitivity.Analyzer
	authorizer gate.Authorizer
)

// InitHandler wires the evaluation endpoints. A nil authorizer defaults to
// allow-all.
func InitHandler(eval *pipeline.Evaluator, auth gate.Authorizer) {
	evaluator = eval
	analyzer = sensitivity.NewAnalyzer(eval)
	if auth == nil {
		auth = gate.AllowAll{}
	}
	authorizer = auth
}

func cors(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// HandleEvaluate runs one evaluation. POST body is a pipeline.Input; empty
// fields resolve to the documented defaults.
func HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := authorizer.Authorize(r, gate.OpEvaluate); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	var in pipeline.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	res, err := evaluator.Evaluate(in)
	if err != nil {
		slog.Error("evaluation failed", "err", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	slog.Info("evaluation served",
		"power_mw", res.Params.PowerMW,
		"project_irr", res.Indicators.ProjectIRR)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// SensitivityRequest is the POST body of the sensitivity endpoint.
type SensitivityRequest struct {
	Input pipeline.Input      `json:"input"`
	Sweep sensitivity.Request `json:"sweep"`
}

// HandleSensitivity runs a 1-D or 2-D sweep over the shock registry.
func HandleSensitivity(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := authorizer.Authorize(r, gate.OpSensitivity); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	var req SensitivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	res, err := analyzer.Run(req.Input, req.Sweep)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slog.Info("sensitivity sweep served",
		"variable1", req.Sweep.Variable1,
		"variable2", req.Sweep.Variable2,
		"target", req.Sweep.Target)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// DefaultsResponse carries the documented base case and the shock
// variables the sensitivity endpoint accepts.
type DefaultsResponse struct {
	Params     params.ParameterSet    `json:"params"`
	SpotPrices params.SpotPriceSeries `json:"spot_prices"`
	Variables  []VariableInfo         `json:"sensitivity_variables"`
}

type VariableInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// HandleDefaults returns the base-case parameter set, its spot price
// series and the registered shock variables.
func HandleDefaults(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	d := params.Defaults()
	resp := DefaultsResponse{
		Params:     d,
		SpotPrices: params.DefaultSpotPrices(d),
	}
	for _, v := range sensitivity.Variables() {
		resp.Variables = append(resp.Variables, VariableInfo{ID: v.ID, Label: v.Label})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
