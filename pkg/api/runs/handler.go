// Package runs exposes saved evaluations: POST evaluates a scenario and
// persists the result, GET lists or loads saved runs.
package runs

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"bess_economics/pkg/api/gate"
	"bess_economics/pkg/core/pipeline"
	"bess_economics/pkg/core/store"
)

var (
	evaluator  *pipeline.Evaluator
	repo       *store.RunRepo
	authorizer gate.Authorizer
)

// InitHandler wires the runs endpoints.
func InitHandler(eval *pipeline.Evaluator, r *store.RunRepo, auth gate.Authorizer) {
	evaluator = eval
	repo = r
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

// SaveRequest is the POST body: a named scenario to evaluate and persist.
type SaveRequest struct {
	Scenario string         `json:"scenario"`
	Input    pipeline.Input `json:"input"`
}

// SaveResponse returns the run ID and the indicator summary of the saved
// evaluation.
type SaveResponse struct {
	ID       string           `json:"id"`
	Scenario string           `json:"scenario"`
	Result   *pipeline.Result `json:"result"`
}

// HandleRuns dispatches on method: GET lists runs (or loads one with
// ?scenario=), POST evaluates and saves.
func HandleRuns(w http.ResponseWriter, r *http.Request) {
	cors(w)
	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		handleGet(w, r)
	case http.MethodPost:
		handlePost(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func handleGet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if scenario := r.URL.Query().Get("scenario"); scenario != "" {
		rec, err := repo.Load(r.Context(), scenario)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(rec)
		return
	}

	recs, err := repo.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(recs)
}

func handlePost(w http.ResponseWriter, r *http.Request) {
	if err := authorizer.Authorize(r, gate.OpSaveRun); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Scenario == "" {
		http.Error(w, "scenario name required", http.StatusBadRequest)
		return
	}

	res, err := evaluator.Evaluate(req.Input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	id, err := repo.Save(r.Context(), req.Scenario, res)
	if err != nil {
		slog.Error("run save failed", "scenario", req.Scenario, "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	slog.Info("run saved", "scenario", req.Scenario, "id", id)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SaveResponse{ID: id, Scenario: req.Scenario, Result: res})
}
