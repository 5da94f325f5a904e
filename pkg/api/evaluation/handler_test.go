package evaluation

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bess_economics/pkg/api/gate"
	"bess_economics/pkg/core/pipeline"
)

type denyAll struct{}

func (denyAll) Authorize(*http.Request, string) error {
	return fmt.Errorf("quota exhausted")
}

func TestHandleEvaluate(t *testing.T) {
	InitHandler(pipeline.New(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	HandleEvaluate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var res pipeline.Result
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("response not decodable: %v", err)
	}
	if res.Params.PowerMW != 100 {
		t.Errorf("empty input must evaluate the base case, got %f MW", res.Params.PowerMW)
	}
	if res.Indicators == nil {
		t.Fatalf("indicators missing from response")
	}
}

func TestHandleEvaluate_BadRequests(t *testing.T) {
	InitHandler(pipeline.New(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/evaluate", nil)
	w := httptest.NewRecorder()
	HandleEvaluate(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET expected 405, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader(`{broken`))
	w = httptest.NewRecorder()
	HandleEvaluate(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed body expected 400, got %d", w.Code)
	}
}

func TestHandleEvaluate_GateDenies(t *testing.T) {
	InitHandler(pipeline.New(), denyAll{})
	defer InitHandler(pipeline.New(), gate.AllowAll{})

	req := httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	HandleEvaluate(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("denied request expected 403, got %d", w.Code)
	}
}

func TestHandleSensitivity(t *testing.T) {
	InitHandler(pipeline.New(), nil)

	body := `{"input":{},"sweep":{"variable1":"capex","target":"project_irr","min":-0.1,"max":0.1,"step":0.1}}`
	req := httptest.NewRequest(http.MethodPost, "/api/sensitivity", strings.NewReader(body))
	w := httptest.NewRecorder()
	HandleSensitivity(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var res struct {
		Target string `json:"target"`
		Points []struct {
			Shock float64  `json:"shock"`
			Value *float64 `json:"value"`
		} `json:"points"`
	}
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("response not decodable: %v", err)
	}
	if res.Target != "project_irr" || len(res.Points) != 3 {
		t.Errorf("sweep response malformed: target %s points %d", res.Target, len(res.Points))
	}
}

func TestHandleSensitivity_UnknownVariable(t *testing.T) {
	InitHandler(pipeline.New(), nil)

	body := `{"input":{},"sweep":{"variable1":"weather","target":"npv","min":-0.1,"max":0.1,"step":0.1}}`
	req := httptest.NewRequest(http.MethodPost, "/api/sensitivity", strings.NewReader(body))
	w := httptest.NewRecorder()
	HandleSensitivity(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown variable expected 400, got %d", w.Code)
	}
}

func TestHandleDefaults(t *testing.T) {
	InitHandler(pipeline.New(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/defaults", nil)
	w := httptest.NewRecorder()
	HandleDefaults(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res DefaultsResponse
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("response not decodable: %v", err)
	}
	if res.Params.PowerMW != 100 {
		t.Errorf("defaults response malformed: %f MW", res.Params.PowerMW)
	}
	if len(res.SpotPrices) != res.Params.OperationYears {
		t.Errorf("default spot series expected %d entries, got %d",
			res.Params.OperationYears, len(res.SpotPrices))
	}
	if len(res.Variables) < 6 {
		t.Errorf("sensitivity variables missing: %d", len(res.Variables))
	}
}
