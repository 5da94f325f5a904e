// Package utils holds the scenario-file plumbing shared by the CLI and
// the API layer. Scenario files are Hjson: human-edited parameter
// overrides with comments, unquoted keys and optional commas.
package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"

	"bess_economics/pkg/core/params"
)

// Scenario is one named evaluation case: a parameter override set and an
// optional explicit spot price series. Fields left out of the file resolve
// to the documented defaults during sanitization.
type Scenario struct {
	Name       string                 `json:"name"`
	Comment    string                 `json:"comment,omitempty"`
	Params     params.ParameterSet    `json:"params"`
	SpotPrices params.SpotPriceSeries `json:"spot_prices,omitempty"`
}

// ParseHJSON parses Hjson and returns standard JSON.
func ParseHJSON(data string) (string, error) {
	var result interface{}
	if err := hjson.Unmarshal([]byte(data), &result); err != nil {
		return "", fmt.Errorf("hjson parse error: %w", err)
	}

	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("json marshal error: %w", err)
	}
	return string(jsonBytes), nil
}

// ParseHJSONToStruct parses Hjson directly into a Go struct. This is the
// recommended path when the schema is known.
func ParseHJSONToStruct(data string, schema interface{}) error {
	if err := hjson.Unmarshal([]byte(data), schema); err != nil {
		return fmt.Errorf("hjson unmarshal error: %w", err)
	}
	return nil
}

// ParseScenario reads a scenario from Hjson text. A file without a name
// field gets the fallback name.
func ParseScenario(data, fallbackName string) (*Scenario, error) {
	var sc Scenario
	if err := ParseHJSONToStruct(data, &sc); err != nil {
		return nil, err
	}
	if sc.Name == "" {
		sc.Name = fallbackName
	}
	return &sc, nil
}

// LoadScenarioFile reads and parses a scenario file from disk. The file
// stem serves as the fallback scenario name.
func LoadScenarioFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	base := filepath.Base(path)
	return ParseScenario(string(data), strings.TrimSuffix(base, filepath.Ext(base)))
}
