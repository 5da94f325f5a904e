// Package gate holds the entitlement check consulted before the paid
// computation endpoints. The calculation core has no entitlement concept;
// only the API layer asks the gate.
package gate

import "net/http"

// Operations the gate is asked about.
const (
	OpEvaluate    = "evaluate"
	OpSensitivity = "sensitivity"
	OpSaveRun     = "save_run"
)

// Authorizer decides whether a request may run an operation. A non-nil
// error denies the request; the error text is returned to the caller.
type Authorizer interface {
	Authorize(r *http.Request, operation string) error
}

// AllowAll permits every operation. This is the default deployment mode.
type AllowAll struct{}

func (AllowAll) Authorize(*http.Request, string) error { return nil }
