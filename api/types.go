// Package api - API types for the comparison endpoint
// The API is stateless, idempotent, and deterministic.
package api

import (
	"chiller-payback/adapters/scenario"
	"chiller-payback/core/engine"
)

// CompareRequest is the request body for POST /compare.
// The scenario uses raw numeric inputs with the zero-sentinel convention for
// optional ratings; the server clamps it through the scenario adapter.
type CompareRequest struct {
	// Scenario is the raw, unclamped scenario
	Scenario scenario.Raw `json:"scenario"`
}

// CompareResponse is the response body for POST /compare
type CompareResponse struct {
	// Result is the scenario evaluation outcome
	Result *engine.Result `json:"result"`

	// Metadata contains execution context
	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}

// ResponseMetadata contains execution context for a response
type ResponseMetadata struct {
	// InputHash is a deterministic sha256 of the request
	InputHash string `json:"input_hash"`

	// EngineVersion is the engine version
	EngineVersion string `json:"engine_version"`

	// Method is the requested estimation method
	Method string `json:"method"`

	// DurationMs is the evaluation duration in milliseconds
	DurationMs int64 `json:"duration_ms"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries an error code and message
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
