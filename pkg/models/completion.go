package models

// CompletionResult is the outcome of a single completion provider call.
// Answer is empty when the call failed or the provider is not configured;
// Error carries the failure reason in that case. Raw keeps the provider's
// full response payload for debugging and audit.
type CompletionResult struct {
	Answer string         `json:"answer"`
	Raw    map[string]any `json:"raw,omitempty"`
	Error  string         `json:"error,omitempty"`
}
