package dto

// HealthResponse is the body of the health probes. Checks names each
// dependency probed by /readyz and its state.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"details,omitempty"`
}
