// Package http holds the JSON request/response contracts of the orthoserve
// API.
package http

import "time"

// OrthonormalRequest is the body of POST /orthonormal.
type OrthonormalRequest struct {
	Vectors [][]float64 `json:"vectors"`

	// Tolerance overrides the server's dependence threshold when set.
	Tolerance *float64 `json:"tolerance,omitempty"`

	// Strict overrides the server's dependence policy when set: true makes
	// any dependent vector fail the whole request.
	Strict *bool `json:"strict,omitempty"`
}

// OrthonormalResponse is the result of POST /orthonormal.
type OrthonormalResponse struct {
	Basis                 [][]float64 `json:"orthonormal_basis"`
	OriginalVectors       [][]float64 `json:"original_vectors"`
	Rank                  int         `json:"rank"`
	Dimension             int         `json:"dimension"`
	IsLinearlyIndependent bool        `json:"is_linearly_independent"`
	NumberOfVectors       int         `json:"number_of_vectors"`
	NumberOfOutputVectors int         `json:"number_of_output_vectors"`
}

// CheckRequest is the body of POST /check-orthonormal.
type CheckRequest struct {
	Vectors   [][]float64 `json:"vectors"`
	Tolerance *float64    `json:"tolerance,omitempty"`
}

// CheckResponse is the result of POST /check-orthonormal.
type CheckResponse struct {
	IsOrthonormal   bool     `json:"is_orthonormal"`
	Details         []string `json:"details"`
	NumberOfVectors int      `json:"number_of_vectors"`
	Dimension       int      `json:"dimension"`
}

// HealthResponse is the result of GET /health.
type HealthResponse struct {
	Status        string    `json:"status"`
	Version       string    `json:"version"`
	Timestamp     time.Time `json:"timestamp"`
	UptimeSeconds float64   `json:"uptime_seconds"`
}

// IndexResponse is the result of GET /.
type IndexResponse struct {
	Name      string            `json:"name"`
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// ErrorResponse is the standardized error payload.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Code      string    `json:"code"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
