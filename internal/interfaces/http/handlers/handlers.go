// Package handlers implements the orthoserve HTTP endpoint handlers.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/basislab/orthoserve/internal/config"
	httpContracts "github.com/basislab/orthoserve/internal/http"
	"github.com/basislab/orthoserve/internal/metrics"
)

type contextKey string

// RequestIDKey is the context key under which the server middleware stores
// the per-request ID.
const RequestIDKey contextKey = "request_id"

// maxBodyBytes bounds request bodies before JSON decoding.
const maxBodyBytes = 8 << 20

// Handlers manages all HTTP endpoint handlers.
type Handlers struct {
	cfg     *config.Config
	metrics *metrics.Registry
	version string
	started time.Time
}

// NewHandlers creates a new handlers instance.
func NewHandlers(cfg *config.Config, reg *metrics.Registry, version string) *Handlers {
	return &Handlers{
		cfg:     cfg,
		metrics: reg,
		version: version,
		started: time.Now(),
	}
}

// writeJSON writes a JSON response with proper error handling.
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"json_encoding_failed"}`, http.StatusInternalServerError)
	}
}

// writeError writes a standardized error response.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	requestID, _ := r.Context().Value(RequestIDKey).(string)
	if requestID == "" {
		requestID = "unknown"
	}

	errorResp := httpContracts.ErrorResponse{
		Error:     http.StatusText(status),
		Message:   message,
		Code:      code,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
	}

	h.writeJSON(w, status, errorResp)
}

// decodeJSON decodes a request body into dst, with a size cap.
func (h *Handlers) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.metrics.InvalidInputs.WithLabelValues("malformed_json").Inc()
		h.writeError(w, r, http.StatusBadRequest, "malformed_json", "request body is not valid JSON: "+err.Error())
		return false
	}
	return true
}

// checkLimits enforces the configured input bounds before any arithmetic.
func (h *Handlers) checkLimits(w http.ResponseWriter, r *http.Request, vectors [][]float64) bool {
	if n := len(vectors); n > h.cfg.Limits.MaxVectors {
		h.metrics.InvalidInputs.WithLabelValues("too_many_vectors").Inc()
		h.writeError(w, r, http.StatusBadRequest, "input_too_large",
			fmt.Sprintf("too many vectors: got %d, limit %d", n, h.cfg.Limits.MaxVectors))
		return false
	}
	for _, v := range vectors {
		if d := len(v); d > h.cfg.Limits.MaxDimension {
			h.metrics.InvalidInputs.WithLabelValues("dimension_too_large").Inc()
			h.writeError(w, r, http.StatusBadRequest, "input_too_large",
				fmt.Sprintf("vector dimension too large: got %d, limit %d", d, h.cfg.Limits.MaxDimension))
			return false
		}
	}
	return true
}

// NotFound handles 404 responses.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, http.StatusNotFound, "endpoint_not_found",
		"The requested endpoint does not exist")
}

// TooManyRequests handles rate-limited responses.
func (h *Handlers) TooManyRequests(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, http.StatusTooManyRequests, "rate_limited",
		"Request rate limit exceeded, retry later")
}
