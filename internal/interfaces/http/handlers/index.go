package handlers

import (
	"net/http"

	httpContracts "github.com/basislab/orthoserve/internal/http"
)

// Index handles GET / with an API summary.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, httpContracts.IndexResponse{
		Name:    "orthoserve",
		Status:  "running",
		Version: h.version,
		Endpoints: map[string]string{
			"POST /orthonormal":       "Compute an orthonormal basis from vectors",
			"POST /check-orthonormal": "Check whether vectors are orthonormal",
			"GET /health":             "Health check",
			"GET /metrics":            "Prometheus metrics",
		},
	})
}
