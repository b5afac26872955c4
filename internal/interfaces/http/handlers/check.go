package handlers

import (
	"errors"
	"net/http"
	"time"

	httpContracts "github.com/basislab/orthoserve/internal/http"
	"github.com/basislab/orthoserve/internal/ortho"
)

// CheckOrthonormal handles POST /check-orthonormal.
func (h *Handlers) CheckOrthonormal(w http.ResponseWriter, r *http.Request) {
	var req httpContracts.CheckRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if !h.checkLimits(w, r, req.Vectors) {
		return
	}

	tolerance := ortho.DefaultCheckTolerance
	if req.Tolerance != nil {
		if *req.Tolerance <= 0 {
			h.metrics.InvalidInputs.WithLabelValues("bad_tolerance").Inc()
			h.writeError(w, r, http.StatusBadRequest, "invalid_input",
				"tolerance must be positive")
			return
		}
		tolerance = *req.Tolerance
	}

	start := time.Now()
	result, err := ortho.Check(req.Vectors, tolerance)
	h.metrics.ObserveCompute("check", start)

	if err != nil {
		var invalid *ortho.InvalidInputError
		if errors.As(err, &invalid) {
			h.metrics.InvalidInputs.WithLabelValues("invalid_input").Inc()
			h.writeError(w, r, http.StatusBadRequest, "invalid_input", err.Error())
			return
		}
		h.writeError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	h.metrics.InputVectors.Observe(float64(len(req.Vectors)))

	h.writeJSON(w, http.StatusOK, httpContracts.CheckResponse{
		IsOrthonormal:   result.IsOrthonormal,
		Details:         result.Details,
		NumberOfVectors: len(req.Vectors),
		Dimension:       len(req.Vectors[0]),
	})
}
