package handlers

import (
	"errors"
	"net/http"
	"time"

	httpContracts "github.com/basislab/orthoserve/internal/http"
	"github.com/basislab/orthoserve/internal/ortho"
)

// Orthonormalize handles POST /orthonormal.
func (h *Handlers) Orthonormalize(w http.ResponseWriter, r *http.Request) {
	var req httpContracts.OrthonormalRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if !h.checkLimits(w, r, req.Vectors) {
		return
	}

	opts := ortho.Options{
		Tolerance: h.cfg.Engine.Tolerance,
		Strict:    h.cfg.Engine.Strict,
	}
	if req.Tolerance != nil {
		if *req.Tolerance <= 0 {
			h.metrics.InvalidInputs.WithLabelValues("bad_tolerance").Inc()
			h.writeError(w, r, http.StatusBadRequest, "invalid_input",
				"tolerance must be positive")
			return
		}
		opts.Tolerance = *req.Tolerance
	}
	if req.Strict != nil {
		opts.Strict = *req.Strict
	}

	start := time.Now()
	result, err := ortho.OrthonormalizeWithOptions(req.Vectors, opts)
	h.metrics.ObserveCompute("orthonormalize", start)

	if err != nil {
		var invalid *ortho.InvalidInputError
		var dependent *ortho.DependenceError
		switch {
		case errors.As(err, &invalid):
			h.metrics.InvalidInputs.WithLabelValues("invalid_input").Inc()
			h.writeError(w, r, http.StatusBadRequest, "invalid_input", err.Error())
		case errors.As(err, &dependent):
			h.writeError(w, r, http.StatusUnprocessableEntity, "linearly_dependent", err.Error())
		default:
			h.writeError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		}
		return
	}

	h.metrics.InputVectors.Observe(float64(len(req.Vectors)))
	if result.Rank < len(req.Vectors) {
		h.metrics.RankDeficient.Inc()
	}

	h.writeJSON(w, http.StatusOK, httpContracts.OrthonormalResponse{
		Basis:                 result.Basis,
		OriginalVectors:       req.Vectors,
		Rank:                  result.Rank,
		Dimension:             result.Dimension,
		IsLinearlyIndependent: result.IsLinearlyIndependent(len(req.Vectors)),
		NumberOfVectors:       len(req.Vectors),
		NumberOfOutputVectors: result.Rank,
	})
}
