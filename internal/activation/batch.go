package activation

import (
	"errors"

	"github.com/AbelV22/NAA-Web/internal/isotope"
	"github.com/AbelV22/NAA-Web/internal/nucdata"
)

// ErrEmptyBatch is returned by SolveBatch when requests is empty.
var ErrEmptyBatch = errors.New("activation: no batch requests")

// SolveRequest is one independent irradiation scenario in a batch.
type SolveRequest struct {
	Label      string
	Start      isotope.ID
	MassG      float64
	Flux       float64
	TIrrS      float64
	TCoolS     float64
	Abundance  float64
	Depth      int
}

// BatchResult pairs a request with its solved rows. A request for an
// unrecognised isotope yields an empty Results slice, not an error —
// the batch as a whole only fails if it was given no requests at all.
type BatchResult struct {
	Label   string
	Results []Result
}

// SolveBatch runs Solve once per request, collecting one BatchResult
// per request in input order.
func SolveBatch(store *nucdata.Store, requests []SolveRequest) ([]BatchResult, error) {
	if len(requests) == 0 {
		return nil, ErrEmptyBatch
	}
	out := make([]BatchResult, 0, len(requests))
	for _, req := range requests {
		rows := Solve(store, req.Start, req.MassG, req.Flux, req.TIrrS, req.TCoolS, req.Abundance, req.Depth)
		out = append(out, BatchResult{Label: req.Label, Results: rows})
	}
	return out, nil
}
