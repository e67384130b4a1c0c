// Package httpapi exposes the engine over HTTP, one JSON handler per
// operation: decode the request body, call the pure function, encode
// the result, map errors to status codes. This package is the only
// one in the module that imports net/http for the engine's own
// operations.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/AbelV22/NAA-Web/internal/activation"
	"github.com/AbelV22/NAA-Web/internal/compliance"
	"github.com/AbelV22/NAA-Web/internal/isotope"
	"github.com/AbelV22/NAA-Web/internal/maxppm"
	"github.com/AbelV22/NAA-Web/internal/nucdata"
	"github.com/AbelV22/NAA-Web/internal/reportpdf"
)

// Env carries the handlers' shared, read-only dependency: the built
// nuclear data store. Swapping stores (CSV vs XLSX vs Postgres origin)
// never touches this package.
type Env struct {
	Store *nucdata.Store
}

func limitKindFromText(s string) nucdata.LimitKind {
	if s == "exemption" {
		return nucdata.Exemption
	}
	return nucdata.Clearance
}

// SolveRequest is the request body for /api/solve.
type SolveRequest struct {
	Isotope    string  `json:"isotope"`
	MassG      float64 `json:"mass_g"`
	FluxNCm2S  float64 `json:"flux_n_cm2_s"`
	TIrrS      float64 `json:"t_irr_s"`
	TCoolS     float64 `json:"t_cool_s"`
	Abundance  float64 `json:"abundance"`
	Depth      int     `json:"depth"`
}

// Solve handles /api/solve: single-isotope two-phase activation.
func (e *Env) Solve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	id, ok := isotope.Parse(req.Isotope)
	if !ok {
		http.Error(w, "Unrecognized isotope", http.StatusBadRequest)
		return
	}
	res := activation.Solve(e.Store, id, req.MassG, req.FluxNCm2S, req.TIrrS, req.TCoolS, req.Abundance, req.Depth)
	writeJSON(w, res)
}

// SolveElementRequest is the request body for /api/solve_element.
type SolveElementRequest struct {
	Element   string  `json:"element"`
	MassG     float64 `json:"mass_g"`
	FluxNCm2S float64 `json:"flux_n_cm2_s"`
	TIrrS     float64 `json:"t_irr_s"`
	TCoolS    float64 `json:"t_cool_s"`
	Merge     bool    `json:"merge"`
}

// SolveElement handles /api/solve_element: natural-isotope expansion.
func (e *Env) SolveElement(w http.ResponseWriter, r *http.Request) {
	var req SolveElementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := activation.SolveElement(e.Store, req.Element, req.MassG, req.FluxNCm2S, req.TIrrS, req.TCoolS, req.Merge)
	writeJSON(w, res)
}

// ComplianceRequest is the request body for /api/compliance.
type ComplianceRequest struct {
	Impurities  []compliance.Impurity `json:"impurities"`
	MainElement string                `json:"main_element"`
	MainMassG   float64               `json:"main_mass_g"`
	FluxNCm2S   float64               `json:"flux_n_cm2_s"`
	TIrrS       float64               `json:"t_irr_s"`
	TCoolS      float64               `json:"t_cool_s"`
	WasteMassG  float64               `json:"waste_mass_g"`
	LimitKind   string                `json:"limit_kind"`
}

// Compliance handles /api/compliance: the sum-index verdict.
func (e *Env) Compliance(w http.ResponseWriter, r *http.Request) {
	var req ComplianceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.WasteMassG <= 0 {
		req.WasteMassG = req.MainMassG
	}
	rep := compliance.Evaluate(e.Store, req.Impurities, req.MainElement, req.MainMassG,
		req.FluxNCm2S, req.TIrrS, req.TCoolS, req.WasteMassG, limitKindFromText(req.LimitKind))
	writeJSON(w, rep)
}

// MaxPPMRequest is the request body for /api/max_ppm.
type MaxPPMRequest struct {
	Elements       []string         `json:"elements"`
	FluxNCm2S      float64          `json:"flux_n_cm2_s"`
	TIrrS          float64          `json:"t_irr_s"`
	TCoolS         float64          `json:"t_cool_s"`
	WasteMassG     float64          `json:"waste_mass_g"`
	SampleMassG    float64          `json:"sample_mass_g"`
	LimitKind      string           `json:"limit_kind"`
	ElemFractions  []maxppm.Fraction `json:"elem_fractions"`
	WasteFractions []maxppm.Fraction `json:"waste_fractions"`
}

// MaxPPM handles /api/max_ppm: per-element ppm ceilings.
func (e *Env) MaxPPM(w http.ResponseWriter, r *http.Request) {
	var req MaxPPMRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	rows := maxppm.Evaluate(e.Store, req.Elements, req.FluxNCm2S, req.TIrrS, req.TCoolS,
		req.WasteMassG, req.SampleMassG, limitKindFromText(req.LimitKind), req.ElemFractions, req.WasteFractions)
	writeJSON(w, rows)
}

// CompliancePDF handles /api/compliance_pdf: the same computation as
// Compliance, rendered as a downloadable PDF instead of JSON.
func (e *Env) CompliancePDF(w http.ResponseWriter, r *http.Request) {
	var req ComplianceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.WasteMassG <= 0 {
		req.WasteMassG = req.MainMassG
	}
	rep := compliance.Evaluate(e.Store, req.Impurities, req.MainElement, req.MainMassG,
		req.FluxNCm2S, req.TIrrS, req.TCoolS, req.WasteMassG, limitKindFromText(req.LimitKind))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"compliance.pdf\"")
	if err := reportpdf.Write(w, "", rep); err != nil {
		http.Error(w, "Report rendering failed", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
