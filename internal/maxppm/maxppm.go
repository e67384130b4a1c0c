// Package maxppm implements the max-ppm evaluator: the inverse of the
// compliance evaluator for a unit mass, producing per-element and
// per-isotope ppm ceilings.
package maxppm

import (
	"sort"

	"github.com/AbelV22/NAA-Web/internal/activation"
	"github.com/AbelV22/NAA-Web/internal/isotope"
	"github.com/AbelV22/NAA-Web/internal/nucdata"
)

// InertThreshold is the minimum aggregated fraction Σ F_i an element must
// reach before it is reported; elements below this are inert.
const InertThreshold = 1e-30

// ShareFloorPct is the minimum per-row contribution share, in percent,
// below which a row is dropped.
const ShareFloorPct = 0.001

// Fraction lets callers override the default 1.0 (100%) elemental or
// waste-mass fraction for an element.
type Fraction struct {
	Element string
	Value   float64
}

// Row is one parent-isotope contribution to an element's ceiling.
type Row struct {
	Element          string
	Parent           isotope.ID
	Terminal         isotope.ID
	LimitBqPerG      float64
	IsoMaxPPM        float64
	SharePct         float64
	LimitingIsotope  isotope.ID
	ElemMaxPPM       float64
	WastePct         float64
	FracPct          float64
}

func fractionOf(fractions []Fraction, element string, def float64) float64 {
	for _, f := range fractions {
		if f.Element == element {
			return f.Value
		}
	}
	return def
}

// Evaluate computes per-element max-ppm ceilings for the given sample.
func Evaluate(store *nucdata.Store, elements []string, flux, tIrrS, tCoolS, wasteMassG, sampleMassG float64, kind nucdata.LimitKind, elemFractions, wasteFractions []Fraction) []Row {
	var out []Row
	for _, element := range elements {
		fE := fractionOf(elemFractions, element, 1.0)
		fW := fractionOf(wasteFractions, element, 1.0)

		rows := activation.SolveElement(store, element, 1.0, flux, tIrrS, tCoolS, false)
		if len(rows) == 0 {
			continue
		}

		type fi struct {
			row Row
			f   float64
		}
		var fs []fi
		var sumF float64
		terminalF := make(map[isotope.ID]float64)
		for _, r := range rows {
			limit := store.Limit(r.Isotope, kind)
			if limit >= nucdata.Inf {
				continue
			}
			f := r.ActivityBq / limit
			sumF += f
			terminalF[r.Isotope] += f
			fs = append(fs, fi{row: Row{
				Element:     element,
				Parent:      r.Parent,
				Terminal:    r.Isotope,
				LimitBqPerG: limit,
				WastePct:    fW * 100,
				FracPct:     fE * 100,
			}, f: f})
		}
		if sumF <= InertThreshold {
			continue
		}

		limiting := limitingIsotope(terminalF)
		elemPPM := 1e6 * wasteMassG / (sampleMassG * fW * sumF)

		for _, item := range fs {
			sharePct := item.f / sumF * 100
			if sharePct < ShareFloorPct {
				continue
			}
			row := item.row
			row.IsoMaxPPM = 1e6 * wasteMassG / (sampleMassG * fW * item.f)
			row.SharePct = sharePct
			row.LimitingIsotope = limiting
			row.ElemMaxPPM = elemPPM
			out = append(out, row)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Element != out[j].Element {
			return out[i].Element < out[j].Element
		}
		return out[i].SharePct > out[j].SharePct
	})
	return out
}

func limitingIsotope(terminalF map[isotope.ID]float64) isotope.ID {
	var best isotope.ID
	var bestF float64
	// Deterministic order: iterate in a fixed textual order.
	keys := make([]isotope.ID, 0, len(terminalF))
	for k := range terminalF {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	for _, k := range keys {
		if terminalF[k] > bestF {
			bestF = terminalF[k]
			best = k
		}
	}
	return best
}
