// Package compliance implements the compliance evaluator: sums
// per-isotope specific activity against regulatory limits and estimates
// time-to-clear when non-compliant.
package compliance

import (
	"math"
	"sort"

	"github.com/AbelV22/NAA-Web/internal/activation"
	"github.com/AbelV22/NAA-Web/internal/isotope"
	"github.com/AbelV22/NAA-Web/internal/nucdata"
)

// EffectivelyInfiniteDays is the sentinel returned when time-to-clear
// cannot be estimated (dominant isotope is stable, or the computation is
// non-finite) — "effectively never".
const EffectivelyInfiniteDays = -1

// Impurity is one contributing element at its concentration relative to
// the main sample mass. The main element is not an Impurity: Evaluate
// takes it as a separate argument and counts it at 1e6 ppm.
type Impurity struct {
	Element string
	PPM     float64 // ppm of the main sample mass
}

// Row is one regulated isotope's contribution to the compliance sum.
type Row struct {
	Isotope        isotope.ID
	ActivityBq     float64
	SpecificBqPerG float64
	LimitBqPerG    float64
	Fraction       float64
}

// Summary is the overall compliance verdict.
type Summary struct {
	SumIndex         float64
	IsCompliant      bool
	DaysToClear      float64 // EffectivelyInfiniteDays sentinel when not estimable
	DominantIsotope  isotope.ID
}

// Report is the full output of Evaluate.
type Report struct {
	Rows    []Row
	Summary Summary
}

// Evaluate is the C7 entry point. impurities lists each contributing
// element by its concentration in ppm of mainMassG; if mainElement is
// non-empty it is additionally solved at its full mass (1e6 ppm
// equivalent). wasteMassG is the mass the activity is diluted into for
// the specific-activity calculation.
func Evaluate(store *nucdata.Store, impurities []Impurity, mainElement string, mainMassG, flux, tIrrS, tCoolS, wasteMassG float64, kind nucdata.LimitKind) Report {
	inventory := make(map[isotope.ID]float64) // total Bq per isotope

	solveInto := func(element string, massG float64) {
		for _, r := range activation.SolveElement(store, element, massG, flux, tIrrS, tCoolS, true) {
			inventory[r.Isotope] += r.ActivityBq
		}
	}

	for _, imp := range impurities {
		solveInto(imp.Element, imp.PPM*mainMassG*1e-6)
	}
	if mainElement != "" {
		solveInto(mainElement, mainMassG)
	}

	order := make([]isotope.ID, 0, len(inventory))
	for id := range inventory {
		order = append(order, id)
	}
	sort.Slice(order, func(i, j int) bool { return order[i].String() < order[j].String() })

	var rows []Row
	var sumIndex float64
	var dominant isotope.ID
	var dominantFraction float64

	for _, id := range order {
		limit := store.Limit(id, kind)
		if limit >= nucdata.Inf {
			continue
		}
		activityBq := inventory[id]
		specific := activityBq / wasteMassG
		fraction := specific / limit
		sumIndex += fraction
		rows = append(rows, Row{
			Isotope:        id,
			ActivityBq:     activityBq,
			SpecificBqPerG: specific,
			LimitBqPerG:    limit,
			Fraction:       fraction,
		})
		if fraction > dominantFraction {
			dominantFraction = fraction
			dominant = id
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Fraction > rows[j].Fraction })

	summary := Summary{
		SumIndex:        sumIndex,
		IsCompliant:     sumIndex <= 1.0,
		DominantIsotope: dominant,
	}
	if summary.IsCompliant {
		summary.DaysToClear = 0
	} else {
		summary.DaysToClear = daysToClear(sumIndex, store.Lambda(dominant))
	}

	return Report{Rows: rows, Summary: summary}
}

// daysToClear computes t = -ln(1/ΣF) / λ_dom, in days.
func daysToClear(sumIndex, lambdaDom float64) float64 {
	if lambdaDom <= 0 {
		return EffectivelyInfiniteDays
	}
	seconds := -math.Log(1/sumIndex) / lambdaDom
	days := seconds / activation.SecondsPerDay
	if math.IsNaN(days) || math.IsInf(days, 0) || days < 0 {
		return EffectivelyInfiniteDays
	}
	return days
}
