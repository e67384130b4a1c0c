// Package activation implements the two-phase solver and the element
// solver: irradiation followed by cooling, composed from chain
// enumeration and the Bateman kernel.
package activation

import (
	"sort"

	"github.com/AbelV22/NAA-Web/internal/bateman"
	"github.com/AbelV22/NAA-Web/internal/chain"
	"github.com/AbelV22/NAA-Web/internal/isotope"
	"github.com/AbelV22/NAA-Web/internal/nucdata"
)

// Physical constants.
const (
	Avogadro     = 6.02214076e23
	SecondsPerDay = 86400.0
)

// ActivityFloor is the minimum reportable activity (Bq); records at or
// below this are dropped.
const ActivityFloor = 1e-20

// Contribution classifies whether a terminal isotope is a direct product
// of the starting isotope (one transformation away) or arrived via an
// intermediate (two or more transformations away).
type Contribution string

const (
	Direct    Contribution = "Direct"
	Secondary Contribution = "Secondary"
)

// Result is one terminal-isotope record produced by Solve or SolveElement.
type Result struct {
	Isotope      isotope.ID
	ActivityBq   float64
	Atoms        float64
	FirstXSBarn  float64
	Pathway      string
	Contribution Contribution
	// Parent is the isotope or element-isotope that produced this row;
	// populated by SolveElement when merge=false, zero otherwise.
	Parent isotope.ID
}

// Solve is the C5 entry point: solves for the activity produced by
// irradiating massG grams of startID (at the given natural/declared
// abundance) at thermal flux for tIrrS seconds, then cooling for tCoolS
// seconds, enumerating chains up to depth.
func Solve(store *nucdata.Store, startID isotope.ID, massG, flux, tIrrS, tCoolS, abundance float64, depth int) []Result {
	if abundance <= 0 {
		abundance = 1
	}
	if depth <= 0 {
		depth = chain.DefaultDepth
	}
	n0 := massG * abundance * Avogadro / float64(startID.A)

	irradPaths := chain.Enumerate(store, startID, flux, depth)

	type phase1 struct {
		path  chain.Path
		atoms float64
	}
	var survivors []phase1
	for _, p := range irradPaths {
		atoms, ok := bateman.Evaluate(p.K, p.Mu, n0, tIrrS)
		if !ok {
			continue
		}
		survivors = append(survivors, phase1{path: p, atoms: atoms})
	}

	var out []Result
	if tCoolS <= 0 {
		for _, s := range survivors {
			terminal := s.path.Terminal()
			out = append(out, Result{
				Isotope:      terminal,
				ActivityBq:   s.atoms * store.Lambda(terminal),
				Atoms:        s.atoms,
				FirstXSBarn:  s.path.FirstSigma,
				Pathway:      s.path.Descriptor(),
				Contribution: contributionFor(len(s.path.Nodes) - 1),
			})
		}
		return finalize(out)
	}

	for _, s := range survivors {
		terminal := s.path.Terminal()
		coolPaths := chain.Enumerate(store, terminal, 0, depth)
		for _, cp := range coolPaths {
			atoms, ok := bateman.Evaluate(cp.K, cp.Mu, s.atoms, tCoolS)
			if !ok {
				continue
			}
			firstSigma := s.path.FirstSigma
			totalEdges := (len(s.path.Nodes) - 1) + (len(cp.Nodes) - 1)
			descriptor := s.path.Descriptor()
			if len(cp.Nodes) > 1 {
				descriptor = descriptor + " | " + cp.Descriptor()
			}
			out = append(out, Result{
				Isotope:      cp.Terminal(),
				ActivityBq:   atoms * store.Lambda(cp.Terminal()),
				Atoms:        atoms,
				FirstXSBarn:  firstSigma,
				Pathway:      descriptor,
				Contribution: contributionFor(totalEdges),
			})
		}
	}
	return finalize(out)
}

func contributionFor(edges int) Contribution {
	if edges <= 1 {
		return Direct
	}
	return Secondary
}

// finalize drops sub-floor records and sorts by activity descending.
func finalize(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.ActivityBq <= ActivityFloor {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ActivityBq > out[j].ActivityBq
	})
	return out
}
