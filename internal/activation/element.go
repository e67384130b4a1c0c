package activation

import (
	"github.com/AbelV22/NAA-Web/internal/chain"
	"github.com/AbelV22/NAA-Web/internal/isotope"
	"github.com/AbelV22/NAA-Web/internal/nucdata"
)

// SolveElement expands elementSymbol to its natural isotopes via the
// store's abundance table and delegates each to Solve, weighting mass
// by abundance. Elements absent from the abundance table yield nil,
// not an error.
func SolveElement(store *nucdata.Store, elementSymbol string, totalMassG, flux, tIrrS, tCoolS float64, merge bool) []Result {
	isotopes := store.IsotopesOf(elementSymbol)
	if len(isotopes) == 0 {
		return nil
	}

	var rows []Result
	for _, iso := range isotopes {
		parent := isotope.New(elementSymbol, iso.A, "")
		for _, r := range Solve(store, parent, totalMassG*iso.Theta, flux, tIrrS, tCoolS, 1, chain.DefaultDepth) {
			r.Parent = parent
			rows = append(rows, r)
		}
	}

	if !merge {
		return finalize(rows)
	}
	return finalize(mergeByTerminal(rows))
}

// mergeByTerminal sums atoms and activity of rows sharing the same
// terminal isotope, dropping per-parent provenance.
func mergeByTerminal(rows []Result) []Result {
	order := make([]isotope.ID, 0, len(rows))
	merged := make(map[isotope.ID]*Result)
	for _, r := range rows {
		m, ok := merged[r.Isotope]
		if !ok {
			row := r
			row.Parent = isotope.Zero
			merged[r.Isotope] = &row
			order = append(order, r.Isotope)
			continue
		}
		m.Atoms += r.Atoms
		m.ActivityBq += r.ActivityBq
		if r.FirstXSBarn > m.FirstXSBarn {
			m.FirstXSBarn = r.FirstXSBarn
		}
		if r.Pathway != m.Pathway {
			m.Pathway = m.Pathway + "; " + r.Pathway
		}
		if r.Contribution == Direct {
			m.Contribution = Direct
		}
	}
	out := make([]Result, 0, len(order))
	for _, id := range order {
		out = append(out, *merged[id])
	}
	return out
}
