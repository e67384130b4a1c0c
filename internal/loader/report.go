// Package loader is the CSV/XLSX collaborator that turns already-tabular
// rows into the three record sequences the engine's Nuclear Data Store
// consumes. It is not part of the core engine: the engine never
// imports it, and it never imports the engine's solver packages.
package loader

import "github.com/AbelV22/NAA-Web/internal/nucdata"

// Report summarizes how a load went, for the collaborator to surface as
// diagnostics; the engine itself never logs.
type Report struct {
	RowsTotal                    int
	RowsDroppedUnparseableIsotope int
	RowsZeroFilledNumeric        int
}

// Tables bundles the three parsed record sequences plus one ingestion
// report per table.
type Tables struct {
	Activation       []nucdata.ActivationRecord
	Decay            []nucdata.DecayRecord
	Limits           []nucdata.LimitRecord
	ActivationReport Report
	DecayReport      Report
	LimitsReport     Report
}

func reactionFromText(s string) nucdata.ReactionType {
	switch normalizeToken(s) {
	case "np":
		return nucdata.ReactionNP
	case "na", "nalpha":
		return nucdata.ReactionNAlpha
	case "decay":
		return nucdata.ReactionDecay
	default:
		return nucdata.ReactionNGamma
	}
}

// normalizeToken lowercases and strips punctuation so "(n,gamma)", "n_gamma",
// "N,Gamma" and "ngamma" all collapse to the same token.
func normalizeToken(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		switch c {
		case '(', ')', ' ', ',', '_':
			continue
		}
		out = append(out, c)
	}
	return string(out)
}
