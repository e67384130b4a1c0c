package loader

import (
	"strconv"
	"strings"

	"github.com/AbelV22/NAA-Web/internal/isotope"
	"github.com/AbelV22/NAA-Web/internal/nucdata"
)

// header indexes column names case-insensitively into a name-keyed
// lookup, so unknown extra columns are silently ignored, never hard
// errors.
type header map[string]int

func newHeader(cols []string) header {
	h := make(header, len(cols))
	for i, c := range cols {
		h[strings.ToLower(strings.TrimSpace(c))] = i
	}
	return h
}

func (h header) get(row []string, name string) string {
	i, ok := h[strings.ToLower(name)]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func activationRecordsFromRows(rows [][]string) ([]nucdata.ActivationRecord, Report) {
	if len(rows) == 0 {
		return nil, Report{}
	}
	h := newHeader(rows[0])
	var out []nucdata.ActivationRecord
	rep := Report{}
	for _, row := range rows[1:] {
		rep.RowsTotal++
		symbol := h.get(row, "Symbol")
		aText := h.get(row, "A")
		daughter := h.get(row, "Daughter_Isotope")
		if symbol == "" || daughter == "" {
			rep.RowsDroppedUnparseableIsotope++
			continue
		}
		if _, ok := isotope.Parse(daughter); !ok {
			rep.RowsDroppedUnparseableIsotope++
			continue
		}
		a, err := strconv.Atoi(strings.TrimSpace(aText))
		if err != nil || a <= 0 {
			rep.RowsDroppedUnparseableIsotope++
			continue
		}
		xs := parseFloat(h.get(row, "Max_XS"))
		lambda := parseFloat(h.get(row, "Decay_Constant_Lambda"))
		abund := parseFloat(h.get(row, "Abundance"))
		if h.get(row, "Max_XS") != "" && xs == 0 {
			rep.RowsZeroFilledNumeric++
		}
		out = append(out, nucdata.ActivationRecord{
			ParentSymbol:   symbol,
			ParentA:        a,
			DaughterText:   daughter,
			Reaction:       reactionFromText(h.get(row, "Reaction")),
			MaxXS:          xs,
			DaughterLambda: lambda,
			ParentAbund:    abund,
		})
	}
	return out, rep
}

func decayRecordsFromRows(rows [][]string) ([]nucdata.DecayRecord, Report) {
	if len(rows) == 0 {
		return nil, Report{}
	}
	h := newHeader(rows[0])
	var out []nucdata.DecayRecord
	rep := Report{}
	for _, row := range rows[1:] {
		rep.RowsTotal++
		parent := h.get(row, "Parent_Isotope")
		child := h.get(row, "Child_Isotope")
		if _, ok := isotope.Parse(parent); !ok {
			rep.RowsDroppedUnparseableIsotope++
			continue
		}
		if _, ok := isotope.Parse(child); !ok {
			rep.RowsDroppedUnparseableIsotope++
			continue
		}
		out = append(out, nucdata.DecayRecord{
			ParentText:   parent,
			ChildText:    child,
			BranchRatio:  parseFloat(h.get(row, "Branching_Ratio")),
			ParentLambda: parseFloat(h.get(row, "Parent_Lambda")),
			ChildLambda:  parseFloat(h.get(row, "Child_Lambda")),
		})
	}
	return out, rep
}

func limitRecordsFromRows(rows [][]string) ([]nucdata.LimitRecord, Report) {
	if len(rows) == 0 {
		return nil, Report{}
	}
	h := newHeader(rows[0])
	var out []nucdata.LimitRecord
	rep := Report{}
	for _, row := range rows[1:] {
		rep.RowsTotal++
		iso := h.get(row, "Isotope")
		if _, ok := isotope.Parse(iso); !ok {
			rep.RowsDroppedUnparseableIsotope++
			continue
		}
		out = append(out, nucdata.LimitRecord{
			IsotopeText: iso,
			Clearance:   parseFloat(h.get(row, "Limit_Clearance_Bq_g")),
			Exemption:   parseFloat(h.get(row, "Limit_Exemption_Bq_g")),
		})
	}
	return out, rep
}
