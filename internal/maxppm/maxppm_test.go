package maxppm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbelV22/NAA-Web/internal/compliance"
	"github.com/AbelV22/NAA-Web/internal/nucdata"
)

const flux = 2.2e14

func feStore(t *testing.T) *nucdata.Store {
	t.Helper()
	store, err := nucdata.Build(
		[]nucdata.ActivationRecord{
			{ParentSymbol: "Fe", ParentA: 58, DaughterText: "Fe-59", Reaction: nucdata.ReactionNGamma, MaxXS: 1.3, ParentAbund: 0.0028},
		},
		[]nucdata.DecayRecord{
			{ParentText: "Fe-59", ChildText: "Co-59", BranchRatio: 1.0, ParentLambda: math.Ln2 / (44.5 * 86400)},
		},
		[]nucdata.LimitRecord{
			{IsotopeText: "Fe-59", Clearance: 1.0, Exemption: 100},
		},
	)
	require.NoError(t, err)
	return store
}

func TestEvaluateProducesFiniteCeiling(t *testing.T) {
	store := feStore(t)
	rows := Evaluate(store, []string{"Fe"}, flux, 14*86400, 365*86400, 35000, 7.5, nucdata.Clearance, nil, nil)
	require.NotEmpty(t, rows)
	for _, r := range rows {
		assert.Greater(t, r.ElemMaxPPM, 0.0)
		assert.Greater(t, r.IsoMaxPPM, 0.0)
		assert.False(t, math.IsInf(r.ElemMaxPPM, 0))
	}
}

func TestRoundTripLaw(t *testing.T) {
	store := feStore(t)
	rows := Evaluate(store, []string{"Fe"}, flux, 14*86400, 365*86400, 35000, 7.5, nucdata.Clearance, []Fraction{{Element: "Fe", Value: 1.0}}, []Fraction{{Element: "Fe", Value: 1.0}})
	require.NotEmpty(t, rows)
	elemPPM := rows[0].ElemMaxPPM

	report := compliance.Evaluate(store, []compliance.Impurity{{Element: "Fe", PPM: elemPPM}}, "", 7.5, flux, 14*86400, 365*86400, 35000, nucdata.Clearance)
	assert.InEpsilon(t, 1.0, report.Summary.SumIndex, 1e-6)
}

func TestInertElementSkipped(t *testing.T) {
	store, err := nucdata.Build(
		[]nucdata.ActivationRecord{
			{ParentSymbol: "Au", ParentA: 197, DaughterText: "Au-198", Reaction: nucdata.ReactionNGamma, MaxXS: 98.7, ParentAbund: 1.0},
		},
		[]nucdata.DecayRecord{
			{ParentText: "Au-198", ChildText: "Hg-198", BranchRatio: 1.0, ParentLambda: math.Ln2 / (2.695 * 86400)},
		},
		nil, // no limit record at all -> activity is nonzero but F_i is never accumulated -> inert
	)
	require.NoError(t, err)
	rows := Evaluate(store, []string{"Au"}, flux, 86400, 0, 35000, 7.5, nucdata.Clearance, nil, nil)
	assert.Empty(t, rows)
}

func TestUnknownElementSkipped(t *testing.T) {
	store := feStore(t)
	rows := Evaluate(store, []string{"Xx"}, flux, 86400, 0, 35000, 7.5, nucdata.Clearance, nil, nil)
	assert.Empty(t, rows)
}
