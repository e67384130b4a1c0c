package pgstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbelV22/NAA-Web/internal/nucdata"
)

// fakeStore lets BuildStore be exercised without a live Postgres
// connection.
type fakeStore struct {
	activation []nucdata.ActivationRecord
	decay      []nucdata.DecayRecord
	limits     []nucdata.LimitRecord
}

func (f fakeStore) LoadActivation(ctx context.Context) ([]nucdata.ActivationRecord, error) {
	return f.activation, nil
}
func (f fakeStore) LoadDecay(ctx context.Context) ([]nucdata.DecayRecord, error) {
	return f.decay, nil
}
func (f fakeStore) LoadLimits(ctx context.Context) ([]nucdata.LimitRecord, error) {
	return f.limits, nil
}

func TestBuildStoreAssemblesFromAllThreeTables(t *testing.T) {
	f := fakeStore{
		activation: []nucdata.ActivationRecord{
			{ParentSymbol: "Co", ParentA: 59, DaughterText: "Co-60", Reaction: nucdata.ReactionNGamma, MaxXS: 37.2, ParentAbund: 1.0},
		},
		decay: []nucdata.DecayRecord{
			{ParentText: "Co-60", ChildText: "Ni-60", BranchRatio: 1.0, ParentLambda: 4.167e-9},
		},
		limits: []nucdata.LimitRecord{
			{IsotopeText: "Co-60", Clearance: 0.1, Exemption: 10},
		},
	}

	store, err := BuildStore(context.Background(), f)
	require.NoError(t, err)
	assert.NotNil(t, store)
}

func TestBuildStoreFailsOnEmptyActivationTable(t *testing.T) {
	_, err := BuildStore(context.Background(), fakeStore{})
	require.ErrorIs(t, err, nucdata.ErrEmptyActivationTable)
}
