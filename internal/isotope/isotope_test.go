package isotope

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSymbolFirst(t *testing.T) {
	id, ok := Parse("Lu-177")
	require.True(t, ok)
	assert.Equal(t, ID{Symbol: "Lu", A: 177}, id)
	assert.Equal(t, "Lu-177", id.String())
}

func TestParseMetastable(t *testing.T) {
	id, ok := Parse("Tc-99m")
	require.True(t, ok)
	assert.Equal(t, ID{Symbol: "Tc", A: 99, Meta: "m"}, id)
	assert.Equal(t, "Tc-99m", id.String())
}

func TestParseNumberFirst(t *testing.T) {
	id, ok := Parse("177Lu")
	require.True(t, ok)
	assert.Equal(t, ID{Symbol: "Lu", A: 177}, id)
}

func TestParseNumberFirstMetastable(t *testing.T) {
	id, ok := Parse("99mTc")
	require.True(t, ok)
	assert.Equal(t, ID{Symbol: "Tc", A: 99, Meta: "m"}, id)
}

func TestParseCaseAndSeparatorTolerant(t *testing.T) {
	for _, s := range []string{"co-60", "CO_60", "Co60", "60CO", "  Co-60  "} {
		id, ok := Parse(s)
		require.True(t, ok, s)
		assert.Equal(t, ID{Symbol: "Co", A: 60}, id, s)
	}
}

func TestParseUnknown(t *testing.T) {
	for _, s := range []string{"", "   ", "???", "Co", "60", "Co-0", "Co-abc"} {
		_, ok := Parse(s)
		assert.False(t, ok, s)
	}
}

func TestEquality(t *testing.T) {
	a, _ := Parse("Co-60")
	b, _ := Parse("60Co")
	assert.Equal(t, a, b)
	assert.True(t, a == b)

	c, _ := Parse("Co-60m")
	assert.NotEqual(t, a, c)
}

func TestIsZero(t *testing.T) {
	assert.True(t, Zero.IsZero())
	id, _ := Parse("Co-60")
	assert.False(t, id.IsZero())
}

func TestJSONRoundTrip(t *testing.T) {
	id, _ := Parse("Tc-99m")
	b, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"Tc-99m"`, string(b))

	var got ID
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, id, got)
}

func TestJSONUnmarshalRejectsGarbage(t *testing.T) {
	var got ID
	err := json.Unmarshal([]byte(`"not-a-nuclide"`), &got)
	assert.Error(t, err)
}
