package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupRegime(t *testing.T) {
	for _, name := range RegimeNames() {
		r, err := LookupRegime(name)
		require.NoError(t, err)
		assert.Equal(t, name, r.Name)
		require.NotEmpty(t, r.Brackets)
		assert.True(t, r.Brackets[len(r.Brackets)-1].IsOpen(), "%s: last slab must be open", name)
		assert.Equal(t, "0.04", r.CessRate.String())
	}

	r, err := LookupRegime("NEW")
	require.NoError(t, err)
	assert.Equal(t, DefaultNewRegime, r.Name)

	r, err = LookupRegime("")
	require.NoError(t, err)
	assert.Equal(t, DefaultNewRegime, r.Name)

	_, err = LookupRegime("flat-tax")
	assert.ErrorIs(t, err, ErrUnknownRegime)
}

func TestRegimesAreIndependentValues(t *testing.T) {
	a := OldRegime()
	a.Brackets[1].Rate = a.Brackets[1].Rate.Mul(d(10))
	*a.Brackets[0].UpperBound = d(1)

	b := OldRegime()
	assert.Equal(t, "0.05", b.Brackets[1].Rate.String())
	assert.Equal(t, "250000", b.Brackets[0].UpperBound.String())
}

func TestRegimeBracketsAscending(t *testing.T) {
	for _, name := range RegimeNames() {
		r, _ := LookupRegime(name)
		prev := d(0)
		for _, b := range r.Brackets {
			if b.IsOpen() {
				continue
			}
			assert.True(t, b.UpperBound.GreaterThan(prev), "%s slabs out of order", name)
			prev = *b.UpperBound
		}
	}
}

func TestNewRegimeNames(t *testing.T) {
	names := NewRegimeNames()
	assert.NotContains(t, names, RegimeOld)
	assert.Len(t, names, 3)
}
