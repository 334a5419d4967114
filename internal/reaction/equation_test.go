package reaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mechkit/mechkit/internal/chem"
	"github.com/mechkit/mechkit/internal/units"
)

// gasContext builds a single bulk phase holding the named species, each
// with a trivial one-element composition so balance checks pass for
// A + B <=> C style equations.
func gasContext(t *testing.T, opts ...chem.ContextOption) *chem.Context {
	t.Helper()
	phase := &chem.Phase{
		Name:          "gas",
		Dimension:     3,
		Concentration: units.MolarDensity(),
		Species: []chem.SpeciesDef{
			{Name: "A", Elements: map[string]float64{"X": 1}},
			{Name: "B", Elements: map[string]float64{"Y": 1}},
			{Name: "C", Elements: map[string]float64{"X": 1, "Y": 1}},
			{Name: "D", Elements: map[string]float64{"X": 1, "Y": 1}},
			{Name: "H2", Elements: map[string]float64{"H": 2}},
			{Name: "O2", Elements: map[string]float64{"O": 2}},
			{Name: "H2O", Elements: map[string]float64{"H": 2, "O": 1}},
			{Name: "AR", Elements: map[string]float64{"Ar": 1}},
		},
	}
	ctx, err := chem.NewContext([]*chem.Phase{phase}, opts...)
	require.NoError(t, err)
	return ctx
}

func parse(t *testing.T, equation string, ctx *chem.Context) *Reaction {
	t.Helper()
	r := newReaction(Elementary)
	require.NoError(t, parseEquation(r, equation, ctx))
	return r
}

func TestParseReversible(t *testing.T) {
	r := parse(t, "A + B <=> C", gasContext(t))

	assert.True(t, r.Reversible)
	assert.Equal(t, map[string]float64{"A": 1, "B": 1}, r.Reactants.Map())
	assert.Equal(t, map[string]float64{"C": 1}, r.Products.Map())
	assert.True(t, r.Valid())
}

func TestParseEqualsOperatorIsReversible(t *testing.T) {
	r := parse(t, "A + B = C", gasContext(t))
	assert.True(t, r.Reversible)
}

func TestParseIrreversibleAccumulatesCoefficients(t *testing.T) {
	r := parse(t, "2 A => B + B", gasContext(t))

	assert.False(t, r.Reversible)
	assert.Equal(t, map[string]float64{"A": 2}, r.Reactants.Map())
	assert.Equal(t, map[string]float64{"B": 2}, r.Products.Map())
}

func TestParseFractionalCoefficient(t *testing.T) {
	r := parse(t, "1.5 A => C", gasContext(t))
	assert.Equal(t, map[string]float64{"A": 1.5}, r.Reactants.Map())
}

func TestParseFalloffMarkerCompact(t *testing.T) {
	r := parse(t, "A (+M) <=> B (+M)", gasContext(t))

	coeff, ok := r.Reactants.Get("(+M)")
	require.True(t, ok)
	assert.Equal(t, -1.0, coeff)
	coeff, ok = r.Products.Get("(+M)")
	require.True(t, ok)
	assert.Equal(t, -1.0, coeff)
}

func TestParseFalloffMarkerSpaced(t *testing.T) {
	r := parse(t, "A (+ M) <=> B (+ M)", gasContext(t))

	assert.True(t, r.Reactants.Has("(+M)"))
	assert.True(t, r.Products.Has("(+M)"))
}

func TestParseNamedFalloffMarker(t *testing.T) {
	r := parse(t, "A (+AR) <=> B (+AR)", gasContext(t))

	coeff, ok := r.Reactants.Get("(+AR)")
	require.True(t, ok)
	assert.Equal(t, -1.0, coeff)
}

func TestParseBadCoefficient(t *testing.T) {
	r := newReaction(Elementary)
	err := parseEquation(r, "2x A => B", gasContext(t))

	require.Error(t, err)
	assert.True(t, IsParseError(err))
}

func TestParseDanglingOperator(t *testing.T) {
	r := newReaction(Elementary)
	err := parseEquation(r, "A + + B => C", gasContext(t))

	require.Error(t, err)
	assert.True(t, IsParseError(err))

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "+", perr.Details["token"])
}

func TestParseUnknownSpeciesMarksInvalid(t *testing.T) {
	r := parse(t, "A + KR => C", gasContext(t))
	assert.False(t, r.Valid())
}

func TestParseLiteralMDoesNotInvalidate(t *testing.T) {
	r := parse(t, "A + M <=> C + M", gasContext(t))
	assert.True(t, r.Valid())
}

func TestParseNilContextMarksInvalid(t *testing.T) {
	r := newReaction(Elementary)
	require.NoError(t, parseEquation(r, "A => B", nil))
	assert.False(t, r.Valid())
}
