package reaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsThreeBody(t *testing.T) {
	ctx := gasContext(t)

	for _, tc := range []struct {
		equation string
		want     bool
	}{
		// One shared species, three reactants.
		{"A + B + M <=> C + M", true},
		{"2 A + AR <=> C + AR", true},
		{"A + B + C <=> A + D", true},
		// Three products instead of three reactants.
		{"C + AR <=> A + B + AR", true},
		// No shared species.
		{"A + B <=> C", false},
		// Two shared species.
		{"A + B + C <=> A + B + D", false},
		// Fractional coefficients rule it out even when the raw totals
		// come to three.
		{"0.5 A + 1.5 B + AR <=> 2 C + AR", false},
		// Shared species but neither side totals three.
		{"A + AR <=> C + AR", false},
	} {
		r := parse(t, tc.equation, ctx)
		assert.Equal(t, tc.want, IsThreeBody(r), tc.equation)
	}
}

func TestResolveTypeExplicitTag(t *testing.T) {
	ctx := gasContext(t)

	tag, err := ResolveType(&Description{Equation: "A + B <=> C", Type: "falloff"}, ctx)
	require.NoError(t, err)
	assert.Equal(t, "falloff", tag)
}

func TestResolveTypeUnknownTag(t *testing.T) {
	ctx := gasContext(t)

	_, err := ResolveType(&Description{Equation: "A + B <=> C", Type: "six-body"}, ctx)
	require.Error(t, err)
	assert.True(t, IsTypeResolutionError(err))
	assert.Contains(t, err.Error(), "six-body")
}

func TestResolveTypeInfersThreeBody(t *testing.T) {
	ctx := gasContext(t)

	tag, err := ResolveType(&Description{Equation: "A + B + M <=> C + M"}, ctx)
	require.NoError(t, err)
	assert.Equal(t, "three-body", tag)

	tag, err = ResolveType(&Description{Equation: "A + B <=> C"}, ctx)
	require.NoError(t, err)
	assert.Equal(t, "elementary", tag)
}

func TestResolveTypeSurfaceDefaultsToElementary(t *testing.T) {
	ctx := surfaceContext(t)

	// Surface mechanisms never promote to three-body, even when the
	// equation would match the bulk pattern.
	tag, err := ResolveType(&Description{Equation: "A(s) + A(s) + A <=> A2(s) + A"}, ctx)
	require.NoError(t, err)
	assert.Equal(t, "elementary", tag)
}

func TestNewElementary(t *testing.T) {
	ctx := gasContext(t)

	r, err := New(&Description{
		Equation:     "A + B <=> C",
		RateConstant: &ArrheniusParams{A: 1e10, Ea: 1000},
	}, ctx)
	require.NoError(t, err)

	assert.Equal(t, Elementary, r.Variant())
	assert.Equal(t, "elementary", r.TypeName())
	assert.Equal(t, RateArrhenius, r.Rate().Kind())
	assert.Nil(t, r.ThirdBody())
}

func TestNewInfersThreeBodyWithEfficiencies(t *testing.T) {
	ctx := gasContext(t)

	r, err := New(&Description{
		Equation:     "A + B + M <=> C + M",
		RateConstant: &ArrheniusParams{A: 1e10},
		Efficiencies: map[string]float64{"AR": 0.7},
	}, ctx)
	require.NoError(t, err)

	assert.Equal(t, ThreeBody, r.Variant())
	assert.Equal(t, "three-body", r.TypeName())
	eff, ok := r.ThirdBody().Efficiencies.Get("AR")
	assert.True(t, ok)
	assert.Equal(t, 0.7, eff)
}

func TestNewFalloff(t *testing.T) {
	ctx := gasContext(t)

	r, err := New(&Description{
		Equation:          "A + B (+M) <=> C (+M)",
		Type:              "falloff",
		LowPRateConstant:  &ArrheniusParams{A: 1e16},
		HighPRateConstant: &ArrheniusParams{A: 1e10},
	}, ctx)
	require.NoError(t, err)

	assert.Equal(t, Falloff, r.Variant())
	assert.Equal(t, "falloff", r.TypeName())
	assert.False(t, r.ThirdBody().MassAction)
	assert.Equal(t, "A + B (+M) <=> C (+M)", r.Equation())
}

func TestNewChemicallyActivated(t *testing.T) {
	ctx := gasContext(t)

	r, err := New(&Description{
		Equation:          "A + B (+M) <=> C (+M)",
		Type:              "chemically-activated",
		LowPRateConstant:  &ArrheniusParams{A: 1e16},
		HighPRateConstant: &ArrheniusParams{A: 1e10},
	}, ctx)
	require.NoError(t, err)

	assert.Equal(t, Falloff, r.Variant())
	assert.Equal(t, "chemically-activated", r.TypeName())
}

func TestNewFalloffWithoutRateLimits(t *testing.T) {
	ctx := gasContext(t)

	_, err := New(&Description{
		Equation: "A + B (+M) <=> C (+M)",
		Type:     "falloff",
	}, ctx)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestNewSurfaceInterfaceArrhenius(t *testing.T) {
	ctx := surfaceContext(t)

	r, err := New(&Description{
		Equation:     "A(s) + A(s) => A2(s)",
		RateConstant: &ArrheniusParams{A: 1e8},
	}, ctx)
	require.NoError(t, err)

	assert.Equal(t, "interface-Arrhenius", r.TypeName())
	assert.Equal(t, RateInterfaceArrhenius, r.Rate().Kind())
}

func TestNewSurfaceSticking(t *testing.T) {
	ctx := surfaceContext(t)

	r, err := New(&Description{
		Equation:            "A + (s) => A(s)",
		StickingCoefficient: &ArrheniusParams{A: 0.1},
		MotzWise:            true,
	}, ctx)
	require.NoError(t, err)

	assert.Equal(t, "sticking-Arrhenius", r.TypeName())
	require.Equal(t, RateSticking, r.Rate().Kind())
	assert.True(t, r.Rate().(*StickingRate).MotzWise)
}

func TestNewSurfaceStickingProbabilityAboveOne(t *testing.T) {
	ctx := surfaceContext(t)

	_, err := New(&Description{
		Equation:            "A + (s) => A(s)",
		StickingCoefficient: &ArrheniusParams{A: 2},
	}, ctx)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestNewSurfaceMissingRateBlock(t *testing.T) {
	ctx := surfaceContext(t)

	_, err := New(&Description{Equation: "A + (s) => A(s)"}, ctx)
	require.Error(t, err)
	assert.True(t, IsTypeResolutionError(err))
}

func TestNewExplicitInterfaceTag(t *testing.T) {
	ctx := surfaceContext(t)

	r, err := New(&Description{
		Equation:     "A(s) + A(s) => A2(s)",
		Type:         "interface-Arrhenius",
		RateConstant: &ArrheniusParams{A: 1e8},
	}, ctx)
	require.NoError(t, err)
	assert.Equal(t, "interface-Arrhenius", r.TypeName())
}

func TestNewPressureDependentArrhenius(t *testing.T) {
	ctx := gasContext(t)

	r, err := New(&Description{
		Equation: "A + B <=> C",
		Type:     "pressure-dependent-Arrhenius",
		RateConstants: []PlogEntry{
			{P: 1013.25, A: 1e8},
			{P: 101325, A: 1e10},
		},
	}, ctx)
	require.NoError(t, err)

	assert.Equal(t, Elementary, r.Variant())
	assert.Equal(t, "pressure-dependent-Arrhenius", r.TypeName())
	assert.Len(t, r.Rate().(*PressureLogRate).Points, 2)
}
