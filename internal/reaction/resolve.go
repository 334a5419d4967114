package reaction

import (
	"math"
	"strings"

	"github.com/mechkit/mechkit/internal/chem"
)

// variantForType is the closed mapping from explicit type tags to
// reaction variants. Tags absent from this table are unknown and fatal.
var variantForType = map[string]Variant{
	"elementary":                   Elementary,
	"three-body":                   ThreeBody,
	"falloff":                      Falloff,
	"chemically-activated":         Falloff,
	"Chebyshev":                    Elementary,
	"pressure-dependent-Arrhenius": Elementary,
	"interface-Arrhenius":          Elementary,
	"sticking-Arrhenius":           Elementary,
	"custom-rate-function":         CustomFunc1,
}

// IsThreeBody reports whether a parsed reaction matches the three-body
// structural pattern: exactly one species appears on both sides with
// integer stoichiometry, every coefficient on both sides is an integer,
// and the integer-weighted reactant or product total is exactly three.
func IsThreeBody(r *Reaction) bool {
	found := 0
	r.Reactants.Each(func(name string, coeff float64) {
		prod, ok := r.Products.Get(name)
		if ok && math.Trunc(coeff) == coeff && math.Trunc(prod) == prod {
			found++
		}
	})
	if found != 1 {
		return false
	}

	integerTotal := func(c *chem.Composition) (int, bool) {
		total := 0
		ok := true
		c.Each(func(_ string, coeff float64) {
			if math.Trunc(coeff) != coeff {
				ok = false
				return
			}
			total += int(coeff)
		})
		return total, ok
	}

	nreac, ok := integerTotal(r.Reactants)
	if !ok {
		return false
	}
	nprod, ok := integerTotal(r.Products)
	if !ok {
		return false
	}
	return nreac == 3 || nprod == 3
}

// ResolveType determines the reaction type tag for a description. An
// explicit tag is validated against the closed type set. Without a tag,
// bulk-phase reactions are speculatively parsed (no validation) and
// promoted to three-body when the equation matches the three-body
// pattern; everything else defaults to elementary. Interface mechanisms
// resolve between rate-constant and sticking-coefficient forms when the
// rate is built, not here.
func ResolveType(node *Description, ctx *chem.Context) (string, error) {
	if node.Type != "" {
		if _, ok := variantForType[node.Type]; !ok {
			return "", newError(ErrCodeTypeResolution, node.Equation,
				"unknown reaction type '%s'", node.Type)
		}
		return node.Type, nil
	}

	if ctx.ReactionPhase().Surface() {
		return "elementary", nil
	}

	probe := newReaction(Elementary)
	if err := parseEquation(probe, node.Equation, ctx); err != nil {
		return "", err
	}
	if IsThreeBody(probe) {
		return "three-body", nil
	}
	return "elementary", nil
}

// newRate builds the rate object for a resolved type tag. For surface
// mechanisms the base Arrhenius form is promoted to an interface or
// sticking rate depending on which parameter block the description
// carries; a surface reaction with neither block cannot be typed.
func newRate(node *Description, typeTag string, ctx *chem.Context) (Rate, error) {
	arrhenius := func(p *ArrheniusParams) ArrheniusParams {
		if p == nil {
			return ArrheniusParams{}
		}
		return *p
	}

	switch typeTag {
	case "three-body":
		return &ArrheniusRate{Params: arrhenius(node.RateConstant)}, nil
	case "falloff", "chemically-activated":
		return &FalloffRate{
			Low:                 arrhenius(node.LowPRateConstant),
			High:                arrhenius(node.HighPRateConstant),
			ChemicallyActivated: typeTag == "chemically-activated",
		}, nil
	case "Chebyshev":
		return &ChebyshevRate{Data: node.ChebyshevData}, nil
	case "pressure-dependent-Arrhenius":
		points := make([]PlogPoint, 0, len(node.RateConstants))
		for _, e := range node.RateConstants {
			points = append(points, PlogPoint{
				Pressure: e.P,
				Params:   ArrheniusParams{A: e.A, B: e.B, Ea: e.Ea},
			})
		}
		return &PressureLogRate{Points: points}, nil
	case "interface-Arrhenius":
		return &InterfaceArrheniusRate{Params: arrhenius(node.RateConstant)}, nil
	case "sticking-Arrhenius":
		return &StickingRate{Params: arrhenius(node.StickingCoefficient), MotzWise: node.MotzWise}, nil
	case "custom-rate-function":
		return &CustomFunc1Rate{Func: func(float64) float64 { return 0 }}, nil
	}

	// Untyped or "elementary" forms.
	if ctx.ReactionPhase().Surface() {
		switch {
		case node.RateConstant != nil:
			return &InterfaceArrheniusRate{Params: *node.RateConstant}, nil
		case node.StickingCoefficient != nil:
			return &StickingRate{Params: *node.StickingCoefficient, MotzWise: node.MotzWise}, nil
		default:
			return nil, newError(ErrCodeTypeResolution, node.Equation,
				"unable to infer interface reaction type")
		}
	}
	return &ArrheniusRate{Params: arrhenius(node.RateConstant)}, nil
}

// interfaceTypeTag prefixes a surface reaction's type with "interface-"
// or "sticking-" according to the rate block present, unless the tag is
// already so prefixed.
func interfaceTypeTag(node *Description, base string) string {
	switch {
	case node.RateConstant != nil && !strings.HasPrefix(base, "interface-"):
		return "interface-" + base
	case node.StickingCoefficient != nil && !strings.HasPrefix(base, "sticking-"):
		return "sticking-" + base
	}
	return base
}

// New constructs a reaction from a structured description: the type is
// resolved, the equation parsed with variant-specific third-body
// handling, rate-coefficient units inferred, the rate attached, and the
// structural check run. Species-declaration and balance checks are the
// caller's second pass via CheckSpecies.
func New(node *Description, ctx *chem.Context) (*Reaction, error) {
	typeTag, err := ResolveType(node, ctx)
	if err != nil {
		return nil, err
	}

	r := newReaction(variantForType[typeTag])
	r.typeTag = typeTag
	if err := r.setParameters(node, ctx); err != nil {
		return nil, err
	}

	if ctx.ReactionPhase().Surface() && r.variant == Elementary {
		base := typeTag
		if base == "elementary" {
			base = "Arrhenius"
		}
		r.typeTag = interfaceTypeTag(node, base)
	}

	rate, err := newRate(node, typeTag, ctx)
	if err != nil {
		return nil, err
	}

	r.rateUnits = r.RateCoeffUnits(ctx)
	if err := r.SetRate(rate); err != nil {
		return nil, err
	}

	if err := r.Check(); err != nil {
		return nil, err
	}
	return r, nil
}
