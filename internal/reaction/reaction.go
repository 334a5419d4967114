// Package reaction implements parsing, classification, and validation of
// chemical reaction equations: equation text becomes stoichiometric
// compositions, the reaction's kinetic variant is resolved, the physical
// units of its rate coefficient are inferred, and multi-stage checks
// enforce structural, declaration, and balance invariants before the
// reaction may join a mechanism.
package reaction

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/mechkit/mechkit/internal/chem"
	"github.com/mechkit/mechkit/internal/units"
)

var log = commonlog.GetLogger("mechkit.reaction")

// Variant enumerates the closed set of reaction kinds. Variant-specific
// behavior dispatches on this tag; variant-specific state lives in the
// optional third-body payload.
type Variant int

const (
	// Elementary reactions follow plain mass-action kinetics with no
	// collision partner. Chebyshev, pressure-dependent-Arrhenius, and
	// interface/sticking rates all attach to this variant.
	Elementary Variant = iota

	// ThreeBody reactions require a collision partner whose
	// concentration multiplies the rate.
	ThreeBody

	// Falloff reactions blend low- and high-pressure limits; the
	// collision partner is absorbed into the blended rate.
	Falloff

	// CustomFunc1 reactions take their rate from an arbitrary external
	// function.
	CustomFunc1
)

// Reaction is a parsed, typed, and validated reaction description. It is
// mutated only during its own setup (parsing, rate assignment,
// validation) and treated as immutable afterwards, so a validated
// Reaction may be shared freely across goroutines.
type Reaction struct {
	Reactants *chem.Composition
	Products  *chem.Composition

	Reversible bool

	// Duplicate marks an intentionally repeated mechanism entry.
	Duplicate bool

	// Orders holds non-mass-action reaction-order overrides.
	Orders *chem.Composition

	AllowNonreactantOrders bool
	AllowNegativeOrders    bool

	// ID is an optional free-form identifier.
	ID string

	variant   Variant
	typeTag   string
	rate      Rate
	thirdBody *ThirdBody
	rateUnits units.Stack
	valid     bool
	input     *Description
}

// newReaction returns a bare reaction of the given variant with empty
// compositions. Three-body and falloff variants own a fresh ThirdBody;
// falloff third bodies are never mass-action.
func newReaction(v Variant) *Reaction {
	r := &Reaction{
		Reactants: chem.NewComposition(),
		Products:  chem.NewComposition(),
		Orders:    chem.NewComposition(),
		variant:   v,
		valid:     true,
	}
	switch v {
	case ThreeBody:
		r.thirdBody = NewThirdBody()
		r.typeTag = "three-body"
	case Falloff:
		r.thirdBody = NewThirdBody()
		r.thirdBody.MassAction = false
		r.typeTag = "falloff"
	case CustomFunc1:
		r.typeTag = "custom-rate-function"
	default:
		r.typeTag = "elementary"
	}
	return r
}

// Variant returns the reaction's kind tag.
func (r *Reaction) Variant() Variant {
	return r.variant
}

// TypeName reports the reaction's type tag as used in serialized
// descriptions. Falloff reactions report "chemically-activated" when
// their rate is referenced to the low-pressure limit.
func (r *Reaction) TypeName() string {
	if r.variant == Falloff {
		if fr, ok := r.rate.(*FalloffRate); ok && fr.ChemicallyActivated {
			return "chemically-activated"
		}
		return "falloff"
	}
	return r.typeTag
}

// Valid reports whether every referenced species resolved against the
// kinetics context. Only meaningful when the caller tolerates undeclared
// species; invalid reactions are excluded rather than erroring.
func (r *Reaction) Valid() bool {
	return r.valid
}

// Rate returns the attached rate object, or nil before assignment.
func (r *Reaction) Rate() Rate {
	return r.rate
}

// ThirdBody returns the owned third-body model, or nil for variants
// without one.
func (r *Reaction) ThirdBody() *ThirdBody {
	return r.thirdBody
}

// Input returns the original structured description, or nil when the
// reaction was built programmatically.
func (r *Reaction) Input() *Description {
	return r.input
}

// RateUnits returns the inferred rate-coefficient unit stack. Empty for
// invalid reactions.
func (r *Reaction) RateUnits() units.Stack {
	return r.rateUnits
}

// SetEquation parses equation into the reaction, applying the variant's
// third-body post-processing. ctx may be nil, in which case every
// species is treated as unresolved.
func (r *Reaction) SetEquation(equation string, ctx *chem.Context) error {
	if err := parseEquation(r, equation, ctx); err != nil {
		return err
	}
	switch r.variant {
	case ThreeBody:
		return r.resolveThreeBody(equation)
	case Falloff:
		return r.resolveFalloffBody(equation)
	}
	return nil
}

// resolveThreeBody strips the literal "M" from both sides, or promotes
// an explicitly repeated species to the collision partner when no "M" is
// present.
func (r *Reaction) resolveThreeBody(equation string) error {
	if !r.Reactants.Has("M") || !r.Products.Has("M") {
		ok, err := r.detectEfficiencies()
		if err != nil {
			return err
		}
		if !ok {
			return newError(ErrCodeTypeResolution, equation,
				"reaction equation does not contain third body 'M'")
		}
		return nil
	}
	r.Reactants.Delete("M")
	r.Products.Delete("M")
	return nil
}

// detectEfficiencies scans for a species appearing on both sides and
// promotes it to an explicitly specified collision partner: efficiency
// 1, default efficiency 0, and one stoichiometric unit removed from each
// side. Exactly one candidate must exist; more than one is an error, and
// zero leaves the reaction unchanged.
func (r *Reaction) detectEfficiencies() (bool, error) {
	for _, name := range r.Reactants.Keys() {
		if r.Products.Has(name) {
			r.thirdBody.Efficiencies.Set(name, 1)
		}
	}

	if r.thirdBody.Efficiencies.Len() == 0 {
		return false, nil
	}
	if r.thirdBody.Efficiencies.Len() > 1 {
		return false, newError(ErrCodeTypeResolution, r.Equation(),
			"found more than one explicitly specified collision partner")
	}

	r.thirdBody.DefaultEfficiency = 0
	r.thirdBody.SpecifiedCollisionPartner = true
	partner := r.thirdBody.Efficiencies.Keys()[0]

	// Subtract one stoichiometric unit from each side; an entry that
	// would reach zero is removed outright.
	adjust := func(c *chem.Composition) {
		v, _ := c.Get(partner)
		if math.Trunc(v) != 1 {
			c.Set(partner, v-1)
		} else {
			c.Delete(partner)
		}
	}
	adjust(r.Reactants)
	adjust(r.Products)

	return true, nil
}

// resolveFalloffBody locates the "(+X)" pseudo-species the parser
// recorded with coefficient -1, requires it on both sides, strips it,
// and configures the third body. A named species other than "M" becomes
// a specified collision partner with default efficiency 0.
func (r *Reaction) resolveFalloffBody(equation string) error {
	var marker, body string
	r.Reactants.Each(func(name string, coeff float64) {
		if marker == "" && coeff == -1 && strings.HasPrefix(name, "(+") {
			marker = name
			body = name[2 : len(name)-1]
		}
	})

	if marker == "" {
		return newError(ErrCodeTypeResolution, equation,
			"reactants do not contain a pressure-dependent third body")
	}
	if !r.Products.Has(marker) {
		return newError(ErrCodeTypeResolution, equation,
			"unable to match third body '%s' in reactants and products", body)
	}

	r.Reactants.Delete(marker)
	r.Products.Delete(marker)

	if body == "M" {
		r.thirdBody.SpecifiedCollisionPartner = false
	} else {
		r.thirdBody.DefaultEfficiency = 0
		r.thirdBody.Efficiencies.Set(body, 1)
		r.thirdBody.SpecifiedCollisionPartner = true
	}
	return nil
}

// SetRate attaches a rate object, enforcing the notation rules that
// couple equation pseudo-species to rate kinds: "(+M)" with a Chebyshev
// rate is deprecated and stripped with a warning, while a literal "M"
// reactant with a pressure-dependent-Arrhenius rate is rejected.
func (r *Reaction) SetRate(rate Rate) error {
	r.rate = rate
	if rate == nil {
		return nil
	}

	if r.Reactants.Has("(+M)") && rate.Kind() == RateChebyshev {
		log.Warningf("specifying '(+M)' in the equation of Chebyshev reaction '%s' is deprecated; ignoring",
			r.Equation())
		r.Reactants.Delete("(+M)")
		r.Products.Delete("(+M)")
	}

	if r.Reactants.Has("M") && rate.Kind() == RatePressureLog {
		return newError(ErrCodeUnsupported, r.Equation(),
			"found superfluous 'M' in pressure-dependent-Arrhenius reaction")
	}
	return nil
}

// setParameters applies the non-equation fields of a description: input
// snapshot, reaction orders (unknown order species mark the reaction
// invalid), flags, and third-body efficiencies.
func (r *Reaction) setParameters(node *Description, ctx *chem.Context) error {
	r.input = node
	if err := r.SetEquation(node.Equation, ctx); err != nil {
		return err
	}

	for _, name := range sortedOrderKeys(node.Orders) {
		r.Orders.Set(name, node.Orders[name])
		if ctx == nil || !ctx.HasSpecies(name) {
			r.valid = false
		}
	}

	r.ID = node.ID
	r.Duplicate = node.Duplicate
	r.AllowNegativeOrders = node.NegativeOrders
	r.AllowNonreactantOrders = node.NonreactantOrders

	if r.thirdBody != nil && !r.thirdBody.SpecifiedCollisionPartner {
		r.thirdBody.setEfficiencies(node.DefaultEfficiency, node.Efficiencies)
	}
	return nil
}

// composeSide renders a composition as "a + 2 b + ...".
func composeSide(c *chem.Composition) string {
	var b strings.Builder
	first := true
	c.Each(func(name string, coeff float64) {
		if !first {
			b.WriteString(" + ")
		}
		first = false
		if coeff != 1 {
			b.WriteString(formatCoeff(coeff))
			b.WriteString(" ")
		}
		b.WriteString(name)
	})
	return b.String()
}

// ReactantString renders the reactant side, including the variant's
// third-body annotation.
func (r *Reaction) ReactantString() string {
	return composeSide(r.Reactants) + r.thirdBodySuffix()
}

// ProductString renders the product side, including the variant's
// third-body annotation.
func (r *Reaction) ProductString() string {
	return composeSide(r.Products) + r.thirdBodySuffix()
}

func (r *Reaction) thirdBodySuffix() string {
	switch r.variant {
	case ThreeBody:
		return " + " + r.thirdBody.CollisionPartner()
	case Falloff:
		return " (+" + r.thirdBody.CollisionPartner() + ")"
	}
	return ""
}

// Equation reconstructs the textual equation from the current reactant,
// product, reversibility, and third-body state. It is regenerable at any
// time and never cached.
func (r *Reaction) Equation() string {
	if r.Reversible {
		return r.ReactantString() + " <=> " + r.ProductString()
	}
	return r.ReactantString() + " => " + r.ProductString()
}

// Parameters produces the computed reaction description: equation, flags
// that differ from their defaults, the rate's own parameter block, and
// the variant's third-body fields. The type tag is normalized away for
// the default elementary-Arrhenius form.
func (r *Reaction) Parameters() map[string]any {
	out := map[string]any{"equation": r.Equation()}

	if r.Duplicate {
		out["duplicate"] = true
	}
	if r.Orders.Len() > 0 {
		out["orders"] = r.Orders.Map()
	}
	if r.AllowNegativeOrders {
		out["negative-orders"] = true
	}
	if r.AllowNonreactantOrders {
		out["nonreactant-orders"] = true
	}

	if r.rate != nil {
		for k, v := range r.rate.Parameters() {
			out[k] = v
		}
	}

	switch r.variant {
	case ThreeBody:
		if !r.thirdBody.SpecifiedCollisionPartner {
			out["type"] = "three-body"
			out["efficiencies"] = r.thirdBody.Efficiencies.Map()
			if r.thirdBody.DefaultEfficiency != 1 {
				out["default-efficiency"] = r.thirdBody.DefaultEfficiency
			}
		}
	case Falloff:
		if !r.thirdBody.SpecifiedCollisionPartner && r.thirdBody.Efficiencies.Len() > 0 {
			out["efficiencies"] = r.thirdBody.Efficiencies.Map()
			if r.thirdBody.DefaultEfficiency != 1 {
				out["default-efficiency"] = r.thirdBody.DefaultEfficiency
			}
		}
	}
	return out
}

func formatCoeff(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func sortedOrderKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
