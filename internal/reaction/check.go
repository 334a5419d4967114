package reaction

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mechkit/mechkit/internal/chem"
)

// Tolerances for the balance checks. Elemental sums compare relative to
// the combined reactant+product total; surface sites compare the
// absolute difference against the scaled total.
const (
	elementBalanceTol = 1e-4
	siteBalanceTol    = 1e-5
	chargeTransferTol = 1e-4
)

// Check enforces the structural invariants of the reaction description:
// orders may only name reactants (unless permitted), orders must be
// non-negative (unless permitted), and a reversible reaction may not
// carry orders at all, since reverse rates computed from thermochemistry
// assume mass-action kinetics. The attached rate's own structural check
// runs last so changes made after construction are still caught.
func (r *Reaction) Check() error {
	if !r.AllowNonreactantOrders {
		for _, name := range r.Orders.Keys() {
			if !r.Reactants.Has(name) {
				return newError(ErrCodeConfig, r.Equation(),
					"reaction order specified for non-reactant species '%s'", name)
			}
		}
	}

	if !r.AllowNegativeOrders {
		var err error
		r.Orders.Each(func(name string, order float64) {
			if err == nil && order < 0 {
				err = newError(ErrCodeConfig, r.Equation(),
					"negative reaction order specified for species '%s'", name)
			}
		})
		if err != nil {
			return err
		}
	}

	if r.Reversible && r.Orders.Len() > 0 {
		return newError(ErrCodeConfig, r.Equation(),
			"reaction orders may only be given for irreversible reactions")
	}

	if r.rate != nil {
		return r.rate.Check(r.Equation())
	}
	return nil
}

// undeclared appends to dst every species of comp absent from ctx.
func undeclared(dst []string, comp *chem.Composition, ctx *chem.Context) []string {
	comp.Each(func(name string, _ float64) {
		if !ctx.HasSpecies(name) {
			dst = append(dst, name)
		}
	})
	return dst
}

// undeclaredThirdBodies returns the third-body efficiency species absent
// from ctx, and whether the third body names a single collision partner.
func (r *Reaction) undeclaredThirdBodies(ctx *chem.Context) ([]string, bool) {
	if r.thirdBody == nil {
		return nil, false
	}
	missing := undeclared(nil, r.thirdBody.Efficiencies, ctx)
	return missing, r.thirdBody.SpecifiedCollisionPartner
}

// CheckSpecies verifies that every reactant, product, reaction-order,
// and third-body efficiency species is declared in ctx, then runs the
// balance check. The boolean result distinguishes the lenient-mode
// outcome: (false, nil) means the reaction is excluded from the
// mechanism without an error, so callers never inspect error text to
// tell exclusion from failure.
func (r *Reaction) CheckSpecies(ctx *chem.Context) (bool, error) {
	missing := undeclared(nil, r.Reactants, ctx)
	missing = undeclared(missing, r.Products, ctx)
	if len(missing) > 0 {
		if ctx.SkipUndeclaredSpecies() {
			return false, nil
		}
		return false, newError(ErrCodeUndeclaredSpecies, r.Equation(),
			"reaction contains undeclared species: '%s'", strings.Join(missing, "', '"))
	}

	missing = undeclared(nil, r.Orders, ctx)
	if len(missing) > 0 {
		if ctx.SkipUndeclaredSpecies() {
			return false, nil
		}
		return false, newError(ErrCodeUndeclaredSpecies, r.Equation(),
			"reaction defines reaction orders for undeclared species: '%s'",
			strings.Join(missing, "', '"))
	}

	missing, specifiedPartner := r.undeclaredThirdBodies(ctx)
	if len(missing) > 0 {
		if !ctx.SkipUndeclaredThirdBodies() {
			return false, newError(ErrCodeUndeclaredSpecies, r.Equation(),
				"reaction defines third-body efficiencies for undeclared species: '%s'",
				strings.Join(missing, "', '"))
		}
		if ctx.SkipUndeclaredSpecies() && specifiedPartner {
			return false, nil
		}
	}

	if err := r.CheckBalance(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// CheckBalance verifies elemental balance across the equation and, for
// surface mechanisms, that reactants and products occupy the same number
// of lattice sites. All out-of-balance elements are aggregated into a
// single error carrying the per-element reactant and product sums.
func (r *Reaction) CheckBalance(ctx *chem.Context) error {
	balr := make(map[string]float64)
	balp := make(map[string]float64)

	r.Products.Each(func(name string, stoich float64) {
		sp := ctx.Species(name)
		for el, atoms := range sp.Elements {
			balr[el] += 0 // ensure balr covers product-only elements
			balp[el] += stoich * atoms
		}
	})
	r.Reactants.Each(func(name string, stoich float64) {
		sp := ctx.Species(name)
		for el, atoms := range sp.Elements {
			balr[el] += stoich * atoms
		}
	})

	var bad []string
	details := make(map[string]string)
	for _, el := range sortedElementKeys(balr) {
		sum := balr[el] + balp[el]
		diff := math.Abs(balp[el] - balr[el])
		if sum > 0 && diff/sum > elementBalanceTol {
			bad = append(bad, fmt.Sprintf("%s (reactants %g, products %g)", el, balr[el], balp[el]))
			details[el] = fmt.Sprintf("%g != %g", balr[el], balp[el])
		}
	}
	if len(bad) > 0 {
		return &Error{
			Code:     ErrCodeBalance,
			Equation: r.Equation(),
			Message:  "reaction is unbalanced for element(s): " + strings.Join(bad, ", "),
			Details:  details,
		}
	}

	if !ctx.ReactionPhase().Surface() {
		return nil
	}

	// Surface-site balance: each side's occupancy is the site-size
	// weighted sum over its surface species only.
	surf := ctx.SurfacePhase()
	sites := func(c *chem.Composition) float64 {
		var total float64
		c.Each(func(name string, stoich float64) {
			if ctx.SpeciesPhase(name) == surf {
				total += stoich * ctx.Species(name).Size
			}
		})
		return total
	}
	reacSites := sites(r.Reactants)
	prodSites := sites(r.Products)
	if math.Abs(reacSites-prodSites) > siteBalanceTol*(reacSites+prodSites) {
		return newError(ErrCodeBalance, r.Equation(),
			"number of surface sites not balanced: reactant sites %g, product sites %g",
			reacSites, prodSites)
	}
	return nil
}

// UsesElectrochemistry reports whether the reaction transfers net charge
// between phases. This is a classification query, not a validation
// failure.
func (r *Reaction) UsesElectrochemistry(ctx *chem.Context) bool {
	transfer := make([]float64, len(ctx.Phases()))

	r.Products.Each(func(name string, stoich float64) {
		transfer[ctx.PhaseIndex(name)] += stoich * ctx.Species(name).Charge
	})
	r.Reactants.Each(func(name string, stoich float64) {
		transfer[ctx.PhaseIndex(name)] -= stoich * ctx.Species(name).Charge
	})

	for _, delta := range transfer {
		if math.Abs(delta) > chargeTransferTol {
			return true
		}
	}
	return false
}

func sortedElementKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Deterministic error messages.
	sort.Strings(keys)
	return keys
}
