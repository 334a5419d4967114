package reaction

import (
	"strings"

	"github.com/mechkit/mechkit/internal/chem"
	"github.com/mechkit/mechkit/internal/units"
)

// RateCoeffUnits derives the physical units the reaction's rate
// coefficient must carry. The base is the reacting phase's standard
// concentration per time; every explicit reaction order divides out the
// ordering phase's concentration raised to that order, every reactant
// not covered by an order divides out its phase's concentration raised
// to its stoichiometric coefficient, and a third body contributes one
// further inverse concentration.
//
// Invalid reactions (unresolved species) return the empty stack: unit
// inference over unknown species is meaningless.
//
// This may run before three-body and falloff pseudo-species have been
// stripped from the reactants, so "M" and "(+" tokens are skipped; their
// contribution is the final third-body term.
func (r *Reaction) RateCoeffUnits(ctx *chem.Context) units.Stack {
	if !r.valid {
		return units.EmptyStack()
	}

	stack := units.NewStack(ctx.ReactionPhase().Concentration)
	stack.Join(1)
	stack.Update(units.PerSecond(), 1)

	r.Orders.Each(func(name string, order float64) {
		phase := ctx.SpeciesPhase(name)
		stack.Update(phase.Concentration, -order)
	})

	r.Reactants.Each(func(name string, stoich float64) {
		if name == "M" || strings.HasPrefix(name, "(+") {
			return
		}
		if r.Orders.Has(name) {
			// The explicit order already accounts for this reactant.
			return
		}
		phase := ctx.SpeciesPhase(name)
		stack.Update(phase.Concentration, -stoich)
	})

	if r.thirdBody != nil {
		stack.Join(-1)
	}
	return stack
}
