package chem

import (
	"fmt"
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/mechkit/mechkit/internal/units"
)

// SpeciesDef describes one chemical species as the validator sees it:
// its elemental makeup, electrical charge, and (for surface species) the
// number of lattice sites it occupies.
type SpeciesDef struct {
	// Name identifies the species. Normalized to NFC so that equation
	// tokens and declaration names compare equal regardless of the
	// Unicode representation in the source file.
	Name string

	// Elements maps element symbol to the number of atoms per molecule.
	Elements map[string]float64

	// Charge is the net electrical charge in units of elementary charge.
	Charge float64

	// Size is the number of surface sites the species occupies. Ignored
	// for bulk-phase species; defaults to 1 for surface species.
	Size float64
}

// Phase groups species sharing a dimensionality and a standard
// concentration unit.
type Phase struct {
	Name string

	// Dimension is 3 for a bulk phase and 2 for a surface phase.
	Dimension int

	// Concentration is the phase's standard concentration unit, the
	// basis for rate-coefficient dimensional analysis.
	Concentration units.Units

	Species []SpeciesDef
}

// Surface reports whether the phase is two-dimensional.
func (p *Phase) Surface() bool {
	return p.Dimension != 3
}

// Context is the kinetics-side view of a mechanism under construction:
// the ordered set of phases, species lookup, and the leniency flags that
// govern how undeclared references are treated during validation.
//
// A Context is built once and treated as read-only while reactions are
// constructed against it, so concurrent construction of independent
// reactions is safe.
type Context struct {
	phases []*Phase

	// reactionPhase indexes the phase reactions nominally belong to.
	// For surface mechanisms this is the surface phase.
	reactionPhase int

	bySpecies map[string]speciesRef

	skipUndeclaredSpecies     bool
	skipUndeclaredThirdBodies bool
}

type speciesRef struct {
	phase   int
	species int
}

// ContextOption adjusts Context construction.
type ContextOption func(*Context)

// SkipUndeclaredSpecies makes species-declaration checks lenient: a
// reaction referencing an unknown species is excluded from the mechanism
// instead of failing the load.
func SkipUndeclaredSpecies() ContextOption {
	return func(c *Context) { c.skipUndeclaredSpecies = true }
}

// SkipUndeclaredThirdBodies makes third-body efficiency checks lenient:
// efficiencies for unknown species are ignored instead of failing.
func SkipUndeclaredThirdBodies() ContextOption {
	return func(c *Context) { c.skipUndeclaredThirdBodies = true }
}

// NewContext builds a Context over the given phases. The first phase is
// the reaction phase unless a surface phase is present, in which case the
// first surface phase governs (surface mechanisms attach their reactions
// to the surface). Species names are NFC-normalized; a name declared
// twice anywhere in the mechanism is an error.
func NewContext(phases []*Phase, opts ...ContextOption) (*Context, error) {
	ctx := &Context{
		phases:    phases,
		bySpecies: make(map[string]speciesRef),
	}
	for _, opt := range opts {
		opt(ctx)
	}

	for pi, ph := range phases {
		if ph.Surface() {
			ctx.reactionPhase = pi
		}
		for si := range ph.Species {
			sp := &ph.Species[si]
			sp.Name = norm.NFC.String(sp.Name)
			if _, dup := ctx.bySpecies[sp.Name]; dup {
				return nil, fmt.Errorf("species %q declared more than once", sp.Name)
			}
			if ph.Surface() && sp.Size == 0 {
				sp.Size = 1
			}
			ctx.bySpecies[sp.Name] = speciesRef{phase: pi, species: si}
		}
	}
	return ctx, nil
}

// Phases returns the phases in declaration order.
func (c *Context) Phases() []*Phase {
	return c.phases
}

// ReactionPhase returns the phase reactions belong to.
func (c *Context) ReactionPhase() *Phase {
	return c.phases[c.reactionPhase]
}

// SurfacePhase returns the first surface phase, or nil if the mechanism
// is purely bulk.
func (c *Context) SurfacePhase() *Phase {
	for _, ph := range c.phases {
		if ph.Surface() {
			return ph
		}
	}
	return nil
}

// HasSpecies reports whether name is declared in any phase.
func (c *Context) HasSpecies(name string) bool {
	_, ok := c.bySpecies[norm.NFC.String(name)]
	return ok
}

// Species returns the definition for name, or nil if undeclared.
func (c *Context) Species(name string) *SpeciesDef {
	ref, ok := c.bySpecies[norm.NFC.String(name)]
	if !ok {
		return nil
	}
	return &c.phases[ref.phase].Species[ref.species]
}

// SpeciesPhase returns the phase owning name, or nil if undeclared.
func (c *Context) SpeciesPhase(name string) *Phase {
	ref, ok := c.bySpecies[norm.NFC.String(name)]
	if !ok {
		return nil
	}
	return c.phases[ref.phase]
}

// PhaseIndex returns the index of the phase owning name, or -1.
func (c *Context) PhaseIndex(name string) int {
	ref, ok := c.bySpecies[norm.NFC.String(name)]
	if !ok {
		return -1
	}
	return ref.phase
}

// SkipUndeclaredSpecies reports the lenient-species flag.
func (c *Context) SkipUndeclaredSpecies() bool {
	return c.skipUndeclaredSpecies
}

// SkipUndeclaredThirdBodies reports the lenient-third-body flag.
func (c *Context) SkipUndeclaredThirdBodies() bool {
	return c.skipUndeclaredThirdBodies
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
