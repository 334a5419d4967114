package units

// stackEntry pairs a unit with the exponent it contributes to the product.
type stackEntry struct {
	units Units
	exp   float64
}

// Stack accumulates (Units, exponent) terms for rate-coefficient unit
// inference. The first entry always holds the reacting phase's standard
// concentration units; subsequent terms adjust or extend it.
//
// An empty Stack represents undetermined units. Unit inference over a
// reaction with unresolved species is meaningless, so such reactions
// produce an empty Stack rather than a guess.
type Stack struct {
	entries []stackEntry
}

// NewStack returns a stack seeded with the given standard concentration
// units at exponent zero.
func NewStack(standard Units) Stack {
	return Stack{entries: []stackEntry{{units: standard, exp: 0}}}
}

// EmptyStack returns the undetermined-units stack.
func EmptyStack() Stack {
	return Stack{}
}

// Empty reports whether the stack carries no unit information.
func (s Stack) Empty() bool {
	return len(s.entries) == 0
}

// Standard returns the seed units of the stack. Calling Standard on an
// empty stack returns the dimensionless unit.
func (s Stack) Standard() Units {
	if len(s.entries) == 0 {
		return Dimensionless()
	}
	return s.entries[0].units
}

// Join adds exponent to the stack's leading (standard concentration) term.
// Join on an empty stack is a no-op.
func (s *Stack) Join(exp float64) {
	if len(s.entries) == 0 {
		return
	}
	s.entries[0].exp += exp
}

// Update folds units^exp into the stack. If a term with the same
// dimensions already exists its exponent is adjusted, otherwise a new
// term is appended.
func (s *Stack) Update(u Units, exp float64) {
	for i := range s.entries {
		if s.entries[i].units.SameDimensions(u) {
			s.entries[i].exp += exp
			return
		}
	}
	s.entries = append(s.entries, stackEntry{units: u, exp: exp})
}

// Product flattens the stack into a single composite unit.
func (s Stack) Product() Units {
	out := Dimensionless()
	for _, e := range s.entries {
		out = out.Times(e.units.Pow(e.exp))
	}
	return out
}

// Len returns the number of distinct terms on the stack.
func (s Stack) Len() int {
	return len(s.entries)
}
