// Package chem models the thermodynamic context a reaction is parsed and
// validated against: species definitions with elemental composition,
// phases with dimensionality and standard concentration units, and the
// kinetics Context tying them together.
package chem

// Composition is an ordered mapping from species (or element) name to a
// signed stoichiometric coefficient. Insertion order is preserved so that
// equation rendering is stable; adding a name that is already present
// accumulates into the existing coefficient instead of overwriting it.
//
// The zero value is ready to use.
type Composition struct {
	keys  []string
	index map[string]int
	vals  []float64
}

// NewComposition returns an empty composition.
func NewComposition() *Composition {
	return &Composition{index: make(map[string]int)}
}

// Add accumulates coeff into the entry for name, creating it if absent.
func (c *Composition) Add(name string, coeff float64) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[name]; ok {
		c.vals[i] += coeff
		return
	}
	c.index[name] = len(c.keys)
	c.keys = append(c.keys, name)
	c.vals = append(c.vals, coeff)
}

// Set replaces the coefficient for name, creating the entry if absent.
func (c *Composition) Set(name string, coeff float64) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[name]; ok {
		c.vals[i] = coeff
		return
	}
	c.index[name] = len(c.keys)
	c.keys = append(c.keys, name)
	c.vals = append(c.vals, coeff)
}

// Get returns the coefficient for name and whether the entry exists.
func (c *Composition) Get(name string) (float64, bool) {
	if c.index == nil {
		return 0, false
	}
	i, ok := c.index[name]
	if !ok {
		return 0, false
	}
	return c.vals[i], true
}

// Has reports whether name is present.
func (c *Composition) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Delete removes the entry for name if present. Order of the remaining
// entries is unchanged.
func (c *Composition) Delete(name string) {
	i, ok := c.index[name]
	if !ok {
		return
	}
	c.keys = append(c.keys[:i], c.keys[i+1:]...)
	c.vals = append(c.vals[:i], c.vals[i+1:]...)
	delete(c.index, name)
	for j := i; j < len(c.keys); j++ {
		c.index[c.keys[j]] = j
	}
}

// Len returns the number of entries.
func (c *Composition) Len() int {
	return len(c.keys)
}

// Keys returns the names in insertion order. The returned slice must not
// be mutated.
func (c *Composition) Keys() []string {
	return c.keys
}

// Each calls fn for every (name, coefficient) pair in insertion order.
func (c *Composition) Each(fn func(name string, coeff float64)) {
	for i, k := range c.keys {
		fn(k, c.vals[i])
	}
}

// Clone returns a deep copy.
func (c *Composition) Clone() *Composition {
	out := NewComposition()
	c.Each(out.Add)
	return out
}

// Map returns the composition as a plain map, losing order. Intended for
// serialization into parameter blocks.
func (c *Composition) Map() map[string]float64 {
	out := make(map[string]float64, len(c.keys))
	for i, k := range c.keys {
		out[k] = c.vals[i]
	}
	return out
}

// FromMap builds a composition from a plain map. Entries are inserted in
// sorted-key order so the result is deterministic.
func FromMap(m map[string]float64) *Composition {
	out := NewComposition()
	for _, k := range sortedKeys(m) {
		out.Add(k, m[k])
	}
	return out
}
