package reaction

// PlogEntry is one pressure point of a pressure-dependent-Arrhenius rate
// as it appears in a mechanism file.
type PlogEntry struct {
	P  float64 `yaml:"P" json:"P"`
	A  float64 `yaml:"A" json:"A"`
	B  float64 `yaml:"b" json:"b"`
	Ea float64 `yaml:"Ea" json:"Ea"`
}

// Description is the structured reaction description consumed from the
// configuration-loading collaborator. It is stored on the constructed
// reaction as an immutable input snapshot, kept separate from computed
// parameters and merged back only at serialization time.
type Description struct {
	Equation string `yaml:"equation" json:"equation"`

	// Type is the explicit reaction type tag. Empty means the type is
	// inferred from phase dimensionality and equation structure.
	Type string `yaml:"type,omitempty" json:"type,omitempty"`

	ID        string `yaml:"id,omitempty" json:"id,omitempty"`
	Duplicate bool   `yaml:"duplicate,omitempty" json:"duplicate,omitempty"`

	// Orders holds non-mass-action reaction-order overrides.
	Orders map[string]float64 `yaml:"orders,omitempty" json:"orders,omitempty"`

	NegativeOrders    bool `yaml:"negative-orders,omitempty" json:"negative-orders,omitempty"`
	NonreactantOrders bool `yaml:"nonreactant-orders,omitempty" json:"nonreactant-orders,omitempty"`

	// Rate parameter blocks. Presence of RateConstant versus
	// StickingCoefficient drives interface type inference.
	RateConstant        *ArrheniusParams `yaml:"rate-constant,omitempty" json:"rate-constant,omitempty"`
	StickingCoefficient *ArrheniusParams `yaml:"sticking-coefficient,omitempty" json:"sticking-coefficient,omitempty"`
	MotzWise            bool             `yaml:"Motz-Wise,omitempty" json:"Motz-Wise,omitempty"`
	LowPRateConstant    *ArrheniusParams `yaml:"low-P-rate-constant,omitempty" json:"low-P-rate-constant,omitempty"`
	HighPRateConstant   *ArrheniusParams `yaml:"high-P-rate-constant,omitempty" json:"high-P-rate-constant,omitempty"`
	ChebyshevData       [][]float64      `yaml:"data,omitempty" json:"data,omitempty"`
	RateConstants       []PlogEntry      `yaml:"rate-constants,omitempty" json:"rate-constants,omitempty"`

	// Third-body efficiency overrides for three-body and falloff types.
	Efficiencies      map[string]float64 `yaml:"efficiencies,omitempty" json:"efficiencies,omitempty"`
	DefaultEfficiency *float64           `yaml:"default-efficiency,omitempty" json:"default-efficiency,omitempty"`
}
