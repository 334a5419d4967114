package reaction

// RateKind tags the kind of rate law attached to a reaction. Carrying an
// explicit tag lets construction logic branch on the kind directly
// instead of probing the rate object's runtime type.
type RateKind string

const (
	// RateArrhenius is the modified Arrhenius form for bulk reactions.
	RateArrhenius RateKind = "Arrhenius"

	// RateFalloff is a pressure-blended rate with low- and high-pressure
	// limits.
	RateFalloff RateKind = "falloff"

	// RateChebyshev is a Chebyshev-polynomial fit over T and P.
	RateChebyshev RateKind = "Chebyshev"

	// RatePressureLog interpolates Arrhenius fits between pressures.
	RatePressureLog RateKind = "pressure-dependent-Arrhenius"

	// RateInterfaceArrhenius is an Arrhenius form for surface reactions.
	RateInterfaceArrhenius RateKind = "interface-Arrhenius"

	// RateSticking expresses a surface reaction as a sticking
	// probability.
	RateSticking RateKind = "sticking-Arrhenius"

	// RateCustomFunc1 delegates to an arbitrary user function of
	// temperature.
	RateCustomFunc1 RateKind = "custom-rate-function"
)

// Rate is the capability surface the reaction subsystem needs from a
// rate law: its kind tag, a structural self-check hook run during
// reaction validation, and the parameter block merged into the produced
// reaction description. Rate evaluation itself belongs to the rate
// subsystem and is out of scope here.
type Rate interface {
	Kind() RateKind

	// Check enforces rate-specific structural requirements. The equation
	// string is provided for error messages only.
	Check(equation string) error

	// Parameters returns the rate's own serialization block, including
	// its type tag where one is required for reconstruction.
	Parameters() map[string]any
}

// ArrheniusParams holds the three modified-Arrhenius coefficients. The
// pre-exponential factor carries the units inferred for the reaction;
// the activation energy is stored as given in the input.
type ArrheniusParams struct {
	A  float64 `yaml:"A" json:"A"`
	B  float64 `yaml:"b" json:"b"`
	Ea float64 `yaml:"Ea" json:"Ea"`
}

func (p ArrheniusParams) block() map[string]any {
	return map[string]any{"A": p.A, "b": p.B, "Ea": p.Ea}
}

// ArrheniusRate is the default elementary rate law.
type ArrheniusRate struct {
	Params ArrheniusParams
}

func (r *ArrheniusRate) Kind() RateKind              { return RateArrhenius }
func (r *ArrheniusRate) Check(equation string) error { return nil }
func (r *ArrheniusRate) Parameters() map[string]any {
	return map[string]any{"rate-constant": r.Params.block()}
}

// FalloffRate blends low- and high-pressure Arrhenius limits.
type FalloffRate struct {
	Low  ArrheniusParams
	High ArrheniusParams

	// ChemicallyActivated marks rates referenced to the low-pressure
	// limit; it changes the reported reaction type.
	ChemicallyActivated bool
}

func (r *FalloffRate) Kind() RateKind { return RateFalloff }

func (r *FalloffRate) Check(equation string) error {
	if r.Low == (ArrheniusParams{}) && r.High == (ArrheniusParams{}) {
		return newError(ErrCodeConfig, equation,
			"falloff rate requires low-P-rate-constant and high-P-rate-constant")
	}
	return nil
}

func (r *FalloffRate) Parameters() map[string]any {
	typ := "falloff"
	if r.ChemicallyActivated {
		typ = "chemically-activated"
	}
	return map[string]any{
		"type":                 typ,
		"low-P-rate-constant":  r.Low.block(),
		"high-P-rate-constant": r.High.block(),
	}
}

// ChebyshevRate is a polynomial fit in reduced temperature and pressure.
// Only the coefficient table is carried; evaluation is out of scope.
type ChebyshevRate struct {
	Data [][]float64
}

func (r *ChebyshevRate) Kind() RateKind              { return RateChebyshev }
func (r *ChebyshevRate) Check(equation string) error { return nil }
func (r *ChebyshevRate) Parameters() map[string]any {
	return map[string]any{"type": "Chebyshev", "data": r.Data}
}

// PlogPoint is one Arrhenius fit at a fixed pressure.
type PlogPoint struct {
	Pressure float64
	Params   ArrheniusParams
}

// PressureLogRate interpolates Arrhenius expressions given at discrete
// pressures. Points are kept in input order.
type PressureLogRate struct {
	Points []PlogPoint
}

func (r *PressureLogRate) Kind() RateKind { return RatePressureLog }

func (r *PressureLogRate) Check(equation string) error {
	if len(r.Points) == 0 {
		return newError(ErrCodeConfig, equation,
			"pressure-dependent-Arrhenius rate requires at least one rate-constants entry")
	}
	return nil
}

func (r *PressureLogRate) Parameters() map[string]any {
	constants := make([]map[string]any, 0, len(r.Points))
	for _, pt := range r.Points {
		entry := pt.Params.block()
		entry["P"] = pt.Pressure
		constants = append(constants, entry)
	}
	return map[string]any{"type": "pressure-dependent-Arrhenius", "rate-constants": constants}
}

// InterfaceArrheniusRate is the Arrhenius form for reactions on a
// surface phase.
type InterfaceArrheniusRate struct {
	Params ArrheniusParams
}

func (r *InterfaceArrheniusRate) Kind() RateKind              { return RateInterfaceArrhenius }
func (r *InterfaceArrheniusRate) Check(equation string) error { return nil }
func (r *InterfaceArrheniusRate) Parameters() map[string]any {
	return map[string]any{"type": "interface-Arrhenius", "rate-constant": r.Params.block()}
}

// StickingRate expresses a surface reaction through a sticking
// probability rather than a rate constant.
type StickingRate struct {
	Params ArrheniusParams

	// MotzWise enables the Motz-Wise correction for high sticking
	// probabilities.
	MotzWise bool
}

func (r *StickingRate) Kind() RateKind { return RateSticking }

func (r *StickingRate) Check(equation string) error {
	if r.Params.A > 1 {
		return newError(ErrCodeConfig, equation,
			"sticking coefficient pre-exponential %g exceeds 1", r.Params.A)
	}
	return nil
}

func (r *StickingRate) Parameters() map[string]any {
	out := map[string]any{
		"type":                 "sticking-Arrhenius",
		"sticking-coefficient": r.Params.block(),
	}
	if r.MotzWise {
		out["Motz-Wise"] = true
	}
	return out
}

// CustomFunc1Rate wraps an arbitrary user-supplied rate function of
// temperature. The function reference never serializes; the parameter
// block records only the type tag.
type CustomFunc1Rate struct {
	Func func(temperature float64) float64
}

func (r *CustomFunc1Rate) Kind() RateKind { return RateCustomFunc1 }

func (r *CustomFunc1Rate) Check(equation string) error {
	if r.Func == nil {
		return newError(ErrCodeConfig, equation, "custom rate function is not set")
	}
	return nil
}

func (r *CustomFunc1Rate) Parameters() map[string]any {
	return map[string]any{"type": "custom-rate-function"}
}
