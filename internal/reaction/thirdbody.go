package reaction

import "github.com/mechkit/mechkit/internal/chem"

// ThirdBody represents a non-reactive collision partner with per-species
// efficiency overrides. A ThirdBody is owned exclusively by the reaction
// that created it.
type ThirdBody struct {
	// DefaultEfficiency applies to species without an explicit override.
	DefaultEfficiency float64

	// Efficiencies maps species name to its efficiency override.
	// Insertion order is preserved for stable serialization.
	Efficiencies *chem.Composition

	// SpecifiedCollisionPartner is true when a single named species,
	// rather than the generic "M", is the collision partner. The partner
	// is then the sole entry of Efficiencies.
	SpecifiedCollisionPartner bool

	// MassAction is true when the third-body concentration enters the
	// rate expression as a plain multiplicative factor. Falloff third
	// bodies are never mass-action: their contribution is folded into
	// the pressure-blended rate law.
	MassAction bool
}

// NewThirdBody returns a generic "M" third body with default efficiency 1.
func NewThirdBody() *ThirdBody {
	return &ThirdBody{
		DefaultEfficiency: 1,
		Efficiencies:      chem.NewComposition(),
		MassAction:        true,
	}
}

// Efficiency returns the collision efficiency of species k.
func (tb *ThirdBody) Efficiency(k string) float64 {
	if v, ok := tb.Efficiencies.Get(k); ok {
		return v
	}
	return tb.DefaultEfficiency
}

// CollisionPartner returns the named collision partner, or "M" when the
// third body is generic.
func (tb *ThirdBody) CollisionPartner() string {
	if tb.SpecifiedCollisionPartner && tb.Efficiencies.Len() > 0 {
		return tb.Efficiencies.Keys()[0]
	}
	return "M"
}

// setEfficiencies applies the efficiency overrides from a reaction
// description.
func (tb *ThirdBody) setEfficiencies(defaultEff *float64, overrides map[string]float64) {
	if defaultEff != nil {
		tb.DefaultEfficiency = *defaultEff
	}
	if len(overrides) > 0 {
		tb.Efficiencies = chem.FromMap(overrides)
	}
}
