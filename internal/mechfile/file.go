// Package mechfile loads kinetics mechanisms from YAML files: phases and
// species become a chem.Context, each reaction description is resolved,
// constructed, and validated, and lenient-mode exclusions are reported
// alongside the accepted reactions.
package mechfile

import (
	"fmt"

	"github.com/mechkit/mechkit/internal/reaction"
)

// SpeciesNode is one species declaration in a mechanism file.
type SpeciesNode struct {
	Name        string             `yaml:"name"`
	Composition map[string]float64 `yaml:"composition"`
	Charge      float64            `yaml:"charge,omitempty"`
	Sites       float64            `yaml:"sites,omitempty"`
}

// PhaseNode is one phase declaration. Kind selects the dimensionality
// and with it the phase's standard concentration units.
type PhaseNode struct {
	Name    string        `yaml:"name"`
	Kind    string        `yaml:"kind"`
	Species []SpeciesNode `yaml:"species"`
}

// File is the top-level mechanism file model.
type File struct {
	Phases    []PhaseNode            `yaml:"phases"`
	Reactions []reaction.Description `yaml:"reactions"`

	SkipUndeclaredSpecies     bool `yaml:"skip-undeclared-species,omitempty"`
	SkipUndeclaredThirdBodies bool `yaml:"skip-undeclared-third-bodies,omitempty"`
}

// LoadError reports a failure to read, validate, or decode a mechanism
// file, before reaction construction begins.
type LoadError struct {
	Code    string
	Message string
}

// Load error codes.
const (
	ErrCodeNotFound   = "FILE_NOT_FOUND"
	ErrCodeSchema     = "SCHEMA_VIOLATION"
	ErrCodeDecode     = "DECODE_FAILED"
	ErrCodeNoPhases   = "NO_PHASES"
	ErrCodeBadPhase   = "BAD_PHASE"
	ErrCodeBadSpecies = "BAD_SPECIES"
)

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
