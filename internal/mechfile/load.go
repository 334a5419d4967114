package mechfile

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"

	"github.com/mechkit/mechkit/internal/chem"
	"github.com/mechkit/mechkit/internal/reaction"
	"github.com/mechkit/mechkit/internal/units"
)

var log = commonlog.GetLogger("mechkit.mechfile")

// Mechanism is the result of loading a mechanism file: the kinetics
// context, the reactions that passed every check, and the equations of
// reactions excluded by lenient-mode species handling.
type Mechanism struct {
	Context   *chem.Context
	Reactions []*reaction.Reaction

	// Excluded lists the equations of reactions dropped in lenient mode
	// rather than failing the load.
	Excluded []string
}

// Load reads, validates, and constructs a mechanism from path.
func Load(path string) (*Mechanism, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: err.Error()}
	}
	return LoadBytes(path, data)
}

// LoadBytes is Load for in-memory data; name is used in diagnostics.
func LoadBytes(name string, data []byte) (*Mechanism, error) {
	if err := validateSchema(name, data); err != nil {
		return nil, err
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Code: ErrCodeDecode, Message: err.Error()}
	}

	ctx, err := BuildContext(&file)
	if err != nil {
		return nil, err
	}
	return build(ctx, file.Reactions)
}

// BuildContext converts the file's phase declarations into a kinetics
// context, deriving each phase's standard concentration units from its
// kind.
func BuildContext(file *File) (*chem.Context, error) {
	if len(file.Phases) == 0 {
		return nil, &LoadError{Code: ErrCodeNoPhases, Message: "mechanism declares no phases"}
	}

	phases := make([]*chem.Phase, 0, len(file.Phases))
	for _, pn := range file.Phases {
		phase := &chem.Phase{Name: pn.Name}
		switch pn.Kind {
		case "bulk":
			phase.Dimension = 3
			phase.Concentration = units.MolarDensity()
		case "surface":
			phase.Dimension = 2
			phase.Concentration = units.SurfaceCoverage()
		default:
			return nil, &LoadError{
				Code:    ErrCodeBadPhase,
				Message: fmt.Sprintf("phase %q has unknown kind %q", pn.Name, pn.Kind),
			}
		}
		for _, sn := range pn.Species {
			phase.Species = append(phase.Species, chem.SpeciesDef{
				Name:     sn.Name,
				Elements: sn.Composition,
				Charge:   sn.Charge,
				Size:     sn.Sites,
			})
		}
		phases = append(phases, phase)
	}

	var opts []chem.ContextOption
	if file.SkipUndeclaredSpecies {
		opts = append(opts, chem.SkipUndeclaredSpecies())
	}
	if file.SkipUndeclaredThirdBodies {
		opts = append(opts, chem.SkipUndeclaredThirdBodies())
	}

	ctx, err := chem.NewContext(phases, opts...)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeBadSpecies, Message: err.Error()}
	}
	return ctx, nil
}

// build constructs and validates every reaction description against ctx.
// Construction failures abort the load; lenient-mode exclusions are
// logged and collected.
func build(ctx *chem.Context, nodes []reaction.Description) (*Mechanism, error) {
	mech := &Mechanism{Context: ctx}
	for i := range nodes {
		node := &nodes[i]
		if node.ID == "" {
			node.ID = uuid.Must(uuid.NewV7()).String()
		}

		r, err := reaction.New(node, ctx)
		if err != nil {
			return nil, err
		}

		included, err := r.CheckSpecies(ctx)
		if err != nil {
			return nil, err
		}
		if !included {
			log.Noticef("excluding reaction '%s': undeclared species", r.Equation())
			mech.Excluded = append(mech.Excluded, r.Equation())
			continue
		}

		mech.Reactions = append(mech.Reactions, r)
	}
	return mech, nil
}
