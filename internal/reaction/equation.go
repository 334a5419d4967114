package reaction

import (
	"strconv"
	"strings"

	"github.com/mechkit/mechkit/internal/chem"
)

// isDelimiter reports whether tok separates (coefficient, species) units
// in an equation string. Third-body falloff markers act as delimiters so
// that "A (+M)" terminates the species "A".
func isDelimiter(tok string) bool {
	return tok == "+" || tok == "<=>" || tok == "=" || tok == "=>" ||
		strings.HasPrefix(tok, "(+")
}

// parseEquation tokenizes equation and populates r's reactants, products,
// and reversibility flag.
//
// The scan keeps the index of the last token consumed as part of a
// completed (coefficient, species) unit; when a delimiter is reached the
// distance from that index classifies the preceding span: distance two is
// a bare species (implicit coefficient 1), distance three is a numeric
// coefficient followed by a species, and the "(+X)" / "(+ X)" falloff
// spellings record the pseudo-species with coefficient -1. A trailing "+"
// sentinel keeps the final species off the special-case path.
//
// A species that cannot be resolved against ctx marks the reaction
// invalid rather than failing the parse; invalidity is reported later by
// the declaration check. Falloff markers and the literal "M" are exempt.
func parseEquation(r *Reaction, equation string, ctx *chem.Context) error {
	tokens := strings.Fields(equation)
	tokens = append(tokens, "+")

	lastUsed := -1
	onReactants := true
	for i := 1; i < len(tokens); i++ {
		if isDelimiter(tokens[i]) {
			species := tokens[i-1]

			var stoich float64
			switch {
			case lastUsed >= 0 && tokens[lastUsed] == "(+" &&
				strings.HasSuffix(species, ")"):
				// Falloff third body written with a space, as in "(+ M)".
				species = "(+" + species
				stoich = -1
			case lastUsed == i-1 && strings.HasPrefix(species, "(+") &&
				strings.HasSuffix(species, ")"):
				// Falloff third body written without a space, as in "(+M)".
				stoich = -1
			case lastUsed == i-2:
				stoich = 1
			case lastUsed == i-3:
				v, err := strconv.ParseFloat(tokens[i-2], 64)
				if err != nil {
					return &Error{
						Code:     ErrCodeParse,
						Equation: equation,
						Message:  "invalid stoichiometric coefficient '" + tokens[i-2] + "'",
						Details:  map[string]string{"token": tokens[i-2]},
					}
				}
				stoich = v
			default:
				last := "n/a"
				if lastUsed >= 0 {
					last = tokens[lastUsed]
				}
				return &Error{
					Code:     ErrCodeParse,
					Equation: equation,
					Message:  "error parsing reaction string",
					Details:  map[string]string{"token": tokens[i], "last": last},
				}
			}

			if ctx == nil || (!ctx.HasSpecies(species) && stoich != -1 && species != "M") {
				r.valid = false
			}

			if onReactants {
				r.Reactants.Add(species, stoich)
			} else {
				r.Products.Add(species, stoich)
			}
			lastUsed = i
		}

		// Tokens after this point belong to the product side.
		switch tokens[i] {
		case "<=>", "=":
			r.Reversible = true
			onReactants = false
		case "=>":
			r.Reversible = false
			onReactants = false
		}
	}
	return nil
}
