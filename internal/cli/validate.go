package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mechkit/mechkit/internal/mechfile"
	"github.com/mechkit/mechkit/internal/reaction"
)

// ValidateResult holds the outcome of validating a mechanism file.
type ValidateResult struct {
	Valid     bool     `json:"valid"`
	Reactions int      `json:"reactions"`
	Excluded  []string `json:"excluded,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <mechanism.yaml>",
		Short: "Parse and validate a mechanism file",
		Long: `Parse a mechanism file, resolve each reaction's type, and run the
structural, species-declaration, and balance checks.

Exits 0 when every reaction validates, 1 on a validation failure, and
2 when the file cannot be read or decoded.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	mech, err := mechfile.Load(path)
	if err != nil {
		return reportLoadError(formatter, err)
	}

	formatter.VerboseLog("loaded %d reaction(s), %d excluded",
		len(mech.Reactions), len(mech.Excluded))

	result := ValidateResult{
		Valid:     true,
		Reactions: len(mech.Reactions),
		Excluded:  mech.Excluded,
	}
	if opts.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
		return nil
	}
	return formatter.Success(fmt.Sprintf("OK: %d reaction(s) valid, %d excluded",
		result.Reactions, len(result.Excluded)))
}

// reportLoadError maps load-pipeline errors onto formatter output and
// exit codes: mechanism-content failures exit 1, file/decode problems
// exit 2.
func reportLoadError(formatter *OutputFormatter, err error) error {
	var rerr *reaction.Error
	if errors.As(err, &rerr) {
		formatter.Error(string(rerr.Code), rerr.Message, rerr.Details)
		return &ExitError{Code: ExitFailure, Message: rerr.Message, Err: err}
	}

	var lerr *mechfile.LoadError
	if errors.As(err, &lerr) {
		formatter.Error(lerr.Code, lerr.Message, nil)
		code := ExitCommandError
		if lerr.Code == mechfile.ErrCodeSchema {
			code = ExitFailure
		}
		return &ExitError{Code: code, Message: lerr.Message, Err: err}
	}

	formatter.Error("UNEXPECTED", err.Error(), nil)
	return &ExitError{Code: ExitCommandError, Message: err.Error(), Err: err}
}
